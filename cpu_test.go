package z80

import "testing"

func newTestCPU() *CPU {
	clock := NewClock()
	bus := NewBus()
	bus.AddDevice(NewRAM(0x0000, 0x1000, clock))
	return New(bus, clock)
}

func (c *CPU) load(addr uint16, program []byte) {
	c.bus.WriteVec(addr, program)
}

func TestScenarioLDBB(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x40})
	c.Regs.Main.SetBC(0x1122)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.B != 0x11 {
		t.Fatalf("B = 0x%02X, want 0x11", c.Regs.Main.B)
	}
	if c.Regs.PC != 1 {
		t.Fatalf("PC = %d, want 1", c.Regs.PC)
	}
	if c.clock.Read() != 4 {
		t.Fatalf("clock = %d, want 4", c.clock.Read())
	}
}

func TestScenarioLDBHLInd(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x46})
	c.Regs.Main.SetHL(0x0100)
	c.bus.Poke(0x0100, 0x44)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.B != 0x44 {
		t.Fatalf("B = 0x%02X, want 0x44", c.Regs.Main.B)
	}
	if c.clock.Read() != 7 {
		t.Fatalf("clock = %d, want 7", c.clock.Read())
	}
}

func TestScenarioLDBIXPlusD(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0xDD, 0x46, 0x01})
	c.Regs.IX = 0x0100
	c.bus.Poke(0x0101, 0xAA)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.B != 0xAA {
		t.Fatalf("B = 0x%02X, want 0xAA", c.Regs.Main.B)
	}
	if c.Regs.PC != 3 {
		t.Fatalf("PC = %d, want 3", c.Regs.PC)
	}
	if c.clock.Read() != 19 {
		t.Fatalf("clock = %d, want 19", c.clock.Read())
	}
	if c.Ctx.Prefix != PrefixNone || c.Ctx.AddressMode != AddressHL {
		t.Fatalf("execution context not cleared after instruction")
	}
}

func TestScenarioLDHLIndN(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x36, 0x55})
	c.Regs.Main.SetHL(0x0100)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if got := c.bus.Peek(0x0100); got != 0x55 {
		t.Fatalf("peek(0x0100) = 0x%02X, want 0x55", got)
	}
	if c.Regs.PC != 2 {
		t.Fatalf("PC = %d, want 2", c.Regs.PC)
	}
	if c.clock.Read() != 10 {
		t.Fatalf("clock = %d, want 10", c.clock.Read())
	}
}

func TestScenarioLDANNInd(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x3A, 0x00, 0x01})
	c.bus.Poke(0x0100, 0xBB)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.A != 0xBB {
		t.Fatalf("A = 0x%02X, want 0xBB", c.Regs.Main.A)
	}
	if c.Regs.PC != 3 {
		t.Fatalf("PC = %d, want 3", c.Regs.PC)
	}
	if c.clock.Read() != 13 {
		t.Fatalf("clock = %d, want 13", c.clock.Read())
	}
}

func TestScenarioLDAI(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0xED, 0x57})
	c.Regs.I = 0x00
	c.Regs.IFF2 = true
	c.Regs.Main.F = 0xFF

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.A != 0x00 {
		t.Fatalf("A = 0x%02X, want 0x00", c.Regs.Main.A)
	}
	if c.clock.Read() != 9 {
		t.Fatalf("clock = %d, want 9", c.clock.Read())
	}
	if c.Regs.Main.F != 0b01101001 {
		t.Fatalf("F = 0b%08b, want 0b01101001", c.Regs.Main.F)
	}
}

func TestLDRRPreservesOtherRegisters(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x41}) // LD B,C
	c.Regs.Main.B = 0x01
	c.Regs.Main.C = 0x02
	c.Regs.Main.D = 0x03
	before := c.Regs.Main.D

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.B != 0x02 {
		t.Fatalf("B = 0x%02X, want 0x02 (copy of C)", c.Regs.Main.B)
	}
	if c.Regs.Main.C != 0x02 {
		t.Fatalf("C changed: 0x%02X", c.Regs.Main.C)
	}
	if c.Regs.Main.D != before {
		t.Fatalf("D changed: 0x%02X, want 0x%02X", c.Regs.Main.D, before)
	}
}

func TestHaltIdempotence(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x76})

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Ctx.Status != StatusHalted {
		t.Fatalf("expected Halted status")
	}
	pc := c.Regs.PC
	for i := 0; i < 3; i++ {
		before := c.clock.Read()
		if err := c.Step(); err != nil {
			t.Fatalf("Step while halted: %v", err)
		}
		if c.clock.Read()-before != 4 {
			t.Fatalf("halted step added %d tics, want 4", c.clock.Read()-before)
		}
		if c.Regs.PC != pc {
			t.Fatalf("PC moved while halted: %d -> %d", pc, c.Regs.PC)
		}
	}
}

func TestUnknownOpcode(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0xED, 0xFF}) // unassigned ED extended opcode

	err := c.Step()
	if err == nil {
		t.Fatalf("expected UnknownOpcode error")
	}
	var unk *UnknownOpcode
	if _, ok := err.(*UnknownOpcode); !ok {
		t.Fatalf("expected *UnknownOpcode, got %T", err)
	} else {
		unk = err.(*UnknownOpcode)
	}
	if unk.Prefix != PrefixED || unk.Byte != 0xFF {
		t.Fatalf("unexpected UnknownOpcode contents: %+v", unk)
	}
	if c.Ctx.Prefix != PrefixNone {
		t.Fatalf("execution context should be reset after an unknown opcode")
	}
}

func TestResetZeroesStateAndClock(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x3E, 0x42}) // LD A,n
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	c.Reset()
	if c.Regs.Main.A != 0 || c.Regs.PC != 0 || c.clock.Read() != 0 {
		t.Fatalf("Reset did not zero state: A=%d PC=%d clock=%d", c.Regs.Main.A, c.Regs.PC, c.clock.Read())
	}
	if c.Ctx.Status != StatusRunning || c.Ctx.Prefix != PrefixNone || c.Ctx.AddressMode != AddressHL {
		t.Fatalf("Reset did not restore default execution context")
	}
}

func TestADDHLBCFlags(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x09}) // ADD HL,BC
	c.Regs.Main.SetHL(0xFFFF)
	c.Regs.Main.SetBC(0x0001)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.HL() != 0x0000 {
		t.Fatalf("HL = 0x%04X, want 0x0000", c.Regs.Main.HL())
	}
	if !c.Regs.Main.Flag(FlagC) {
		t.Fatalf("expected carry set")
	}
	if c.clock.Read() != 11 {
		t.Fatalf("clock = %d, want 11", c.clock.Read())
	}
}

func TestJRTakenAndNotTaken(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0x28, 0x05}) // JR Z,+5
	c.Regs.Main.SetFlag(FlagZ, true)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.PC != 7 {
		t.Fatalf("PC = %d, want 7 (2 + 5)", c.Regs.PC)
	}
	if c.clock.Read() != 12 {
		t.Fatalf("clock = %d, want 12", c.clock.Read())
	}

	c2 := newTestCPU()
	c2.load(0x0000, []byte{0x28, 0x05})
	if err := c2.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c2.Regs.PC != 2 {
		t.Fatalf("PC = %d, want 2 (not taken)", c2.Regs.PC)
	}
	if c2.clock.Read() != 7 {
		t.Fatalf("clock = %d, want 7", c2.clock.Read())
	}
}

func TestCBBitOnHL(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0xCB, 0x46}) // BIT 0,(HL)
	c.Regs.Main.SetHL(0x0100)
	c.bus.Poke(0x0100, 0x00)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if !c.Regs.Main.Flag(FlagZ) {
		t.Fatalf("expected Z set for BIT 0 on a zero byte")
	}
	if c.clock.Read() != 12 {
		t.Fatalf("clock = %d, want 12", c.clock.Read())
	}
}

func TestDDCBBitIndexed(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0xDD, 0xCB, 0x02, 0x46}) // BIT 0,(IX+2)
	c.Regs.IX = 0x0100
	c.bus.Poke(0x0102, 0x01)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.Flag(FlagZ) {
		t.Fatalf("expected Z clear: bit 0 of 0x01 is set")
	}
	if c.clock.Read() != 20 {
		t.Fatalf("clock = %d, want 20", c.clock.Read())
	}
	if c.Regs.PC != 4 {
		t.Fatalf("PC = %d, want 4", c.Regs.PC)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c := newTestCPU()
	c.load(0x0000, []byte{0xC5, 0xD1}) // PUSH BC; POP DE
	c.Regs.SP = 0x0200
	c.Regs.Main.SetBC(0xBEEF)

	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := c.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if c.Regs.Main.DE() != 0xBEEF {
		t.Fatalf("DE = 0x%04X, want 0xBEEF", c.Regs.Main.DE())
	}
	if c.Regs.SP != 0x0200 {
		t.Fatalf("SP = 0x%04X, want 0x0200", c.Regs.SP)
	}
}
