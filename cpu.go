// cpu.go - the CPU facade: owns the register file, wires bus and clock, and
// exposes reset/step to the outside world.

package z80

import "fmt"

// UnknownOpcode is returned from Step when no table entry matches the
// decoded prefix/byte pair. The CPU is left in a defined state: PC already
// points past the consumed bytes, and the execution context has been reset.
type UnknownOpcode struct {
	Prefix Prefix
	Byte   byte
}

func (e *UnknownOpcode) Error() string {
	return fmt.Sprintf("z80: unknown opcode 0x%02X under prefix %v", e.Byte, e.Prefix)
}

// CPU is the execution unit facade: register file plus non-owning handles to
// the bus and clock it steps against.
type CPU struct {
	Regs Registers
	Ctx  ExecutionContext

	bus   *Bus
	clock *Clock

	opTable  [256]func(*CPU)
	cbTable  [256]func(*CPU)
	edTable  [256]func(*CPU)
	ddTable  [256]func(*CPU) // dedicated IX-specific opcodes; falls back to opTable when nil
	fdTable  [256]func(*CPU) // dedicated IY-specific opcodes; falls back to opTable when nil
	ddcbOps  [256]func(*CPU, uint16)
	fdcbOps  [256]func(*CPU, uint16)
}

// New constructs a CPU wired to bus and clock, with all registers zeroed,
// interrupts disabled, and status Running.
func New(bus *Bus, clock *Clock) *CPU {
	c := &CPU{bus: bus, clock: clock}
	c.Ctx.Reset()
	c.initBaseOps()
	c.initCBOps()
	c.initEDOps()
	c.initDDFDOps()
	return c
}

// Reset restores power-on state: all registers zero, execution context
// defaulted, and the clock zeroed.
func (c *CPU) Reset() {
	c.Regs = Registers{}
	c.Ctx.Reset()
	c.clock.Reset()
}

// ClockTics reports the accumulated clock tic count, for host drivers and
// observers that need to report timing without reaching into CPU internals.
func (c *CPU) ClockTics() uint32 {
	return c.clock.Read()
}

// Step executes exactly one architectural instruction, folding any prefix
// bytes into the execution context first. All clock debits for the
// instruction happen before Step returns.
func (c *CPU) Step() error {
	if c.Ctx.Status == StatusHalted {
		c.clock.Add(4)
		return nil
	}

	opcode := c.fetchByte()

	switch opcode {
	case 0xCB:
		return c.dispatchCB()
	case 0xDD:
		return c.dispatchIndexed(PrefixDD, AddressIXd)
	case 0xFD:
		return c.dispatchIndexed(PrefixFD, AddressIYd)
	case 0xED:
		return c.dispatchED()
	default:
		return c.dispatchBase(opcode)
	}
}

func (c *CPU) dispatchBase(opcode byte) error {
	handler := c.opTable[opcode]
	if handler == nil {
		c.Ctx.clearAfterInstruction()
		return &UnknownOpcode{Prefix: PrefixNone, Byte: opcode}
	}
	handler(c)
	c.Ctx.clearAfterInstruction()
	return nil
}

func (c *CPU) dispatchCB() error {
	c.Ctx.Prefix = PrefixCB
	opcode := c.fetchByte()
	handler := c.cbTable[opcode]
	if handler == nil {
		c.Ctx.clearAfterInstruction()
		return &UnknownOpcode{Prefix: PrefixCB, Byte: opcode}
	}
	handler(c)
	c.Ctx.clearAfterInstruction()
	return nil
}

func (c *CPU) dispatchED() error {
	c.Ctx.Prefix = PrefixED
	opcode := c.fetchByte()
	handler := c.edTable[opcode]
	if handler == nil {
		c.Ctx.clearAfterInstruction()
		return &UnknownOpcode{Prefix: PrefixED, Byte: opcode}
	}
	handler(c)
	c.Ctx.clearAfterInstruction()
	return nil
}

// dispatchIndexed handles the DD/FD prefix: a following CB byte means a
// DDCB/FDCB bit-group instruction with the displacement fetched before the
// final opcode; anything else dispatches through the dedicated index table,
// falling back to the base table (with AddressMode already set) for the
// many opcodes DD/FD only reinterpret the (HL) slot of.
func (c *CPU) dispatchIndexed(prefix Prefix, mode AddressMode) error {
	c.Ctx.Prefix = prefix
	c.Ctx.AddressMode = mode

	next := c.fetchByte()
	if next == 0xCB {
		return c.dispatchIndexedCB(prefix, mode)
	}

	var dedicated *[256]func(*CPU)
	if prefix == PrefixDD {
		dedicated = &c.ddTable
	} else {
		dedicated = &c.fdTable
	}
	if handler := dedicated[next]; handler != nil {
		handler(c)
		c.Ctx.clearAfterInstruction()
		return nil
	}
	if handler := c.opTable[next]; handler != nil {
		handler(c)
		c.Ctx.clearAfterInstruction()
		return nil
	}
	c.Ctx.clearAfterInstruction()
	return &UnknownOpcode{Prefix: prefix, Byte: next}
}

func (c *CPU) dispatchIndexedCB(prefix Prefix, mode AddressMode) error {
	if prefix == PrefixDD {
		c.Ctx.Prefix = PrefixDDCB
	} else {
		c.Ctx.Prefix = PrefixFDCB
	}
	d := c.fetchSignedByte()
	opcode := c.fetchByte()

	addr := indexedAddress(c.indexRegister(mode), d)

	var table *[256]func(*CPU, uint16)
	if prefix == PrefixDD {
		table = &c.ddcbOps
	} else {
		table = &c.fdcbOps
	}
	handler := table[opcode]
	if handler == nil {
		c.Ctx.clearAfterInstruction()
		return &UnknownOpcode{Prefix: c.Ctx.Prefix, Byte: opcode}
	}
	handler(c, addr)
	c.Ctx.clearAfterInstruction()
	return nil
}

func (c *CPU) indexRegister(mode AddressMode) uint16 {
	if mode == AddressIYd {
		return c.Regs.IY
	}
	return c.Regs.IX
}

func indexedAddress(base uint16, d int8) uint16 {
	return uint16(int32(base) + int32(d))
}
