// ops_cb.go - the CB-prefixed rotate/shift/BIT/RES/SET group, including the
// DDCB/FDCB indexed-memory variants.

package z80

const (
	rotRLC = iota
	rotRRC
	rotRL
	rotRR
	rotSLA
	rotSRA
	rotUnused // 0b110, SLL: undocumented, left unimplemented
	rotSRL
)

// rotateOrShift applies one of the documented CB rotate/shift operations and
// returns the result and the bit shifted into the carry flag.
func rotateOrShift(sub byte, v byte, carryIn bool) (result byte, carryOut bool) {
	switch sub {
	case rotRLC:
		carryOut = v&0x80 != 0
		result = v<<1 | boolBit(carryOut)
	case rotRRC:
		carryOut = v&0x01 != 0
		result = v>>1 | boolBit(carryOut)<<7
	case rotRL:
		carryOut = v&0x80 != 0
		result = v<<1 | boolBit(carryIn)
	case rotRR:
		carryOut = v&0x01 != 0
		result = v>>1 | boolBit(carryIn)<<7
	case rotSLA:
		carryOut = v&0x80 != 0
		result = v << 1
	case rotSRA:
		carryOut = v&0x01 != 0
		result = v>>1 | v&0x80
	case rotSRL:
		carryOut = v&0x01 != 0
		result = v >> 1
	}
	return result, carryOut
}

func (c *CPU) applyRotateFlags(result byte, carryOut bool) {
	c.Regs.Main.SetFlag(FlagS, result&0x80 != 0)
	c.Regs.Main.SetFlag(FlagZ, result == 0)
	c.Regs.Main.SetFlag(FlagH, false)
	c.Regs.Main.SetFlag(FlagPV, parity8(result))
	c.Regs.Main.SetFlag(FlagN, false)
	c.Regs.Main.SetFlag(FlagC, carryOut)
}

func (c *CPU) applyBitTest(v byte, bit byte) {
	masked := v & (1 << bit)
	c.Regs.Main.SetFlag(FlagZ, masked == 0)
	c.Regs.Main.SetFlag(FlagS, bit == 7 && masked != 0)
	c.Regs.Main.SetFlag(FlagH, true)
	c.Regs.Main.SetFlag(FlagPV, masked == 0)
	c.Regs.Main.SetFlag(FlagN, false)
}

// initCBOps populates the plain CB table (registers and (HL)) and the
// DDCB/FDCB indexed-memory tables.
func (c *CPU) initCBOps() {
	for opcode := 0; opcode <= 0xFF; opcode++ {
		group := byte(opcode) >> 6
		mid := (byte(opcode) >> 3) & 0x07
		reg := byte(opcode) & 0x07
		switch group {
		case 0:
			if mid == rotUnused {
				continue
			}
			c.cbTable[opcode] = makeCBRotate(mid, reg)
		case 1:
			c.cbTable[opcode] = makeCBBit(mid, reg)
		case 2:
			c.cbTable[opcode] = makeCBRes(mid, reg)
		case 3:
			c.cbTable[opcode] = makeCBSet(mid, reg)
		}
	}
	c.initIndexedCBOps()
}

func makeCBRotate(sub, reg byte) func(*CPU) {
	return func(c *CPU) {
		v := c.readOperand8(reg)
		result, carryOut := rotateOrShift(sub, v, c.Regs.Main.Flag(FlagC))
		c.writeOperand8(reg, result)
		c.applyRotateFlags(result, carryOut)
		if reg == RegIndirect {
			c.clock.Add(15)
		} else {
			c.clock.Add(8)
		}
	}
}

func makeCBBit(bit, reg byte) func(*CPU) {
	return func(c *CPU) {
		v := c.readOperand8(reg)
		c.applyBitTest(v, bit)
		if reg == RegIndirect {
			c.clock.Add(12)
		} else {
			c.clock.Add(8)
		}
	}
}

func makeCBRes(bit, reg byte) func(*CPU) {
	return func(c *CPU) {
		v := c.readOperand8(reg)
		c.writeOperand8(reg, v&^(1<<bit))
		if reg == RegIndirect {
			c.clock.Add(15)
		} else {
			c.clock.Add(8)
		}
	}
}

func makeCBSet(bit, reg byte) func(*CPU) {
	return func(c *CPU) {
		v := c.readOperand8(reg)
		c.writeOperand8(reg, v|(1<<bit))
		if reg == RegIndirect {
			c.clock.Add(15)
		} else {
			c.clock.Add(8)
		}
	}
}

// initIndexedCBOps populates the DDCB/FDCB tables. Every opcode operates
// purely on the indexed memory byte: this design omits the undocumented
// register-echo side effect some hardware exhibits for reg != 0b110.
func (c *CPU) initIndexedCBOps() {
	for opcode := 0; opcode <= 0xFF; opcode++ {
		group := byte(opcode) >> 6
		mid := (byte(opcode) >> 3) & 0x07
		switch group {
		case 0:
			if mid == rotUnused {
				continue
			}
			c.ddcbOps[opcode] = makeIndexedCBRotate(mid)
			c.fdcbOps[opcode] = makeIndexedCBRotate(mid)
		case 1:
			c.ddcbOps[opcode] = makeIndexedCBBit(mid)
			c.fdcbOps[opcode] = makeIndexedCBBit(mid)
		case 2:
			c.ddcbOps[opcode] = makeIndexedCBRes(mid)
			c.fdcbOps[opcode] = makeIndexedCBRes(mid)
		case 3:
			c.ddcbOps[opcode] = makeIndexedCBSet(mid)
			c.fdcbOps[opcode] = makeIndexedCBSet(mid)
		}
	}
}

func makeIndexedCBRotate(sub byte) func(*CPU, uint16) {
	return func(c *CPU, addr uint16) {
		v := c.bus.Peek(addr)
		result, carryOut := rotateOrShift(sub, v, c.Regs.Main.Flag(FlagC))
		c.bus.Poke(addr, result)
		c.applyRotateFlags(result, carryOut)
		c.clock.Add(23)
	}
}

func makeIndexedCBBit(bit byte) func(*CPU, uint16) {
	return func(c *CPU, addr uint16) {
		v := c.bus.Peek(addr)
		c.applyBitTest(v, bit)
		c.clock.Add(20)
	}
}

func makeIndexedCBRes(bit byte) func(*CPU, uint16) {
	return func(c *CPU, addr uint16) {
		v := c.bus.Peek(addr)
		c.bus.Poke(addr, v&^(1<<bit))
		c.clock.Add(23)
	}
}

func makeIndexedCBSet(bit byte) func(*CPU, uint16) {
	return func(c *CPU, addr uint16) {
		v := c.bus.Peek(addr)
		c.bus.Poke(addr, v|(1<<bit))
		c.clock.Add(23)
	}
}
