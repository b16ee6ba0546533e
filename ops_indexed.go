// ops_indexed.go - the handful of opcodes DD/FD reinterpret as whole-register
// IX/IY operations rather than as (HL)-slot substitutions. Everything else
// under DD/FD (the 8-bit load/ALU/INC/DEC block) falls through to the base
// table, which already consults the execution context's address mode.

package z80

func (c *CPU) initDDFDOps() {
	c.initDDOps()
	c.initFDOps()
}

func (c *CPU) initDDOps() {
	c.ddTable[0x21] = func(c *CPU) { c.Regs.IX = c.fetchWord(); c.clock.Add(14) }
	c.ddTable[0x22] = func(c *CPU) { c.writeWordTo(c.fetchWord(), c.Regs.IX); c.clock.Add(20) }
	c.ddTable[0x2A] = func(c *CPU) { c.Regs.IX = c.bus.PeekWord(c.fetchWord()); c.clock.Add(20) }
	c.ddTable[0x23] = func(c *CPU) { c.Regs.IX++; c.clock.Add(10) }
	c.ddTable[0x2B] = func(c *CPU) { c.Regs.IX--; c.clock.Add(10) }

	c.ddTable[0x09] = func(c *CPU) { c.addIndex(&c.Regs.IX, c.Regs.Main.BC()); c.clock.Add(15) }
	c.ddTable[0x19] = func(c *CPU) { c.addIndex(&c.Regs.IX, c.Regs.Main.DE()); c.clock.Add(15) }
	c.ddTable[0x29] = func(c *CPU) { c.addIndex(&c.Regs.IX, c.Regs.IX); c.clock.Add(15) }
	c.ddTable[0x39] = func(c *CPU) { c.addIndex(&c.Regs.IX, c.Regs.SP); c.clock.Add(15) }

	c.ddTable[0xE5] = func(c *CPU) { c.push(c.Regs.IX); c.clock.Add(15) }
	c.ddTable[0xE1] = func(c *CPU) { c.Regs.IX = c.pop(); c.clock.Add(14) }
	c.ddTable[0xE9] = func(c *CPU) { c.Regs.PC = c.Regs.IX; c.clock.Add(8) }
	c.ddTable[0xF9] = func(c *CPU) { c.Regs.SP = c.Regs.IX; c.clock.Add(10) }
	c.ddTable[0xE3] = func(c *CPU) {
		lo := c.bus.Peek(c.Regs.SP)
		hi := c.bus.Peek(c.Regs.SP + 1)
		c.bus.Poke(c.Regs.SP, byte(c.Regs.IX))
		c.bus.Poke(c.Regs.SP+1, byte(c.Regs.IX>>8))
		c.Regs.IX = uint16(hi)<<8 | uint16(lo)
		c.clock.Add(23)
	}
}

func (c *CPU) initFDOps() {
	c.fdTable[0x21] = func(c *CPU) { c.Regs.IY = c.fetchWord(); c.clock.Add(14) }
	c.fdTable[0x22] = func(c *CPU) { c.writeWordTo(c.fetchWord(), c.Regs.IY); c.clock.Add(20) }
	c.fdTable[0x2A] = func(c *CPU) { c.Regs.IY = c.bus.PeekWord(c.fetchWord()); c.clock.Add(20) }
	c.fdTable[0x23] = func(c *CPU) { c.Regs.IY++; c.clock.Add(10) }
	c.fdTable[0x2B] = func(c *CPU) { c.Regs.IY--; c.clock.Add(10) }

	c.fdTable[0x09] = func(c *CPU) { c.addIndex(&c.Regs.IY, c.Regs.Main.BC()); c.clock.Add(15) }
	c.fdTable[0x19] = func(c *CPU) { c.addIndex(&c.Regs.IY, c.Regs.Main.DE()); c.clock.Add(15) }
	c.fdTable[0x29] = func(c *CPU) { c.addIndex(&c.Regs.IY, c.Regs.IY); c.clock.Add(15) }
	c.fdTable[0x39] = func(c *CPU) { c.addIndex(&c.Regs.IY, c.Regs.SP); c.clock.Add(15) }

	c.fdTable[0xE5] = func(c *CPU) { c.push(c.Regs.IY); c.clock.Add(15) }
	c.fdTable[0xE1] = func(c *CPU) { c.Regs.IY = c.pop(); c.clock.Add(14) }
	c.fdTable[0xE9] = func(c *CPU) { c.Regs.PC = c.Regs.IY; c.clock.Add(8) }
	c.fdTable[0xF9] = func(c *CPU) { c.Regs.SP = c.Regs.IY; c.clock.Add(10) }
	c.fdTable[0xE3] = func(c *CPU) {
		lo := c.bus.Peek(c.Regs.SP)
		hi := c.bus.Peek(c.Regs.SP + 1)
		c.bus.Poke(c.Regs.SP, byte(c.Regs.IY))
		c.bus.Poke(c.Regs.SP+1, byte(c.Regs.IY>>8))
		c.Regs.IY = uint16(hi)<<8 | uint16(lo)
		c.clock.Add(23)
	}
}

// addIndex implements ADD IX,rr / ADD IY,rr: same flag contract as ADD
// HL,rr, applied to the indexed register in place.
func (c *CPU) addIndex(reg *uint16, operand uint16) {
	before := *reg
	result := before + operand
	c.Regs.Main.setFlagsAdd16(before, operand, result)
	*reg = result
}
