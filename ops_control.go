// ops_control.go - jumps, calls, returns, exchanges, and interrupt toggles.

package z80

// condition evaluates the 3-bit condition-code encoding shared by JP/JR/
// CALL/RET: 0=NZ 1=Z 2=NC 3=C 4=PO 5=PE 6=P 7=M.
func (c *CPU) condition(cc byte) bool {
	switch cc {
	case 0:
		return !c.Regs.Main.Flag(FlagZ)
	case 1:
		return c.Regs.Main.Flag(FlagZ)
	case 2:
		return !c.Regs.Main.Flag(FlagC)
	case 3:
		return c.Regs.Main.Flag(FlagC)
	case 4:
		return !c.Regs.Main.Flag(FlagPV)
	case 5:
		return c.Regs.Main.Flag(FlagPV)
	case 6:
		return !c.Regs.Main.Flag(FlagS)
	case 7:
		return c.Regs.Main.Flag(FlagS)
	default:
		return false
	}
}

func (c *CPU) initControlOps() {
	c.opTable[0xC3] = func(c *CPU) { c.Regs.PC = c.fetchWord(); c.clock.Add(10) }
	jpCC := []byte{0xC2, 0xCA, 0xD2, 0xDA, 0xE2, 0xEA, 0xF2, 0xFA}
	for cc, opcode := range jpCC {
		cc := byte(cc)
		c.opTable[opcode] = func(c *CPU) {
			addr := c.fetchWord()
			if c.condition(cc) {
				c.Regs.PC = addr
			}
			c.clock.Add(10)
		}
	}
	c.opTable[0xE9] = func(c *CPU) { c.Regs.PC = c.Regs.Main.HL(); c.clock.Add(4) }

	c.opTable[0x18] = func(c *CPU) {
		d := c.fetchSignedByte()
		c.Regs.PC = uint16(int32(c.Regs.PC) + int32(d))
		c.clock.Add(12)
	}
	jrCC := map[byte]byte{0x20: 0, 0x28: 1, 0x30: 2, 0x38: 3}
	for opcode, cc := range jrCC {
		cc := cc
		c.opTable[opcode] = func(c *CPU) {
			d := c.fetchSignedByte()
			if c.condition(cc) {
				c.Regs.PC = uint16(int32(c.Regs.PC) + int32(d))
				c.clock.Add(12)
			} else {
				c.clock.Add(7)
			}
		}
	}
	c.opTable[0x10] = func(c *CPU) {
		d := c.fetchSignedByte()
		c.Regs.Main.B--
		if c.Regs.Main.B != 0 {
			c.Regs.PC = uint16(int32(c.Regs.PC) + int32(d))
			c.clock.Add(13)
		} else {
			c.clock.Add(8)
		}
	}

	c.opTable[0xCD] = func(c *CPU) {
		addr := c.fetchWord()
		c.push(c.Regs.PC)
		c.Regs.PC = addr
		c.clock.Add(17)
	}
	callCC := []byte{0xC4, 0xCC, 0xD4, 0xDC, 0xE4, 0xEC, 0xF4, 0xFC}
	for cc, opcode := range callCC {
		cc := byte(cc)
		c.opTable[opcode] = func(c *CPU) {
			addr := c.fetchWord()
			if c.condition(cc) {
				c.push(c.Regs.PC)
				c.Regs.PC = addr
				c.clock.Add(17)
			} else {
				c.clock.Add(10)
			}
		}
	}

	c.opTable[0xC9] = func(c *CPU) { c.Regs.PC = c.pop(); c.clock.Add(10) }
	retCC := []byte{0xC0, 0xC8, 0xD0, 0xD8, 0xE0, 0xE8, 0xF0, 0xF8}
	for cc, opcode := range retCC {
		cc := byte(cc)
		c.opTable[opcode] = func(c *CPU) {
			if c.condition(cc) {
				c.Regs.PC = c.pop()
				c.clock.Add(11)
			} else {
				c.clock.Add(5)
			}
		}
	}

	rstTargets := []byte{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, opcode := range rstTargets {
		target := uint16(i) * 8
		c.opTable[opcode] = func(c *CPU) {
			c.push(c.Regs.PC)
			c.Regs.PC = target
			c.clock.Add(11)
		}
	}

	c.opTable[0x08] = func(c *CPU) { c.Regs.ExAF(); c.clock.Add(4) }
	c.opTable[0xD9] = func(c *CPU) { c.Regs.Exx(); c.clock.Add(4) }
	c.opTable[0xEB] = func(c *CPU) {
		c.Regs.Main.D, c.Regs.Main.H = c.Regs.Main.H, c.Regs.Main.D
		c.Regs.Main.E, c.Regs.Main.L = c.Regs.Main.L, c.Regs.Main.E
		c.clock.Add(4)
	}
	c.opTable[0xE3] = func(c *CPU) {
		lo := c.bus.Peek(c.Regs.SP)
		hi := c.bus.Peek(c.Regs.SP + 1)
		hl := c.Regs.Main.HL()
		c.bus.Poke(c.Regs.SP, byte(hl))
		c.bus.Poke(c.Regs.SP+1, byte(hl>>8))
		c.Regs.Main.SetHL(uint16(hi)<<8 | uint16(lo))
		c.clock.Add(19)
	}

	c.opTable[0xF3] = func(c *CPU) { c.Regs.IFF1, c.Regs.IFF2 = false, false; c.clock.Add(4) }
	c.opTable[0xFB] = func(c *CPU) { c.Regs.IFF1, c.Regs.IFF2 = true, true; c.clock.Add(4) }
}
