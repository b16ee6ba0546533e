// ops_load.go - NOP/HALT and the 8-bit/16-bit load families (§4.5.4).

package z80

// initLoadOps populates the 0x40-0x7F register/(HL)/indexed load block, the
// 8-bit immediate loads, and the accumulator<->memory forms.
func (c *CPU) initLoadOps() {
	c.opTable[0x00] = opNOP
	c.opTable[0x76] = opHALT

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		dst := byte(opcode>>3) & 0x07
		src := byte(opcode) & 0x07
		c.opTable[byte(opcode)] = makeLDRR(dst, src)
	}

	immTargets := []byte{RegB, RegC, RegD, RegE, RegH, RegL, RegIndirect, RegA}
	immOpcodes := []byte{0x06, 0x0E, 0x16, 0x1E, 0x26, 0x2E, 0x36, 0x3E}
	for i, opcode := range immOpcodes {
		c.opTable[opcode] = makeLDRN(immTargets[i])
	}

	c.opTable[0x02] = opLDBCIndA
	c.opTable[0x12] = opLDDEIndA
	c.opTable[0x0A] = opLDABCInd
	c.opTable[0x1A] = opLDADEInd
	c.opTable[0x32] = opLDNNIndA
	c.opTable[0x3A] = opLDANNInd

	c.init16BitLoadOps()
}

func opNOP(c *CPU) {
	c.clock.Add(4)
}

func opHALT(c *CPU) {
	c.clock.Add(4)
	c.Ctx.Status = StatusHalted
}

// makeLDRR returns the handler for one LD r,r' / LD r,(HL)/(IX+d)/(IY+d) /
// LD (HL)/(IX+d)/(IY+d),r encoding. The (HL)-slot resolution and the
// indexed/non-indexed cost split are both driven by the current address
// mode, so one closure covers the whole 0x40-0x7F block.
func makeLDRR(dst, src byte) func(*CPU) {
	return func(c *CPU) {
		v := c.readOperand8(src)
		c.writeOperand8(dst, v)
		if (dst == RegIndirect || src == RegIndirect) && c.indexed() {
			c.clock.Add(19)
		} else if dst == RegIndirect || src == RegIndirect {
			c.clock.Add(7)
		} else {
			c.clock.Add(4)
		}
	}
}

// makeLDRN returns the handler for LD r,n / LD (HL)/(IX+d)/(IY+d),n.
func makeLDRN(dst byte) func(*CPU) {
	return func(c *CPU) {
		if dst == RegIndirect {
			// The displacement byte (if any) precedes n in the encoding.
			addr := c.effectiveAddress()
			c.bus.Poke(addr, c.fetchByte())
		} else {
			c.writeOperand8(dst, c.fetchByte())
		}
		if dst == RegIndirect && c.indexed() {
			c.clock.Add(19)
		} else if dst == RegIndirect {
			c.clock.Add(10)
		} else {
			c.clock.Add(7)
		}
	}
}

func opLDBCIndA(c *CPU) {
	c.bus.Poke(c.Regs.Main.BC(), c.Regs.Main.A)
	c.clock.Add(7)
}

func opLDDEIndA(c *CPU) {
	c.bus.Poke(c.Regs.Main.DE(), c.Regs.Main.A)
	c.clock.Add(7)
}

func opLDABCInd(c *CPU) {
	c.Regs.Main.A = c.bus.Peek(c.Regs.Main.BC())
	c.clock.Add(7)
}

func opLDADEInd(c *CPU) {
	c.Regs.Main.A = c.bus.Peek(c.Regs.Main.DE())
	c.clock.Add(7)
}

func opLDNNIndA(c *CPU) {
	addr := c.fetchWord()
	c.bus.Poke(addr, c.Regs.Main.A)
	c.clock.Add(13)
}

func opLDANNInd(c *CPU) {
	addr := c.fetchWord()
	c.Regs.Main.A = c.bus.Peek(addr)
	c.clock.Add(13)
}

// init16BitLoadOps populates LD rr,nn / LD (nn),HL / LD HL,(nn) / LD SP,HL /
// PUSH/POP, grounded on the teacher's 16-bit load handlers.
func (c *CPU) init16BitLoadOps() {
	c.opTable[0x01] = func(c *CPU) { c.Regs.Main.SetBC(c.fetchWord()); c.clock.Add(10) }
	c.opTable[0x11] = func(c *CPU) { c.Regs.Main.SetDE(c.fetchWord()); c.clock.Add(10) }
	c.opTable[0x21] = func(c *CPU) { c.Regs.Main.SetHL(c.fetchWord()); c.clock.Add(10) }
	c.opTable[0x31] = func(c *CPU) { c.Regs.SP = c.fetchWord(); c.clock.Add(10) }

	c.opTable[0x22] = func(c *CPU) {
		addr := c.fetchWord()
		hl := c.Regs.Main.HL()
		c.bus.Poke(addr, byte(hl))
		c.bus.Poke(addr+1, byte(hl>>8))
		c.clock.Add(16)
	}
	c.opTable[0x2A] = func(c *CPU) {
		addr := c.fetchWord()
		lo := c.bus.Peek(addr)
		hi := c.bus.Peek(addr + 1)
		c.Regs.Main.SetHL(uint16(hi)<<8 | uint16(lo))
		c.clock.Add(16)
	}
	c.opTable[0xF9] = func(c *CPU) { c.Regs.SP = c.Regs.Main.HL(); c.clock.Add(6) }

	c.opTable[0xC5] = func(c *CPU) { c.push(c.Regs.Main.BC()); c.clock.Add(11) }
	c.opTable[0xD5] = func(c *CPU) { c.push(c.Regs.Main.DE()); c.clock.Add(11) }
	c.opTable[0xE5] = func(c *CPU) { c.push(c.Regs.Main.HL()); c.clock.Add(11) }
	c.opTable[0xF5] = func(c *CPU) { c.push(c.Regs.Main.AF()); c.clock.Add(11) }

	c.opTable[0xC1] = func(c *CPU) { c.Regs.Main.SetBC(c.pop()); c.clock.Add(10) }
	c.opTable[0xD1] = func(c *CPU) { c.Regs.Main.SetDE(c.pop()); c.clock.Add(10) }
	c.opTable[0xE1] = func(c *CPU) { c.Regs.Main.SetHL(c.pop()); c.clock.Add(10) }
	c.opTable[0xF1] = func(c *CPU) { c.Regs.Main.SetAF(c.pop()); c.clock.Add(10) }
}

func (c *CPU) push(v uint16) {
	c.Regs.SP--
	c.bus.Poke(c.Regs.SP, byte(v>>8))
	c.Regs.SP--
	c.bus.Poke(c.Regs.SP, byte(v))
}

func (c *CPU) pop() uint16 {
	lo := c.bus.Peek(c.Regs.SP)
	c.Regs.SP++
	hi := c.bus.Peek(c.Regs.SP)
	c.Regs.SP++
	return uint16(hi)<<8 | uint16(lo)
}
