// ops_ed.go - the ED-prefixed extended instruction group: interrupt/refresh
// loads, NEG, interrupt mode, 16-bit ADC/SBC and memory loads, RRD/RLD, and
// the block transfer/compare family. I/O (IN/OUT/block-I/O) is out of scope
// and those table slots are left nil.

package z80

func (c *CPU) initEDOps() {
	c.edTable[0x47] = func(c *CPU) { c.Regs.I = c.Regs.Main.A; c.clock.Add(9) }
	c.edTable[0x4F] = func(c *CPU) { c.Regs.R = c.Regs.Main.A; c.clock.Add(9) }
	c.edTable[0x57] = func(c *CPU) {
		c.Regs.Main.A = c.Regs.I
		c.setIRFlags(c.Regs.I)
		c.clock.Add(9)
	}
	c.edTable[0x5F] = func(c *CPU) {
		c.Regs.Main.A = c.Regs.R
		c.setIRFlags(c.Regs.R)
		c.clock.Add(9)
	}

	c.edTable[0x44] = opNEG
	c.edTable[0x4C] = opNEG
	c.edTable[0x54] = opNEG
	c.edTable[0x5C] = opNEG
	c.edTable[0x64] = opNEG
	c.edTable[0x6C] = opNEG
	c.edTable[0x74] = opNEG
	c.edTable[0x7C] = opNEG

	im0 := []byte{0x46, 0x4E, 0x66, 0x6E}
	for _, opcode := range im0 {
		c.edTable[opcode] = func(c *CPU) { c.Regs.IM = 0; c.clock.Add(8) }
	}
	im1 := []byte{0x56, 0x76}
	for _, opcode := range im1 {
		c.edTable[opcode] = func(c *CPU) { c.Regs.IM = 1; c.clock.Add(8) }
	}
	im2 := []byte{0x5E, 0x7E}
	for _, opcode := range im2 {
		c.edTable[opcode] = func(c *CPU) { c.Regs.IM = 2; c.clock.Add(8) }
	}

	retn := []byte{0x45, 0x55, 0x65, 0x75}
	for _, opcode := range retn {
		c.edTable[opcode] = opRETN
	}
	reti := []byte{0x4D, 0x5D, 0x6D, 0x7D}
	for _, opcode := range reti {
		c.edTable[opcode] = opRETN // RETI differs from RETN only in signalling to an interrupt controller, out of scope here
	}

	c.edTable[0x4A] = func(c *CPU) { c.adcHL(c.Regs.Main.BC()) }
	c.edTable[0x5A] = func(c *CPU) { c.adcHL(c.Regs.Main.DE()) }
	c.edTable[0x6A] = func(c *CPU) { c.adcHL(c.Regs.Main.HL()) }
	c.edTable[0x7A] = func(c *CPU) { c.adcHL(c.Regs.SP) }
	c.edTable[0x42] = func(c *CPU) { c.sbcHL(c.Regs.Main.BC()) }
	c.edTable[0x52] = func(c *CPU) { c.sbcHL(c.Regs.Main.DE()) }
	c.edTable[0x62] = func(c *CPU) { c.sbcHL(c.Regs.Main.HL()) }
	c.edTable[0x72] = func(c *CPU) { c.sbcHL(c.Regs.SP) }

	c.edTable[0x4B] = func(c *CPU) { c.Regs.Main.SetBC(c.bus.PeekWord(c.fetchWord())); c.clock.Add(20) }
	c.edTable[0x5B] = func(c *CPU) { c.Regs.Main.SetDE(c.bus.PeekWord(c.fetchWord())); c.clock.Add(20) }
	c.edTable[0x6B] = func(c *CPU) { c.Regs.Main.SetHL(c.bus.PeekWord(c.fetchWord())); c.clock.Add(20) }
	c.edTable[0x7B] = func(c *CPU) { c.Regs.SP = c.bus.PeekWord(c.fetchWord()); c.clock.Add(20) }

	c.edTable[0x43] = func(c *CPU) { c.writeWordTo(c.fetchWord(), c.Regs.Main.BC()); c.clock.Add(20) }
	c.edTable[0x53] = func(c *CPU) { c.writeWordTo(c.fetchWord(), c.Regs.Main.DE()); c.clock.Add(20) }
	c.edTable[0x63] = func(c *CPU) { c.writeWordTo(c.fetchWord(), c.Regs.Main.HL()); c.clock.Add(20) }
	c.edTable[0x73] = func(c *CPU) { c.writeWordTo(c.fetchWord(), c.Regs.SP); c.clock.Add(20) }

	c.edTable[0x67] = opRRD
	c.edTable[0x6F] = opRLD

	c.edTable[0xA0] = func(c *CPU) { c.ldi(); c.clock.Add(16) }
	c.edTable[0xA8] = func(c *CPU) { c.ldd(); c.clock.Add(16) }
	c.edTable[0xB0] = opLDIR
	c.edTable[0xB8] = opLDDR
	c.edTable[0xA1] = func(c *CPU) { c.cpi(); c.clock.Add(16) }
	c.edTable[0xA9] = func(c *CPU) { c.cpd(); c.clock.Add(16) }
	c.edTable[0xB1] = opCPIR
	c.edTable[0xB9] = opCPDR
}

// setIRFlags applies the LD A,I / LD A,R flag contract: S/Z from the value,
// H=0, P/V=IFF2, N=0, C preserved.
func (c *CPU) setIRFlags(v byte) {
	c.Regs.Main.SetFlag(FlagS, v&0x80 != 0)
	c.Regs.Main.SetFlag(FlagZ, v == 0)
	c.Regs.Main.SetFlag(FlagH, false)
	c.Regs.Main.SetFlag(FlagPV, c.Regs.IFF2)
	c.Regs.Main.SetFlag(FlagN, false)
}

func opNEG(c *CPU) {
	a := c.Regs.Main.A
	result := byte(0) - a
	c.Regs.Main.setFlagsSub8(0, a, 0, result)
	c.Regs.Main.A = result
	c.clock.Add(8)
}

func opRETN(c *CPU) {
	c.Regs.PC = c.pop()
	c.Regs.IFF1 = c.Regs.IFF2
	c.clock.Add(14)
}

func (c *CPU) adcHL(operand uint16) {
	hl := c.Regs.Main.HL()
	carry := uint16(0)
	if c.Regs.Main.Flag(FlagC) {
		carry = 1
	}
	result := hl + operand + carry
	c.Regs.Main.setFlagsAdc16(hl, operand, carry, result)
	c.Regs.Main.SetHL(result)
	c.clock.Add(15)
}

func (c *CPU) sbcHL(operand uint16) {
	hl := c.Regs.Main.HL()
	carry := uint16(0)
	if c.Regs.Main.Flag(FlagC) {
		carry = 1
	}
	result := hl - operand - carry
	c.Regs.Main.setFlagsSbc16(hl, operand, carry, result)
	c.Regs.Main.SetHL(result)
	c.clock.Add(15)
}

func (c *CPU) writeWordTo(addr, v uint16) {
	c.bus.Poke(addr, byte(v))
	c.bus.Poke(addr+1, byte(v>>8))
}

func opRRD(c *CPU) {
	hl := c.Regs.Main.HL()
	mem := c.bus.Peek(hl)
	a := c.Regs.Main.A
	newA := a&0xF0 | mem&0x0F
	newMem := a<<4 | mem>>4
	c.Regs.Main.A = newA
	c.bus.Poke(hl, newMem)
	c.Regs.Main.SetFlag(FlagS, newA&0x80 != 0)
	c.Regs.Main.SetFlag(FlagZ, newA == 0)
	c.Regs.Main.SetFlag(FlagH, false)
	c.Regs.Main.SetFlag(FlagPV, parity8(newA))
	c.Regs.Main.SetFlag(FlagN, false)
	c.clock.Add(18)
}

func opRLD(c *CPU) {
	hl := c.Regs.Main.HL()
	mem := c.bus.Peek(hl)
	a := c.Regs.Main.A
	newA := a&0xF0 | mem>>4
	newMem := mem<<4 | a&0x0F
	c.Regs.Main.A = newA
	c.bus.Poke(hl, newMem)
	c.Regs.Main.SetFlag(FlagS, newA&0x80 != 0)
	c.Regs.Main.SetFlag(FlagZ, newA == 0)
	c.Regs.Main.SetFlag(FlagH, false)
	c.Regs.Main.SetFlag(FlagPV, parity8(newA))
	c.Regs.Main.SetFlag(FlagN, false)
	c.clock.Add(18)
}

func (c *CPU) ldi() {
	hl, de := c.Regs.Main.HL(), c.Regs.Main.DE()
	v := c.bus.Peek(hl)
	c.bus.Poke(de, v)
	c.Regs.Main.SetHL(hl + 1)
	c.Regs.Main.SetDE(de + 1)
	bc := c.Regs.Main.BC() - 1
	c.Regs.Main.SetBC(bc)
	c.Regs.Main.SetFlag(FlagH, false)
	c.Regs.Main.SetFlag(FlagN, false)
	c.Regs.Main.SetFlag(FlagPV, bc != 0)
}

func (c *CPU) ldd() {
	hl, de := c.Regs.Main.HL(), c.Regs.Main.DE()
	v := c.bus.Peek(hl)
	c.bus.Poke(de, v)
	c.Regs.Main.SetHL(hl - 1)
	c.Regs.Main.SetDE(de - 1)
	bc := c.Regs.Main.BC() - 1
	c.Regs.Main.SetBC(bc)
	c.Regs.Main.SetFlag(FlagH, false)
	c.Regs.Main.SetFlag(FlagN, false)
	c.Regs.Main.SetFlag(FlagPV, bc != 0)
}

func opLDIR(c *CPU) {
	c.ldi()
	if c.Regs.Main.BC() != 0 {
		c.Regs.PC -= 2
		c.clock.Add(21)
	} else {
		c.clock.Add(16)
	}
}

func opLDDR(c *CPU) {
	c.ldd()
	if c.Regs.Main.BC() != 0 {
		c.Regs.PC -= 2
		c.clock.Add(21)
	} else {
		c.clock.Add(16)
	}
}

func (c *CPU) cpi() {
	hl := c.Regs.Main.HL()
	a := c.Regs.Main.A
	v := c.bus.Peek(hl)
	result := a - v
	c.Regs.Main.SetHL(hl + 1)
	bc := c.Regs.Main.BC() - 1
	c.Regs.Main.SetBC(bc)
	c.Regs.Main.SetFlag(FlagS, result&0x80 != 0)
	c.Regs.Main.SetFlag(FlagZ, result == 0)
	c.Regs.Main.SetFlag(FlagH, int(a&0x0F)-int(v&0x0F) < 0)
	c.Regs.Main.SetFlag(FlagPV, bc != 0)
	c.Regs.Main.SetFlag(FlagN, true)
}

func (c *CPU) cpd() {
	hl := c.Regs.Main.HL()
	a := c.Regs.Main.A
	v := c.bus.Peek(hl)
	result := a - v
	c.Regs.Main.SetHL(hl - 1)
	bc := c.Regs.Main.BC() - 1
	c.Regs.Main.SetBC(bc)
	c.Regs.Main.SetFlag(FlagS, result&0x80 != 0)
	c.Regs.Main.SetFlag(FlagZ, result == 0)
	c.Regs.Main.SetFlag(FlagH, int(a&0x0F)-int(v&0x0F) < 0)
	c.Regs.Main.SetFlag(FlagPV, bc != 0)
	c.Regs.Main.SetFlag(FlagN, true)
}

func opCPIR(c *CPU) {
	c.cpi()
	if c.Regs.Main.BC() != 0 && !c.Regs.Main.Flag(FlagZ) {
		c.Regs.PC -= 2
		c.clock.Add(21)
	} else {
		c.clock.Add(16)
	}
}

func opCPDR(c *CPU) {
	c.cpd()
	if c.Regs.Main.BC() != 0 && !c.Regs.Main.Flag(FlagZ) {
		c.Regs.PC -= 2
		c.clock.Add(21)
	} else {
		c.clock.Add(16)
	}
}
