// decode.go - fetch helpers and operand resolution shared by every handler.

package z80

// fetchByte reads the byte at PC and advances PC by one. It uses bus.Peek, so
// no device clock cost applies; handlers account for the whole architectural
// instruction cost via Clock.Add.
func (c *CPU) fetchByte() byte {
	v := c.bus.Peek(c.Regs.PC)
	c.Regs.PC++
	return v
}

func (c *CPU) fetchSignedByte() int8 {
	return int8(c.fetchByte())
}

// fetchWord reads a little-endian 16-bit immediate and advances PC by two.
func (c *CPU) fetchWord() uint16 {
	lo := c.fetchByte()
	hi := c.fetchByte()
	return uint16(hi)<<8 | uint16(lo)
}

// effectiveAddress resolves the (HL) slot according to the current address
// mode, fetching the indexed displacement when applicable. The +2 tics for
// the displacement fetch are not debited here: every caller already adds
// the full, spec-documented instruction total (e.g. 19 for an indexed 8-bit
// load), which bakes in the displacement cost, so debiting it twice would
// double-count.
func (c *CPU) effectiveAddress() uint16 {
	switch c.Ctx.AddressMode {
	case AddressIXd:
		d := c.fetchSignedByte()
		return indexedAddress(c.Regs.IX, d)
	case AddressIYd:
		d := c.fetchSignedByte()
		return indexedAddress(c.Regs.IY, d)
	default:
		return c.Regs.Main.HL()
	}
}

// indexed reports whether the current address mode is IX+d or IY+d, i.e.
// whether the (HL) slot resolves to indexed memory rather than plain HL.
func (c *CPU) indexed() bool {
	return c.Ctx.AddressMode != AddressHL
}

// readOperand8 reads the 8-bit value named by a register-index encoding,
// honoring the (HL)/indexed slot for index RegIndirect.
func (c *CPU) readOperand8(index byte) byte {
	if index == RegIndirect {
		return c.bus.Peek(c.effectiveAddress())
	}
	v, err := c.Regs.Main.GetReg(index)
	if err != nil {
		panic(err)
	}
	return v
}

// writeOperand8 writes the 8-bit value named by a register-index encoding,
// honoring the (HL)/indexed slot for index RegIndirect.
func (c *CPU) writeOperand8(index byte, v byte) {
	if index == RegIndirect {
		c.bus.Poke(c.effectiveAddress(), v)
		return
	}
	if err := c.Regs.Main.SetReg(index, v); err != nil {
		panic(err)
	}
}

// parity8 reports even parity (true) of a byte's popcount, used for the
// logical-operation P/V flag.
func parity8(v byte) bool {
	v ^= v >> 4
	v ^= v >> 2
	v ^= v >> 1
	return v&1 == 0
}
