// flags.go - flag computation helpers for the 8-bit add/sub/logic/compare/
// inc/dec and 16-bit add/adc/sbc families, kept separate from the handlers
// that call them. Rotate/shift, BIT, DAA, RRD/RLD, the block compares, and
// LD A,I/LD A,R set their flags in their own files instead.

package z80

// setFlagsAdd8 computes S, Z, H, P/V (signed overflow), N=0, C for an 8-bit
// addition a+b(+carryIn), result already computed by the caller.
func (r *RegisterSet) setFlagsAdd8(a, b, carryIn byte, result byte) {
	r.SetFlag(FlagS, result&0x80 != 0)
	r.SetFlag(FlagZ, result == 0)
	r.SetFlag(FlagH, (a&0x0F)+(b&0x0F)+carryIn > 0x0F)
	signedOverflow := (a^b)&0x80 == 0 && (a^result)&0x80 != 0
	r.SetFlag(FlagPV, signedOverflow)
	r.SetFlag(FlagN, false)
	carryOut := int(a)+int(b)+int(carryIn) > 0xFF
	r.SetFlag(FlagC, carryOut)
}

// setFlagsSub8 computes S, Z, H, P/V (signed overflow), N=1, C for an 8-bit
// subtraction a-b(-carryIn), result already computed by the caller.
func (r *RegisterSet) setFlagsSub8(a, b, carryIn byte, result byte) {
	r.SetFlag(FlagS, result&0x80 != 0)
	r.SetFlag(FlagZ, result == 0)
	r.SetFlag(FlagH, int(a&0x0F)-int(b&0x0F)-int(carryIn) < 0)
	signedOverflow := (a^b)&0x80 != 0 && (a^result)&0x80 != 0
	r.SetFlag(FlagPV, signedOverflow)
	r.SetFlag(FlagN, true)
	carryOut := int(a)-int(b)-int(carryIn) < 0
	r.SetFlag(FlagC, carryOut)
}

// setFlagsLogic8 computes S, Z, H, P/V (parity), N=0, C=0 for AND/OR/XOR.
// halfCarry is true for AND (H=1), false for OR/XOR (H=0), per the Z80's
// documented behavior.
func (r *RegisterSet) setFlagsLogic8(result byte, halfCarry bool) {
	r.SetFlag(FlagS, result&0x80 != 0)
	r.SetFlag(FlagZ, result == 0)
	r.SetFlag(FlagH, halfCarry)
	r.SetFlag(FlagPV, parity8(result))
	r.SetFlag(FlagN, false)
	r.SetFlag(FlagC, false)
}

// setFlagsCp8 mirrors setFlagsSub8 but is kept distinct so CP's call sites
// read as "compare", matching the source's naming.
func (r *RegisterSet) setFlagsCp8(a, b byte) {
	r.setFlagsSub8(a, b, 0, a-b)
}

// setFlagsInc8 computes S, Z, H, P/V (overflow from 0x7F), N=0. Carry is
// left untouched: INC/DEC never affect C.
func (r *RegisterSet) setFlagsInc8(before, after byte) {
	r.SetFlag(FlagS, after&0x80 != 0)
	r.SetFlag(FlagZ, after == 0)
	r.SetFlag(FlagH, before&0x0F == 0x0F)
	r.SetFlag(FlagPV, before == 0x7F)
	r.SetFlag(FlagN, false)
}

// setFlagsDec8 computes S, Z, H, P/V (overflow from 0x80), N=1. Carry is
// left untouched.
func (r *RegisterSet) setFlagsDec8(before, after byte) {
	r.SetFlag(FlagS, after&0x80 != 0)
	r.SetFlag(FlagZ, after == 0)
	r.SetFlag(FlagH, before&0x0F == 0x00)
	r.SetFlag(FlagPV, before == 0x80)
	r.SetFlag(FlagN, true)
}

// setFlagsAdd16 computes H and C for a 16-bit addition; S, Z, P/V are left
// untouched, matching ADD HL,rr's documented flag behavior. N=0.
func (r *RegisterSet) setFlagsAdd16(a, b uint16, result uint16) {
	r.SetFlag(FlagH, (a&0x0FFF)+(b&0x0FFF) > 0x0FFF)
	r.SetFlag(FlagN, false)
	r.SetFlag(FlagC, uint32(a)+uint32(b) > 0xFFFF)
}

// setFlagsAdc16 computes the full S, Z, H, P/V, N=0, C for ADC HL,rr, which
// (unlike ADD HL,rr) does affect S/Z/P-V.
func (r *RegisterSet) setFlagsAdc16(a, b uint16, carryIn uint16, result uint16) {
	r.SetFlag(FlagS, result&0x8000 != 0)
	r.SetFlag(FlagZ, result == 0)
	r.SetFlag(FlagH, (a&0x0FFF)+(b&0x0FFF)+carryIn > 0x0FFF)
	signedOverflow := (a^b)&0x8000 == 0 && (a^result)&0x8000 != 0
	r.SetFlag(FlagPV, signedOverflow)
	r.SetFlag(FlagN, false)
	r.SetFlag(FlagC, uint32(a)+uint32(b)+uint32(carryIn) > 0xFFFF)
}

// setFlagsSbc16 computes the full S, Z, H, P/V, N=1, C for SBC HL,rr.
func (r *RegisterSet) setFlagsSbc16(a, b uint16, carryIn uint16, result uint16) {
	r.SetFlag(FlagS, result&0x8000 != 0)
	r.SetFlag(FlagZ, result == 0)
	r.SetFlag(FlagH, int32(a&0x0FFF)-int32(b&0x0FFF)-int32(carryIn) < 0)
	signedOverflow := (a^b)&0x8000 != 0 && (a^result)&0x8000 != 0
	r.SetFlag(FlagPV, signedOverflow)
	r.SetFlag(FlagN, true)
	r.SetFlag(FlagC, int64(a)-int64(b)-int64(carryIn) < 0)
}
