// context.go - decoder's transient state: prefix, addressing mode, halt status.

package z80

// Prefix identifies which decode table the final opcode byte is dispatched
// through.
type Prefix int

const (
	PrefixNone Prefix = iota
	PrefixDD
	PrefixFD
	PrefixED
	PrefixCB
	PrefixDDCB
	PrefixFDCB
)

// AddressMode selects which effective address the reserved register index
// 0b110 (the "(HL) slot") resolves to.
type AddressMode int

const (
	AddressHL AddressMode = iota
	AddressIXd
	AddressIYd
)

// Status is the CPU's run/halt state.
type Status int

const (
	StatusRunning Status = iota
	StatusHalted
)

func (s Status) String() string {
	if s == StatusHalted {
		return "Halted"
	}
	return "Running"
}

// ExecutionContext is the decoder's transient state between fetches within
// one instruction. It is not part of the architectural register file: it is
// cleared centrally after every top-level instruction, not by individual
// handlers.
type ExecutionContext struct {
	Prefix      Prefix
	AddressMode AddressMode
	Status      Status

	// Displacement is zeroed by Reset and clearAfterInstruction. The
	// decoder passes the fetched IX+d/IY+d offset straight to the address
	// computation and does not store it here, so this field stays 0.
	Displacement int8
}

// Reset restores the context to its power-on/reset defaults: no prefix,
// (HL) addressing, running. Status intentionally is also reset here: CPU
// reset clears Halted regardless of how the machine got there.
func (ctx *ExecutionContext) Reset() {
	ctx.Prefix = PrefixNone
	ctx.AddressMode = AddressHL
	ctx.Status = StatusRunning
	ctx.Displacement = 0
}

// clearAfterInstruction restores prefix and address mode to their defaults
// once a top-level instruction has fully dispatched. Status is left alone:
// it persists across steps until HALT or reset changes it.
func (ctx *ExecutionContext) clearAfterInstruction() {
	ctx.Prefix = PrefixNone
	ctx.AddressMode = AddressHL
	ctx.Displacement = 0
}
