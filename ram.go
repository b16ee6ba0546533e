// ram.go - RAM device: a byte array covering a fixed window on the bus.

package z80

// RAM is the reference Device implementation: size bytes starting at base,
// zero-initialized. Observable accesses (Read/Write) debit the clock; the
// peek/poke/write_vec family never does, since it models load-time traffic
// rather than bus traffic.
type RAM struct {
	base  uint16
	size  uint16
	data  []byte
	clock *Clock
}

// NewRAM returns a RAM device covering [base, base+size), backed by clock
// for its observable accesses.
func NewRAM(base, size uint16, clock *Clock) *RAM {
	return &RAM{
		base:  base,
		size:  size,
		data:  make([]byte, size),
		clock: clock,
	}
}

func (r *RAM) BaseAddress() uint16 { return r.base }
func (r *RAM) Size() uint16        { return r.size }

// Read debits 3 tics, then returns the byte at addr.
func (r *RAM) Read(addr uint16) byte {
	r.clock.Add(3)
	return r.Peek(addr)
}

// Write debits 3 tics, then stores value at addr.
func (r *RAM) Write(addr uint16, value byte) {
	r.clock.Add(3)
	r.data[addr-r.base] = value
}

// Peek reads without any clock cost.
func (r *RAM) Peek(addr uint16) byte {
	return r.data[addr-r.base]
}

// Poke writes without any clock cost.
func (r *RAM) Poke(addr uint16, value byte) {
	r.data[addr-r.base] = value
}

// WriteVec loads data starting at addr via a loop of Poke calls. It is the
// loader path used by tests and ROM loaders, and therefore never debits the
// clock.
func (r *RAM) WriteVec(addr uint16, data []byte) {
	for i, value := range data {
		r.Poke(addr+uint16(i), value)
	}
}
