// clock.go - monotonic tic counter shared by the CPU and every bus device.

package z80

// Clock accumulates tics (T-states). It has no semantic bound other than
// monotonicity between resets; a 32-bit wrap is acceptable since nothing in
// this package depends on tics never wrapping.
type Clock struct {
	tics uint32
}

// NewClock returns a Clock reset to zero.
func NewClock() *Clock {
	return &Clock{}
}

// Add debits n tics.
func (c *Clock) Add(n uint32) {
	c.tics += n
}

// Read returns the accumulated tic count.
func (c *Clock) Read() uint32 {
	return c.tics
}

// Reset zeroes the tic count.
func (c *Clock) Reset() {
	c.tics = 0
}
