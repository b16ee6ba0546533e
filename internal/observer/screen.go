// screen.go - an ebiten-driven memory observer: renders a window of bus
// memory as a greyscale raster plus a clock-rate bar, touching the core only
// through peek and read so that watching it never perturbs the CPU.

package observer

import (
	"github.com/hajimehoshi/ebiten/v2"

	z80 "github.com/retrosilicon/z80core"
)

const (
	cols       = 64
	rows       = 64
	pixelScale = 6
)

// MemoryScreen is a read-only ebiten.Game that raster-scans a fixed window of
// bus memory, one byte per pixel, and tracks an exponential moving average of
// tics per frame as a bottom-row bar graph. It never calls bus.Read, bus.Write,
// or clock.Add: only Peek and Read, per the observer contract. It takes no
// lock, so while the CPU steps on another goroutine each frame is a
// best-effort view, not a synchronized snapshot.
type MemoryScreen struct {
	bus   *z80.Bus
	clock *z80.Clock
	base  uint16

	frame    *ebiten.Image
	lastTics uint32
	rate     float64
}

// NewMemoryScreen returns an observer watching cols*rows bytes of bus memory
// starting at base.
func NewMemoryScreen(bus *z80.Bus, clock *z80.Clock, base uint16) *MemoryScreen {
	return &MemoryScreen{bus: bus, clock: clock, base: base}
}

// Update samples the clock to refresh the tic-rate bar. It calls only
// clock.Read, never clock.Add.
func (s *MemoryScreen) Update() error {
	tics := s.clock.Read()
	delta := tics - s.lastTics
	s.lastTics = tics
	s.rate = s.rate*0.9 + float64(delta)*0.1
	return nil
}

// Draw peeks the watched memory window and paints it, one byte per pixel,
// brightest for 0xFF, with a green bar along the bottom row sized to the
// current tic rate.
func (s *MemoryScreen) Draw(screen *ebiten.Image) {
	if s.frame == nil {
		s.frame = ebiten.NewImage(cols, rows)
	}

	pix := make([]byte, cols*rows*4)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			addr := s.base + uint16(row*cols+col)
			v := s.bus.Peek(addr)
			i := (row*cols + col) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, 0xFF
		}
	}

	barLen := int(s.rate)
	if barLen > cols {
		barLen = cols
	}
	for col := 0; col < barLen; col++ {
		i := ((rows - 1) * cols + col) * 4
		pix[i], pix[i+1], pix[i+2], pix[i+3] = 0x00, 0xFF, 0x00, 0xFF
	}

	s.frame.WritePixels(pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pixelScale, pixelScale)
	screen.DrawImage(s.frame, op)
}

// Layout reports a fixed window scaled up so single bytes are visible.
func (s *MemoryScreen) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cols * pixelScale, rows * pixelScale
}
