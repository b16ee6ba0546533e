// main.go - z80watch: runs a CPU against a loaded binary while an ebiten
// window observes its RAM window live. The observer only peeks the bus and
// reads the clock; it never drives execution itself.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	z80 "github.com/retrosilicon/z80core"
	"github.com/retrosilicon/z80core/internal/observer"
)

func main() {
	var origin uint16
	var ramSize uint16
	var watchBase uint16

	rootCmd := &cobra.Command{
		Use:   "z80watch [binary]",
		Short: "Run a Z80 core and watch its RAM window in an ebiten window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(args[0], origin, ramSize, watchBase)
		},
	}

	rootCmd.Flags().Uint16Var(&origin, "origin", 0x0000, "load address of the binary")
	rootCmd.Flags().Uint16Var(&ramSize, "ram", 0xFFFF, "RAM window size starting at address 0")
	rootCmd.Flags().Uint16Var(&watchBase, "watch", 0x0000, "base address the observer rasterizes")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func watch(path string, origin, ramSize, watchBase uint16) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("z80watch: %w", err)
	}

	clock := z80.NewClock()
	bus := z80.NewBus()
	if err := bus.AddDevice(z80.NewRAM(0, ramSize, clock)); err != nil {
		return fmt.Errorf("z80watch: %w", err)
	}
	bus.WriteVec(origin, program)

	cpu := z80.New(bus, clock)
	cpu.Reset()
	cpu.Regs.PC = origin

	go func() {
		for {
			if cpu.Ctx.Status == z80.StatusHalted {
				return
			}
			if err := cpu.Step(); err != nil {
				return
			}
			time.Sleep(time.Microsecond)
		}
	}()

	screen := observer.NewMemoryScreen(bus, clock, watchBase)
	ebiten.SetWindowTitle("z80watch")
	return ebiten.RunGame(screen)
}
