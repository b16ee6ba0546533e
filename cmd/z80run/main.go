// main.go - z80run: a minimal host driver. Loads a raw binary into RAM at a
// given origin, then resets and steps the CPU either a fixed number of times
// or until HALT/UnknownOpcode, printing final register and clock state.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	z80 "github.com/retrosilicon/z80core"
)

func main() {
	var origin uint16
	var ramSize uint16
	var steps int

	rootCmd := &cobra.Command{
		Use:   "z80run [binary]",
		Short: "Step a Z80 core through a raw binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], origin, ramSize, steps)
		},
	}

	rootCmd.Flags().Uint16Var(&origin, "origin", 0x0000, "load address of the binary")
	rootCmd.Flags().Uint16Var(&ramSize, "ram", 0xFFFF, "RAM window size starting at address 0")
	rootCmd.Flags().IntVar(&steps, "steps", 0, "maximum instructions to execute (0 = run until HALT or error)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(path string, origin, ramSize uint16, maxSteps int) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("z80run: %w", err)
	}

	clock := z80.NewClock()
	bus := z80.NewBus()
	if err := bus.AddDevice(z80.NewRAM(0, ramSize, clock)); err != nil {
		return fmt.Errorf("z80run: %w", err)
	}
	bus.WriteVec(origin, program)

	cpu := z80.New(bus, clock)
	cpu.Reset()
	cpu.Regs.PC = origin

	for i := 0; maxSteps == 0 || i < maxSteps; i++ {
		if err := cpu.Step(); err != nil {
			printState(cpu)
			return fmt.Errorf("z80run: %w", err)
		}
		if cpu.Ctx.Status == z80.StatusHalted {
			break
		}
	}

	printState(cpu)
	return nil
}

func printState(cpu *z80.CPU) {
	r := &cpu.Regs
	fmt.Printf("PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IX=%04X IY=%04X\n",
		r.PC, r.SP, r.Main.AF(), r.Main.BC(), r.Main.DE(), r.Main.HL(), r.IX, r.IY)
	fmt.Printf("status=%v clock=%d\n", cpu.Ctx.Status, cpu.ClockTics())
}
