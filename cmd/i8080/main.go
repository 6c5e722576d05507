package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/the-fermi-paradox/intel-8080/pkg/bios"
	"github.com/the-fermi-paradox/intel-8080/pkg/cpu"
	"github.com/the-fermi-paradox/intel-8080/pkg/equiv"
	"github.com/the-fermi-paradox/intel-8080/pkg/harness"
	"github.com/the-fermi-paradox/intel-8080/pkg/inst"
	"github.com/the-fermi-paradox/intel-8080/pkg/loader"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "i8080",
		Short: "Intel 8080 emulator — run, disassemble, and conformance-test 8080 ROMs",
	}

	rootCmd.AddCommand(newRunCmd(), newDisasmCmd(), newConformCmd(), newFuzzCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRunCmd mirrors the reference CLI: positional ROM paths loaded
// left-to-right at --offset, execution starting at --offset, optionally
// with the CP/M BDOS console shim installed for cpudiag-style test ROMs.
func newRunCmd() *cobra.Command {
	var offsetStr string
	var useBDOS bool
	var maxSteps int
	var dumpRegs bool

	cmd := &cobra.Command{
		Use:   "run rom...",
		Short: "Load one or more ROM files and execute them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := parseOffset(offsetStr)
			if err != nil {
				return err
			}

			machine := cpu.New()
			if _, err := loader.LoadROMs(&machine.Mem, offset, args); err != nil {
				return err
			}
			machine.Reg.PC = offset

			var shim *bios.Shim
			if useBDOS {
				shim = bios.New(os.Stdout)
				bios.Install(machine)
			}

			steps := 0
			for {
				if maxSteps > 0 && steps >= maxSteps {
					return fmt.Errorf("exceeded --max-steps=%d without halting", maxSteps)
				}
				if shim != nil {
					shim.Intercept(machine)
				}
				switch machine.Step() {
				case cpu.Halted:
					if dumpRegs {
						dumpRegisters(machine)
					}
					return nil
				case cpu.Reset:
					if dumpRegs {
						dumpRegisters(machine)
					}
					return nil
				}
				steps++
			}
		},
	}
	cmd.Flags().StringVarP(&offsetStr, "offset", "o", "0", "base memory offset for loading and initial PC (decimal/octal/hex)")
	cmd.Flags().BoolVar(&useBDOS, "bdos", false, "install the CP/M BDOS console shim at 0x0005")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "abort after this many instructions (0 = unlimited)")
	cmd.Flags().BoolVar(&dumpRegs, "dump-registers", false, "print final register state on exit")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	var offsetStr string
	var length int

	cmd := &cobra.Command{
		Use:   "disasm rom",
		Short: "Disassemble a ROM file starting at --offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := parseOffset(offsetStr)
			if err != nil {
				return err
			}
			var mem [0x10000]uint8
			n, err := loaderReadInto(&mem, offset, args[0])
			if err != nil {
				return err
			}
			if length <= 0 || length > n {
				length = n
			}

			pc := offset
			end := offset + uint16(length)
			for pc < end {
				text, size := inst.Disassemble(&mem, pc)
				fmt.Printf("%04X  %s\n", pc, text)
				pc += uint16(size)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&offsetStr, "offset", "o", "0", "base offset to load and start disassembling at")
	cmd.Flags().IntVar(&length, "length", 0, "number of bytes to disassemble (0 = whole file)")
	return cmd
}

func loaderReadInto(mem *[0x10000]uint8, offset uint16, path string) (int, error) {
	m := (*cpu.Memory)(mem)
	return loader.LoadROMs(m, offset, []string{path})
}

func newConformCmd() *cobra.Command {
	var offsetStr string
	var workers int
	var verbose bool
	var wantSubstring string

	cmd := &cobra.Command{
		Use:   "conform rom...",
		Short: "Run one or more conformance ROMs through the CP/M BDOS shim and report pass/fail",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := parseOffset(offsetStr)
			if err != nil {
				return err
			}

			cases := make([]harness.Case, 0, len(args))
			for _, path := range args {
				cases = append(cases, harness.Case{
					Name:          path,
					ROMPaths:      []string{path},
					Offset:        offset,
					UseBDOS:       true,
					WantSubstring: wantSubstring,
				})
			}

			pool := harness.NewPool(workers)
			pool.RunCases(cases, verbose)

			passed, failed := pool.Results.Summary()
			for _, r := range pool.Results.Results() {
				if !r.Passed {
					fmt.Printf("FAIL %s: %s\n%s\n", r.Case, r.Reason, r.Output)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d/%d cases failed", failed, passed+failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&offsetStr, "offset", "o", "0x0100", "load offset for each ROM (CP/M programs conventionally start at 0100h)")
	cmd.Flags().IntVar(&workers, "workers", 0, "number of parallel workers (0 = NumCPU)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each case's result as it completes")
	cmd.Flags().StringVar(&wantSubstring, "want", "", "require this substring in captured console output to pass")
	return cmd
}

func newFuzzCmd() *cobra.Command {
	var trials int
	var seed int64

	cmd := &cobra.Command{
		Use:   "fuzz",
		Short: "Property-test the core's quantified laws against random inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := equiv.RunAll(equiv.Laws, uint64(seed), trials)
			if len(failed) == 0 {
				fmt.Printf("all %d laws held over %d trials each\n", len(equiv.Laws), trials)
				return nil
			}
			for _, c := range failed {
				fmt.Printf("%d violations, first: %s\n", len(c.Violations), c.Violations[0])
			}
			return fmt.Errorf("%d law(s) violated", len(failed))
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 10000, "number of random trials per law")
	cmd.Flags().Int64Var(&seed, "seed", 1, "base PRNG seed")
	return cmd
}

// parseOffset accepts decimal, octal (0-prefix) and hex (0x-prefix) syntax,
// matching the reference CLI's strtol(optarg, NULL, 0) base-0 parsing, and
// rejects anything at or past the top of the 64 KiB address space.
func parseOffset(s string) (uint16, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid --offset %q: %w", s, err)
	}
	if v < 0 || v >= 0x10000 {
		return 0, fmt.Errorf("--offset %q out of range [0, 0x10000)", s)
	}
	return uint16(v), nil
}

func dumpRegisters(c *cpu.CPU) {
	r := &c.Reg
	fmt.Printf("A=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X\n", r.A, r.B, r.C, r.D, r.E, r.H, r.L)
	fmt.Printf("PC=%04X SP=%04X\n", r.PC, r.SP)
	fmt.Printf("CF=%v PF=%v ACF=%v ZF=%v SF=%v IE=%v\n", r.CF, r.PF, r.ACF, r.ZF, r.SF, r.IE)
}
