package harness

import (
	"bytes"
	"strings"

	"github.com/the-fermi-paradox/intel-8080/pkg/bios"
	"github.com/the-fermi-paradox/intel-8080/pkg/cpu"
	"github.com/the-fermi-paradox/intel-8080/pkg/loader"
)

// Case describes one conformance ROM to run to completion.
type Case struct {
	Name string

	ROMPaths []string
	Offset   uint16
	InitSP   uint16 // 0 means leave SP at whatever the ROM sets

	// UseBDOS installs the CP/M console shim at 0x0005, for test ROMs
	// written against the classic cpudiag/8080EX1 convention.
	UseBDOS bool

	// WantSubstring, if non-empty, must appear in the captured console
	// output (when UseBDOS) for the case to pass. If empty, the case
	// passes as long as it reaches Halted or Reset before MaxSteps.
	WantSubstring string

	MaxSteps int
}

// Run loads the case's ROM(s), executes it to completion (or MaxSteps),
// and reports what happened.
func Run(c Case) Result {
	machine := cpu.New()

	if _, err := loader.LoadROMs(&machine.Mem, c.Offset, c.ROMPaths); err != nil {
		return Result{Case: c.Name, Passed: false, Reason: err.Error()}
	}

	machine.Reg.PC = c.Offset
	if c.InitSP != 0 {
		machine.Reg.SP = c.InitSP
	}

	var out bytes.Buffer
	var shim *bios.Shim
	if c.UseBDOS {
		shim = bios.New(&out)
		bios.Install(machine)
	}

	maxSteps := c.MaxSteps
	if maxSteps <= 0 {
		maxSteps = 1_000_000
	}

	steps := 0
	for ; steps < maxSteps; steps++ {
		if shim != nil {
			shim.Intercept(machine)
		}
		switch machine.Step() {
		case cpu.Halted, cpu.Reset:
			return finish(c, out.String(), steps+1)
		}
	}

	return Result{
		Case:   c.Name,
		Passed: false,
		Output: out.String(),
		Steps:  steps,
		Reason: "exceeded MaxSteps without halting",
	}
}

func finish(c Case, output string, steps int) Result {
	if c.WantSubstring == "" {
		return Result{Case: c.Name, Passed: true, Output: output, Steps: steps}
	}
	if strings.Contains(output, c.WantSubstring) {
		return Result{Case: c.Name, Passed: true, Output: output, Steps: steps}
	}
	return Result{
		Case:   c.Name,
		Passed: false,
		Output: output,
		Steps:  steps,
		Reason: "output did not contain expected substring",
	}
}
