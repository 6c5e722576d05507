// Package bios implements the CP/M-style BDOS shim the conformance test
// harness uses to let 8080 test ROMs print their results through a real
// console without emulating an actual operating system.
package bios

import (
	"bufio"
	"io"

	"github.com/the-fermi-paradox/intel-8080/pkg/cpu"
)

// trapAddr is the BDOS entry point CP/M programs call into.
const trapAddr = 0x0005

// Install writes a RET opcode at the BDOS trap address so that, once Intercept
// has handled a call there, execution falls straight back out to the caller
// — the same trick the original harness uses instead of emulating BDOS as a
// real subroutine.
func Install(c *cpu.CPU) {
	c.WriteByte(trapAddr, 0xC9)
}

// Shim intercepts BDOS calls for the two console-output functions test ROMs
// rely on. It buffers writes to out the way bufio.Writer does for any other
// console sink.
type Shim struct {
	out *bufio.Writer
}

// New returns a Shim writing to w.
func New(w io.Writer) *Shim {
	return &Shim{out: bufio.NewWriter(w)}
}

// Intercept should be called immediately before every Step. If PC is at the
// trap address, it services the BDOS function selected by register C and
// returns true; the caller should still Step afterward so the injected RET
// at 0x0005 executes and returns control to the ROM. If PC is anywhere
// else, Intercept does nothing and returns false.
func (s *Shim) Intercept(c *cpu.CPU) bool {
	if c.Reg.PC != trapAddr {
		return false
	}

	switch c.Reg.C {
	case 0x09: // print '$'-terminated string at DE
		addr := c.Reg.DE()
		for {
			b := c.ReadByte(addr)
			if b == '$' {
				break
			}
			s.out.WriteByte(b)
			addr++
		}
	case 0x02: // print the character in E
		s.out.WriteByte(c.Reg.E)
	}

	s.out.Flush()
	return true
}
