// Package loader reads ROM images from disk into 8080 memory, the way the
// reference CLI feeds a program to the emulator before execution starts.
package loader

import (
	"fmt"
	"os"

	"github.com/the-fermi-paradox/intel-8080/pkg/cpu"
)

// LoadROMs reads each file in paths, in order, appending its bytes into mem
// starting at offset: the first file lands at offset, the second
// immediately after the first's last byte, and so on. It returns the total
// number of bytes written.
//
// A read failure on any file, or a file that would write past the end of
// the 64 KiB address space, aborts the whole load and returns an error —
// mirroring the reference loader's fopen/fseek/fread bounds check, which
// refuses a ROM that doesn't fit rather than silently truncating it.
func LoadROMs(mem *cpu.Memory, offset uint16, paths []string) (int, error) {
	pos := uint32(offset)
	total := 0

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return total, fmt.Errorf("loader: reading %s: %w", path, err)
		}

		remaining := uint32(0x10000) - pos
		if uint32(len(data)) > remaining {
			return total, fmt.Errorf("loader: %s is %d bytes, only %d remain at offset %#04x", path, len(data), remaining, pos)
		}

		for i, b := range data {
			mem[uint32(pos)+uint32(i)] = b
		}
		pos += uint32(len(data))
		total += len(data)
	}

	return total, nil
}
