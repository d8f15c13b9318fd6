// Package loader copies raw 6502 programs into a memory.Bank and
// points the reset vector at them, the way a cartridge or ROM image
// would be mapped in on real hardware.
package loader

import (
	"fmt"
	"os"

	"github.com/kingshuk7995/emulate-cpu-6502/memory"
)

// ProgramTooLarge is returned when a program doesn't fit in the
// address space starting at Start.
type ProgramTooLarge struct {
	Start uint16
	Len   int
}

// Error implements the error interface.
func (e ProgramTooLarge) Error() string {
	return fmt.Sprintf("program of %d bytes starting at 0x%04X overflows the address space", e.Len, e.Start)
}

// Load copies program into bank starting at start and writes the
// little-endian reset vector at 0xFFFC/0xFFFD to point at start.
func Load(bank memory.Bank, program []byte, start uint16) error {
	if int(start)+len(program) > 0x10000 {
		return ProgramTooLarge{Start: start, Len: len(program)}
	}
	for i, b := range program {
		bank.Write(start+uint16(i), b)
	}
	bank.Write(0xFFFC, uint8(start))
	bank.Write(0xFFFD, uint8(start>>8))
	return nil
}

// LoadFile reads path and loads it into bank at start.
func LoadFile(bank memory.Bank, path string, start uint16) error {
	program, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return Load(bank, program, start)
}
