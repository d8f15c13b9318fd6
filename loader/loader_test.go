package loader

import (
	"testing"

	"github.com/kingshuk7995/emulate-cpu-6502/memory"
)

func TestLoadCopiesBytesAndSetsResetVector(t *testing.T) {
	bank, err := memory.New8BitRAMBank(1 << 16)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	program := []byte{0xA9, 0x01, 0x00}
	if err := Load(bank, program, 0x8000); err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, b := range program {
		if got := bank.Read(0x8000 + uint16(i)); got != b {
			t.Errorf("byte %d = %#02x, want %#02x", i, got, b)
		}
	}
	if lo, hi := bank.Read(0xFFFC), bank.Read(0xFFFD); lo != 0x00 || hi != 0x80 {
		t.Errorf("reset vector = %02x%02x, want 8000", hi, lo)
	}
}

func TestLoadRejectsOverflow(t *testing.T) {
	bank, err := memory.New8BitRAMBank(1 << 16)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	program := make([]byte, 0x200)
	err = Load(bank, program, 0xFF00)
	if err == nil {
		t.Fatal("expected ProgramTooLarge error")
	}
	if _, ok := err.(ProgramTooLarge); !ok {
		t.Errorf("err = %v (%T), want ProgramTooLarge", err, err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	bank, err := memory.New8BitRAMBank(1 << 16)
	if err != nil {
		t.Fatalf("New8BitRAMBank: %v", err)
	}
	if err := LoadFile(bank, "/nonexistent/path/to/a/program.bin", 0x8000); err == nil {
		t.Fatal("expected an error reading a missing file")
	}
}
