package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
)

// flatMemory is a 64KiB RAM test double.
type flatMemory struct {
	addr [65536]uint8
}

func (r *flatMemory) Read(addr uint16) uint8       { return r.addr[addr] }
func (r *flatMemory) Write(addr uint16, val uint8) { r.addr[addr] = val }
func (r *flatMemory) PowerOn()                     { r.addr = [65536]uint8{} }

func newTestChip() (*Chip, *flatMemory) {
	return Init(), &flatMemory{}
}

func TestLDAImmediate(t *testing.T) {
	tests := []struct {
		name     string
		val      uint8
		wantZero bool
		wantNeg  bool
	}{
		{"positive", 0x42, false, false},
		{"zero", 0x00, true, false},
		{"negative", 0x80, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mem := newTestChip()
			c.PC = 0x0200
			mem.Write(0x0200, 0xA9) // LDA #imm
			mem.Write(0x0201, tc.val)
			spent, err := c.Execute(2, mem)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if spent != 2 {
				t.Errorf("cycles = %d, want 2", spent)
			}
			if c.A != tc.val {
				t.Errorf("A = %#02x, want %#02x", c.A, tc.val)
			}
			if c.Zero() != tc.wantZero {
				t.Errorf("Zero = %v, want %v", c.Zero(), tc.wantZero)
			}
			if c.Negative() != tc.wantNeg {
				t.Errorf("Negative = %v, want %v", c.Negative(), tc.wantNeg)
			}
		})
	}
}

func TestAddressingModeCycles(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(mem *flatMemory, c *Chip)
		wantCycles int
	}{
		{
			name: "LDA zp",
			setup: func(mem *flatMemory, c *Chip) {
				mem.Write(0x0200, 0xA5)
				mem.Write(0x0201, 0x10)
				mem.Write(0x0010, 0x7F)
			},
			wantCycles: 3,
		},
		{
			name: "LDA zp,X",
			setup: func(mem *flatMemory, c *Chip) {
				c.X = 1
				mem.Write(0x0200, 0xB5)
				mem.Write(0x0201, 0x10)
				mem.Write(0x0011, 0x7F)
			},
			wantCycles: 4,
		},
		{
			name: "LDA abs",
			setup: func(mem *flatMemory, c *Chip) {
				mem.Write(0x0200, 0xAD)
				mem.Write(0x0201, 0x00)
				mem.Write(0x0202, 0x30)
				mem.Write(0x3000, 0x7F)
			},
			wantCycles: 4,
		},
		{
			name: "LDA abs,X no cross",
			setup: func(mem *flatMemory, c *Chip) {
				c.X = 1
				mem.Write(0x0200, 0xBD)
				mem.Write(0x0201, 0x00)
				mem.Write(0x0202, 0x30)
				mem.Write(0x3001, 0x7F)
			},
			wantCycles: 4,
		},
		{
			name: "LDA abs,X crosses page",
			setup: func(mem *flatMemory, c *Chip) {
				c.X = 0xFF
				mem.Write(0x0200, 0xBD)
				mem.Write(0x0201, 0x01)
				mem.Write(0x0202, 0x30)
				mem.Write(0x3100, 0x7F)
			},
			wantCycles: 5,
		},
		{
			name: "STA abs,X always pays the extra cycle",
			setup: func(mem *flatMemory, c *Chip) {
				c.X = 1
				mem.Write(0x0200, 0x9D)
				mem.Write(0x0201, 0x00)
				mem.Write(0x0202, 0x30)
			},
			wantCycles: 5,
		},
		{
			name: "LDA (zp,X)",
			setup: func(mem *flatMemory, c *Chip) {
				c.X = 2
				mem.Write(0x0200, 0xA1)
				mem.Write(0x0201, 0x10)
				mem.Write(0x0012, 0x00)
				mem.Write(0x0013, 0x40)
				mem.Write(0x4000, 0x7F)
			},
			wantCycles: 6,
		},
		{
			name: "LDA (zp),Y no cross",
			setup: func(mem *flatMemory, c *Chip) {
				c.Y = 1
				mem.Write(0x0200, 0xB1)
				mem.Write(0x0201, 0x10)
				mem.Write(0x0010, 0x00)
				mem.Write(0x0011, 0x40)
				mem.Write(0x4001, 0x7F)
			},
			wantCycles: 5,
		},
		{
			name: "LDA (zp),Y crosses page",
			setup: func(mem *flatMemory, c *Chip) {
				c.Y = 0xFF
				mem.Write(0x0200, 0xB1)
				mem.Write(0x0201, 0x10)
				mem.Write(0x0010, 0x01)
				mem.Write(0x0011, 0x40)
				mem.Write(0x4100, 0x7F)
			},
			wantCycles: 6,
		},
		{
			name: "ASL zp (read-modify-write)",
			setup: func(mem *flatMemory, c *Chip) {
				mem.Write(0x0200, 0x06)
				mem.Write(0x0201, 0x10)
				mem.Write(0x0010, 0x01)
			},
			wantCycles: 5,
		},
		{
			name: "ASL abs,X (always +1)",
			setup: func(mem *flatMemory, c *Chip) {
				c.X = 1
				mem.Write(0x0200, 0x1E)
				mem.Write(0x0201, 0x00)
				mem.Write(0x0202, 0x30)
			},
			wantCycles: 7,
		},
		{
			name: "ASL accumulator",
			setup: func(mem *flatMemory, c *Chip) {
				mem.Write(0x0200, 0x0A)
			},
			wantCycles: 2,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mem := newTestChip()
			c.PC = 0x0200
			tc.setup(mem, c)
			spent, err := c.Execute(tc.wantCycles, mem)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if spent != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", spent, tc.wantCycles)
			}
		})
	}
}

func TestStackPushPopIsSingleByte(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0200
	c.A = 0x55
	mem.Write(0x0200, 0x48) // PHA
	if _, err := c.Execute(3, mem); err != nil {
		t.Fatalf("PHA: %v", err)
	}
	if c.S != 0xFC {
		t.Errorf("S after PHA = %#02x, want 0xFC", c.S)
	}
	if mem.Read(0x01FD) != 0x55 {
		t.Errorf("stack byte = %#02x, want 0x55", mem.Read(0x01FD))
	}

	c.A = 0
	c.PC = 0x0300
	mem.Write(0x0300, 0x68) // PLA
	if _, err := c.Execute(4, mem); err != nil {
		t.Fatalf("PLA: %v", err)
	}
	if c.A != 0x55 {
		t.Errorf("A after PLA = %#02x, want 0x55", c.A)
	}
	if c.S != 0xFD {
		t.Errorf("S after PLA = %#02x, want 0xFD", c.S)
	}
}

func TestJMPIndirectPageWrapBug(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0400
	mem.Write(0x0400, 0x6C) // JMP (ind), pointer = 0x01FF
	mem.Write(0x0401, 0xFF)
	mem.Write(0x0402, 0x01)
	mem.Write(0x01FF, 0x34) // low byte of target
	mem.Write(0x0200, 0x12) // if the bug were absent, high byte would come from here
	mem.Write(0x0100, 0x56) // the bug reads the high byte from the start of the same page instead
	if _, err := c.Execute(5, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if want := uint16(0x5634); c.PC != want {
		t.Errorf("PC after JMP (ind) wrap = %#04x, want %#04x", c.PC, want)
	}
}

func TestJSRRTSRoundTrip(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0200
	mem.Write(0x0200, 0x20) // JSR $0300
	mem.Write(0x0201, 0x00)
	mem.Write(0x0202, 0x03)
	mem.Write(0x0300, 0x60) // RTS
	if _, err := c.Execute(6, mem); err != nil {
		t.Fatalf("JSR: %v", err)
	}
	if c.PC != 0x0300 {
		t.Errorf("PC after JSR = %#04x, want 0x0300", c.PC)
	}
	if _, err := c.Execute(6, mem); err != nil {
		t.Fatalf("RTS: %v", err)
	}
	if c.PC != 0x0203 {
		t.Errorf("PC after RTS = %#04x, want 0x0203", c.PC)
	}
}

func TestADCSetsCarryAndOverflow(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0200
	c.A = 0x7F
	mem.Write(0x0200, 0x69) // ADC #imm
	mem.Write(0x0201, 0x01)
	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("A = %#02x, want 0x80", c.A)
	}
	if !c.Overflow() {
		t.Error("Overflow flag not set on signed overflow")
	}
	if c.Carry() {
		t.Error("Carry flag unexpectedly set")
	}
}

func TestBranchCycleCosts(t *testing.T) {
	tests := []struct {
		name       string
		carry      bool
		offset     uint8
		pc         uint16
		wantCycles int
		wantPC     uint16
	}{
		{"not taken", false, 0x10, 0x0200, 2, 0x0202},
		{"taken no cross", true, 0x10, 0x0200, 3, 0x0212},
		{"taken crosses page", true, 0x7F, 0x02F0, 4, 0x0371},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, mem := newTestChip()
			c.PC = tc.pc
			c.setFlag(P_CARRY, tc.carry)
			mem.Write(tc.pc, 0xB0) // BCS
			mem.Write(tc.pc+1, tc.offset)
			spent, err := c.Execute(tc.wantCycles, mem)
			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if spent != tc.wantCycles {
				t.Errorf("cycles = %d, want %d", spent, tc.wantCycles)
			}
			if c.PC != tc.wantPC {
				t.Errorf("PC = %#04x, want %#04x", c.PC, tc.wantPC)
			}
		})
	}
}

func TestBRKHaltsTheBudget(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0200
	mem.Write(0x0200, 0x00) // BRK
	spent, err := c.Execute(1000, mem)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if spent != 1000 {
		t.Errorf("Execute on BRK should report the full budget consumed: spent %d, want 1000", spent)
	}
	if !c.Break() {
		t.Error("B flag not set after BRK")
	}
}

func TestUnimplementedOpcodeIsFatal(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0200
	mem.Write(0x0200, 0x02) // not a documented opcode
	_, err := c.Execute(10, mem)
	if err == nil {
		t.Fatal("expected an error for an unimplemented opcode")
	}
	uo, ok := err.(UnimplementedOpcode)
	if !ok {
		t.Fatalf("err = %v (%T), want UnimplementedOpcode", err, err)
	}
	if uo.Opcode != 0x02 {
		t.Errorf("Opcode = %#02x, want 0x02", uo.Opcode)
	}
}

func TestRegisterTransfersPreserveOtherState(t *testing.T) {
	c, mem := newTestChip()
	c.PC = 0x0200
	c.A = 0x99
	mem.Write(0x0200, 0xAA) // TAX
	if _, err := c.Execute(2, mem); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := &Chip{A: 0x99, X: 0x99, Y: 0, S: 0xFD, P: P_NEGATIVE, PC: 0x0201}
	if diff := deep.Equal(want, c); diff != nil {
		t.Errorf("state mismatch: %v\nfull state: %s", diff, spew.Sdump(c))
	}
}
