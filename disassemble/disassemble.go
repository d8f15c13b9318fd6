// Package disassemble turns bytes in memory back into 6502 mnemonics,
// one instruction at a time, without executing anything.
package disassemble

import (
	"fmt"

	"github.com/kingshuk7995/emulate-cpu-6502/memory"
)

const (
	modeImmediate = iota
	modeZP
	modeZPX
	modeZPY
	modeIndirectX
	modeIndirectY
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeImplied
	modeRelative
	modeAccumulator
)

// Step disassembles the instruction at pc, returning its text and the
// number of bytes it occupies. It always reads two bytes past pc (for
// three-byte instructions) regardless of the actual instruction
// length, so the caller must ensure those addresses are valid to read.
// Opcodes outside the documented set this CPU implements decode as
// "???".
func Step(pc uint16, bank memory.Bank) (string, int) {
	o := bank.Read(pc)
	b1 := bank.Read(pc + 1)
	b2 := bank.Read(pc + 2)
	rel := uint16(int16(int8(b1)))

	op := "???"
	mode := modeImplied
	switch o {
	case 0x00:
		// Not really immediate-addressed, but BRK fetches and skips the
		// byte after the opcode same as CPU dispatch does, so treat it
		// the same way for length accounting.
		op, mode = "BRK", modeImmediate
	case 0x01:
		op, mode = "ORA", modeIndirectX
	case 0x05:
		op, mode = "ORA", modeZP
	case 0x06:
		op, mode = "ASL", modeZP
	case 0x08:
		op, mode = "PHP", modeImplied
	case 0x09:
		op, mode = "ORA", modeImmediate
	case 0x0A:
		op, mode = "ASL", modeAccumulator
	case 0x0D:
		op, mode = "ORA", modeAbsolute
	case 0x0E:
		op, mode = "ASL", modeAbsolute
	case 0x10:
		op, mode = "BPL", modeRelative
	case 0x11:
		op, mode = "ORA", modeIndirectY
	case 0x15:
		op, mode = "ORA", modeZPX
	case 0x16:
		op, mode = "ASL", modeZPX
	case 0x18:
		op, mode = "CLC", modeImplied
	case 0x19:
		op, mode = "ORA", modeAbsoluteY
	case 0x1D:
		op, mode = "ORA", modeAbsoluteX
	case 0x1E:
		op, mode = "ASL", modeAbsoluteX
	case 0x20:
		op, mode = "JSR", modeAbsolute
	case 0x21:
		op, mode = "AND", modeIndirectX
	case 0x24:
		op, mode = "BIT", modeZP
	case 0x25:
		op, mode = "AND", modeZP
	case 0x26:
		op, mode = "ROL", modeZP
	case 0x28:
		op, mode = "PLP", modeImplied
	case 0x29:
		op, mode = "AND", modeImmediate
	case 0x2A:
		op, mode = "ROL", modeAccumulator
	case 0x2C:
		op, mode = "BIT", modeAbsolute
	case 0x2D:
		op, mode = "AND", modeAbsolute
	case 0x2E:
		op, mode = "ROL", modeAbsolute
	case 0x30:
		op, mode = "BMI", modeRelative
	case 0x31:
		op, mode = "AND", modeIndirectY
	case 0x35:
		op, mode = "AND", modeZPX
	case 0x36:
		op, mode = "ROL", modeZPX
	case 0x38:
		op, mode = "SEC", modeImplied
	case 0x39:
		op, mode = "AND", modeAbsoluteY
	case 0x3D:
		op, mode = "AND", modeAbsoluteX
	case 0x3E:
		op, mode = "ROL", modeAbsoluteX
	case 0x40:
		op, mode = "RTI", modeImplied
	case 0x41:
		op, mode = "EOR", modeIndirectX
	case 0x45:
		op, mode = "EOR", modeZP
	case 0x46:
		op, mode = "LSR", modeZP
	case 0x48:
		op, mode = "PHA", modeImplied
	case 0x49:
		op, mode = "EOR", modeImmediate
	case 0x4A:
		op, mode = "LSR", modeAccumulator
	case 0x4C:
		op, mode = "JMP", modeAbsolute
	case 0x4D:
		op, mode = "EOR", modeAbsolute
	case 0x4E:
		op, mode = "LSR", modeAbsolute
	case 0x50:
		op, mode = "BVC", modeRelative
	case 0x51:
		op, mode = "EOR", modeIndirectY
	case 0x55:
		op, mode = "EOR", modeZPX
	case 0x56:
		op, mode = "LSR", modeZPX
	case 0x58:
		op, mode = "CLI", modeImplied
	case 0x59:
		op, mode = "EOR", modeAbsoluteY
	case 0x5D:
		op, mode = "EOR", modeAbsoluteX
	case 0x5E:
		op, mode = "LSR", modeAbsoluteX
	case 0x60:
		op, mode = "RTS", modeImplied
	case 0x61:
		op, mode = "ADC", modeIndirectX
	case 0x65:
		op, mode = "ADC", modeZP
	case 0x66:
		op, mode = "ROR", modeZP
	case 0x68:
		op, mode = "PLA", modeImplied
	case 0x69:
		op, mode = "ADC", modeImmediate
	case 0x6A:
		op, mode = "ROR", modeAccumulator
	case 0x6C:
		op, mode = "JMP", modeIndirect
	case 0x6D:
		op, mode = "ADC", modeAbsolute
	case 0x6E:
		op, mode = "ROR", modeAbsolute
	case 0x70:
		op, mode = "BVS", modeRelative
	case 0x71:
		op, mode = "ADC", modeIndirectY
	case 0x75:
		op, mode = "ADC", modeZPX
	case 0x76:
		op, mode = "ROR", modeZPX
	case 0x78:
		op, mode = "SEI", modeImplied
	case 0x79:
		op, mode = "ADC", modeAbsoluteY
	case 0x7D:
		op, mode = "ADC", modeAbsoluteX
	case 0x7E:
		op, mode = "ROR", modeAbsoluteX
	case 0x81:
		op, mode = "STA", modeIndirectX
	case 0x84:
		op, mode = "STY", modeZP
	case 0x85:
		op, mode = "STA", modeZP
	case 0x86:
		op, mode = "STX", modeZP
	case 0x88:
		op, mode = "DEY", modeImplied
	case 0x8A:
		op, mode = "TXA", modeImplied
	case 0x8C:
		op, mode = "STY", modeAbsolute
	case 0x8D:
		op, mode = "STA", modeAbsolute
	case 0x8E:
		op, mode = "STX", modeAbsolute
	case 0x90:
		op, mode = "BCC", modeRelative
	case 0x91:
		op, mode = "STA", modeIndirectY
	case 0x94:
		op, mode = "STY", modeZPX
	case 0x95:
		op, mode = "STA", modeZPX
	case 0x96:
		op, mode = "STX", modeZPY
	case 0x98:
		op, mode = "TYA", modeImplied
	case 0x99:
		op, mode = "STA", modeAbsoluteY
	case 0x9A:
		op, mode = "TXS", modeImplied
	case 0x9D:
		op, mode = "STA", modeAbsoluteX
	case 0xA0:
		op, mode = "LDY", modeImmediate
	case 0xA1:
		op, mode = "LDA", modeIndirectX
	case 0xA2:
		op, mode = "LDX", modeImmediate
	case 0xA4:
		op, mode = "LDY", modeZP
	case 0xA5:
		op, mode = "LDA", modeZP
	case 0xA6:
		op, mode = "LDX", modeZP
	case 0xA8:
		op, mode = "TAY", modeImplied
	case 0xA9:
		op, mode = "LDA", modeImmediate
	case 0xAA:
		op, mode = "TAX", modeImplied
	case 0xAC:
		op, mode = "LDY", modeAbsolute
	case 0xAD:
		op, mode = "LDA", modeAbsolute
	case 0xAE:
		op, mode = "LDX", modeAbsolute
	case 0xB0:
		op, mode = "BCS", modeRelative
	case 0xB1:
		op, mode = "LDA", modeIndirectY
	case 0xB4:
		op, mode = "LDY", modeZPX
	case 0xB5:
		op, mode = "LDA", modeZPX
	case 0xB6:
		op, mode = "LDX", modeZPY
	case 0xB8:
		op, mode = "CLV", modeImplied
	case 0xB9:
		op, mode = "LDA", modeAbsoluteY
	case 0xBA:
		op, mode = "TSX", modeImplied
	case 0xBC:
		op, mode = "LDY", modeAbsoluteX
	case 0xBD:
		op, mode = "LDA", modeAbsoluteX
	case 0xBE:
		op, mode = "LDX", modeAbsoluteY
	case 0xC0:
		op, mode = "CPY", modeImmediate
	case 0xC1:
		op, mode = "CMP", modeIndirectX
	case 0xC4:
		op, mode = "CPY", modeZP
	case 0xC5:
		op, mode = "CMP", modeZP
	case 0xC6:
		op, mode = "DEC", modeZP
	case 0xC8:
		op, mode = "INY", modeImplied
	case 0xC9:
		op, mode = "CMP", modeImmediate
	case 0xCA:
		op, mode = "DEX", modeImplied
	case 0xCC:
		op, mode = "CPY", modeAbsolute
	case 0xCD:
		op, mode = "CMP", modeAbsolute
	case 0xCE:
		op, mode = "DEC", modeAbsolute
	case 0xD0:
		op, mode = "BNE", modeRelative
	case 0xD1:
		op, mode = "CMP", modeIndirectY
	case 0xD5:
		op, mode = "CMP", modeZPX
	case 0xD6:
		op, mode = "DEC", modeZPX
	case 0xD8:
		op, mode = "CLD", modeImplied
	case 0xD9:
		op, mode = "CMP", modeAbsoluteY
	case 0xDD:
		op, mode = "CMP", modeAbsoluteX
	case 0xDE:
		op, mode = "DEC", modeAbsoluteX
	case 0xE0:
		op, mode = "CPX", modeImmediate
	case 0xE1:
		op, mode = "SBC", modeIndirectX
	case 0xE4:
		op, mode = "CPX", modeZP
	case 0xE5:
		op, mode = "SBC", modeZP
	case 0xE6:
		op, mode = "INC", modeZP
	case 0xE8:
		op, mode = "INX", modeImplied
	case 0xE9:
		op, mode = "SBC", modeImmediate
	case 0xEA:
		op, mode = "NOP", modeImplied
	case 0xEC:
		op, mode = "CPX", modeAbsolute
	case 0xED:
		op, mode = "SBC", modeAbsolute
	case 0xEE:
		op, mode = "INC", modeAbsolute
	case 0xF0:
		op, mode = "BEQ", modeRelative
	case 0xF1:
		op, mode = "SBC", modeIndirectY
	case 0xF5:
		op, mode = "SBC", modeZPX
	case 0xF6:
		op, mode = "INC", modeZPX
	case 0xF8:
		op, mode = "SED", modeImplied
	case 0xF9:
		op, mode = "SBC", modeAbsoluteY
	case 0xFD:
		op, mode = "SBC", modeAbsoluteX
	case 0xFE:
		op, mode = "INC", modeAbsoluteX
	}

	count := 2
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch mode {
	case modeImmediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", b1, op, b1)
	case modeZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", b1, op, b1)
	case modeZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", b1, op, b1)
	case modeZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", b1, op, b1)
	case modeIndirectX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", b1, op, b1)
	case modeIndirectY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", b1, op, b1)
	case modeAbsolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", b1, b2, op, b2, b1)
		count++
	case modeAbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", b1, b2, op, b2, b1)
		count++
	case modeAbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", b1, b2, op, b2, b1)
		count++
	case modeIndirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", b1, b2, op, b2, b1)
		count++
	case modeAccumulator:
		out += fmt.Sprintf("        %s A          ", op)
		count--
	case modeImplied:
		out += fmt.Sprintf("        %s           ", op)
		count--
	case modeRelative:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", b1, op, b1, pc+rel+2)
	default:
		panic(fmt.Sprintf("invalid addressing mode: %d", mode))
	}
	return out, count
}
