package cpu

import "github.com/kingshuk7995/emulate-cpu-6502/memory"

// rmw performs a read-modify-write at addr: read the operand, charge
// the internal cycle the real chip spends computing the new value,
// apply op, then write the result back.
func (c *Chip) rmw(bank memory.Bank, addr uint16, cycles *int, op func(uint8) uint8) {
	v := c.readByte(bank, addr, cycles)
	*cycles++
	result := op(v)
	c.writeByte(bank, addr, result, cycles)
}

// rmwAcc applies op to A in place, for the accumulator-addressed forms
// of ASL/LSR/ROL/ROR. These operate on A directly rather than fetching
// an operand from memory.
func (c *Chip) rmwAcc(cycles *int, op func(uint8) uint8) {
	c.A = op(c.A)
	*cycles++
}

// load stores v into reg and updates Zero/Negative from it.
func (c *Chip) load(reg *uint8, v uint8) {
	*reg = v
	c.setZN(*reg)
}

// branch consumes the relative-offset operand and, if taken, adjusts
// PC and charges the taken (and possibly page-cross) cycle penalties.
func (c *Chip) branch(bank memory.Bank, cycles *int, taken bool) {
	offset := int8(c.fetchByte(bank, cycles))
	if !taken {
		return
	}
	*cycles++
	oldPC := c.PC
	c.PC = uint16(int32(c.PC) + int32(offset))
	if crossesPage(oldPC, c.PC) {
		*cycles++
	}
}

// dispatch decodes and executes a single opcode, charging cycles into
// *cycles as it goes. cycles already has 1 in it for the opcode fetch
// itself by the time dispatch is called.
func (c *Chip) dispatch(op uint8, bank memory.Bank, cycles *int) error {
	switch op {

	// LDA
	case 0xA9:
		c.load(&c.A, c.fetchByte(bank, cycles))
	case 0xA5:
		addr := c.addrZP(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))
	case 0xB5:
		addr := c.addrZPX(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))
	case 0xAD:
		addr := c.addrAbsolute(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))
	case 0xBD:
		addr := c.addrAbsoluteX(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))
	case 0xB9:
		addr := c.addrAbsoluteY(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))
	case 0xA1:
		addr := c.addrIndirectX(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))
	case 0xB1:
		addr := c.addrIndirectY(bank, cycles)
		c.load(&c.A, c.readByte(bank, addr, cycles))

	// LDX
	case 0xA2:
		c.load(&c.X, c.fetchByte(bank, cycles))
	case 0xA6:
		addr := c.addrZP(bank, cycles)
		c.load(&c.X, c.readByte(bank, addr, cycles))
	case 0xB6:
		addr := c.addrZPY(bank, cycles)
		c.load(&c.X, c.readByte(bank, addr, cycles))
	case 0xAE:
		addr := c.addrAbsolute(bank, cycles)
		c.load(&c.X, c.readByte(bank, addr, cycles))
	case 0xBE:
		addr := c.addrAbsoluteY(bank, cycles)
		c.load(&c.X, c.readByte(bank, addr, cycles))

	// LDY
	case 0xA0:
		c.load(&c.Y, c.fetchByte(bank, cycles))
	case 0xA4:
		addr := c.addrZP(bank, cycles)
		c.load(&c.Y, c.readByte(bank, addr, cycles))
	case 0xB4:
		addr := c.addrZPX(bank, cycles)
		c.load(&c.Y, c.readByte(bank, addr, cycles))
	case 0xAC:
		addr := c.addrAbsolute(bank, cycles)
		c.load(&c.Y, c.readByte(bank, addr, cycles))
	case 0xBC:
		addr := c.addrAbsoluteX(bank, cycles)
		c.load(&c.Y, c.readByte(bank, addr, cycles))

	// STA
	case 0x85:
		addr := c.addrZP(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)
	case 0x95:
		addr := c.addrZPX(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)
	case 0x8D:
		addr := c.addrAbsolute(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)
	case 0x9D:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)
	case 0x99:
		addr := c.addrAbsoluteYStore(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)
	case 0x81:
		addr := c.addrIndirectX(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)
	case 0x91:
		addr := c.addrIndirectYStore(bank, cycles)
		c.writeByte(bank, addr, c.A, cycles)

	// STX
	case 0x86:
		addr := c.addrZP(bank, cycles)
		c.writeByte(bank, addr, c.X, cycles)
	case 0x96:
		addr := c.addrZPY(bank, cycles)
		c.writeByte(bank, addr, c.X, cycles)
	case 0x8E:
		addr := c.addrAbsolute(bank, cycles)
		c.writeByte(bank, addr, c.X, cycles)

	// STY
	case 0x84:
		addr := c.addrZP(bank, cycles)
		c.writeByte(bank, addr, c.Y, cycles)
	case 0x94:
		addr := c.addrZPX(bank, cycles)
		c.writeByte(bank, addr, c.Y, cycles)
	case 0x8C:
		addr := c.addrAbsolute(bank, cycles)
		c.writeByte(bank, addr, c.Y, cycles)

	// Transfers
	case 0xAA: // TAX
		c.load(&c.X, c.A)
		*cycles++
	case 0xA8: // TAY
		c.load(&c.Y, c.A)
		*cycles++
	case 0x8A: // TXA
		c.load(&c.A, c.X)
		*cycles++
	case 0x98: // TYA
		c.load(&c.A, c.Y)
		*cycles++
	case 0xBA: // TSX
		c.load(&c.X, c.S)
		*cycles++
	case 0x9A: // TXS (no flag update: S isn't A/X/Y)
		c.S = c.X
		*cycles++

	// Stack
	case 0x48: // PHA
		c.push(bank, c.A, cycles)
		*cycles++
	case 0x68: // PLA
		c.A = c.pop(bank, cycles)
		c.setZN(c.A)
		*cycles += 2
	case 0x08: // PHP
		c.push(bank, c.P|P_S1|P_B, cycles)
		*cycles++
	case 0x28: // PLP
		status := c.pop(bank, cycles)
		c.P = status &^ (P_B | P_S1)
		*cycles += 2

	// Control flow
	case 0x4C: // JMP absolute
		c.PC = c.addrAbsolute(bank, cycles)
	case 0x6C: // JMP indirect (preserves the page-wrap bug)
		c.PC = c.addrIndirect(bank, cycles)
	case 0x20: // JSR
		target := c.addrAbsolute(bank, cycles)
		*cycles++
		retAddr := c.PC - 1
		c.push(bank, uint8(retAddr>>8), cycles)
		c.push(bank, uint8(retAddr), cycles)
		c.PC = target
	case 0x60: // RTS
		lo := c.pop(bank, cycles)
		hi := c.pop(bank, cycles)
		c.PC = (uint16(hi)<<8 | uint16(lo)) + 1
		*cycles += 3
	case 0x40: // RTI
		status := c.pop(bank, cycles)
		c.P = status &^ (P_B | P_S1)
		lo := c.pop(bank, cycles)
		hi := c.pop(bank, cycles)
		c.PC = uint16(hi)<<8 | uint16(lo)
		*cycles += 2
	case BRK: // BRK: simplified per design, no vector jump or status push.
		c.fetchByte(bank, cycles) // consume the padding byte
		c.P |= P_B

	// Logic
	case 0x29:
		c.and(c.fetchByte(bank, cycles))
	case 0x25:
		addr := c.addrZP(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))
	case 0x35:
		addr := c.addrZPX(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))
	case 0x2D:
		addr := c.addrAbsolute(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))
	case 0x3D:
		addr := c.addrAbsoluteX(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))
	case 0x39:
		addr := c.addrAbsoluteY(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))
	case 0x21:
		addr := c.addrIndirectX(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))
	case 0x31:
		addr := c.addrIndirectY(bank, cycles)
		c.and(c.readByte(bank, addr, cycles))

	case 0x09:
		c.ora(c.fetchByte(bank, cycles))
	case 0x05:
		addr := c.addrZP(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))
	case 0x15:
		addr := c.addrZPX(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))
	case 0x0D:
		addr := c.addrAbsolute(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))
	case 0x1D:
		addr := c.addrAbsoluteX(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))
	case 0x19:
		addr := c.addrAbsoluteY(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))
	case 0x01:
		addr := c.addrIndirectX(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))
	case 0x11:
		addr := c.addrIndirectY(bank, cycles)
		c.ora(c.readByte(bank, addr, cycles))

	case 0x49:
		c.eor(c.fetchByte(bank, cycles))
	case 0x45:
		addr := c.addrZP(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))
	case 0x55:
		addr := c.addrZPX(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))
	case 0x4D:
		addr := c.addrAbsolute(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))
	case 0x5D:
		addr := c.addrAbsoluteX(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))
	case 0x59:
		addr := c.addrAbsoluteY(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))
	case 0x41:
		addr := c.addrIndirectX(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))
	case 0x51:
		addr := c.addrIndirectY(bank, cycles)
		c.eor(c.readByte(bank, addr, cycles))

	case 0x24: // BIT zp
		addr := c.addrZP(bank, cycles)
		c.bit(c.readByte(bank, addr, cycles))
	case 0x2C: // BIT abs
		addr := c.addrAbsolute(bank, cycles)
		c.bit(c.readByte(bank, addr, cycles))

	// Arithmetic
	case 0x69:
		c.adc(c.fetchByte(bank, cycles))
	case 0x65:
		addr := c.addrZP(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))
	case 0x75:
		addr := c.addrZPX(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))
	case 0x6D:
		addr := c.addrAbsolute(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))
	case 0x7D:
		addr := c.addrAbsoluteX(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))
	case 0x79:
		addr := c.addrAbsoluteY(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))
	case 0x61:
		addr := c.addrIndirectX(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))
	case 0x71: // (Indirect),Y — the reference's extra dummy fetch is omitted
		addr := c.addrIndirectY(bank, cycles)
		c.adc(c.readByte(bank, addr, cycles))

	case 0xE9:
		c.sbc(c.fetchByte(bank, cycles))
	case 0xE5:
		addr := c.addrZP(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))
	case 0xF5:
		addr := c.addrZPX(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))
	case 0xED:
		addr := c.addrAbsolute(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))
	case 0xFD:
		addr := c.addrAbsoluteX(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))
	case 0xF9:
		addr := c.addrAbsoluteY(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))
	case 0xE1:
		addr := c.addrIndirectX(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))
	case 0xF1:
		addr := c.addrIndirectY(bank, cycles)
		c.sbc(c.readByte(bank, addr, cycles))

	// Compare
	case 0xC9:
		c.compare(c.fetchByte(bank, cycles), c.A)
	case 0xC5:
		addr := c.addrZP(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)
	case 0xD5:
		addr := c.addrZPX(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)
	case 0xCD:
		addr := c.addrAbsolute(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)
	case 0xDD:
		addr := c.addrAbsoluteX(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)
	case 0xD9:
		addr := c.addrAbsoluteY(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)
	case 0xC1:
		addr := c.addrIndirectX(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)
	case 0xD1:
		addr := c.addrIndirectY(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.A)

	case 0xE0:
		c.compare(c.fetchByte(bank, cycles), c.X)
	case 0xE4:
		addr := c.addrZP(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.X)
	case 0xEC:
		addr := c.addrAbsolute(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.X)

	case 0xC0:
		c.compare(c.fetchByte(bank, cycles), c.Y)
	case 0xC4:
		addr := c.addrZP(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.Y)
	case 0xCC:
		addr := c.addrAbsolute(bank, cycles)
		c.compare(c.readByte(bank, addr, cycles), c.Y)

	// Increment/decrement
	case 0xE8: // INX
		c.X++
		c.setZN(c.X)
		*cycles++
	case 0xC8: // INY
		c.Y++
		c.setZN(c.Y)
		*cycles++
	case 0xCA: // DEX
		c.X--
		c.setZN(c.X)
		*cycles++
	case 0x88: // DEY
		c.Y--
		c.setZN(c.Y)
		*cycles++
	case 0xE6:
		addr := c.addrZP(bank, cycles)
		c.rmw(bank, addr, cycles, c.inc)
	case 0xF6:
		addr := c.addrZPX(bank, cycles)
		c.rmw(bank, addr, cycles, c.inc)
	case 0xEE:
		addr := c.addrAbsolute(bank, cycles)
		c.rmw(bank, addr, cycles, c.inc)
	case 0xFE:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.rmw(bank, addr, cycles, c.inc)
	case 0xC6:
		addr := c.addrZP(bank, cycles)
		c.rmw(bank, addr, cycles, c.dec)
	case 0xD6:
		addr := c.addrZPX(bank, cycles)
		c.rmw(bank, addr, cycles, c.dec)
	case 0xCE:
		addr := c.addrAbsolute(bank, cycles)
		c.rmw(bank, addr, cycles, c.dec)
	case 0xDE:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.rmw(bank, addr, cycles, c.dec)

	// Shifts and rotates
	case 0x0A:
		c.rmwAcc(cycles, c.asl)
	case 0x06:
		addr := c.addrZP(bank, cycles)
		c.rmw(bank, addr, cycles, c.asl)
	case 0x16:
		addr := c.addrZPX(bank, cycles)
		c.rmw(bank, addr, cycles, c.asl)
	case 0x0E:
		addr := c.addrAbsolute(bank, cycles)
		c.rmw(bank, addr, cycles, c.asl)
	case 0x1E:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.rmw(bank, addr, cycles, c.asl)

	case 0x4A:
		c.rmwAcc(cycles, c.lsr)
	case 0x46:
		addr := c.addrZP(bank, cycles)
		c.rmw(bank, addr, cycles, c.lsr)
	case 0x56:
		addr := c.addrZPX(bank, cycles)
		c.rmw(bank, addr, cycles, c.lsr)
	case 0x4E:
		addr := c.addrAbsolute(bank, cycles)
		c.rmw(bank, addr, cycles, c.lsr)
	case 0x5E:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.rmw(bank, addr, cycles, c.lsr)

	case 0x2A:
		c.rmwAcc(cycles, c.rol)
	case 0x26:
		addr := c.addrZP(bank, cycles)
		c.rmw(bank, addr, cycles, c.rol)
	case 0x36:
		addr := c.addrZPX(bank, cycles)
		c.rmw(bank, addr, cycles, c.rol)
	case 0x2E:
		addr := c.addrAbsolute(bank, cycles)
		c.rmw(bank, addr, cycles, c.rol)
	case 0x3E:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.rmw(bank, addr, cycles, c.rol)

	case 0x6A:
		c.rmwAcc(cycles, c.ror)
	case 0x66:
		addr := c.addrZP(bank, cycles)
		c.rmw(bank, addr, cycles, c.ror)
	case 0x76:
		addr := c.addrZPX(bank, cycles)
		c.rmw(bank, addr, cycles, c.ror)
	case 0x6E:
		addr := c.addrAbsolute(bank, cycles)
		c.rmw(bank, addr, cycles, c.ror)
	case 0x7E:
		addr := c.addrAbsoluteXStore(bank, cycles)
		c.rmw(bank, addr, cycles, c.ror)

	// Branches
	case 0x10: // BPL
		c.branch(bank, cycles, !c.Negative())
	case 0x30: // BMI
		c.branch(bank, cycles, c.Negative())
	case 0x50: // BVC
		c.branch(bank, cycles, !c.Overflow())
	case 0x70: // BVS
		c.branch(bank, cycles, c.Overflow())
	case 0x90: // BCC
		c.branch(bank, cycles, !c.Carry())
	case 0xB0: // BCS
		c.branch(bank, cycles, c.Carry())
	case 0xD0: // BNE
		c.branch(bank, cycles, !c.Zero())
	case 0xF0: // BEQ
		c.branch(bank, cycles, c.Zero())

	// Flags
	case 0x18:
		c.setFlag(P_CARRY, false)
		*cycles++
	case 0x38:
		c.setFlag(P_CARRY, true)
		*cycles++
	case 0xD8:
		c.setFlag(P_DECIMAL, false)
		*cycles++
	case 0xF8:
		c.setFlag(P_DECIMAL, true)
		*cycles++
	case 0x58:
		c.setFlag(P_INTERRUPT, false)
		*cycles++
	case 0x78:
		c.setFlag(P_INTERRUPT, true)
		*cycles++
	case 0xB8:
		c.setFlag(P_OVERFLOW, false)
		*cycles++

	case 0xEA: // NOP
		*cycles++

	default:
		return UnimplementedOpcode{Opcode: op}
	}
	return nil
}
