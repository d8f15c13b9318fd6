package cpu

import "github.com/kingshuk7995/emulate-cpu-6502/memory"

// fetchByte reads the byte at PC, advances PC, and charges one cycle.
func (c *Chip) fetchByte(bank memory.Bank, cycles *int) uint8 {
	v := bank.Read(c.PC)
	c.PC++
	*cycles++
	return v
}

// fetchWord reads a little-endian word starting at PC, advancing PC
// by two and charging one cycle per byte.
func (c *Chip) fetchWord(bank memory.Bank, cycles *int) uint16 {
	lo := c.fetchByte(bank, cycles)
	hi := c.fetchByte(bank, cycles)
	return uint16(hi)<<8 | uint16(lo)
}

// readByte reads addr and charges one cycle.
func (c *Chip) readByte(bank memory.Bank, addr uint16, cycles *int) uint8 {
	*cycles++
	return bank.Read(addr)
}

// writeByte writes val to addr and charges one cycle.
func (c *Chip) writeByte(bank memory.Bank, addr uint16, val uint8, cycles *int) {
	*cycles++
	bank.Write(addr, val)
}

// addrZP decodes zero-page addressing: one operand byte, no index.
func (c *Chip) addrZP(bank memory.Bank, cycles *int) uint16 {
	return uint16(c.fetchByte(bank, cycles))
}

// addrZPX decodes zero-page,X addressing. The index add always costs
// an extra cycle, whether or not it wraps the page.
func (c *Chip) addrZPX(bank memory.Bank, cycles *int) uint16 {
	zp := c.fetchByte(bank, cycles) + c.X
	*cycles++
	return uint16(zp)
}

// addrZPY decodes zero-page,Y addressing (used by LDX/STX only).
func (c *Chip) addrZPY(bank memory.Bank, cycles *int) uint16 {
	zp := c.fetchByte(bank, cycles) + c.Y
	*cycles++
	return uint16(zp)
}

// addrAbsolute decodes absolute addressing: a two-byte little-endian
// operand, no index.
func (c *Chip) addrAbsolute(bank memory.Bank, cycles *int) uint16 {
	return c.fetchWord(bank, cycles)
}

// crossesPage reports whether base and addr fall in different 256-byte
// pages.
func crossesPage(base, addr uint16) bool {
	return base&0xFF00 != addr&0xFF00
}

// addrAbsoluteX decodes absolute,X addressing for reads: the extra
// cycle for the index carry is only charged when the addition crosses
// a page boundary.
func (c *Chip) addrAbsoluteX(bank memory.Bank, cycles *int) uint16 {
	base := c.fetchWord(bank, cycles)
	addr := base + uint16(c.X)
	if crossesPage(base, addr) {
		*cycles++
	}
	return addr
}

// addrAbsoluteXStore decodes absolute,X addressing for stores and
// read-modify-write instructions, which always pay the index-carry
// cycle since the effective address must be final before the bus
// cycle that uses it.
func (c *Chip) addrAbsoluteXStore(bank memory.Bank, cycles *int) uint16 {
	base := c.fetchWord(bank, cycles)
	addr := base + uint16(c.X)
	*cycles++
	return addr
}

// addrAbsoluteY decodes absolute,Y addressing for reads.
func (c *Chip) addrAbsoluteY(bank memory.Bank, cycles *int) uint16 {
	base := c.fetchWord(bank, cycles)
	addr := base + uint16(c.Y)
	if crossesPage(base, addr) {
		*cycles++
	}
	return addr
}

// addrAbsoluteYStore decodes absolute,Y addressing for stores, always
// paying the index-carry cycle.
func (c *Chip) addrAbsoluteYStore(bank memory.Bank, cycles *int) uint16 {
	base := c.fetchWord(bank, cycles)
	addr := base + uint16(c.Y)
	*cycles++
	return addr
}

// addrIndirectX decodes (zp,X) addressing: the zero-page pointer byte
// is indexed by X (with zero-page wraparound) before the two-byte
// pointer is read.
func (c *Chip) addrIndirectX(bank memory.Bank, cycles *int) uint16 {
	zp := c.fetchByte(bank, cycles) + c.X
	*cycles++
	lo := c.readByte(bank, uint16(zp), cycles)
	hi := c.readByte(bank, uint16(zp+1), cycles)
	return uint16(hi)<<8 | uint16(lo)
}

// addrIndirectY decodes (zp),Y addressing for reads: the pointer is
// read from zero page first, then indexed by Y, paying the page-cross
// cycle only when that index crosses a page.
func (c *Chip) addrIndirectY(bank memory.Bank, cycles *int) uint16 {
	zp := c.fetchByte(bank, cycles)
	lo := c.readByte(bank, uint16(zp), cycles)
	hi := c.readByte(bank, uint16(zp+1), cycles)
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(c.Y)
	if crossesPage(base, addr) {
		*cycles++
	}
	return addr
}

// addrIndirectYStore decodes (zp),Y addressing for stores, always
// paying the index-carry cycle.
func (c *Chip) addrIndirectYStore(bank memory.Bank, cycles *int) uint16 {
	zp := c.fetchByte(bank, cycles)
	lo := c.readByte(bank, uint16(zp), cycles)
	hi := c.readByte(bank, uint16(zp+1), cycles)
	base := uint16(hi)<<8 | uint16(lo)
	addr := base + uint16(c.Y)
	*cycles++
	return addr
}

// addrIndirect decodes JMP's indirect addressing mode, replicating the
// well-known page-boundary wrap bug: when the pointer's low byte is
// 0xFF, the high byte of the target is read from the start of the
// same page rather than the next one.
func (c *Chip) addrIndirect(bank memory.Bank, cycles *int) uint16 {
	ptr := c.fetchWord(bank, cycles)
	lo := c.readByte(bank, ptr, cycles)
	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	hi := c.readByte(bank, hiAddr, cycles)
	return uint16(hi)<<8 | uint16(lo)
}
