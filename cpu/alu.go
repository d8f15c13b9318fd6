package cpu

// adc adds val and the Carry flag into A, setting Carry, Overflow,
// Zero and Negative. Decimal mode is explicitly out of scope: this is
// always binary addition regardless of the Decimal flag.
func (c *Chip) adc(val uint8) {
	carryIn := uint16(0)
	if c.Carry() {
		carryIn = 1
	}
	sum := uint16(c.A) + uint16(val) + carryIn
	result := uint8(sum)
	c.setFlag(P_CARRY, sum > 0xFF)
	c.setFlag(P_OVERFLOW, (c.A^result)&(val^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

// sbc subtracts val (and the borrow implied by a clear Carry) from A.
// Since binary subtraction on two's-complement bytes is addition of
// the one's complement, this is exactly adc with val inverted.
func (c *Chip) sbc(val uint8) {
	c.adc(^val)
}

// compare implements CMP/CPX/CPY: reg - val sets Carry, Zero and
// Negative without storing the result anywhere.
func (c *Chip) compare(val, reg uint8) {
	c.setFlag(P_CARRY, reg >= val)
	result := reg - val
	c.setFlag(P_ZERO, result == 0)
	c.setFlag(P_NEGATIVE, result&0x80 != 0)
}

// and ANDs val into A.
func (c *Chip) and(val uint8) {
	c.A &= val
	c.setZN(c.A)
}

// ora ORs val into A.
func (c *Chip) ora(val uint8) {
	c.A |= val
	c.setZN(c.A)
}

// eor XORs val into A.
func (c *Chip) eor(val uint8) {
	c.A ^= val
	c.setZN(c.A)
}

// bit tests A & val, setting Zero from the masked result and Negative
// and Overflow directly from bits 7 and 6 of val (not of A & val).
func (c *Chip) bit(val uint8) {
	c.setFlag(P_ZERO, c.A&val == 0)
	c.setFlag(P_NEGATIVE, val&0x80 != 0)
	c.setFlag(P_OVERFLOW, val&0x40 != 0)
}

// asl shifts v left one bit, shifting bit 7 into Carry.
func (c *Chip) asl(v uint8) uint8 {
	c.setFlag(P_CARRY, v&0x80 != 0)
	result := v << 1
	c.setZN(result)
	return result
}

// lsr shifts v right one bit, shifting bit 0 into Carry.
func (c *Chip) lsr(v uint8) uint8 {
	c.setFlag(P_CARRY, v&0x01 != 0)
	result := v >> 1
	c.setZN(result)
	return result
}

// rol rotates v left through Carry.
func (c *Chip) rol(v uint8) uint8 {
	var carryIn uint8
	if c.Carry() {
		carryIn = 1
	}
	c.setFlag(P_CARRY, v&0x80 != 0)
	result := (v << 1) | carryIn
	c.setZN(result)
	return result
}

// ror rotates v right through Carry.
func (c *Chip) ror(v uint8) uint8 {
	var carryIn uint8
	if c.Carry() {
		carryIn = 0x80
	}
	c.setFlag(P_CARRY, v&0x01 != 0)
	result := (v >> 1) | carryIn
	c.setZN(result)
	return result
}

// inc increments v by one, wrapping at 256.
func (c *Chip) inc(v uint8) uint8 {
	result := v + 1
	c.setZN(result)
	return result
}

// dec decrements v by one, wrapping at 0.
func (c *Chip) dec(v uint8) uint8 {
	result := v - 1
	c.setZN(result)
	return result
}
