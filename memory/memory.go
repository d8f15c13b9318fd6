// Package memory defines the flat 64KiB byte-addressable address space
// the cpu package reads and writes through. Every address is valid;
// there is no memory-mapped I/O and no bus-level modeling.
package memory

import (
	"fmt"
	"math/rand"
	"time"
)

// Bank is the interface the cpu package uses for all memory access.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn resets the bank to its power-on state. Contents are
	// randomized, matching undefined real-hardware RAM contents at
	// power-on.
	PowerOn()
}

// ram implements a standard R/W interface over an address space sized
// as a power of 2. Addresses outside that range alias, matching a
// partially decoded address bus.
type ram struct {
	ram []uint8
}

// New8BitRAMBank creates a R/W RAM bank of the given size. Size must be
// a power of 2 and no larger than 64k (uint16 max). If smaller than
// 64k, addresses alias.
func New8BitRAMBank(size int) (Bank, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, fmt.Errorf("invalid size: %d must be a power of 2", size)
	}
	if size > 1<<16 {
		return nil, fmt.Errorf("invalid size: %d is bigger than 64k", size)
	}
	b := &ram{
		ram: make([]uint8, size),
	}
	return b, nil
}

// Read implements Bank. Address is masked based on length of the ram buffer.
func (r *ram) Read(addr uint16) uint8 {
	addr &= uint16(len(r.ram) - 1)
	return r.ram[addr]
}

// Write implements Bank. Address is masked based on length of the ram buffer.
func (r *ram) Write(addr uint16, val uint8) {
	addr &= uint16(len(r.ram) - 1)
	r.ram[addr] = val
}

// PowerOn implements Bank and randomizes the RAM.
func (r *ram) PowerOn() {
	rand.Seed(time.Now().UnixNano())
	for i := range r.ram {
		r.ram[i] = uint8(rand.Intn(256))
	}
}
