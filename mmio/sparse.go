// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package mmio

import (
	"fmt"
	"sync"
)

// Access represents a single register access on a Sparse bus.
type Access struct {
	Write bool
	Addr  uint64
	Width int
	Val   uint64
}

func (a Access) String() string {
	op := "r"

	if a.Write {
		op = "w"
	}

	return fmt.Sprintf("%s%d %#x=%#x", op, a.Width*8, a.Addr, a.Val)
}

// Sparse implements a simulated little-endian Bus, backed by a byte map,
// which records every access. Unwritten addresses read as zero.
type Sparse struct {
	mu sync.Mutex

	mem map[uint64]byte
	log []Access
}

// NewSparse returns an empty simulated bus.
func NewSparse() *Sparse {
	return &Sparse{
		mem: make(map[uint64]byte),
	}
}

func (s *Sparse) load(addr uint64, width int) (val uint64) {
	for i := width - 1; i >= 0; i-- {
		val = val<<8 | uint64(s.mem[addr+uint64(i)])
	}

	return
}

func (s *Sparse) store(addr uint64, width int, val uint64) {
	for i := 0; i < width; i++ {
		s.mem[addr+uint64(i)] = byte(val >> (8 * i))
	}
}

func (s *Sparse) read(addr uint64, width int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	val := s.load(addr, width)
	s.log = append(s.log, Access{Addr: addr, Width: width, Val: val})

	return val
}

func (s *Sparse) write(addr uint64, width int, val uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(addr, width, val)
	s.log = append(s.log, Access{Write: true, Addr: addr, Width: width, Val: val})
}

func (s *Sparse) Read8(addr uint64) uint8   { return uint8(s.read(addr, 1)) }
func (s *Sparse) Read16(addr uint64) uint16 { return uint16(s.read(addr, 2)) }
func (s *Sparse) Read32(addr uint64) uint32 { return uint32(s.read(addr, 4)) }
func (s *Sparse) Read64(addr uint64) uint64 { return s.read(addr, 8) }

func (s *Sparse) Write8(addr uint64, val uint8)   { s.write(addr, 1, uint64(val)) }
func (s *Sparse) Write16(addr uint64, val uint16) { s.write(addr, 2, uint64(val)) }
func (s *Sparse) Write32(addr uint64, val uint32) { s.write(addr, 4, uint64(val)) }
func (s *Sparse) Write64(addr uint64, val uint64) { s.write(addr, 8, val) }

// Set presets a register value without recording the access.
func (s *Sparse) Set(addr uint64, width int, val uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store(addr, width, val)
}

// Peek returns a register value without recording the access.
func (s *Sparse) Peek(addr uint64, width int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(addr, width)
}

// Log returns the recorded accesses.
func (s *Sparse) Log() []Access {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Access(nil), s.log...)
}

// Writes returns the recorded write accesses.
func (s *Sparse) Writes() (w []Access) {
	for _, a := range s.Log() {
		if a.Write {
			w = append(w, a)
		}
	}

	return
}

// Reset clears the access log, memory contents are preserved.
func (s *Sparse) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = nil
}
