// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package mmio provides access to memory mapped device registers.
package mmio

import (
	"sync/atomic"
	"unsafe"
)

// Bus represents a memory mapped register bus.
type Bus interface {
	Read8(addr uint64) uint8
	Read16(addr uint64) uint16
	Read32(addr uint64) uint32
	Read64(addr uint64) uint64

	Write8(addr uint64, val uint8)
	Write16(addr uint64, val uint16)
	Write32(addr uint64, val uint32)
	Write64(addr uint64, val uint64)
}

// Memory implements Bus over physical memory, it must only be used on bare
// metal targets with identity mapped device registers.
type Memory struct{}

// Read8 reads an 8-bit register.
func (Memory) Read8(addr uint64) uint8 {
	return *(*uint8)(unsafe.Pointer(uintptr(addr)))
}

// Read16 reads a 16-bit register.
func (Memory) Read16(addr uint64) uint16 {
	return *(*uint16)(unsafe.Pointer(uintptr(addr)))
}

// Read32 reads a 32-bit register.
func (Memory) Read32(addr uint64) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(uintptr(addr))))
}

// Read64 reads a 64-bit register.
func (Memory) Read64(addr uint64) uint64 {
	return atomic.LoadUint64((*uint64)(unsafe.Pointer(uintptr(addr))))
}

// Write8 writes an 8-bit register.
func (Memory) Write8(addr uint64, val uint8) {
	*(*uint8)(unsafe.Pointer(uintptr(addr))) = val
}

// Write16 writes a 16-bit register.
func (Memory) Write16(addr uint64, val uint16) {
	*(*uint16)(unsafe.Pointer(uintptr(addr))) = val
}

// Write32 writes a 32-bit register.
func (Memory) Write32(addr uint64, val uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(uintptr(addr))), val)
}

// Write64 writes a 64-bit register.
func (Memory) Write64(addr uint64, val uint64) {
	atomic.StoreUint64((*uint64)(unsafe.Pointer(uintptr(addr))), val)
}

// Read returns a register value accessed with the argument width in bytes.
func Read(b Bus, addr uint64, width uint32) uint64 {
	switch width {
	case 1:
		return uint64(b.Read8(addr))
	case 2:
		return uint64(b.Read16(addr))
	case 8:
		return b.Read64(addr)
	default:
		return uint64(b.Read32(addr))
	}
}

// Write sets a register value accessed with the argument width in bytes.
func Write(b Bus, addr uint64, width uint32, val uint64) {
	switch width {
	case 1:
		b.Write8(addr, uint8(val))
	case 2:
		b.Write16(addr, uint16(val))
	case 8:
		b.Write64(addr, val)
	default:
		b.Write32(addr, uint32(val))
	}
}
