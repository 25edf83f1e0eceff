// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package platform

import (
	"fmt"
)

// SiFive CLINT compatible layout of the ACLINT devices
const (
	CLINTMSWIOffset   = 0x0000
	CLINTMTimerOffset = 0x4000

	MSWISize = 0x4000

	MTimeOffset    = 0x7ff8
	MTimeSize      = 0x8
	MTimecmpOffset = 0x0000
	MTimecmpSize   = 0x7ff8
)

// Serial represents an 8250/16550 compatible UART configuration.
type Serial struct {
	// Base represents the register base address.
	Base uint64
	// Frequency represents the input clock frequency in Hz.
	Frequency uint32
	// Baudrate represents the line speed.
	Baudrate uint32

	// RegShift represents the register address shift.
	RegShift uint32
	// RegWidth represents the register access width in bytes.
	RegWidth uint32
	// RegOffset represents the offset of the first register from Base.
	RegOffset uint32
}

// Region returns the memory mapped region of the UART registers.
func (s Serial) Region() Region {
	return Region{
		Base: s.Base + uint64(s.RegOffset),
		Size: uint64(8) << s.RegShift,
	}
}

func (s Serial) String() string {
	return fmt.Sprintf("base:%#x freq:%d baud:%d shift:%d width:%d offset:%#x",
		s.Base, s.Frequency, s.Baudrate, s.RegShift, s.RegWidth, s.RegOffset)
}

// PLIC represents a Platform-Level Interrupt Controller configuration.
type PLIC struct {
	Base       uint64
	Size       uint64
	NumSources uint32
}

// Region returns the memory mapped region of the controller.
func (p PLIC) Region() Region {
	return Region{
		Base: p.Base,
		Size: p.Size,
	}
}

func (p PLIC) String() string {
	return fmt.Sprintf("base:%#x size:%#x sources:%d", p.Base, p.Size, p.NumSources)
}

// MSWI represents an ACLINT machine-level software interrupt device
// configuration.
type MSWI struct {
	Base        uint64
	Size        uint64
	FirstHartID uint32
	HartCount   uint32
}

// Region returns the memory mapped region of the device.
func (m MSWI) Region() Region {
	return Region{
		Base: m.Base,
		Size: m.Size,
	}
}

func (m MSWI) String() string {
	return fmt.Sprintf("base:%#x size:%#x harts:%d-%d",
		m.Base, m.Size, m.FirstHartID, m.FirstHartID+m.HartCount-1)
}

// MTimer represents an ACLINT machine-level timer device configuration.
type MTimer struct {
	// Frequency represents the mtime tick frequency in Hz.
	Frequency uint64

	MtimeAddr    uint64
	MtimeSize    uint64
	MtimecmpAddr uint64
	MtimecmpSize uint64

	FirstHartID uint32
	HartCount   uint32

	// Has64BitMMIO reports whether registers can be accessed with 64-bit
	// loads and stores.
	Has64BitMMIO bool
}

// Region returns the memory mapped region spanning both mtime and mtimecmp
// registers.
func (t MTimer) Region() Region {
	start := min(t.MtimeAddr, t.MtimecmpAddr)
	end := max(t.MtimeAddr+t.MtimeSize, t.MtimecmpAddr+t.MtimecmpSize)

	return Region{
		Base: start,
		Size: end - start,
	}
}

func (t MTimer) String() string {
	return fmt.Sprintf("freq:%d mtime:%#x/%#x mtimecmp:%#x/%#x harts:%d-%d 64bit:%v",
		t.Frequency, t.MtimeAddr, t.MtimeSize, t.MtimecmpAddr, t.MtimecmpSize,
		t.FirstHartID, t.FirstHartID+t.HartCount-1, t.Has64BitMMIO)
}
