// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package platform implements the configuration registry of a RISC-V
// platform, holding one record for each hardware subsystem handed over to the
// SBI firmware: serial port, interrupt controller (PLIC), inter-processor
// interrupt device (ACLINT MSWI) and timer (ACLINT MTIMER).
//
// Records are seeded with the board compile-time defaults, may be replaced
// wholesale while the cold boot hart resolves device tree overrides and are
// read-only once the registry is frozen.
package platform

import (
	"errors"
	"fmt"
	"slices"
)

// Subsystem names, as reported by Regions and Overlap.
const (
	SerialName = "serial"
	PLICName   = "plic"
	MSWIName   = "mswi"
	MTimerName = "mtimer"
)

// ErrFrozen is returned when a record is set after the registry has been
// frozen.
var ErrFrozen = errors.New("platform configuration is frozen")

// Region represents a memory mapped hardware region.
type Region struct {
	Base uint64
	Size uint64
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return r.Base + r.Size
}

// Overlaps reports whether two regions share at least one address, empty
// regions never overlap.
func (r Region) Overlaps(o Region) bool {
	if r.Size == 0 || o.Size == 0 {
		return false
	}

	return r.Base < o.End() && o.Base < r.End()
}

// String returns the region as an address range.
func (r Region) String() string {
	return fmt.Sprintf("%#010x-%#010x", r.Base, r.End())
}

// Context represents the configuration registry of a platform.
type Context struct {
	serial Serial
	plic   PLIC
	mswi   MSWI
	mtimer MTimer

	frozen bool
}

// NewContext returns a registry seeded with the argument records.
func NewContext(serial Serial, plic PLIC, mswi MSWI, mtimer MTimer) *Context {
	return &Context{
		serial: serial,
		plic:   plic,
		mswi:   mswi,
		mtimer: mtimer,
	}
}

// Serial returns the serial port configuration.
func (c *Context) Serial() Serial {
	return c.serial
}

// SetSerial replaces the serial port configuration.
func (c *Context) SetSerial(s Serial) error {
	if c.frozen {
		return ErrFrozen
	}

	c.serial = s
	return nil
}

// PLIC returns the interrupt controller configuration.
func (c *Context) PLIC() PLIC {
	return c.plic
}

// SetPLIC replaces the interrupt controller configuration.
func (c *Context) SetPLIC(p PLIC) error {
	if c.frozen {
		return ErrFrozen
	}

	c.plic = p
	return nil
}

// MSWI returns the inter-processor interrupt device configuration.
func (c *Context) MSWI() MSWI {
	return c.mswi
}

// SetMSWI replaces the inter-processor interrupt device configuration.
func (c *Context) SetMSWI(m MSWI) error {
	if c.frozen {
		return ErrFrozen
	}

	c.mswi = m
	return nil
}

// MTimer returns the timer configuration.
func (c *Context) MTimer() MTimer {
	return c.mtimer
}

// SetMTimer replaces the timer configuration.
func (c *Context) SetMTimer(t MTimer) error {
	if c.frozen {
		return ErrFrozen
	}

	c.mtimer = t
	return nil
}

// Freeze ends the registry write window, any further set operation fails
// with ErrFrozen.
func (c *Context) Freeze() {
	c.frozen = true
}

// Frozen reports whether the registry has been frozen.
func (c *Context) Frozen() bool {
	return c.frozen
}

// Regions returns the memory mapped regions of all subsystems, indexed by
// subsystem name.
func (c *Context) Regions() map[string]Region {
	return map[string]Region{
		SerialName: c.serial.Region(),
		PLICName:   c.plic.Region(),
		MSWIName:   c.mswi.Region(),
		MTimerName: c.mtimer.Region(),
	}
}

// Overlap returns the name of the first subsystem, other than the ones
// passed in skip, whose region overlaps with r. An empty string is returned
// when no overlap exists.
func (c *Context) Overlap(r Region, skip ...string) string {
	regions := c.Regions()

	for _, name := range []string{SerialName, PLICName, MSWIName, MTimerName} {
		if slices.Contains(skip, name) {
			continue
		}

		if regions[name].Overlaps(r) {
			return name
		}
	}

	return ""
}
