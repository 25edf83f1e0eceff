// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package sbi defines the contract between a RISC-V Supervisor Binary
// Interface (SBI) firmware framework and the platform support it boots,
// following the specifications at:
//
//	https://github.com/riscv-non-isa/riscv-sbi-doc
//
// The framework selects one cold boot hart, synchronizes all harts and
// dispatches the platform hooks, the platform supplies a descriptor and an
// implementation of the Hooks interface.
package sbi

import (
	"fmt"
)

// Default platform parameters
const (
	// DefaultHartStackSize represents the per-hart firmware stack size.
	DefaultHartStackSize = 8192
)

// Role represents the part a hart plays in a boot phase.
type Role int

const (
	// Cold represents the hart performing global, once per system,
	// initialization before its own per-hart initialization.
	Cold Role = iota
	// Warm represents a hart performing only per-hart initialization.
	Warm
)

func (r Role) String() string {
	switch r {
	case Cold:
		return "cold"
	case Warm:
		return "warm"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Phase represents a boot phase, each served by one platform hook.
type Phase int

// Boot phases
const (
	Early Phase = iota
	Final
	ConsoleInit
	IrqchipInit
	IpiInit
	TimerInit

	// NumPhases represents the number of boot phases.
	NumPhases
)

// Resolve resolves Phase codes into human-readable strings.
func (p Phase) Resolve() string {
	phaseName := map[Phase]string{
		Early:       "early_init",
		Final:       "final_init",
		ConsoleInit: "console_init",
		IrqchipInit: "irqchip_init",
		IpiInit:     "ipi_init",
		TimerInit:   "timer_init",
	}

	if name, ok := phaseName[p]; ok {
		return name
	}

	return fmt.Sprintf("phase(%d)", int(p))
}

func (p Phase) String() string {
	return p.Resolve()
}

// State represents the progress of a hart through a boot phase.
type State int

// Boot phase states, a cold boot hart moves through all of them, any other
// hart moves from NotStarted directly to WarmDone.
const (
	NotStarted State = iota
	ColdDone
	WarmDone
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case ColdDone:
		return "cold done"
	case WarmDone:
		return "warm done"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Hooks represents the platform operations dispatched by the firmware
// framework, one method per boot phase. Each method is called at most once
// per hart, a non-nil error aborts the boot progression of the calling hart.
//
// The framework guarantees that no hart enters the Warm role of a phase
// before the cold boot hart has completed the Cold role of the same phase.
type Hooks interface {
	// EarlyInit is called before any device bring-up.
	EarlyInit(hartid uint32, role Role) error
	// FinalInit is called late in the boot path, before handing over to
	// the next stage.
	FinalInit(hartid uint32, role Role) error
	// ConsoleInit is called once, by the cold boot hart.
	ConsoleInit() error
	// IrqchipInit initializes the interrupt controller.
	IrqchipInit(hartid uint32, role Role) error
	// IpiInit initializes the inter-processor interrupt device.
	IpiInit(hartid uint32, role Role) error
	// TimerInit initializes the timer device.
	TimerInit(hartid uint32, role Role) error
}

// Feature represents a platform feature flag.
type Feature uint64

// Platform features
const (
	// HasMFaultsDelegation represents delegation of misaligned load/store
	// and access faults to supervisor mode.
	HasMFaultsDelegation Feature = 1 << 0

	// DefaultFeatures represents the features enabled when a platform
	// declares no extension.
	DefaultFeatures = HasMFaultsDelegation
)

func (f Feature) String() string {
	if f == 0 {
		return "none"
	}

	s := ""

	if f&HasMFaultsDelegation != 0 {
		s += "mfdeleg "
	}

	if rest := f &^ HasMFaultsDelegation; rest != 0 {
		s += fmt.Sprintf("%#x ", uint64(rest))
	}

	return s[:len(s)-1]
}

// Version returns the two-part version encoding used by platform
// descriptors.
func Version(major, minor uint16) uint32 {
	return uint32(major)<<16 | uint32(minor)
}

// Platform represents a platform descriptor, read once by the firmware
// framework at load.
type Platform struct {
	// FirmwareVersion represents the framework interface version the
	// platform has been written against.
	FirmwareVersion uint32
	// Version represents the platform version.
	Version uint32
	// Name represents the platform name.
	Name string
	// Features represents the platform feature flags.
	Features Feature
	// HartCount represents the number of harts.
	HartCount uint32
	// HartStackSize represents the per-hart stack size.
	HartStackSize uint32
	// Ops represents the platform hooks.
	Ops Hooks
}

func (p *Platform) String() string {
	return fmt.Sprintf("%s v%d.%d (sbi v%d.%d) harts:%d stack:%d features:%s",
		p.Name, p.Version>>16, p.Version&0xffff,
		p.FirmwareVersion>>16, p.FirmwareVersion&0xffff,
		p.HartCount, p.HartStackSize, p.Features)
}
