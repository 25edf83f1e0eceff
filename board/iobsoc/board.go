// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package iobsoc

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/fdt"
	"github.com/usbarmory/go-sbi/platform"
	"github.com/usbarmory/go-sbi/sbi"
)

// Board represents the iob-soc platform support, it implements the
// sbi.Hooks interface.
//
// The Console, IrqChip, IPI and Timer drivers must be set before the first
// hook is invoked, DeviceTree can be left nil when no device tree is handed
// over by the previous boot stage.
type Board struct {
	Console Console
	IrqChip IrqChip
	IPI     IPI
	Timer   Timer

	DeviceTree DeviceTree

	// Reserved represents the firmware memory region advertised to the
	// next stage as reserved.
	Reserved platform.Region

	ctx    *platform.Context
	harts  uint32
	report fdt.Report

	console atomic.Bool
	cold    [sbi.NumPhases]atomic.Bool

	// per-hart phase progress, each slot is only written by its own hart
	state [][sbi.NumPhases]sbi.State

	once     sync.Once
	platform *sbi.Platform
}

// New returns the platform support for the argument number of harts, using
// the argument registry as configuration.
func New(ctx *platform.Context, harts uint32) *Board {
	return &Board{
		ctx:   ctx,
		harts: harts,
		state: make([][sbi.NumPhases]sbi.State, harts),
	}
}

// Context returns the board configuration registry.
func (b *Board) Context() *platform.Context {
	return b.ctx
}

// Report returns the outcome of the device tree resolution performed during
// cold early initialization.
func (b *Board) Report() fdt.Report {
	return b.report
}

// State returns the progress of a hart through a boot phase.
func (b *Board) State(hartid uint32, phase sbi.Phase) sbi.State {
	if hartid >= b.harts || phase < 0 || phase >= sbi.NumPhases {
		return sbi.NotStarted
	}

	return b.state[hartid][phase]
}

// MachineContext returns the PLIC context serving machine mode interrupts
// on a hart.
func MachineContext(hartid uint32) int {
	return int(2 * hartid)
}

// SupervisorContext returns the PLIC context serving supervisor mode
// interrupts on a hart.
func SupervisorContext(hartid uint32) int {
	return int(2*hartid + 1)
}

// bringup sequences the cold (global) and warm (per-hart) halves of a boot
// phase, driver errors are returned unmodified.
func (b *Board) bringup(phase sbi.Phase, hartid uint32, role sbi.Role, cold func() error, warm func() error) (err error) {
	if hartid >= b.harts {
		return sbi.ErrInvalidParam
	}

	state := &b.state[hartid][phase]

	if *state == sbi.WarmDone {
		return sbi.ErrAlreadyStarted
	}

	switch role {
	case sbi.Cold:
		if b.cold[phase].Load() {
			return sbi.ErrAlreadyStarted
		}

		if cold != nil {
			if err = cold(); err != nil {
				return
			}
		}

		*state = sbi.ColdDone
		b.cold[phase].Store(true)
	case sbi.Warm:
		if !b.cold[phase].Load() {
			return sbi.ErrDenied
		}
	default:
		return sbi.ErrInvalidParam
	}

	if warm != nil {
		if err = warm(); err != nil {
			return
		}
	}

	*state = sbi.WarmDone

	return
}

// EarlyInit resolves the device tree overrides and freezes the registry on
// the cold boot hart, device tree issues are logged and never fail the boot.
func (b *Board) EarlyInit(hartid uint32, role sbi.Role) error {
	return b.bringup(sbi.Early, hartid, role, func() error {
		b.report = Resolver.Resolve(b.ctx, b.tree())
		b.ctx.Freeze()
		return nil
	}, nil)
}

// FinalInit applies the device tree fixups for the next stage on the cold
// boot hart, fixup issues are logged and never fail the boot.
func (b *Board) FinalInit(hartid uint32, role sbi.Role) error {
	return b.bringup(sbi.Final, hartid, role, func() error {
		tree := b.tree()

		if tree == nil {
			return nil
		}

		fixups := &fdt.Fixups{
			HartCount: b.harts,
			PLIC:      PLIC_COMPAT,
			Reserved:  b.Reserved,
		}

		if err := fixups.Apply(tree); err != nil {
			log.Printf("iob-soc: device tree fixup error, %v", err)
			return nil
		}

		if err := b.DeviceTree.Update(tree); err != nil {
			log.Printf("iob-soc: device tree update error, %v", err)
		}

		return nil
	}, nil)
}

// ConsoleInit initializes the serial console with the resolved
// configuration.
func (b *Board) ConsoleInit() error {
	if !b.console.CompareAndSwap(false, true) {
		return sbi.ErrAlreadyStarted
	}

	return b.Console.Init(b.ctx.Serial())
}

// IrqchipInit initializes the PLIC sources on the cold boot hart, then the
// machine and supervisor contexts of the calling hart.
func (b *Board) IrqchipInit(hartid uint32, role sbi.Role) error {
	cfg := b.ctx.PLIC()

	return b.bringup(sbi.IrqchipInit, hartid, role, func() error {
		return b.IrqChip.ColdInit(cfg)
	}, func() error {
		return b.IrqChip.WarmInit(cfg, MachineContext(hartid), SupervisorContext(hartid))
	})
}

// IpiInit initializes the MSWI device on the cold boot hart, then the
// software interrupt of the calling hart.
func (b *Board) IpiInit(hartid uint32, role sbi.Role) error {
	return b.bringup(sbi.IpiInit, hartid, role, func() error {
		return b.IPI.ColdInit(b.ctx.MSWI())
	}, func() error {
		return b.IPI.WarmInit(hartid)
	})
}

// TimerInit initializes the MTIMER device on the cold boot hart, then the
// timer compare register of the calling hart.
func (b *Board) TimerInit(hartid uint32, role sbi.Role) error {
	return b.bringup(sbi.TimerInit, hartid, role, func() error {
		return b.Timer.ColdInit(b.ctx.MTimer())
	}, func() error {
		return b.Timer.WarmInit(hartid)
	})
}

func (b *Board) tree() *dt.FDT {
	if b.DeviceTree == nil {
		return nil
	}

	tree, err := b.DeviceTree.Tree()

	if err != nil {
		log.Printf("iob-soc: device tree error, %v", err)
		return nil
	}

	return tree
}

// Platform returns the platform descriptor, built once.
func (b *Board) Platform() *sbi.Platform {
	b.once.Do(func() {
		b.platform = &sbi.Platform{
			FirmwareVersion: sbi.Version(FIRMWARE_VERSION_MAJOR, FIRMWARE_VERSION_MINOR),
			Version:         Version(),
			Name:            NAME,
			Features:        sbi.DefaultFeatures,
			HartCount:       b.harts,
			HartStackSize:   sbi.DefaultHartStackSize,
			Ops:             b,
		}
	})

	return b.platform
}
