// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package plic implements a driver for the RISC-V Platform-Level Interrupt
// Controller (PLIC) following the specifications at:
//
//	https://github.com/riscv/riscv-plic-spec
package plic

import (
	"github.com/usbarmory/go-sbi/mmio"
	"github.com/usbarmory/go-sbi/platform"
	"github.com/usbarmory/go-sbi/sbi"
)

// PLIC registers
const (
	PRIORITY_BASE   = 0x000000
	PRIORITY_STRIDE = 4

	ENABLE_BASE   = 0x002000
	ENABLE_STRIDE = 0x80

	CONTEXT_BASE      = 0x200000
	CONTEXT_STRIDE    = 0x1000
	CONTEXT_THRESHOLD = 0x0
	CONTEXT_CLAIM     = 0x4

	// MaxSources represents the number of interrupt sources addressable
	// by the register map, source 0 is reserved.
	MaxSources = 1023
	// MaxThreshold masks all interrupt priorities.
	MaxThreshold = 0x7
)

// PLIC represents an interrupt controller instance.
type PLIC struct {
	// Bus represents the register bus.
	Bus mmio.Bus

	cfg platform.PLIC
}

func validate(cfg platform.PLIC) error {
	if cfg.Base == 0 {
		return sbi.ErrInvalidAddress
	}

	if cfg.NumSources == 0 || cfg.NumSources > MaxSources {
		return sbi.ErrInvalidParam
	}

	return nil
}

// ColdInit performs the global controller initialization, setting all
// interrupt source priorities to zero (never interrupt).
func (hw *PLIC) ColdInit(cfg platform.PLIC) (err error) {
	if hw.Bus == nil {
		return sbi.ErrInvalidAddress
	}

	if err = validate(cfg); err != nil {
		return
	}

	hw.cfg = cfg

	for src := uint32(1); src <= cfg.NumSources; src++ {
		hw.SetPriority(src, 0)
	}

	return
}

// WarmInit performs the per-hart controller initialization, disabling all
// interrupt sources and masking all priorities for the argument machine and
// supervisor mode contexts. A negative context identifier is skipped.
//
// WarmInit can be invoked concurrently by different harts, it only accesses
// the argument contexts.
func (hw *PLIC) WarmInit(cfg platform.PLIC, mctx int, sctx int) (err error) {
	if hw.Bus == nil {
		return sbi.ErrInvalidAddress
	}

	if err = validate(cfg); err != nil {
		return
	}

	words := cfg.NumSources/32 + 1

	for _, ctx := range []int{mctx, sctx} {
		if ctx < 0 {
			continue
		}

		for i := uint32(0); i < words; i++ {
			hw.Bus.Write32(enable(cfg.Base, ctx, i), 0)
		}
	}

	for _, ctx := range []int{mctx, sctx} {
		if ctx < 0 {
			continue
		}

		hw.Bus.Write32(context(cfg.Base, ctx, CONTEXT_THRESHOLD), MaxThreshold)
	}

	return
}

func enable(base uint64, ctx int, word uint32) uint64 {
	return base + ENABLE_BASE + uint64(ctx)*ENABLE_STRIDE + uint64(word)*4
}

func context(base uint64, ctx int, reg uint64) uint64 {
	return base + CONTEXT_BASE + uint64(ctx)*CONTEXT_STRIDE + reg
}

// SetPriority sets an interrupt source priority.
func (hw *PLIC) SetPriority(src uint32, prio uint32) {
	hw.Bus.Write32(hw.cfg.Base+PRIORITY_BASE+uint64(src)*PRIORITY_STRIDE, prio)
}

// SetThreshold sets the priority threshold of a context.
func (hw *PLIC) SetThreshold(ctx int, threshold uint32) {
	hw.Bus.Write32(context(hw.cfg.Base, ctx, CONTEXT_THRESHOLD), threshold)
}

// Enable enables or disables an interrupt source for a context.
func (hw *PLIC) Enable(ctx int, src uint32, on bool) {
	addr := enable(hw.cfg.Base, ctx, src/32)
	val := hw.Bus.Read32(addr)

	if on {
		val |= 1 << (src % 32)
	} else {
		val &^= 1 << (src % 32)
	}

	hw.Bus.Write32(addr, val)
}

// Claim returns the highest priority pending interrupt source for a
// context, zero when none is pending.
func (hw *PLIC) Claim(ctx int) uint32 {
	return hw.Bus.Read32(context(hw.cfg.Base, ctx, CONTEXT_CLAIM))
}

// Complete signals completion of a claimed interrupt source.
func (hw *PLIC) Complete(ctx int, src uint32) {
	hw.Bus.Write32(context(hw.cfg.Base, ctx, CONTEXT_CLAIM), src)
}
