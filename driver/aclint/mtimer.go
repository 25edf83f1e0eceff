// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package aclint

import (
	"github.com/usbarmory/go-sbi/mmio"
	"github.com/usbarmory/go-sbi/platform"
	"github.com/usbarmory/go-sbi/sbi"
)

// MTIMECMP register stride
const MTIMECMP_STRIDE = 8

// MTimer represents a machine-level timer device instance.
type MTimer struct {
	// Bus represents the register bus.
	Bus mmio.Bus

	cfg platform.MTimer
}

// ColdInit performs the global device initialization, validating the
// register layout.
func (hw *MTimer) ColdInit(cfg platform.MTimer) error {
	if hw.Bus == nil || cfg.MtimeAddr == 0 || cfg.MtimecmpAddr == 0 {
		return sbi.ErrInvalidAddress
	}

	if cfg.MtimeAddr%8 != 0 || cfg.MtimecmpAddr%8 != 0 {
		return sbi.ErrInvalidAddress
	}

	if cfg.Frequency == 0 || cfg.HartCount == 0 || cfg.MtimeSize != 8 ||
		cfg.MtimecmpSize < uint64(cfg.HartCount)*MTIMECMP_STRIDE {
		return sbi.ErrInvalidParam
	}

	hw.cfg = cfg

	return nil
}

func (hw *MTimer) mtimecmp(hartid uint32) (addr uint64, err error) {
	if hw.cfg.MtimecmpAddr == 0 {
		return 0, sbi.ErrDenied
	}

	if hartid < hw.cfg.FirstHartID || hartid-hw.cfg.FirstHartID >= hw.cfg.HartCount {
		return 0, sbi.ErrInvalidParam
	}

	return hw.cfg.MtimecmpAddr + uint64(hartid-hw.cfg.FirstHartID)*MTIMECMP_STRIDE, nil
}

// WarmInit performs the per-hart device initialization, disarming the
// compare register of the argument hart.
func (hw *MTimer) WarmInit(hartid uint32) error {
	return hw.SetCompare(hartid, ^uint64(0))
}

// SetCompare arms the compare register of the argument hart.
func (hw *MTimer) SetCompare(hartid uint32, val uint64) error {
	addr, err := hw.mtimecmp(hartid)

	if err != nil {
		return err
	}

	write64(hw.Bus, addr, hw.cfg.Has64BitMMIO, val)

	return nil
}

// Value returns the current mtime tick count.
func (hw *MTimer) Value() uint64 {
	if hw.cfg.MtimeAddr == 0 {
		return 0
	}

	return read64(hw.Bus, hw.cfg.MtimeAddr, hw.cfg.Has64BitMMIO)
}

// Nanotime returns the time elapsed since mtime reset in nanoseconds.
func (hw *MTimer) Nanotime() int64 {
	if hw.cfg.Frequency == 0 {
		return 0
	}

	ticks := hw.Value()
	freq := hw.cfg.Frequency

	return int64(ticks/freq*1e9 + ticks%freq*1e9/freq)
}
