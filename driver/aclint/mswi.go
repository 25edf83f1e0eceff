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

// MSIP register stride
const MSIP_STRIDE = 4

// MSWI represents a machine-level software interrupt device instance.
type MSWI struct {
	// Bus represents the register bus.
	Bus mmio.Bus

	cfg platform.MSWI
}

// ColdInit performs the global device initialization, clearing pending
// software interrupts of all harts served by the device.
func (hw *MSWI) ColdInit(cfg platform.MSWI) error {
	if hw.Bus == nil || cfg.Base == 0 {
		return sbi.ErrInvalidAddress
	}

	if cfg.HartCount == 0 || cfg.Size < uint64(cfg.HartCount)*MSIP_STRIDE {
		return sbi.ErrInvalidParam
	}

	hw.cfg = cfg

	for i := uint32(0); i < cfg.HartCount; i++ {
		hw.Bus.Write32(cfg.Base+uint64(i)*MSIP_STRIDE, 0)
	}

	return nil
}

func (hw *MSWI) msip(hartid uint32) (addr uint64, err error) {
	if hw.cfg.Base == 0 {
		return 0, sbi.ErrDenied
	}

	if hartid < hw.cfg.FirstHartID || hartid-hw.cfg.FirstHartID >= hw.cfg.HartCount {
		return 0, sbi.ErrInvalidParam
	}

	return hw.cfg.Base + uint64(hartid-hw.cfg.FirstHartID)*MSIP_STRIDE, nil
}

// WarmInit performs the per-hart device initialization, clearing any
// pending software interrupt of the argument hart.
func (hw *MSWI) WarmInit(hartid uint32) error {
	return hw.Clear(hartid)
}

// Send raises a machine-level software interrupt on the argument hart.
func (hw *MSWI) Send(hartid uint32) error {
	addr, err := hw.msip(hartid)

	if err != nil {
		return err
	}

	hw.Bus.Write32(addr, 1)

	return nil
}

// Clear clears the machine-level software interrupt of the argument hart.
func (hw *MSWI) Clear(hartid uint32) error {
	addr, err := hw.msip(hartid)

	if err != nil {
		return err
	}

	hw.Bus.Write32(addr, 0)

	return nil
}

// Pending reports whether a software interrupt is pending on the argument
// hart.
func (hw *MSWI) Pending(hartid uint32) bool {
	addr, err := hw.msip(hartid)

	if err != nil {
		return false
	}

	return hw.Bus.Read32(addr)&1 != 0
}
