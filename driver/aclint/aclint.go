// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package aclint implements drivers for the RISC-V Advanced Core Local
// Interruptor (ACLINT) machine-level software interrupt (MSWI) and timer
// (MTIMER) devices, including their SiFive CLINT compatible layout,
// following the specifications at:
//
//	https://github.com/riscv/riscv-aclint
package aclint

import (
	"github.com/usbarmory/go-sbi/mmio"
)

func read64(bus mmio.Bus, addr uint64, wide bool) uint64 {
	if wide {
		return bus.Read64(addr)
	}

	for {
		hi := bus.Read32(addr + 4)
		lo := bus.Read32(addr)

		if bus.Read32(addr+4) == hi {
			return uint64(hi)<<32 | uint64(lo)
		}
	}
}

func write64(bus mmio.Bus, addr uint64, wide bool, val uint64) {
	if wide {
		bus.Write64(addr, val)
		return
	}

	// avoid a spurious match while the halves are inconsistent
	bus.Write32(addr+4, 0xffffffff)
	bus.Write32(addr, uint32(val))
	bus.Write32(addr+4, uint32(val>>32))
}
