// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64

package main

import (
	_ "unsafe"

	"github.com/usbarmory/tamago/riscv64"
	"github.com/usbarmory/tamago/soc/sifive/clint"

	"github.com/usbarmory/go-sbi/board/iobsoc"
	"github.com/usbarmory/go-sbi/driver/aclint"
	"github.com/usbarmory/go-sbi/driver/plic"
	"github.com/usbarmory/go-sbi/driver/uart8250"
	"github.com/usbarmory/go-sbi/mmio"
)

// Memory layout
const (
	RAM_START = 0x80000000
	RAM_SIZE  = 0x04000000
)

// Peripheral instances
var (
	// RISC-V core
	RV64 = &riscv64.CPU{}

	// Serial port
	UART0 = &uart8250.UART{Bus: mmio.Memory{}}

	// Platform-Level Interrupt Controller
	PLIC = &plic.PLIC{Bus: mmio.Memory{}}

	// Machine-level software interrupts
	MSWI = &aclint.MSWI{Bus: mmio.Memory{}}

	// Machine-level timer
	MTIMER = &aclint.MTimer{Bus: mmio.Memory{}}

	// Runtime clock
	CLINT = &clint.CLINT{
		Base:   iobsoc.CLINT_BASE,
		RTCCLK: iobsoc.MTIMER_FREQ,
	}
)

//go:linkname ramStart runtime.ramStart
var ramStart uint64 = RAM_START

//go:linkname ramSize runtime.ramSize
var ramSize uint64 = RAM_SIZE

//go:linkname nanotime runtime/goos.Nanotime
func nanotime() int64 {
	return CLINT.Nanotime()
}

//go:linkname printk runtime.printk
func printk(c byte) {
	if c == 0x0a { // LF
		UART0.Tx(0x0d) // CR
	}

	UART0.Tx(c)
}

// Init takes care of the lower level initialization triggered early in runtime
// setup.
//
//go:linkname Init runtime/goos.Hwinit1
func Init() {
	defaults := iobsoc.Defaults()

	// initialize CPU
	RV64.Init()

	// the serial port is programmed by the previous stage, it is only
	// reconfigured once device tree overrides are resolved
	UART0.Attach(defaults.Serial())
}
