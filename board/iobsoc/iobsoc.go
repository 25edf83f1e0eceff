// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package iobsoc provides the SBI platform support for the IObundle iob-soc
// RISC-V system-on-chip: compiled hardware defaults, device tree override
// policy and the boot hooks bringing each hart from reset to the point where
// an operating system can run.
//
// This package is only meant to be used with `GOOS=tamago` as supported by
// the TamaGo framework for bare metal Go, see
// https://github.com/usbarmory/tamago, its logic is however independent
// from the target and can be exercised against simulated drivers.
package iobsoc

import (
	"github.com/usbarmory/go-sbi/fdt"
	"github.com/usbarmory/go-sbi/platform"
	"github.com/usbarmory/go-sbi/sbi"
)

// Platform identity
const (
	NAME = "iob-soc"

	VERSION_MAJOR = 0
	VERSION_MINOR = 1

	// SBI implementation version the hooks are written against
	FIRMWARE_VERSION_MAJOR = 1
	FIRMWARE_VERSION_MINOR = 3

	HART_COUNT = 1
)

// Peripheral registers
const (
	// Platform-Level Interrupt Controller
	PLIC_BASE        = 0xfc000000
	PLIC_SIZE        = 0x04000000
	PLIC_NUM_SOURCES = 32

	// Core Local Interruptor (ACLINT MSWI and MTIMER)
	CLINT_BASE  = 0xf8000000
	MTIMER_FREQ = 100000000

	// Serial port
	UART_BASE       = 0xf4000000
	UART_INPUT_FREQ = 100000000
	UART_BAUDRATE   = 115200
)

// Device tree compatible strings
const (
	UART_COMPAT  = "ns16550"
	PLIC_COMPAT  = "riscv,plic0"
	CLINT_COMPAT = "riscv,clint0"
)

// Resolver represents the board device tree override policy.
var Resolver = &fdt.Resolver{
	UART:  UART_COMPAT,
	PLIC:  PLIC_COMPAT,
	CLINT: CLINT_COMPAT,
}

// Defaults returns a configuration registry seeded with the board
// compile-time defaults.
func Defaults() *platform.Context {
	serial := platform.Serial{
		Base:      UART_BASE,
		Frequency: UART_INPUT_FREQ,
		Baudrate:  UART_BAUDRATE,
		RegShift:  0,
		RegWidth:  1,
		RegOffset: 0,
	}

	plic := platform.PLIC{
		Base:       PLIC_BASE,
		Size:       PLIC_SIZE,
		NumSources: PLIC_NUM_SOURCES,
	}

	mswi := platform.MSWI{
		Base:        CLINT_BASE + platform.CLINTMSWIOffset,
		Size:        platform.MSWISize,
		FirstHartID: 0,
		HartCount:   HART_COUNT,
	}

	mtimer := platform.MTimer{
		Frequency:    MTIMER_FREQ,
		MtimeAddr:    CLINT_BASE + platform.CLINTMTimerOffset + platform.MTimeOffset,
		MtimeSize:    platform.MTimeSize,
		MtimecmpAddr: CLINT_BASE + platform.CLINTMTimerOffset + platform.MTimecmpOffset,
		MtimecmpSize: platform.MTimecmpSize,
		FirstHartID:  0,
		HartCount:    HART_COUNT,
		Has64BitMMIO: true,
	}

	return platform.NewContext(serial, plic, mswi, mtimer)
}

// Version returns the platform version encoding.
func Version() uint32 {
	return sbi.Version(VERSION_MAJOR, VERSION_MINOR)
}
