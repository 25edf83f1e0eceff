// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package iobsoc

import (
	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/driver/aclint"
	"github.com/usbarmory/go-sbi/driver/plic"
	"github.com/usbarmory/go-sbi/driver/uart8250"
	"github.com/usbarmory/go-sbi/fdt"
	"github.com/usbarmory/go-sbi/platform"
)

//go:generate mockgen -source=driver.go -destination=mock_driver_test.go -package=iobsoc

// Console represents the serial console driver.
type Console interface {
	Init(cfg platform.Serial) error
}

// IrqChip represents the interrupt controller driver.
type IrqChip interface {
	ColdInit(cfg platform.PLIC) error
	WarmInit(cfg platform.PLIC, mctx int, sctx int) error
}

// IPI represents the inter-processor interrupt device driver.
type IPI interface {
	ColdInit(cfg platform.MSWI) error
	WarmInit(hartid uint32) error
}

// Timer represents the timer device driver.
type Timer interface {
	ColdInit(cfg platform.MTimer) error
	WarmInit(hartid uint32) error
}

// DeviceTree represents the device tree handed over by the previous boot
// stage.
type DeviceTree interface {
	Tree() (*dt.FDT, error)
	Update(tree *dt.FDT) error
}

var (
	_ Console    = &uart8250.UART{}
	_ IrqChip    = &plic.PLIC{}
	_ IPI        = &aclint.MSWI{}
	_ Timer      = &aclint.MTimer{}
	_ DeviceTree = &fdt.Blob{}
)
