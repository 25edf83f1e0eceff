// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago

package fdt

import (
	"errors"

	"github.com/usbarmory/tamago/dma"
)

// Open maps a flattened device tree located in physical memory at the
// argument address. The size represents the blob capacity, fixups are
// written back in place and cannot grow the blob beyond it.
//
// Open is only meant to be used with `GOOS=tamago` as supported by the
// TamaGo framework for bare metal Go, see https://github.com/usbarmory/tamago.
func Open(addr uint, size int) (b *Blob, err error) {
	if addr == 0 || size <= 0 {
		return nil, errors.New("invalid device tree location")
	}

	r, err := dma.NewRegion(addr, size, false)

	if err != nil {
		return
	}

	_, buf := r.Reserve(size, 0)

	return NewBlob(buf), nil
}
