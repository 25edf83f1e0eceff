// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package fdt implements the flattened device tree handling of the SBI
// firmware: decoding of board description entries, resolution of platform
// configuration overrides and fixups for the next boot stage.
//
// Device tree encoding and decoding is performed with the u-root dt package,
// see https://github.com/u-root/u-root.
package fdt

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/u-root/u-root/pkg/dt"
)

// Blob represents a flattened device tree held in memory, as handed over by
// the previous boot stage.
type Blob struct {
	buf []byte
}

// NewBlob returns a device tree backed by the argument buffer.
func NewBlob(buf []byte) *Blob {
	return &Blob{buf: buf}
}

// Tree decodes the device tree.
func (b *Blob) Tree() (*dt.FDT, error) {
	if b == nil || len(b.buf) == 0 {
		return nil, errors.New("device tree not present")
	}

	return dt.ReadFDT(bytes.NewReader(b.buf))
}

// Update encodes the argument device tree in place of the current one.
func (b *Blob) Update(tree *dt.FDT) (err error) {
	buf := new(bytes.Buffer)

	if _, err = tree.Write(buf); err != nil {
		return
	}

	if buf.Len() > len(b.buf) {
		return fmt.Errorf("device tree exceeds capacity (%d > %d)", buf.Len(), len(b.buf))
	}

	copy(b.buf, buf.Bytes())

	return
}
