// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fdt

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/platform"
)

// IRQ_M_EXT represents the machine external interrupt cause
const IRQ_M_EXT = 11

// Fixups represents the device tree changes required by the operating
// system booted after the SBI firmware.
type Fixups struct {
	// HartCount represents the number of harts served by the firmware,
	// cpu nodes beyond it are disabled.
	HartCount uint32
	// PLIC represents the interrupt controller compatible string, its
	// machine mode contexts are hidden from the operating system.
	PLIC string
	// Reserved represents the firmware memory, excluded from the
	// operating system memory map.
	Reserved platform.Region
}

// Apply applies all fixups to the argument device tree.
func (f *Fixups) Apply(tree *dt.FDT) (err error) {
	if tree == nil || tree.RootNode == nil {
		return errors.New("no device tree")
	}

	if err = f.cpus(tree); err != nil {
		return fmt.Errorf("cpu fixup failed, %v", err)
	}

	if err = f.plic(tree); err != nil {
		return fmt.Errorf("plic fixup failed, %v", err)
	}

	if err = f.reservedMemory(tree); err != nil {
		return fmt.Errorf("reserved memory fixup failed, %v", err)
	}

	return
}

func setProperty(n *dt.Node, name string, value []byte) {
	if p := property(n, name); p != nil {
		p.Value = value
		return
	}

	n.Properties = append(n.Properties, dt.Property{
		Name:  name,
		Value: value,
	})
}

func encodeCells(val uint64, n uint32) (b []byte) {
	for i := int(n) - 1; i >= 0; i-- {
		b = binary.BigEndian.AppendUint32(b, uint32(val>>(32*i)))
	}

	return
}

func u32Value(v uint32) []byte {
	return binary.BigEndian.AppendUint32(nil, v)
}

func (f *Fixups) cpus(tree *dt.FDT) error {
	cpus := Child(tree.RootNode, "cpus")

	if cpus == nil {
		return nil
	}

	for _, cpu := range cpus.Children {
		if p := property(cpu, "device_type"); p == nil || string(p.Value) != "cpu\x00" {
			continue
		}

		hartid, _, err := Reg(cpu, cpus, 0)

		if err != nil {
			return err
		}

		if hartid >= uint64(f.HartCount) {
			setProperty(cpu, "status", []byte("disabled\x00"))
		}
	}

	return nil
}

func (f *Fixups) plic(tree *dt.FDT) error {
	if f.PLIC == "" {
		return nil
	}

	n, _, err := FindCompatible(tree, f.PLIC)

	if errors.Is(err, ErrNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	p := property(n, "interrupts-extended")

	if p == nil {
		return nil
	}

	if len(p.Value)%8 != 0 {
		return malformed(n, "invalid interrupts-extended")
	}

	// (phandle, cause) pairs, one per hart context
	for i := 4; i < len(p.Value); i += 8 {
		if binary.BigEndian.Uint32(p.Value[i:]) == IRQ_M_EXT {
			binary.BigEndian.PutUint32(p.Value[i:], 0xffffffff)
		}
	}

	return nil
}

func (f *Fixups) reservedMemory(tree *dt.FDT) error {
	if f.Reserved.Size == 0 {
		return nil
	}

	root := tree.RootNode

	ac, sc, err := Cells(root)

	if err != nil {
		return err
	}

	resv := Child(root, "reserved-memory")

	if resv == nil {
		resv = &dt.Node{
			Name: "reserved-memory",
			Properties: []dt.Property{
				{Name: "#address-cells", Value: u32Value(ac)},
				{Name: "#size-cells", Value: u32Value(sc)},
				{Name: "ranges", Value: []byte{}},
			},
		}

		root.Children = append(root.Children, resv)
	} else if ac, sc, err = Cells(resv); err != nil {
		return err
	}

	name := fmt.Sprintf("mmode_resv0@%x", f.Reserved.Base)

	if Child(resv, name) != nil {
		return nil
	}

	reg := append(encodeCells(f.Reserved.Base, ac), encodeCells(f.Reserved.Size, sc)...)

	resv.Children = append(resv.Children, &dt.Node{
		Name: name,
		Properties: []dt.Property{
			{Name: "reg", Value: reg},
			{Name: "no-map", Value: []byte{}},
		},
	})

	return nil
}
