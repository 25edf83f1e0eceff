// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fdt

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/platform"
)

// Default cell sizes, when not specified by the parent node
const (
	defaultAddressCells = 2
	defaultSizeCells    = 1
)

// Default serial port parameters, when not specified by the node
const (
	DefaultBaudrate = 115200
	DefaultRegWidth = 1
)

var (
	// ErrNotFound is returned when no node matches a lookup.
	ErrNotFound = errors.New("device tree node not found")
	// ErrMalformed is returned when a matching node lacks a required
	// property or carries an invalid one.
	ErrMalformed = errors.New("malformed device tree node")
)

func property(n *dt.Node, name string) *dt.Property {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return &n.Properties[i]
		}
	}

	return nil
}

func malformed(n *dt.Node, format string, a ...any) error {
	return fmt.Errorf("%s: %s, %w", n.Name, fmt.Sprintf(format, a...), ErrMalformed)
}

func u32(n *dt.Node, name string) (val uint32, err error) {
	p := property(n, name)

	if p == nil {
		return 0, malformed(n, "missing %s", name)
	}

	if len(p.Value) != 4 {
		return 0, malformed(n, "invalid %s", name)
	}

	if val, err = p.AsU32(); err != nil {
		return 0, malformed(n, "invalid %s", name)
	}

	return
}

func u32Default(n *dt.Node, name string, def uint32) (val uint32, err error) {
	if property(n, name) == nil {
		return def, nil
	}

	return u32(n, name)
}

// Compatible returns the compatible string list of a node.
func Compatible(n *dt.Node) []string {
	p := property(n, "compatible")

	if p == nil {
		return nil
	}

	return strings.FieldsFunc(string(p.Value), func(r rune) bool {
		return r == 0
	})
}

func walk(n *dt.Node, parent *dt.Node, fn func(n *dt.Node, parent *dt.Node) bool) bool {
	if fn(n, parent) {
		return true
	}

	for _, child := range n.Children {
		if walk(child, n, fn) {
			return true
		}
	}

	return false
}

// FindCompatible returns the first node, in depth-first order, whose
// compatible list includes the argument string, along with its parent.
func FindCompatible(tree *dt.FDT, compat string) (node *dt.Node, parent *dt.Node, err error) {
	if tree == nil || tree.RootNode == nil {
		return nil, nil, fmt.Errorf("no device tree, %w", ErrNotFound)
	}

	walk(tree.RootNode, nil, func(n *dt.Node, p *dt.Node) bool {
		for _, c := range Compatible(n) {
			if c == compat {
				node = n
				parent = p
				return true
			}
		}

		return false
	})

	if node == nil {
		return nil, nil, fmt.Errorf("no %q node, %w", compat, ErrNotFound)
	}

	return
}

// Child returns the direct child of a node with the argument name, the unit
// address is ignored when not part of name.
func Child(n *dt.Node, name string) *dt.Node {
	if n == nil {
		return nil
	}

	for _, child := range n.Children {
		if child.Name == name || strings.HasPrefix(child.Name, name+"@") {
			return child
		}
	}

	return nil
}

// Cells returns the #address-cells and #size-cells values a node defines for
// its children.
func Cells(n *dt.Node) (addressCells uint32, sizeCells uint32, err error) {
	addressCells = defaultAddressCells
	sizeCells = defaultSizeCells

	if n == nil {
		return
	}

	if addressCells, err = u32Default(n, "#address-cells", defaultAddressCells); err != nil {
		return
	}

	sizeCells, err = u32Default(n, "#size-cells", defaultSizeCells)

	return
}

func cells(b []byte, n uint32) (val uint64) {
	for i := uint32(0); i < n; i++ {
		val = val<<32 | uint64(binary.BigEndian.Uint32(b[i*4:]))
	}

	return
}

// Reg returns the address and size of the argument entry of a node reg
// property, decoded with the cell sizes of its parent.
func Reg(n *dt.Node, parent *dt.Node, index int) (addr uint64, size uint64, err error) {
	ac, sc, err := Cells(parent)

	if err != nil {
		return
	}

	if ac == 0 || ac > 2 || sc > 2 {
		return 0, 0, malformed(n, "unsupported cells %d/%d", ac, sc)
	}

	p := property(n, "reg")

	if p == nil {
		return 0, 0, malformed(n, "missing reg")
	}

	entry := int(ac+sc) * 4
	off := entry * index

	if index < 0 || len(p.Value) < off+entry {
		return 0, 0, malformed(n, "reg entry %d out of range", index)
	}

	addr = cells(p.Value[off:], ac)
	size = cells(p.Value[off+int(ac)*4:], sc)

	return
}

// region returns the first reg entry of a device node, a zero address or
// size marks the node as malformed.
func region(n *dt.Node, parent *dt.Node) (addr uint64, size uint64, err error) {
	if addr, size, err = Reg(n, parent, 0); err != nil {
		return
	}

	if addr == 0 || size == 0 {
		return 0, 0, malformed(n, "invalid reg %#x/%#x", addr, size)
	}

	return
}

// ParseUART8250 decodes the first 8250/16550 compatible serial port node.
func ParseUART8250(tree *dt.FDT, compat string) (s platform.Serial, err error) {
	n, parent, err := FindCompatible(tree, compat)

	if err != nil {
		return
	}

	if s.Base, _, err = region(n, parent); err != nil {
		return platform.Serial{}, err
	}

	if s.Frequency, err = u32(n, "clock-frequency"); err != nil {
		return platform.Serial{}, err
	}

	if s.Baudrate, err = u32Default(n, "current-speed", DefaultBaudrate); err != nil {
		return platform.Serial{}, err
	}

	if s.RegShift, err = u32Default(n, "reg-shift", 0); err != nil {
		return platform.Serial{}, err
	}

	if s.RegWidth, err = u32Default(n, "reg-io-width", DefaultRegWidth); err != nil {
		return platform.Serial{}, err
	}

	if s.RegOffset, err = u32Default(n, "reg-offset", 0); err != nil {
		return platform.Serial{}, err
	}

	return
}

// ParsePLIC decodes the first PLIC compatible interrupt controller node.
func ParsePLIC(tree *dt.FDT, compat string) (p platform.PLIC, err error) {
	n, parent, err := FindCompatible(tree, compat)

	if err != nil {
		return
	}

	if p.Base, p.Size, err = region(n, parent); err != nil {
		return platform.PLIC{}, err
	}

	if p.NumSources, err = u32(n, "riscv,ndev"); err != nil {
		return platform.PLIC{}, err
	}

	return
}

// ParseTimebaseFrequency decodes the timebase frequency of the /cpus node.
func ParseTimebaseFrequency(tree *dt.FDT) (freq uint64, err error) {
	if tree == nil || tree.RootNode == nil {
		return 0, fmt.Errorf("no device tree, %w", ErrNotFound)
	}

	cpus := Child(tree.RootNode, "cpus")

	if cpus == nil {
		return 0, fmt.Errorf("no cpus node, %w", ErrNotFound)
	}

	p := property(cpus, "timebase-frequency")

	if p == nil {
		return 0, fmt.Errorf("no timebase-frequency, %w", ErrNotFound)
	}

	switch len(p.Value) {
	case 4:
		var v uint32
		v, err = p.AsU32()
		freq = uint64(v)
	case 8:
		freq, err = p.AsU64()
	default:
		return 0, malformed(cpus, "invalid timebase-frequency")
	}

	if err != nil || freq == 0 {
		return 0, malformed(cpus, "invalid timebase-frequency")
	}

	return
}

// ParseCompatAddr decodes the address of the first node compatible with the
// argument string.
func ParseCompatAddr(tree *dt.FDT, compat string) (addr uint64, err error) {
	n, parent, err := FindCompatible(tree, compat)

	if err != nil {
		return
	}

	if addr, _, err = region(n, parent); err != nil {
		return 0, err
	}

	return
}
