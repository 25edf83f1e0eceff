// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fdt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/platform"
)

func TestFindCompatible(t *testing.T) {
	fdt := tree(nil, uartNode(0x10000000, 3686400), uartNode(0x10001000, 3686400))

	n, parent, err := FindCompatible(fdt, testUARTCompat)

	if err != nil {
		t.Fatal(err)
	}

	if n.Name != "serial@10000000" || parent.Name != "soc" {
		t.Fatalf("unexpected match %s in %s", n.Name, parent.Name)
	}

	if _, _, err := FindCompatible(fdt, "snps,dw-apb-uart"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}

	if _, _, err := FindCompatible(nil, testUARTCompat); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestCompatible(t *testing.T) {
	n := node("x", []dt.Property{strProp("compatible", "a,b", "c")})

	if diff := cmp.Diff([]string{"a,b", "c"}, Compatible(n)); diff != "" {
		t.Fatalf("compatible mismatch (-want +got):\n%s", diff)
	}

	if Compatible(node("y", nil)) != nil {
		t.Fatal("compatible list without property")
	}
}

func TestRegCells(t *testing.T) {
	parent := node("bus", []dt.Property{
		prop("#address-cells", 2),
		prop("#size-cells", 2),
	})

	n := node("dev", []dt.Property{
		prop("reg", 0x1, 0x80000000, 0x0, 0x1000, 0x0, 0x90000000, 0x0, 0x2000),
	})

	addr, size, err := Reg(n, parent, 1)

	if err != nil {
		t.Fatal(err)
	}

	if addr != 0x90000000 || size != 0x2000 {
		t.Fatalf("got %#x/%#x", addr, size)
	}

	if addr, _, _ = Reg(n, parent, 0); addr != 0x180000000 {
		t.Fatalf("got %#x", addr)
	}

	if _, _, err = Reg(n, parent, 2); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRegDefaultCells(t *testing.T) {
	// without #address-cells/#size-cells: 2 address cells, 1 size cell
	n := node("dev", []dt.Property{prop("reg", 0x0, 0xf4000000, 0x100)})

	addr, size, err := Reg(n, node("bus", nil), 0)

	if err != nil {
		t.Fatal(err)
	}

	if addr != 0xf4000000 || size != 0x100 {
		t.Fatalf("got %#x/%#x", addr, size)
	}

	if _, _, err := Reg(node("dev", nil), nil, 0); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseUART8250(t *testing.T) {
	uart := uartNode(0x10000000, 3686400)
	uart.Properties = append(uart.Properties,
		prop("current-speed", 9600),
		prop("reg-shift", 2),
		prop("reg-io-width", 4),
	)

	s, err := ParseUART8250(tree(nil, uart), testUARTCompat)

	if err != nil {
		t.Fatal(err)
	}

	want := platform.Serial{
		Base:      0x10000000,
		Frequency: 3686400,
		Baudrate:  9600,
		RegShift:  2,
		RegWidth:  4,
	}

	if diff := cmp.Diff(want, s); diff != "" {
		t.Fatalf("serial mismatch (-want +got):\n%s", diff)
	}
}

func TestParseUART8250Defaults(t *testing.T) {
	s, err := ParseUART8250(tree(nil, uartNode(0x10000000, 3686400)), testUARTCompat)

	if err != nil {
		t.Fatal(err)
	}

	if s.Baudrate != DefaultBaudrate || s.RegWidth != DefaultRegWidth || s.RegShift != 0 {
		t.Fatalf("unexpected defaults %v", s)
	}
}

func TestParseUART8250Malformed(t *testing.T) {
	// missing clock-frequency
	if _, err := ParseUART8250(tree(nil, uartNode(0x10000000)), testUARTCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}

	// clock-frequency with two cells
	if _, err := ParseUART8250(tree(nil, uartNode(0x10000000, 1, 2)), testUARTCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParsePLIC(t *testing.T) {
	p, err := ParsePLIC(tree(nil, plicNode(0x0c000000, 53)), testPLICCompat)

	if err != nil {
		t.Fatal(err)
	}

	want := platform.PLIC{Base: 0x0c000000, Size: 0x4000000, NumSources: 53}

	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("plic mismatch (-want +got):\n%s", diff)
	}

	n := plicNode(0x0c000000, 53)
	n.Properties = n.Properties[:2]

	if _, err := ParsePLIC(tree(nil, n), testPLICCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseTimebaseFrequency(t *testing.T) {
	freq, err := ParseTimebaseFrequency(tree(cpusNode(1, 1000000)))

	if err != nil {
		t.Fatal(err)
	}

	if freq != 1000000 {
		t.Fatalf("got %d", freq)
	}

	// 64-bit cell
	if freq, err = ParseTimebaseFrequency(tree(cpusNode(1, 0x1, 0x0))); err != nil || freq != 1<<32 {
		t.Fatalf("got %d, %v", freq, err)
	}

	if _, err = ParseTimebaseFrequency(tree(cpusNode(1))); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}

	if _, err = ParseTimebaseFrequency(tree(nil)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}

	if _, err = ParseTimebaseFrequency(tree(cpusNode(1, 0))); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}

	if _, err = ParseTimebaseFrequency(tree(cpusNode(1, 1, 2, 3))); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestParseCompatAddr(t *testing.T) {
	addr, err := ParseCompatAddr(tree(nil, clintNode(0x02000000)), testCLINTCompat)

	if err != nil {
		t.Fatal(err)
	}

	if addr != 0x02000000 {
		t.Fatalf("got %#x", addr)
	}

	if _, err = ParseCompatAddr(tree(nil), testCLINTCompat); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unexpected error %v", err)
	}
}

func zeroReg(n *dt.Node) *dt.Node {
	for i := range n.Properties {
		if n.Properties[i].Name == "reg" {
			n.Properties[i] = prop("reg", 0, 0)
		}
	}

	return n
}

func TestParseZeroReg(t *testing.T) {
	if _, err := ParseUART8250(tree(nil, zeroReg(uartNode(0x10000000, 3686400))), testUARTCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected serial error %v", err)
	}

	if _, err := ParsePLIC(tree(nil, zeroReg(plicNode(0x0c000000, 53))), testPLICCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected plic error %v", err)
	}

	if _, err := ParseCompatAddr(tree(nil, zeroReg(clintNode(0x02000000))), testCLINTCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected clint error %v", err)
	}

	// zero size with a valid address
	uart := uartNode(0x10000000, 3686400)
	uart.Properties[1] = prop("reg", 0x10000000, 0)

	if _, err := ParseUART8250(tree(nil, uart), testUARTCompat); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unexpected serial error %v", err)
	}
}
