// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fdt

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/platform"
)

const (
	testUARTCompat  = "ns16550"
	testPLICCompat  = "riscv,plic0"
	testCLINTCompat = "riscv,clint0"
)

var testResolver = &Resolver{
	UART:  testUARTCompat,
	PLIC:  testPLICCompat,
	CLINT: testCLINTCompat,
}

func prop(name string, v ...uint32) dt.Property {
	var b []byte

	for _, c := range v {
		b = binary.BigEndian.AppendUint32(b, c)
	}

	return dt.Property{Name: name, Value: b}
}

func strProp(name string, v ...string) dt.Property {
	return dt.Property{Name: name, Value: []byte(strings.Join(v, "\x00") + "\x00")}
}

func node(name string, props []dt.Property, children ...*dt.Node) *dt.Node {
	return &dt.Node{
		Name:       name,
		Properties: props,
		Children:   children,
	}
}

// tree returns a device tree with the argument cpus node, when not nil, and
// devices under a simple bus.
func tree(cpus *dt.Node, devices ...*dt.Node) *dt.FDT {
	root := node("/", []dt.Property{
		prop("#address-cells", 1),
		prop("#size-cells", 1),
		strProp("compatible", "iobundle,iob-soc"),
	})

	if cpus != nil {
		root.Children = append(root.Children, cpus)
	}

	root.Children = append(root.Children, node("soc", []dt.Property{
		prop("#address-cells", 1),
		prop("#size-cells", 1),
		strProp("compatible", "simple-bus"),
	}, devices...))

	return &dt.FDT{RootNode: root}
}

func cpusNode(harts int, timebase ...uint32) *dt.Node {
	props := []dt.Property{
		prop("#address-cells", 1),
		prop("#size-cells", 0),
	}

	if len(timebase) > 0 {
		props = append(props, prop("timebase-frequency", timebase...))
	}

	var cpus []*dt.Node

	for i := 0; i < harts; i++ {
		cpus = append(cpus, node(fmt.Sprintf("cpu@%d", i), []dt.Property{
			strProp("device_type", "cpu"),
			prop("reg", uint32(i)),
			strProp("compatible", "riscv"),
			strProp("status", "okay"),
		}))
	}

	return node("cpus", props, cpus...)
}

func uartNode(addr uint32, freq ...uint32) *dt.Node {
	props := []dt.Property{
		strProp("compatible", "iobundle,uart", testUARTCompat),
		prop("reg", addr, 0x1000),
	}

	if len(freq) > 0 {
		props = append(props, prop("clock-frequency", freq...))
	}

	return node(fmt.Sprintf("serial@%x", addr), props)
}

func plicNode(addr uint32, ndev uint32) *dt.Node {
	return node(fmt.Sprintf("interrupt-controller@%x", addr), []dt.Property{
		strProp("compatible", "sifive,plic-1.0.0", testPLICCompat),
		prop("reg", addr, 0x4000000),
		prop("riscv,ndev", ndev),
		prop("interrupts-extended", 1, 11, 1, 9),
	})
}

func clintNode(addr uint32) *dt.Node {
	return node(fmt.Sprintf("clint@%x", addr), []dt.Property{
		strProp("compatible", "sifive,clint0", testCLINTCompat),
		prop("reg", addr, 0x10000),
	})
}

func testContext() *platform.Context {
	return platform.NewContext(
		platform.Serial{Base: 0xf4000000, Frequency: 100000000, Baudrate: 115200, RegWidth: 1},
		platform.PLIC{Base: 0xfc000000, Size: 0x4000000, NumSources: 32},
		platform.MSWI{Base: 0xf8000000, Size: platform.MSWISize, HartCount: 1},
		platform.MTimer{
			Frequency:    100000000,
			MtimeAddr:    0xf8000000 + platform.CLINTMTimerOffset + platform.MTimeOffset,
			MtimeSize:    platform.MTimeSize,
			MtimecmpAddr: 0xf8000000 + platform.CLINTMTimerOffset + platform.MTimecmpOffset,
			MtimecmpSize: platform.MTimecmpSize,
			HartCount:    1,
			Has64BitMMIO: true,
		},
	)
}
