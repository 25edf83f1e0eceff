// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

//go:build tamago && riscv64

package main

import (
	"fmt"
	"log"
	"runtime"
	"strconv"

	"github.com/usbarmory/go-sbi/board/iobsoc"
	"github.com/usbarmory/go-sbi/cmd"
	"github.com/usbarmory/go-sbi/fdt"
	"github.com/usbarmory/go-sbi/platform"
	"github.com/usbarmory/go-sbi/sbi"
	"github.com/usbarmory/go-sbi/shell"
)

// Link-time configuration
var (
	Build    string
	Revision string

	// device tree handed over by the previous boot stage
	FDTAddress string
	FDTSize    string
)

// boot hart
const hartID = 0

func init() {
	log.SetFlags(0)
	log.SetOutput(UART0)
}

func deviceTree() (*fdt.Blob, error) {
	if len(FDTAddress) == 0 {
		return nil, nil
	}

	addr, err := strconv.ParseUint(FDTAddress, 0, 64)

	if err != nil {
		return nil, fmt.Errorf("invalid device tree address, %v", err)
	}

	size, err := strconv.ParseUint(FDTSize, 0, 32)

	if err != nil {
		return nil, fmt.Errorf("invalid device tree size, %v", err)
	}

	return fdt.Open(uint(addr), int(size))
}

func main() {
	board := iobsoc.New(iobsoc.Defaults(), iobsoc.HART_COUNT)

	board.Console = UART0
	board.IrqChip = PLIC
	board.IPI = MSWI
	board.Timer = MTIMER

	start, end := runtime.MemRegion()
	board.Reserved = platform.Region{Base: start, Size: end - start}

	switch dtb, err := deviceTree(); {
	case err != nil:
		log.Printf("sbi: could not open device tree, %v", err)
	case dtb != nil:
		board.DeviceTree = dtb
	}

	p := board.Platform()
	log.Printf("sbi: %s • %s %s", p, Revision, Build)

	if err := sbi.Init(p, hartID, sbi.Cold); err != nil {
		log.Fatalf("sbi: boot failed (status %d), %v", sbi.Status(err), err)
	}

	cmd.Board = board
	cmd.Build = Build
	cmd.Revision = Revision

	iface := &shell.Interface{
		Banner: fmt.Sprintf("%s/%s (%s) • %s", runtime.GOOS, runtime.GOARCH,
			runtime.Version(), p.Name),
		ReadWriter: UART0,
		VT100:      true,
		Prompt:     cmd.Prompt,
	}

	for {
		iface.Start()
	}
}
