// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"runtime"
	"sort"
	"strconv"

	"github.com/usbarmory/go-sbi/board/iobsoc"
	"github.com/usbarmory/go-sbi/sbi"
	"github.com/usbarmory/go-sbi/shell"
)

// Board represents the platform support the monitor reports on.
var Board *iobsoc.Board

// Build information
var (
	Build    string
	Revision string
)

// Sender represents a device able to raise software interrupts.
type Sender interface {
	Send(hartid uint32) error
}

func init() {
	shell.Add(shell.Cmd{
		Name: "info",
		Help: "platform information",
		Fn:   infoCmd,
	})

	shell.Add(shell.Cmd{
		Name: "config",
		Help: "resolved platform configuration",
		Fn:   configCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "ipi",
		Args:    1,
		Pattern: regexp.MustCompile(`^ipi\s+(\d+)$`),
		Syntax:  "<hart>",
		Help:    "raise a machine software interrupt",
		Fn:      ipiCmd,
	})
}

var errNoBoard = errors.New("no platform support")

// Prompt returns the monitor prompt, tagged with the last boot phase
// completed by the boot hart.
func Prompt() string {
	if Board == nil {
		return "> "
	}

	name := Board.Platform().Name
	last := ""

	for _, phase := range sbi.Sequence(sbi.Warm) {
		if Board.State(0, phase) != sbi.NotStarted {
			last = phase.String()
		}
	}

	if len(last) == 0 {
		return name + "> "
	}

	return fmt.Sprintf("%s[%s]> ", name, last)
}

func timer() any {
	if Board == nil {
		return nil
	}

	return Board.Timer
}

func infoCmd(_ []string) (string, error) {
	var res bytes.Buffer

	if Board == nil {
		return "", errNoBoard
	}

	p := Board.Platform()

	fmt.Fprintf(&res, "Runtime ......: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&res, "Platform .....: %s v%d.%d\n", p.Name, p.Version>>16, p.Version&0xffff)
	fmt.Fprintf(&res, "SBI ..........: v%d.%d\n", p.FirmwareVersion>>16, p.FirmwareVersion&0xffff)
	fmt.Fprintf(&res, "Harts ........: %d (stack %d bytes)\n", p.HartCount, p.HartStackSize)
	fmt.Fprintf(&res, "Features .....: %s\n", p.Features)

	for hartid := uint32(0); hartid < p.HartCount; hartid++ {
		fmt.Fprintf(&res, "Hart %-8d: ", hartid)

		for phase := sbi.Phase(0); phase < sbi.NumPhases; phase++ {
			fmt.Fprintf(&res, "%s:%s ", phase, Board.State(hartid, phase))
		}

		res.WriteString("\n")
	}

	return res.String(), nil
}

func configCmd(_ []string) (string, error) {
	var res bytes.Buffer

	if Board == nil {
		return "", errNoBoard
	}

	ctx := Board.Context()

	fmt.Fprintf(&res, "serial ...: %v\n", ctx.Serial())
	fmt.Fprintf(&res, "plic .....: %v\n", ctx.PLIC())
	fmt.Fprintf(&res, "mswi .....: %v\n", ctx.MSWI())
	fmt.Fprintf(&res, "mtimer ...: %v\n", ctx.MTimer())
	fmt.Fprintf(&res, "frozen ...: %v\n\n", ctx.Frozen())

	regions := ctx.Regions()
	names := make([]string, 0, len(regions))

	for name := range regions {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&res, "%-8s %v\n", name, regions[name])
	}

	if report := Board.Report(); len(report) > 0 {
		fmt.Fprintf(&res, "\n%s\n", report)
	}

	return res.String(), nil
}

func ipiCmd(arg []string) (string, error) {
	if Board == nil {
		return "", errNoBoard
	}

	hartid, err := strconv.ParseUint(arg[0], 10, 32)

	if err != nil {
		return "", fmt.Errorf("invalid hart, %v", err)
	}

	ipi, ok := Board.IPI.(Sender)

	if !ok {
		return "", errors.New("software interrupts not supported")
	}

	if err = ipi.Send(uint32(hartid)); err != nil {
		return "", fmt.Errorf("could not send ipi, %v", err)
	}

	return fmt.Sprintf("ipi sent to hart %d", hartid), nil
}
