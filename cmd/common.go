// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package cmd implements the diagnostic monitor commands available on the
// serial console after boot.
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"runtime"
	"runtime/debug"
	"runtime/pprof"
	"time"

	"github.com/hako/durafmt"

	"github.com/usbarmory/go-sbi/shell"
)

// Clock represents the time source for uptime reporting.
type Clock interface {
	Nanotime() int64
}

func init() {
	shell.Add(shell.Cmd{
		Name: "build",
		Help: "build information",
		Fn:   buildInfoCmd,
	})

	shell.Add(shell.Cmd{
		Name:    "exit, quit",
		Args:    1,
		Pattern: regexp.MustCompile(`^(exit|quit)$`),
		Help:    "close session",
		Fn:      exitCmd,
	})

	shell.Add(shell.Cmd{
		Name: "stack",
		Help: "goroutine stack trace (current)",
		Fn:   stackCmd,
	})

	shell.Add(shell.Cmd{
		Name: "stackall",
		Help: "goroutine stack trace (all)",
		Fn:   stackallCmd,
	})

	shell.Add(shell.Cmd{
		Name: "uptime",
		Help: "show how long the system has been running",
		Fn:   uptimeCmd,
	})
}

func buildInfoCmd(_ []string) (string, error) {
	var res bytes.Buffer

	if len(Build) > 0 {
		fmt.Fprintf(&res, "Build ........: %s\n", Build)
	}

	if len(Revision) > 0 {
		fmt.Fprintf(&res, "Revision .....: %s\n", Revision)
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		res.WriteString(bi.String())
	}

	return res.String(), nil
}

func exitCmd(_ []string) (string, error) {
	return fmt.Sprintf("Goodbye from %s/%s", runtime.GOOS, runtime.GOARCH), io.EOF
}

func stackCmd(_ []string) (string, error) {
	return string(debug.Stack()), nil
}

func stackallCmd(_ []string) (string, error) {
	buf := new(bytes.Buffer)
	pprof.Lookup("goroutine").WriteTo(buf, 1)

	return buf.String(), nil
}

func uptimeCmd(_ []string) (string, error) {
	clock, ok := timer().(Clock)

	if !ok {
		return "", fmt.Errorf("no clock source")
	}

	ns := clock.Nanotime()

	return durafmt.Parse(time.Duration(ns) * time.Nanosecond).String(), nil
}
