// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package shell implements a terminal console handler for user defined
// commands.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log"

	"golang.org/x/term"
)

// DefaultPrompt is shown when no Prompt function is set.
const DefaultPrompt = "> "

// ErrUnknown is returned for lines not matching any registered command.
var ErrUnknown = errors.New("unknown command, type `help`")

// Interface represents a terminal interface.
type Interface struct {
	// Banner represents the welcome message
	Banner string

	// ReadWriter represents the terminal connection
	ReadWriter io.ReadWriter

	// VT100 enables a colored prompt
	VT100 bool

	// Prompt, when set, is evaluated before every line to reflect the
	// current monitor state.
	Prompt func() string
}

func lookup(line string) (*Cmd, []string) {
	for _, cmd := range registered() {
		if cmd.Pattern == nil {
			if cmd.Name == line {
				return cmd, nil
			}

			continue
		}

		if m := cmd.Pattern.FindStringSubmatch(line); len(m)-1 == cmd.Args {
			return cmd, m[1:]
		}
	}

	return nil, nil
}

// Exec runs the command matching the argument line.
func (iface *Interface) Exec(line string) (string, error) {
	cmd, arg := lookup(line)

	if cmd == nil {
		return "", ErrUnknown
	}

	return cmd.Fn(arg)
}

func (iface *Interface) prompt(t *term.Terminal) string {
	p := DefaultPrompt

	if iface.Prompt != nil {
		p = iface.Prompt()
	}

	if iface.VT100 {
		p = string(t.Escape.Red) + p + string(t.Escape.Reset)
	}

	return p
}

// session serves lines until the connection is closed or a command returns
// io.EOF.
type session struct {
	iface *Interface
	t     *term.Terminal
	out   io.Writer
}

func (s *session) serve(line string) error {
	res, err := s.iface.Exec(line)

	if len(res) > 0 {
		fmt.Fprintln(s.out, res)
	}

	switch {
	case err == io.EOF:
		return err
	case err != nil:
		fmt.Fprintf(s.out, "command error, %v\n", err)
	}

	return nil
}

func (s *session) next() error {
	s.t.SetPrompt(s.iface.prompt(s.t))

	line, err := s.t.ReadLine()

	switch {
	case err == io.EOF:
		return err
	case err != nil:
		log.Printf("shell: readline error, %v", err)
		return nil
	case len(line) == 0:
		return nil
	}

	return s.serve(line)
}

// Start handles registered commands over the interface ReadWriter, it
// returns when the connection is closed or a command requests so.
func (iface *Interface) Start() {
	Add(Cmd{
		Name: "help",
		Help: "this help",
		Fn:   iface.Help,
	})

	s := &session{
		iface: iface,
		t:     term.NewTerminal(iface.ReadWriter, ""),
		out:   iface.ReadWriter,
	}

	if iface.VT100 {
		s.out = s.t
	}

	help, _ := iface.Help(nil)

	fmt.Fprintf(s.t, "\n%s\n\n%s\n", iface.Banner, help)

	for s.next() == nil {
	}
}
