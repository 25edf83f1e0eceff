// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package shell

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"sync"
	"text/tabwriter"
)

// CmdFn represents a command handler.
type CmdFn func(arg []string) (res string, err error)

// Cmd represents a shell command.
type Cmd struct {
	// Name represents the command name, matched literally when Pattern is
	// nil.
	Name string
	// Args represents the number of Pattern submatches passed to Fn.
	Args int
	// Pattern represents the command line expression.
	Pattern *regexp.Regexp
	// Syntax represents the argument syntax shown by help.
	Syntax string
	// Help represents the command description.
	Help string
	// Fn represents the command handler.
	Fn CmdFn
}

var (
	mu   sync.Mutex
	cmds = make(map[string]*Cmd)
)

// Add registers a shell command, replacing any command with the same name.
func Add(cmd Cmd) {
	mu.Lock()
	defer mu.Unlock()

	cmds[cmd.Name] = &cmd
}

func registered() (list []*Cmd) {
	mu.Lock()
	defer mu.Unlock()

	for _, cmd := range cmds {
		list = append(list, cmd)
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return
}

// Help returns the list of registered commands.
func (iface *Interface) Help(_ []string) (string, error) {
	var buf bytes.Buffer

	t := tabwriter.NewWriter(&buf, 16, 8, 0, '\t', tabwriter.TabIndent)

	for _, cmd := range registered() {
		_, _ = fmt.Fprintf(t, "%s\t%s\t # %s\n", cmd.Name, cmd.Syntax, cmd.Help)
	}

	_ = t.Flush()

	return buf.String(), nil
}
