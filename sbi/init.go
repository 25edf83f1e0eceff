// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sbi

import (
	"errors"
	"fmt"
	"log"
)

// Sequence returns the order in which the framework dispatches the
// platform hooks to a hart with the argument role.
func Sequence(role Role) []Phase {
	if role == Cold {
		return []Phase{Early, ConsoleInit, IrqchipInit, IpiInit, TimerInit, Final}
	}

	return []Phase{Early, IrqchipInit, IpiInit, TimerInit, Final}
}

// Call dispatches the hook of a single boot phase.
func Call(ops Hooks, phase Phase, hartid uint32, role Role) error {
	switch phase {
	case Early:
		return ops.EarlyInit(hartid, role)
	case Final:
		return ops.FinalInit(hartid, role)
	case ConsoleInit:
		return ops.ConsoleInit()
	case IrqchipInit:
		return ops.IrqchipInit(hartid, role)
	case IpiInit:
		return ops.IpiInit(hartid, role)
	case TimerInit:
		return ops.TimerInit(hartid, role)
	default:
		return ErrNotSupported
	}
}

// Init drives a single hart through all platform hooks in framework order,
// stopping at the first failure. The returned error wraps the hook error
// unmodified, Status can be used to recover its code.
//
// Init does not synchronize harts, on multi-hart systems the caller is
// responsible for holding warm harts at each phase until the cold boot hart
// has completed it.
func Init(p *Platform, hartid uint32, role Role) (err error) {
	if p == nil || p.Ops == nil {
		return errors.New("invalid platform descriptor")
	}

	if hartid >= p.HartCount {
		return fmt.Errorf("invalid hart %d, %w", hartid, ErrInvalidParam)
	}

	for _, phase := range Sequence(role) {
		if err = Call(p.Ops, phase, hartid, role); err != nil {
			log.Printf("sbi: hart %d %s %s failed, %v", hartid, role, phase, err)
			return fmt.Errorf("%s failed, %w", phase, err)
		}
	}

	return
}
