// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package sbi

import (
	"errors"
	"fmt"
)

// Error represents an SBI status code.
type Error int

// SBI status codes
const (
	OK                  Error = 0
	ErrFailed           Error = -1
	ErrNotSupported     Error = -2
	ErrInvalidParam     Error = -3
	ErrDenied           Error = -4
	ErrInvalidAddress   Error = -5
	ErrAlreadyAvailable Error = -6
	ErrAlreadyStarted   Error = -7
	ErrAlreadyStopped   Error = -8
	ErrNoSHMEM          Error = -9
)

func (e Error) Error() string {
	errorName := map[Error]string{
		OK:                  "success",
		ErrFailed:           "failed",
		ErrNotSupported:     "not supported",
		ErrInvalidParam:     "invalid parameter",
		ErrDenied:           "denied",
		ErrInvalidAddress:   "invalid address",
		ErrAlreadyAvailable: "already available",
		ErrAlreadyStarted:   "already started",
		ErrAlreadyStopped:   "already stopped",
		ErrNoSHMEM:          "shared memory not available",
	}

	if name, ok := errorName[e]; ok {
		return fmt.Sprintf("SBI error %d (%s)", int(e), name)
	}

	return fmt.Sprintf("SBI error %d", int(e))
}

// Status returns the signed status code expected by the firmware framework
// for the argument error, zero for success. Errors that do not carry an SBI
// status code map to ErrFailed.
func Status(err error) int {
	var e Error

	switch {
	case err == nil:
		return 0
	case errors.As(err, &e):
		return int(e)
	default:
		return int(ErrFailed)
	}
}
