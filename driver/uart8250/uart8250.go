// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

// Package uart8250 implements a driver for 8250/16550 compatible serial
// ports.
package uart8250

import (
	"github.com/usbarmory/go-sbi/mmio"
	"github.com/usbarmory/go-sbi/platform"
	"github.com/usbarmory/go-sbi/sbi"
)

// UART registers (index, scaled by the register shift)
const (
	RBR = 0 // receive buffer (read)
	THR = 0 // transmit holding (write)
	DLL = 0 // divisor latch low (DLAB=1)
	IER = 1 // interrupt enable
	DLM = 1 // divisor latch high (DLAB=1)
	FCR = 2 // FIFO control (write)
	LCR = 3 // line control
	MCR = 4 // modem control
	LSR = 5 // line status
	MSR = 6 // modem status
	SCR = 7 // scratch

	LCR_DLAB = 0x80
	LCR_8N1  = 0x03

	FCR_FIFO = 0x01

	LSR_DR   = 0x01
	LSR_THRE = 0x20
)

// UART represents a serial port instance.
type UART struct {
	// Bus represents the register bus.
	Bus mmio.Bus

	cfg platform.Serial
}

// Divisor returns the baud rate divisor for the argument input clock
// frequency and baud rate, rounded to the nearest integer.
func Divisor(freq uint32, baud uint32) uint32 {
	if freq == 0 || baud == 0 {
		return 0
	}

	return uint32((uint64(freq) + 8*uint64(baud)) / (16 * uint64(baud)))
}

func (hw *UART) addr(reg int) uint64 {
	return hw.cfg.Base + uint64(hw.cfg.RegOffset) + uint64(reg)<<hw.cfg.RegShift
}

func (hw *UART) read(reg int) uint8 {
	return uint8(mmio.Read(hw.Bus, hw.addr(reg), hw.cfg.RegWidth))
}

func (hw *UART) write(reg int, val uint8) {
	mmio.Write(hw.Bus, hw.addr(reg), hw.cfg.RegWidth, uint64(val))
}

func validate(bus mmio.Bus, cfg platform.Serial) error {
	if bus == nil || cfg.Base == 0 {
		return sbi.ErrInvalidAddress
	}

	switch cfg.RegWidth {
	case 1, 2, 4:
	default:
		return sbi.ErrInvalidParam
	}

	return nil
}

// Attach selects the register layout of a serial port already configured by
// a previous boot stage, no register is accessed.
func (hw *UART) Attach(cfg platform.Serial) error {
	if err := validate(hw.Bus, cfg); err != nil {
		return err
	}

	hw.cfg = cfg

	return nil
}

// Init initializes the serial port for 8N1 operation at the configured baud
// rate. A zero input frequency or baud rate leaves the divisor unchanged.
func (hw *UART) Init(cfg platform.Serial) error {
	if err := validate(hw.Bus, cfg); err != nil {
		return err
	}

	hw.cfg = cfg
	bdiv := Divisor(cfg.Frequency, cfg.Baudrate)

	hw.write(IER, 0x00)
	hw.write(LCR, LCR_DLAB)

	if bdiv != 0 {
		hw.write(DLL, uint8(bdiv))
		hw.write(DLM, uint8(bdiv>>8))
	}

	hw.write(LCR, LCR_8N1)
	hw.write(FCR, FCR_FIFO)
	hw.write(MCR, 0x00)

	// clear line status and receive buffer
	hw.read(LSR)
	hw.read(RBR)

	hw.write(SCR, 0x00)

	return nil
}

// Config returns the configuration applied at Attach or Init.
func (hw *UART) Config() platform.Serial {
	return hw.cfg
}

// Tx transmits a single character, characters are discarded before the port
// is attached.
func (hw *UART) Tx(c byte) {
	if hw.cfg.Base == 0 {
		return
	}

	for hw.read(LSR)&LSR_THRE == 0 {
	}

	hw.write(THR, c)
}

// Rx receives a single character, the returned boolean reports whether a
// character was available.
func (hw *UART) Rx() (c byte, valid bool) {
	if hw.cfg.Base == 0 || hw.read(LSR)&LSR_DR == 0 {
		return
	}

	return hw.read(RBR), true
}

// Write transmits the argument buffer, it implements the [io.Writer]
// interface.
func (hw *UART) Write(p []byte) (n int, err error) {
	for n = 0; n < len(p); n++ {
		hw.Tx(p[n])
	}

	return
}

// Read receives available characters without blocking, it implements the
// [io.Reader] interface.
func (hw *UART) Read(p []byte) (n int, err error) {
	for n = 0; n < len(p); n++ {
		c, valid := hw.Rx()

		if !valid {
			break
		}

		p[n] = c
	}

	return
}
