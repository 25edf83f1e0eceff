// Copyright (c) The go-sbi authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package fdt

import (
	"fmt"
	"log"
	"maps"
	"slices"
	"strings"

	"github.com/u-root/u-root/pkg/dt"

	"github.com/usbarmory/go-sbi/platform"
)

// Override names, as reported by Resolve
const (
	SerialOverride   = "serial"
	PLICOverride     = "plic"
	TimebaseOverride = "timebase"
	CLINTOverride    = "clint"
)

// Resolver represents the device tree override policy of a board,
// identifying each subsystem by the compatible string of its hardware.
type Resolver struct {
	// UART represents the serial port compatible string.
	UART string
	// PLIC represents the interrupt controller compatible string.
	PLIC string
	// CLINT represents the compatible string of the combined software
	// interrupt and timer block, whose address anchors both the MSWI and
	// MTIMER registers.
	CLINT string
}

// Override represents the outcome of a single override attempt.
type Override struct {
	Name string
	// Applied reports whether the registry record has been replaced.
	Applied bool
	// Err represents the reason for retaining the default when not
	// applied.
	Err error
}

func (o Override) String() string {
	if o.Applied {
		return fmt.Sprintf("%-8s device tree", o.Name)
	}

	return fmt.Sprintf("%-8s default (%v)", o.Name, o.Err)
}

// Report represents the outcome of a device tree resolution.
type Report []Override

// Applied reports whether the named override has been applied.
func (r Report) Applied(name string) bool {
	for _, o := range r {
		if o.Name == name {
			return o.Applied
		}
	}

	return false
}

func (r Report) String() string {
	var s []string

	for _, o := range r {
		s = append(s, o.String())
	}

	return strings.Join(s, "\n")
}

// candidate represents a decoded override before it is committed to the
// registry.
type candidate struct {
	Override

	// memory mapped regions by subsystem name
	regions map[string]platform.Region
	commit  func(ctx *platform.Context) error
}

// Resolve attempts, independently for each subsystem, to decode a matching
// device tree entry and replace the corresponding registry record. On any
// failure the existing record is retained, absence of device tree
// information is expected and never reported as an error.
//
// The CLINT address, when found, rewrites the MSWI base and MTIMER register
// addresses at their fixed CLINT offsets, the PLIC record is never derived
// from it. The timebase frequency applies to the MTIMER record only.
//
// All entries are decoded before any record is replaced. A candidate whose
// region overlaps the region another subsystem ends up with, either its own
// candidate or its retained record, is rejected. The outcome therefore does
// not depend on the current registry beyond the records left in place, and
// resolving twice with the same tree yields the same registry.
func (r *Resolver) Resolve(ctx *platform.Context, tree *dt.FDT) (report Report) {
	candidates := []*candidate{
		r.serial(tree),
		r.plic(tree),
		r.timebase(tree),
		r.clint(ctx, tree),
	}

	defaults := ctx.Regions()

	for rejected := true; rejected; {
		rejected = false
		final := maps.Clone(defaults)

		for _, c := range candidates {
			if c.Err == nil {
				maps.Copy(final, c.regions)
			}
		}

		for _, c := range candidates {
			if c.Err != nil {
				continue
			}

			if c.Err = overlap(c.regions, final); c.Err != nil {
				rejected = true
			}
		}
	}

	for _, c := range candidates {
		if c.Err == nil {
			if c.Err = c.commit(ctx); c.Err == nil {
				c.Applied = true
			}
		}

		report = append(report, c.Override)
	}

	for _, o := range report {
		if o.Applied {
			log.Printf("fdt: %s override applied", o.Name)
		} else {
			log.Printf("fdt: %s default retained, %v", o.Name, o.Err)
		}
	}

	return
}

// overlap returns an error when any of the argument regions overlaps a
// region of a different subsystem.
func overlap(regions map[string]platform.Region, final map[string]platform.Region) error {
	for _, name := range slices.Sorted(maps.Keys(regions)) {
		r := regions[name]

		for _, other := range slices.Sorted(maps.Keys(final)) {
			if _, own := regions[other]; own {
				continue
			}

			if r.Overlaps(final[other]) {
				return fmt.Errorf("region %v overlaps %s", r, other)
			}
		}
	}

	return nil
}

func (r *Resolver) serial(tree *dt.FDT) (c *candidate) {
	c = &candidate{Override: Override{Name: SerialOverride}}

	s, err := ParseUART8250(tree, r.UART)

	if c.Err = err; err != nil {
		return
	}

	c.regions = map[string]platform.Region{platform.SerialName: s.Region()}
	c.commit = func(ctx *platform.Context) error {
		return ctx.SetSerial(s)
	}

	return
}

func (r *Resolver) plic(tree *dt.FDT) (c *candidate) {
	c = &candidate{Override: Override{Name: PLICOverride}}

	p, err := ParsePLIC(tree, r.PLIC)

	if c.Err = err; err != nil {
		return
	}

	c.regions = map[string]platform.Region{platform.PLICName: p.Region()}
	c.commit = func(ctx *platform.Context) error {
		return ctx.SetPLIC(p)
	}

	return
}

func (r *Resolver) timebase(tree *dt.FDT) (c *candidate) {
	c = &candidate{Override: Override{Name: TimebaseOverride}}

	freq, err := ParseTimebaseFrequency(tree)

	if c.Err = err; err != nil {
		return
	}

	c.commit = func(ctx *platform.Context) error {
		t := ctx.MTimer()
		t.Frequency = freq

		return ctx.SetMTimer(t)
	}

	return
}

func (r *Resolver) clint(ctx *platform.Context, tree *dt.FDT) (c *candidate) {
	c = &candidate{Override: Override{Name: CLINTOverride}}

	addr, err := ParseCompatAddr(tree, r.CLINT)

	if c.Err = err; err != nil {
		return
	}

	m := ctx.MSWI()
	m.Base = addr + platform.CLINTMSWIOffset

	t := ctx.MTimer()
	t.MtimeAddr = addr + platform.CLINTMTimerOffset + platform.MTimeOffset
	t.MtimecmpAddr = addr + platform.CLINTMTimerOffset + platform.MTimecmpOffset

	c.regions = map[string]platform.Region{
		platform.MSWIName:   m.Region(),
		platform.MTimerName: t.Region(),
	}

	c.commit = func(ctx *platform.Context) (err error) {
		if err = ctx.SetMSWI(m); err != nil {
			return
		}

		// frequency as left by the timebase override
		timer := ctx.MTimer()
		timer.MtimeAddr = t.MtimeAddr
		timer.MtimecmpAddr = t.MtimecmpAddr

		return ctx.SetMTimer(timer)
	}

	return
}
