// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock supplies the authoritative time of the engine
//
// all engine time is in whole unix seconds
package clock

import (
	"sync"
	"time"
)

// common periods in seconds
const (
	Minute = uint64(60)
	Hour   = 60 * Minute
	Day    = 24 * Hour
	Week   = 7 * Day
)

// Clock - source of the current timestamp
type Clock interface {
	Now() uint64
}

type system struct{}

// System - the wall clock
func System() Clock {
	return system{}
}

func (system) Now() uint64 {
	return uint64(time.Now().UTC().Unix())
}

// Manual - a clock that only moves when told to
type Manual struct {
	sync.Mutex
	now uint64
}

// NewManual - create a manual clock starting at the given time
func NewManual(start uint64) *Manual {
	return &Manual{now: start}
}

// Now - current setting
func (m *Manual) Now() uint64 {
	m.Lock()
	defer m.Unlock()
	return m.now
}

// Advance - move the clock forward by a number of seconds
func (m *Manual) Advance(seconds uint64) uint64 {
	m.Lock()
	defer m.Unlock()
	m.now += seconds
	return m.now
}

// Set - move the clock to a specific time
func (m *Manual) Set(now uint64) {
	m.Lock()
	m.now = now
	m.Unlock()
}

// Format - render a timestamp for logs and JSON
func Format(timestamp uint64) string {
	return time.Unix(int64(timestamp), 0).UTC().Format(time.RFC3339)
}
