// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/circled/background"
)

type ticker struct {
	count   uint64
	stopped bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddUint64(&state.count, 1)
		}
	}
	state.stopped = true
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.stopped, "first stopped")
	assert.True(t, proc2.stopped, "second stopped")
	assert.NotEqual(t, uint64(0), atomic.LoadUint64(&proc1.count), "first ran")
	assert.NotEqual(t, uint64(0), atomic.LoadUint64(&proc2.count), "second ran")
}

func TestStopNil(t *testing.T) {
	var p *background.T
	p.Stop()
}
