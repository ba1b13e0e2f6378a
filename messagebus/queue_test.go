// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/circled/messagebus"
)

func TestBroadcast(t *testing.T) {
	queue := messagebus.New()

	l1 := queue.Chan(10)
	l2 := queue.Chan(10)

	commands := []string{"c1", "c2", "c3"}
	for i, c := range commands {
		queue.Send(c, i)
	}

	for _, l := range []*messagebus.Listener{l1, l2} {
		for i, c := range commands {
			m := <-l.C
			assert.Equal(t, c, m.Command, "command")
			assert.Equal(t, i, m.Item, "item")
		}
	}

	l1.Release()
	_, ok := <-l1.C
	assert.False(t, ok, "closed after release")

	// second release is harmless
	l1.Release()

	queue.Send("c4", nil)
	m := <-l2.C
	assert.Equal(t, "c4", m.Command, "remaining listener")
	l2.Release()
}

func TestSlowListener(t *testing.T) {
	queue := messagebus.New()
	l := queue.Chan(1)
	defer l.Release()

	queue.Send("first", nil)
	queue.Send("second", nil)

	m := <-l.C
	assert.Equal(t, "first", m.Command, "kept")
	assert.Equal(t, uint64(1), queue.Dropped(), "dropped")
}
