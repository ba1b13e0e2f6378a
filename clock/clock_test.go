// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/circled/clock"
)

func TestManual(t *testing.T) {
	c := clock.NewManual(1000)
	assert.Equal(t, uint64(1000), c.Now(), "start")
	assert.Equal(t, uint64(1000+clock.Week), c.Advance(clock.Week), "advance")
	assert.Equal(t, uint64(1000+clock.Week), c.Now(), "now")
	c.Set(5)
	assert.Equal(t, uint64(5), c.Now(), "set")
}

func TestSystem(t *testing.T) {
	before := uint64(time.Now().Unix())
	now := clock.System().Now()
	after := uint64(time.Now().Unix())
	assert.True(t, before <= now && now <= after, "system clock: %d", now)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00Z", clock.Format(0), "epoch")
	assert.Equal(t, "1970-01-08T00:00:00Z", clock.Format(clock.Week), "week")
}
