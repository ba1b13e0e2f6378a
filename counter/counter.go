// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - a gauge of open connections shared by the listeners
package counter

import (
	"sync/atomic"
)

// Counter - number of connections currently being served
type Counter uint64

// Acquire - count one more connection unless maximum are already open
func (c *Counter) Acquire(maximum uint64) bool {
	for {
		current := atomic.LoadUint64((*uint64)(c))
		if current >= maximum {
			return false
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), current, current+1) {
			return true
		}
	}
}

// Release - a connection has closed
func (c *Counter) Release() {
	for {
		current := atomic.LoadUint64((*uint64)(c))
		if 0 == current {
			return
		}
		if atomic.CompareAndSwapUint64((*uint64)(c), current, current-1) {
			return
		}
	}
}

// Uint64 - current number of connections
func (c *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(c))
}
