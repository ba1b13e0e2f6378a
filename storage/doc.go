// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage maintains the engine state in a single leveldb
//
// every data set is a pool: a range of keys sharing one prefix byte.
// All writes go through Atomic, which stages them in a batch and a
// read overlay, then either commits the batch or throws it away.
package storage
