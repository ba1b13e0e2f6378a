// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault provides single instances of all errors used by
// the circle engine so that callers can compare errors directly or
// test them by class.
package fault
