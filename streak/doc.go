// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package streak tracks consecutive contributions of each member of a
// circle
//
// only the circle's ledger may record a contribution; reaching the
// milestone mints the streak badge
package streak
