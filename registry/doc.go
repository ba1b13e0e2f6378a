// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry creates circles and answers lookups
//
// each circle gets its own ledger, streak tracker and governance
// module with addresses derived from the registry address and the
// circle id; the registry is the only address allowed to wire them
package registry
