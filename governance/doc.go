// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance runs the proposal, vote and execute protocol over
// the pooled funds of one circle
//
//	open ──deadline──▶ passed ──delay──▶ executed
//	  │                  │
//	  ▼                  ▼ grace
//	failed            expired
package governance
