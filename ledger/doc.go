// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger holds the membership and the pooled funds of a circle
//
// contributions must match the circle's contribution amount exactly;
// funds only leave through the circle's governance module
package ledger
