// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package streak

import (
	"github.com/bitmark-inc/circled/account"
)

// DefaultMilestone - consecutive contributions that earn the streak badge
const DefaultMilestone = 7

// Streak - consecutive on-time contributions of one member
type Streak struct {
	Member        account.Address `json:"member"`
	Current       uint64          `json:"current"`
	Longest       uint64          `json:"longest"`
	LastTimestamp uint64          `json:"lastTimestamp"`
}

// Next - the streak after a contribution at now
//
// a gap of up to and including two periods continues the streak,
// anything longer starts a new one
func Next(s Streak, now uint64, period uint64) Streak {
	switch {
	case 0 == s.Current:
		s.Current = 1
	case now < s.LastTimestamp || within(now-s.LastTimestamp, period):
		s.Current += 1
	default:
		s.Current = 1
	}
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	s.LastTimestamp = now
	return s
}

// gap <= 2*period without overflowing
func within(gap uint64, period uint64) bool {
	if gap <= period {
		return true
	}
	return gap-period <= period
}

// Crossed - true if the transition reached the milestone
func Crossed(before Streak, after Streak, milestone uint64) bool {
	return before.Current < milestone && after.Current >= milestone
}
