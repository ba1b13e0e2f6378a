// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package circle holds the circle record shared by the per-circle
// components
package circle

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
)

// limits on circle settings
const (
	MaximumNameLength = 64
	MinimumPeriod     = clock.Minute
)

// Circle - the stored state of one savings circle
type Circle struct {
	Id                 uint64
	Owner              account.Address
	Name               string
	Goal               uint64
	Balance            uint64
	ContributionAmount uint64
	ContributionPeriod uint64
	MemberCount        uint64
	Ledger             account.Address
	Tracker            account.Address
	Governance         account.Address
	IsPremium          bool
	CreatedAt          uint64
	TotalContributed   uint64
	TotalDisbursed     uint64
	TopContributor     account.Address
	TopContribution    uint64
}

// Settings - the user supplied part of a circle
type Settings struct {
	Name               string
	Goal               uint64
	ContributionAmount uint64
	ContributionPeriod uint64
	IsPremium          bool
}

// Validate - check settings before a circle is created
func (s Settings) Validate() error {
	if 0 == len(s.Name) || len(s.Name) > MaximumNameLength {
		return fault.ErrInvalidName
	}
	if 0 == s.Goal {
		return fault.ErrInvalidGoal
	}
	if 0 == s.ContributionAmount || s.ContributionAmount > s.Goal {
		return fault.ErrInvalidAmount
	}
	if s.ContributionPeriod < MinimumPeriod {
		return fault.ErrInvalidPeriod
	}
	return nil
}

// GoalReached - the pooled balance has met the goal
func (c *Circle) GoalReached() bool {
	return c.Balance >= c.Goal
}

// Get - fetch a circle record
func Get(r storage.Reader, pool *storage.PoolHandle, id uint64) (*Circle, error) {
	c := &Circle{}
	found, err := storage.GetObject(r, pool, storage.N(id), c)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrCircleNotFound
	}
	return c, nil
}

// Put - store a circle record
func Put(trx storage.Transaction, pool *storage.PoolHandle, c *Circle) error {
	return storage.PutObject(trx, pool, storage.N(c.Id), c)
}
