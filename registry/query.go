// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/ledger"
)

// CircleInfo - read projection of a circle
type CircleInfo struct {
	Id                 uint64          `json:"id"`
	Owner              account.Address `json:"owner"`
	Name               string          `json:"name"`
	GoalAmount         uint64          `json:"goalAmount"`
	CurrentBalance     uint64          `json:"currentBalance"`
	ContributionAmount uint64          `json:"contributionAmount"`
	ContributionPeriod uint64          `json:"contributionPeriod"`
	MemberCount        uint64          `json:"memberCount"`
	StreakOfOwner      uint64          `json:"streakOfOwner"`
	EngineRef          account.Address `json:"engineRef"`
	TrackerRef         account.Address `json:"trackerRef"`
	GovernanceRef      account.Address `json:"governanceRef"`
	IsPremium          bool            `json:"isPremium"`
	CreatedAt          uint64          `json:"createdAt"`
	TotalContributed   uint64          `json:"totalContributed"`
	TotalDisbursed     uint64          `json:"totalDisbursed"`
	TopContributor     account.Address `json:"topContributor"`
	GoalReached        bool            `json:"goalReached"`
}

// GetCircle - committed state of a circle
func (r *Registry) GetCircle(id uint64) (*CircleInfo, error) {
	c, err := circle.Get(r.db, r.db.Pool.Circles, id)
	if nil != err {
		return nil, err
	}

	components, err := r.Components(id)
	if nil != err {
		return nil, err
	}
	s, err := components.Tracker.Streak(c.Owner)
	if nil != err {
		return nil, err
	}

	return &CircleInfo{
		Id:                 c.Id,
		Owner:              c.Owner,
		Name:               c.Name,
		GoalAmount:         c.Goal,
		CurrentBalance:     c.Balance,
		ContributionAmount: c.ContributionAmount,
		ContributionPeriod: c.ContributionPeriod,
		MemberCount:        c.MemberCount,
		StreakOfOwner:      s.Current,
		EngineRef:          c.Ledger,
		TrackerRef:         c.Tracker,
		GovernanceRef:      c.Governance,
		IsPremium:          c.IsPremium,
		CreatedAt:          c.CreatedAt,
		TotalContributed:   c.TotalContributed,
		TotalDisbursed:     c.TotalDisbursed,
		TopContributor:     c.TopContributor,
		GoalReached:        c.GoalReached(),
	}, nil
}

// GetCircleMembers - committed members of a circle in joining order
func (r *Registry) GetCircleMembers(id uint64) ([]account.Address, error) {
	if _, err := circle.Get(r.db, r.db.Pool.Circles, id); nil != err {
		return nil, err
	}
	return ledger.Members(r.db, id), nil
}

// GetCirclesForMember - ids of the circles an address belongs to
func (r *Registry) GetCirclesForMember(member account.Address) []uint64 {
	return ledger.CirclesOf(r.db, member)
}

// CircleCount - number of circles created
func (r *Registry) CircleCount() uint64 {
	n, _ := r.db.GetN(r.db.Pool.Counters, circleCountKey)
	return n
}

// OwnerOf - owner of a circle
func (r *Registry) OwnerOf(id uint64) (account.Address, error) {
	c, err := circle.Get(r.db, r.db.Pool.Circles, id)
	if nil != err {
		return account.Zero, err
	}
	return c.Owner, nil
}
