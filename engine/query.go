// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/ledger"
	"github.com/bitmark-inc/circled/registry"
	"github.com/bitmark-inc/circled/streak"
)

func (e *engine) GetCircle(circleId uint64) (*registry.CircleInfo, error) {
	return e.registry.GetCircle(circleId)
}

func (e *engine) GetCircleMembers(circleId uint64) ([]account.Address, error) {
	return e.registry.GetCircleMembers(circleId)
}

func (e *engine) GetCirclesForMember(member account.Address) []uint64 {
	return e.registry.GetCirclesForMember(member)
}

func (e *engine) Member(circleId uint64, member account.Address) (*ledger.Member, error) {
	components, err := e.registry.Components(circleId)
	if nil != err {
		return nil, err
	}
	return components.Ledger.Member(member)
}

func (e *engine) Streak(circleId uint64, member account.Address) (streak.Streak, error) {
	components, err := e.registry.Components(circleId)
	if nil != err {
		return streak.Streak{}, err
	}
	return components.Tracker.Streak(member)
}

func (e *engine) Proposal(circleId uint64, proposalId uint64) (*governance.Proposal, governance.State, error) {
	components, err := e.registry.Components(circleId)
	if nil != err {
		return nil, "", err
	}
	p, err := components.Governance.Proposal(proposalId)
	if nil != err {
		return nil, "", err
	}
	return p, p.State(e.substrate.Now(), components.Governance.Parameters()), nil
}

func (e *engine) Proposals(circleId uint64) ([]governance.Proposal, error) {
	components, err := e.registry.Components(circleId)
	if nil != err {
		return nil, err
	}
	return components.Governance.Proposals()
}

func (e *engine) HasBadge(member account.Address, circleId uint64, kind badge.Kind) bool {
	return e.badges.Has(member, circleId, kind)
}

func (e *engine) Badges(member account.Address, circleId uint64) []badge.Badge {
	return e.badges.List(member, circleId)
}

func (e *engine) Disbursements(recipient account.Address) ([]ledger.Disbursement, error) {
	return ledger.Disbursements(e.db, recipient)
}

func (e *engine) Events(start uint64, count int) ([]event.Event, error) {
	return event.List(e.db, start, count)
}

func (e *engine) Info() Info {
	return Info{
		Now:          e.substrate.Now(),
		Circles:      e.registry.CircleCount(),
		Events:       event.Count(e.db),
		TreasuryFees: e.treasury.Total(),
		PremiumFee:   e.deployer.PremiumFee(),
		Governance:   e.configuration.Governance,
		Milestone:    e.configuration.Milestone,
	}
}
