// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/deployer"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/messagebus"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/substrate"
)

const (
	unit         = uint64(100000000)
	contribution = unit / 100
	start        = uint64(1600000000)
)

var (
	owner    = account.Derive(account.Zero, "owner", 0)
	alice    = account.Derive(account.Zero, "alice", 0)
	bob      = account.Derive(account.Zero, "bob", 0)
	outsider = account.Derive(account.Zero, "outsider", 0)
)

type fixture struct {
	db     *storage.Database
	clock  *clock.Manual
	bus    *messagebus.BroadcastQueue
	engine engine.Engine
}

func setup(t *testing.T) *fixture {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")

	c := clock.NewManual(start)
	bus := messagebus.New()
	e, err := engine.New(substrate.New(db, c, bus), engine.Configuration{})
	require.Nil(t, err, "engine")

	return &fixture{
		db:     db,
		clock:  c,
		bus:    bus,
		engine: e,
	}
}

func settings() circle.Settings {
	return circle.Settings{
		Name:               "harvest fund",
		Goal:               unit,
		ContributionAmount: contribution,
		ContributionPeriod: clock.Week,
	}
}

func (f *fixture) circle(t *testing.T, members ...account.Address) uint64 {
	_, c, err := f.engine.CreateCircle(owner, owner, settings())
	require.Nil(t, err, "create circle")
	for _, m := range members {
		_, err := f.engine.AddMember(owner, c.Id, m)
		require.Nil(t, err, "add member: %s", m)
	}
	return c.Id
}

func (f *fixture) balance(t *testing.T, id uint64) uint64 {
	info, err := f.engine.GetCircle(id)
	require.Nil(t, err, "get circle")
	return info.CurrentBalance
}

func TestFirstContribution(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t)

	receipt, m, err := f.engine.Contribute(owner, id, contribution)
	require.Nil(t, err, "contribute")
	assert.Equal(t, contribution, m.TotalContributed, "member total")

	info, err := f.engine.GetCircle(id)
	require.Nil(t, err, "get circle")
	assert.Equal(t, contribution, info.CurrentBalance, "balance")
	assert.Equal(t, uint64(1), info.StreakOfOwner, "owner streak")
	assert.Equal(t, owner, info.TopContributor, "top contributor")

	s, err := f.engine.Streak(id, owner)
	require.Nil(t, err, "streak")
	assert.Equal(t, uint64(1), s.Current, "current")
	assert.Equal(t, uint64(1), s.Longest, "longest")

	kinds := make([]event.Kind, 0, len(receipt.Events))
	for _, e := range receipt.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []event.Kind{event.ContributionMade, event.BadgeGranted}, kinds, "events")
	assert.True(t, f.engine.HasBadge(owner, id, badge.TopContributor), "top contributor badge")
}

func TestStreakResetAfterGap(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t)

	for i := 0; i < 3; i += 1 {
		_, _, err := f.engine.Contribute(owner, id, contribution)
		require.Nil(t, err, "contribute: %d", i)
		f.clock.Advance(clock.Week)
	}
	s, err := f.engine.Streak(id, owner)
	require.Nil(t, err, "streak")
	assert.Equal(t, uint64(3), s.Current, "weekly")

	f.clock.Advance(20*clock.Day - clock.Week)
	_, _, err = f.engine.Contribute(owner, id, contribution)
	require.Nil(t, err, "late contribution")

	s, err = f.engine.Streak(id, owner)
	require.Nil(t, err, "streak")
	assert.Equal(t, uint64(1), s.Current, "reset")
	assert.Equal(t, uint64(3), s.Longest, "longest kept")
}

func TestStreakBadge(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t)

	for i := 1; i <= 8; i += 1 {
		_, _, err := f.engine.Contribute(owner, id, contribution)
		require.Nil(t, err, "contribute: %d", i)
		assert.Equal(t, i >= 7, f.engine.HasBadge(owner, id, badge.Streak), "badge after: %d", i)
		f.clock.Advance(2 * clock.Week)
	}

	badges := f.engine.Badges(owner, id)
	assert.Equal(t, 2, len(badges), "top contributor and streak")
}

func TestNonMemberContribution(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t)
	_, _, err := f.engine.Contribute(owner, id, contribution)
	require.Nil(t, err, "owner")

	_, _, err = f.engine.Contribute(outsider, id, contribution)
	assert.Equal(t, fault.NotMember, err, "outsider")
	assert.Equal(t, contribution, f.balance(t, id), "balance unchanged")

	_, _, err = f.engine.Contribute(owner, id, contribution+1)
	assert.Equal(t, fault.IncorrectAmount, err, "wrong amount")

	_, _, err = f.engine.Contribute(owner, 99, contribution)
	assert.Equal(t, fault.ErrCircleNotFound, err, "no circle")
	assert.Equal(t, contribution, f.balance(t, id), "balance still unchanged")
}

func TestProposalLifecycle(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t, alice, bob)
	for _, m := range []account.Address{owner, alice, bob} {
		_, _, err := f.engine.Contribute(m, id, contribution)
		require.Nil(t, err, "contribute: %s", m)
	}
	before := f.balance(t, id)
	require.Equal(t, 3*contribution, before, "pooled")

	_, p, err := f.engine.CreateProposal(alice, id, governance.Request{
		Kind:      governance.Withdrawal,
		Title:     "seed purchase",
		Amount:    2 * contribution,
		Recipient: bob,
	})
	require.Nil(t, err, "propose")

	_, _, err = f.engine.Vote(owner, id, p.Id, true)
	require.Nil(t, err, "owner for")
	_, _, err = f.engine.Vote(alice, id, p.Id, true)
	require.Nil(t, err, "alice for")
	_, _, err = f.engine.Vote(bob, id, p.Id, false)
	require.Nil(t, err, "bob against")

	_, state, err := f.engine.Proposal(id, p.Id)
	require.Nil(t, err, "proposal")
	assert.Equal(t, governance.Open, state, "open")

	f.clock.Advance(3 * clock.Day)
	_, _, err = f.engine.Execute(owner, id, p.Id)
	assert.Equal(t, fault.TooEarly, err, "inside delay")

	f.clock.Advance(clock.Day)
	receipt, executed, err := f.engine.Execute(owner, id, p.Id)
	require.Nil(t, err, "execute")
	assert.True(t, executed.Executed, "executed")
	assert.Equal(t, before-2*contribution, f.balance(t, id), "balance reduced")

	last := receipt.Events[len(receipt.Events)-1]
	assert.Equal(t, event.BadgeGranted, last.Kind, "governor badge")
	assert.True(t, f.engine.HasBadge(alice, id, badge.Governor), "proposer badge")
	assert.True(t, f.engine.HasBadge(owner, id, badge.Governor), "executor badge")
	assert.False(t, f.engine.HasBadge(bob, id, badge.Governor), "voter only")

	_, _, err = f.engine.Execute(owner, id, p.Id)
	assert.Equal(t, fault.AlreadyExecuted, err, "repeat")

	_, state, err = f.engine.Proposal(id, p.Id)
	require.Nil(t, err, "proposal")
	assert.Equal(t, governance.Executed, state, "state")

	payouts, err := f.engine.Disbursements(bob)
	require.Nil(t, err, "disbursements")
	require.Equal(t, 1, len(payouts), "one payout")
	assert.Equal(t, 2*contribution, payouts[0].Amount, "payout amount")

	info, err := f.engine.GetCircle(id)
	require.Nil(t, err, "info")
	assert.Equal(t, info.TotalContributed-info.TotalDisbursed, info.CurrentBalance, "conservation")
}

func TestFailedExecutionLeavesNoTrace(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t, alice)
	_, _, err := f.engine.Contribute(owner, id, contribution)
	require.Nil(t, err, "contribute")

	_, p, err := f.engine.CreateProposal(owner, id, governance.Request{
		Kind:      governance.Donation,
		Title:     "too much",
		Amount:    10 * contribution,
		Recipient: outsider,
	})
	require.Nil(t, err, "propose")
	_, _, err = f.engine.Vote(alice, id, p.Id, true)
	require.Nil(t, err, "vote")

	f.clock.Advance(4 * clock.Day)
	events := f.engine.Info().Events

	_, _, err = f.engine.Execute(alice, id, p.Id)
	assert.Equal(t, fault.InsufficientBalance, err, "overdraw")
	assert.Equal(t, contribution, f.balance(t, id), "balance")
	assert.Equal(t, events, f.engine.Info().Events, "no events")
	assert.False(t, f.engine.HasBadge(owner, id, badge.Governor), "no badge")

	stored, state, err := f.engine.Proposal(id, p.Id)
	require.Nil(t, err, "proposal")
	assert.False(t, stored.Executed, "not executed")
	assert.Equal(t, governance.Passed, state, "still passed")
}

func TestParameterChange(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	id := f.circle(t, alice)
	_, p, err := f.engine.CreateProposal(alice, id, governance.Request{
		Kind:      governance.ParamChange,
		Title:     "double contribution",
		Parameter: circle.ContributionAmount,
		Amount:    2 * contribution,
	})
	require.Nil(t, err, "propose")
	_, _, err = f.engine.Vote(owner, id, p.Id, true)
	require.Nil(t, err, "vote")

	f.clock.Advance(4 * clock.Day)
	_, _, err = f.engine.Execute(owner, id, p.Id)
	require.Nil(t, err, "execute")

	info, err := f.engine.GetCircle(id)
	require.Nil(t, err, "info")
	assert.Equal(t, 2*contribution, info.ContributionAmount, "new amount")

	_, _, err = f.engine.Contribute(alice, id, contribution)
	assert.Equal(t, fault.IncorrectAmount, err, "old amount")
	_, _, err = f.engine.Contribute(alice, id, 2*contribution)
	assert.Nil(t, err, "new amount accepted")
}

func TestDeployPremium(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	s := settings()
	s.IsPremium = true
	request := deployer.Request{Owner: owner, Settings: s}

	_, _, err := f.engine.DeployCircle(owner, request, deployer.DefaultPremiumFee/2)
	assert.Equal(t, fault.InsufficientFee, err, "half fee")
	assert.Equal(t, uint64(0), f.engine.Info().Circles, "no circle")
	_, err = f.engine.GetCircle(1)
	assert.Equal(t, fault.ErrCircleNotFound, err, "not visible")

	receipt, c, err := f.engine.DeployCircle(owner, request, deployer.DefaultPremiumFee)
	require.Nil(t, err, "deploy")
	assert.Equal(t, uint64(1), c.Id, "id")
	assert.True(t, c.IsPremium, "premium")
	assert.NotEqual(t, storage.TxId{}, receipt.TxId, "tx id")

	info := f.engine.Info()
	assert.Equal(t, uint64(1), info.Circles, "circles")
	assert.Equal(t, deployer.DefaultPremiumFee, info.TreasuryFees, "fees")
	assert.Equal(t, deployer.DefaultPremiumFee, info.PremiumFee, "premium fee")
	assert.Equal(t, uint64(7), info.Milestone, "milestone")
	assert.Equal(t, governance.DefaultParameters(), info.Governance, "governance")
}

func TestCreatePremiumWithoutFee(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	s := settings()
	s.IsPremium = true
	_, _, err := f.engine.CreateCircle(owner, owner, s)
	assert.Equal(t, fault.Unauthorized, err, "direct premium")

	info := f.engine.Info()
	assert.Equal(t, uint64(0), info.Circles, "no circle")
	assert.Equal(t, uint64(0), info.TreasuryFees, "no fees")
}

func TestQueries(t *testing.T) {
	f := setup(t)
	defer f.db.Close()

	first := f.circle(t, alice)
	second := f.circle(t)

	assert.Equal(t, []uint64{first, second}, f.engine.GetCirclesForMember(owner), "owner circles")
	assert.Equal(t, []uint64{first}, f.engine.GetCirclesForMember(alice), "alice circles")

	members, err := f.engine.GetCircleMembers(first)
	require.Nil(t, err, "members")
	assert.Equal(t, []account.Address{owner, alice}, members, "members")

	_, err = f.engine.Member(first, bob)
	assert.Equal(t, fault.NotMember, err, "bob")

	m, err := f.engine.Member(first, alice)
	require.Nil(t, err, "alice")
	assert.True(t, m.Exists, "exists")
	assert.Equal(t, start, m.JoinedAt, "joined")

	list, err := f.engine.Events(1, 100)
	require.Nil(t, err, "events")
	assert.Equal(t, event.CircleCreated, list[0].Kind, "first event")
	assert.Equal(t, uint64(len(list)), f.engine.Info().Events, "event count")

	proposals, err := f.engine.Proposals(first)
	require.Nil(t, err, "proposals")
	assert.Equal(t, 0, len(proposals), "none")
}
