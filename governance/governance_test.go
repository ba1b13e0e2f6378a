// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/mocks"
	"github.com/bitmark-inc/circled/storage"
)

const (
	circleId = uint64(1)
	start    = uint64(1000000)
)

var (
	deployer = account.Derive(account.Zero, "deployer", 0)
	address  = account.Derive(deployer, "governance", circleId)
	alice    = account.Derive(account.Zero, "alice", 0)
	bob      = account.Derive(account.Zero, "bob", 0)
	carol    = account.Derive(account.Zero, "carol", 0)
	outsider = account.Derive(account.Zero, "outsider", 0)
	charity  = account.Derive(account.Zero, "charity", 0)
)

type fixture struct {
	db      *storage.Database
	g       *governance.Governance
	funds   *mocks.MockFunds
	granter *mocks.MockGranter
	now     uint64
}

func setup(t *testing.T, ctl *gomock.Controller) *fixture {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")

	members := map[account.Address]bool{alice: true, bob: true, carol: true}

	funds := mocks.NewMockFunds(ctl)
	funds.EXPECT().
		IsMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ storage.Reader, a account.Address) bool { return members[a] }).
		AnyTimes()

	granter := mocks.NewMockGranter(ctl)

	g := governance.New(db, circleId, address, deployer, granter, governance.DefaultParameters())
	_, err = g.SetLedger(deployer, funds)
	require.Nil(t, err, "wire")

	return &fixture{
		db:      db,
		g:       g,
		funds:   funds,
		granter: granter,
		now:     start,
	}
}

func (f *fixture) propose(caller account.Address, request governance.Request) (*governance.Proposal, error) {
	var p *governance.Proposal
	_, err := f.db.Atomic(f.now, func(trx storage.Transaction) error {
		var err error
		p, err = f.g.CreateProposal(trx, caller, request)
		return err
	})
	return p, err
}

func (f *fixture) vote(caller account.Address, id uint64, support bool) error {
	_, err := f.db.Atomic(f.now, func(trx storage.Transaction) error {
		_, err := f.g.Vote(trx, caller, id, support)
		return err
	})
	return err
}

func (f *fixture) execute(caller account.Address, id uint64) (storage.Transaction, error) {
	return f.db.Atomic(f.now, func(trx storage.Transaction) error {
		_, err := f.g.Execute(trx, caller, id)
		return err
	})
}

func donation() governance.Request {
	return governance.Request{
		Kind:        governance.Donation,
		Title:       "school books",
		Description: "donate to the library",
		Amount:      400000,
		Recipient:   charity,
	}
}

func TestCreateProposal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(alice, donation())
	require.Nil(t, err, "create")
	assert.Equal(t, uint64(1), p.Id, "first id")
	assert.Equal(t, start+3*clock.Day, p.VotingDeadline, "deadline")
	assert.Equal(t, alice, p.Proposer, "proposer")
	assert.False(t, p.Executed, "executed")

	p2, err := f.propose(bob, donation())
	require.Nil(t, err, "second")
	assert.Equal(t, uint64(2), p2.Id, "second id")

	list, err := f.g.Proposals()
	require.Nil(t, err, "list")
	assert.Equal(t, 2, len(list), "count")
	assert.Equal(t, governance.Open, list[0].State(f.now, f.g.Parameters()), "open")
}

func TestCreateProposalRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	_, err := f.propose(outsider, donation())
	assert.Equal(t, fault.NotMember, err, "outsider")

	r := donation()
	r.Title = ""
	_, err = f.propose(alice, r)
	assert.Equal(t, fault.ErrMissingTitle, err, "title")

	r = donation()
	r.Amount = 0
	_, err = f.propose(alice, r)
	assert.Equal(t, fault.ErrInvalidAmount, err, "amount")

	r = donation()
	r.Recipient = account.Zero
	_, err = f.propose(alice, r)
	assert.Equal(t, fault.ErrInvalidRecipient, err, "recipient")

	r = donation()
	r.Kind = governance.Withdrawal
	_, err = f.propose(alice, r)
	assert.Equal(t, fault.NotMember, err, "withdrawal to outsider")

	r = governance.Request{Kind: governance.ParamChange, Title: "period", Parameter: "owner", Amount: 1}
	_, err = f.propose(alice, r)
	assert.Equal(t, fault.ErrInvalidParameter, err, "parameter")

	r = governance.Request{Kind: governance.Kind("MINT"), Title: "mint"}
	_, err = f.propose(alice, r)
	assert.Equal(t, fault.ErrInvalidProposalKind, err, "kind")

	list, err := f.g.Proposals()
	require.Nil(t, err, "list")
	assert.Equal(t, 0, len(list), "nothing created")
}

func TestVote(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(alice, donation())
	require.Nil(t, err, "create")

	assert.Nil(t, f.vote(alice, p.Id, true), "alice")
	assert.Nil(t, f.vote(bob, p.Id, false), "bob")
	assert.Equal(t, fault.AlreadyVoted, f.vote(alice, p.Id, false), "re-vote")
	assert.Equal(t, fault.NotMember, f.vote(outsider, p.Id, true), "outsider")
	assert.Equal(t, fault.ErrProposalNotFound, f.vote(carol, 99, true), "missing")

	f.now = p.VotingDeadline
	assert.Equal(t, fault.VotingClosed, f.vote(carol, p.Id, true), "at deadline")

	p, err = f.g.Proposal(p.Id)
	require.Nil(t, err, "proposal")
	assert.Equal(t, uint64(1), p.VotesFor, "for")
	assert.Equal(t, uint64(1), p.VotesAgainst, "against")
	assert.True(t, f.g.HasVoted(p.Id, bob), "bob voted")
	assert.False(t, f.g.HasVoted(p.Id, carol), "carol did not")
}

func TestExecuteDonation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(alice, donation())
	require.Nil(t, err, "create")
	require.Nil(t, f.vote(alice, p.Id, true), "alice")
	require.Nil(t, f.vote(bob, p.Id, true), "bob")
	require.Nil(t, f.vote(carol, p.Id, false), "carol")

	f.now = p.VotingDeadline + clock.Day/2
	_, err = f.execute(bob, p.Id)
	assert.Equal(t, fault.TooEarly, err, "half a day after deadline")

	gomock.InOrder(
		f.funds.EXPECT().Disburse(gomock.Any(), address, p.Id, charity, uint64(400000)).Return(uint64(600000), nil),
		f.funds.EXPECT().Balance(gomock.Any()).Return(uint64(600000), nil),
		f.granter.EXPECT().Grant(gomock.Any(), address, alice, circleId, badge.Governor).Return(true, nil),
		f.granter.EXPECT().Grant(gomock.Any(), address, bob, circleId, badge.Governor).Return(true, nil),
	)

	f.now = p.VotingDeadline + clock.Day
	trx, err := f.execute(bob, p.Id)
	require.Nil(t, err, "execute")

	require.Equal(t, 1, len(trx.Notes()), "events")
	e := trx.Notes()[0].(event.Event)
	assert.Equal(t, event.ProposalExecuted, e.Kind, "kind")
	var data event.ProposalExecutedData
	require.Nil(t, e.Decode(&data), "decode")
	assert.Equal(t, uint64(600000), data.Balance, "balance")
	assert.Equal(t, bob, data.Executor, "executor")

	p, err = f.g.Proposal(p.Id)
	require.Nil(t, err, "proposal")
	assert.True(t, p.Executed, "executed")
	assert.Equal(t, governance.Executed, p.State(f.now, f.g.Parameters()), "state")

	_, err = f.execute(bob, p.Id)
	assert.Equal(t, fault.AlreadyExecuted, err, "second execution")
}

func TestExecuteRejected(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(alice, donation())
	require.Nil(t, err, "create")
	require.Nil(t, f.vote(alice, p.Id, true), "alice")
	require.Nil(t, f.vote(bob, p.Id, false), "bob")

	f.now = p.VotingDeadline + clock.Day
	_, err = f.execute(alice, p.Id)
	assert.Equal(t, fault.ProposalRejected, err, "tie")

	p, err = f.g.Proposal(p.Id)
	require.Nil(t, err, "proposal")
	assert.Equal(t, governance.Failed, p.State(f.now, f.g.Parameters()), "failed")

	_, err = f.execute(outsider, p.Id)
	assert.Equal(t, fault.NotMember, err, "outsider")
}

func TestExecuteInsufficientBalance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(alice, donation())
	require.Nil(t, err, "create")
	require.Nil(t, f.vote(alice, p.Id, true), "alice")

	f.funds.EXPECT().Disburse(gomock.Any(), address, p.Id, charity, uint64(400000)).Return(uint64(0), fault.InsufficientBalance)

	f.now = p.VotingDeadline + clock.Day
	_, err = f.execute(alice, p.Id)
	assert.Equal(t, fault.InsufficientBalance, err, "overdraw")

	p, err = f.g.Proposal(p.Id)
	require.Nil(t, err, "proposal")
	assert.False(t, p.Executed, "not executed")
	assert.Equal(t, uint64(1), p.VotesFor, "tally unchanged")
	assert.Equal(t, governance.Passed, p.State(f.now, f.g.Parameters()), "still passed")
}

func TestExecuteExpired(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(alice, donation())
	require.Nil(t, err, "create")
	require.Nil(t, f.vote(alice, p.Id, true), "alice")

	f.now = p.VotingDeadline + clock.Day + 30*clock.Day
	_, err = f.execute(alice, p.Id)
	assert.Equal(t, fault.ProposalExpired, err, "expired")

	p, err = f.g.Proposal(p.Id)
	require.Nil(t, err, "proposal")
	assert.Equal(t, uint64(1), p.VotesFor, "for")
	assert.False(t, p.Executed, "not executed")
	assert.Equal(t, governance.Expired, p.State(f.now, f.g.Parameters()), "state")
}

func TestExecuteParameterChange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	p, err := f.propose(carol, governance.Request{
		Kind:      governance.ParamChange,
		Title:     "fortnightly",
		Parameter: circle.ContributionPeriod,
		Amount:    2 * clock.Week,
	})
	require.Nil(t, err, "create")
	require.Nil(t, f.vote(alice, p.Id, true), "alice")

	f.funds.EXPECT().ApplyParameter(gomock.Any(), address, circle.ContributionPeriod, 2*clock.Week).Return(nil)
	f.funds.EXPECT().Balance(gomock.Any()).Return(uint64(0), nil)
	f.granter.EXPECT().Grant(gomock.Any(), address, carol, circleId, badge.Governor).Return(true, nil)
	f.granter.EXPECT().Grant(gomock.Any(), address, alice, circleId, badge.Governor).Return(false, nil)

	f.now = p.VotingDeadline + clock.Day
	_, err = f.execute(alice, p.Id)
	assert.Nil(t, err, "execute")
}

func TestSetLedgerOnce(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	f := setup(t, ctl)
	defer f.db.Close()

	_, err := f.g.SetLedger(alice, mocks.NewMockFunds(ctl))
	assert.Equal(t, fault.Unauthorized, err, "only deployer")

	prior, err := f.g.SetLedger(deployer, mocks.NewMockFunds(ctl))
	assert.Nil(t, err, "repeat")
	assert.Equal(t, f.funds, prior, "prior kept")
}

func TestUnwired(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	g := governance.New(db, circleId, address, deployer, nil, governance.DefaultParameters())
	_, err = db.Atomic(1, func(trx storage.Transaction) error {
		_, err := g.CreateProposal(trx, alice, donation())
		return err
	})
	assert.Equal(t, fault.ErrWiringIncomplete, err, "no ledger")
}
