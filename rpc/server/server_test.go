// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/counter"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/rpc/badge"
	"github.com/bitmark-inc/circled/rpc/circle"
	"github.com/bitmark-inc/circled/rpc/events"
	"github.com/bitmark-inc/circled/rpc/fixtures"
	rpcgovernance "github.com/bitmark-inc/circled/rpc/governance"
	"github.com/bitmark-inc/circled/rpc/ledger"
	"github.com/bitmark-inc/circled/rpc/node"
	"github.com/bitmark-inc/circled/rpc/server"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/substrate"
	"github.com/bitmark-inc/logger"
)

var (
	owner  = account.Derive(account.Zero, "owner", 0)
	alice  = account.Derive(account.Zero, "alice", 0)
	donee  = account.Derive(account.Zero, "donee", 0)
	manual = clock.NewManual(1600000000)
)

var address string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	db, err := storage.OpenMemory()
	if nil != err {
		panic(err)
	}
	e, err := engine.New(substrate.New(db, manual, nil), engine.Configuration{})
	if nil != err {
		panic(err)
	}

	var c counter.Counter
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", e, &c)
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		panic(err)
	}
	address = l.Addr().String()

	go func() {
		for {
			conn, err := l.Accept()
			if nil != err {
				return
			}
			go r.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	rc := m.Run()

	_ = l.Close()
	db.Close()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func call(t *testing.T, method string, arguments interface{}, reply interface{}) error {
	conn, err := net.Dial("tcp", address)
	require.Nil(t, err, "dial")
	client := rpc.NewClientWithCodec(jsonrpc.NewClientCodec(conn))
	defer client.Close()
	return client.Call(method, arguments, reply)
}

// the calls run in order against one engine
func TestCircleLifecycle(t *testing.T) {
	var created circle.CreateReply
	err := call(t, "Circle.Create", &circle.CreateArguments{
		Caller:             owner,
		Owner:              owner,
		Name:               "Holiday",
		Goal:               "100",
		ContributionAmount: "0.01",
		ContributionPeriod: clock.Week,
	}, &created)
	require.Nil(t, err, "Circle.Create")
	require.NotNil(t, created.Receipt, "receipt")
	id := created.CircleId
	assert.Equal(t, uint64(1), id, "circle id")
	assert.Equal(t, 2, len(created.Events), "created events")

	var added circle.AddMemberReply
	err = call(t, "Circle.AddMember", &circle.AddMemberArguments{Caller: owner, Id: id, Member: alice}, &added)
	require.Nil(t, err, "Circle.AddMember")

	var members circle.MembersReply
	require.Nil(t, call(t, "Circle.Members", &circle.GetArguments{Id: id}, &members), "Circle.Members")
	assert.Equal(t, []account.Address{owner, alice}, members.Members, "members")

	var contributed ledger.ContributeReply
	err = call(t, "Ledger.Contribute", &ledger.ContributeArguments{Caller: alice, CircleId: id, Amount: "0.01"}, &contributed)
	require.Nil(t, err, "Ledger.Contribute")
	assert.Equal(t, "0.01", contributed.Member.TotalContributed, "total")

	var info circle.Info
	require.Nil(t, call(t, "Circle.Get", &circle.GetArguments{Id: id}, &info), "Circle.Get")
	assert.Equal(t, "0.01", info.CurrentBalance, "balance")
	assert.Equal(t, "100", info.GoalAmount, "goal")
	assert.Equal(t, alice, info.TopContributor, "top contributor")

	var has badge.HasReply
	require.Nil(t, call(t, "Badge.Has", &badge.HasArguments{Member: alice, CircleId: id, Kind: "top-contributor"}, &has), "Badge.Has")
	assert.True(t, has.Granted, "top contributor badge")

	var proposed rpcgovernance.ProposalReply
	err = call(t, "Governance.Propose", &rpcgovernance.ProposeArguments{
		Caller:    alice,
		CircleId:  id,
		Kind:      "DONATION",
		Title:     "gift",
		Amount:    "0.005",
		Recipient: donee,
	}, &proposed)
	require.Nil(t, err, "Governance.Propose")
	pid := proposed.Proposal.Id

	var voted rpcgovernance.ProposalReply
	err = call(t, "Governance.Vote", &rpcgovernance.VoteArguments{Caller: owner, CircleId: id, ProposalId: pid, Support: true}, &voted)
	require.Nil(t, err, "Governance.Vote")
	assert.Equal(t, uint64(1), voted.Proposal.VotesFor, "votes for")

	var executed rpcgovernance.ProposalReply
	err = call(t, "Governance.Execute", &rpcgovernance.ProposalArguments{Caller: alice, CircleId: id, ProposalId: pid}, &executed)
	require.NotNil(t, err, "early Governance.Execute")
	assert.Equal(t, fault.TooEarly.Error(), err.Error(), "too early")

	manual.Advance(governance.DefaultParameters().VotingWindow + governance.DefaultParameters().ExecutionDelay)

	var state rpcgovernance.Proposal
	require.Nil(t, call(t, "Governance.Get", &rpcgovernance.ProposalArguments{CircleId: id, ProposalId: pid}, &state), "Governance.Get")
	assert.Equal(t, governance.Passed, state.State, "passed")

	err = call(t, "Governance.Execute", &rpcgovernance.ProposalArguments{Caller: alice, CircleId: id, ProposalId: pid}, &executed)
	require.Nil(t, err, "Governance.Execute")
	assert.True(t, executed.Proposal.Executed, "executed")

	var list rpcgovernance.ListReply
	require.Nil(t, call(t, "Governance.List", &rpcgovernance.ListArguments{CircleId: id}, &list), "Governance.List")
	require.Equal(t, 1, len(list.Proposals), "proposals")
	assert.Equal(t, governance.Executed, list.Proposals[0].State, "state")
	assert.Equal(t, "0.005", list.Proposals[0].Amount, "amount")

	var paid ledger.DisbursementsReply
	require.Nil(t, call(t, "Ledger.Disbursements", &ledger.DisbursementsArguments{Recipient: donee}, &paid), "Ledger.Disbursements")
	require.Equal(t, 1, len(paid.Disbursements), "disbursements")
	assert.Equal(t, "0.005", paid.Disbursements[0].Amount, "paid")

	var badges badge.ListReply
	require.Nil(t, call(t, "Badge.List", &badge.ListArguments{Member: alice, CircleId: id}, &badges), "Badge.List")
	assert.Equal(t, 2, len(badges.Badges), "top contributor and governor")

	var history struct {
		Events []struct {
			Sequence uint64     `json:"sequence"`
			Kind     event.Kind `json:"kind"`
		} `json:"events"`
		NextStart uint64 `json:"nextStart,string"`
	}
	require.Nil(t, call(t, "Events.List", &events.ListArguments{Start: 1, Count: 3}, &history), "Events.List")
	require.Equal(t, 3, len(history.Events), "events")
	assert.Equal(t, event.CircleCreated, history.Events[0].Kind, "first event")
	assert.Equal(t, uint64(4), history.NextStart, "next start")

	var nodeInfo node.InfoReply
	require.Nil(t, call(t, "Node.Info", &node.InfoArguments{}, &nodeInfo), "Node.Info")
	assert.Equal(t, "1.0", nodeInfo.Version, "version")
	assert.Equal(t, uint64(1), nodeInfo.Circles, "circles")
	assert.Equal(t, "0.01", nodeInfo.PremiumFee, "premium fee")
}

func TestInvalidArguments(t *testing.T) {
	var created circle.CreateReply
	err := call(t, "Circle.Create", &circle.CreateArguments{
		Caller:             owner,
		Owner:              owner,
		Name:               "Bad",
		Goal:               "ten",
		ContributionAmount: "1",
		ContributionPeriod: clock.Week,
	}, &created)
	require.NotNil(t, err, "bad goal")
	assert.Equal(t, fault.ErrInvalidAmount.Error(), err.Error(), "bad goal")

	var info circle.Info
	err = call(t, "Circle.Get", &circle.GetArguments{Id: 999}, &info)
	require.NotNil(t, err, "missing circle")
	assert.Equal(t, fault.ErrCircleNotFound.Error(), err.Error(), "missing circle")

	var has badge.HasReply
	err = call(t, "Badge.Has", &badge.HasArguments{Member: alice, CircleId: 1, Kind: "gold"}, &has)
	require.NotNil(t, err, "bad kind")
	assert.Equal(t, fault.ErrInvalidBadgeKind.Error(), err.Error(), "bad kind")

	var history events.ListReply
	err = call(t, "Events.List", &events.ListArguments{Start: 0, Count: 0}, &history)
	require.NotNil(t, err, "bad count")
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "bad count")

	var proposed rpcgovernance.ProposalReply
	err = call(t, "Governance.Propose", &rpcgovernance.ProposeArguments{Caller: owner, CircleId: 1, Kind: "LOAN", Title: "x", Amount: "1"}, &proposed)
	require.NotNil(t, err, "bad proposal kind")
	assert.Equal(t, fault.ErrInvalidProposalKind.Error(), err.Error(), "bad proposal kind")
}
