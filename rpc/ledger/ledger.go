// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - RPC calls for contributions and member standing
package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/ledger"
	"github.com/bitmark-inc/circled/rpc/ratelimit"
	"github.com/bitmark-inc/circled/streak"
	"github.com/bitmark-inc/circled/substrate"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

// Ledger - type for RPC calls
type Ledger struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create a ledger RPC handler
func New(log *logger.L, e engine.Engine) *Ledger {
	return &Ledger{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Engine:  e,
	}
}

// Member - a member record as presented to clients
type Member struct {
	Address          account.Address `json:"address"`
	Exists           bool            `json:"exists"`
	TotalContributed string          `json:"totalContributed"`
	LastContribution uint64          `json:"lastContributionTimestamp"`
	JoinedAt         uint64          `json:"joinedAt"`
	Contributions    uint64          `json:"contributions"`
}

func memberFrom(m *ledger.Member) Member {
	return Member{
		Address:          m.Address,
		Exists:           m.Exists,
		TotalContributed: amount.String(m.TotalContributed),
		LastContribution: m.LastContribution,
		JoinedAt:         m.JoinedAt,
		Contributions:    m.Contributions,
	}
}

// ---

// ContributeArguments - a payment into a circle
type ContributeArguments struct {
	Caller   account.Address `json:"caller"`
	CircleId uint64          `json:"circleId"`
	Amount   string          `json:"amount"`
}

// ContributeReply - result of a contribution
type ContributeReply struct {
	*substrate.Receipt
	Member Member `json:"member"`
}

// Contribute - a member pays the agreed amount into the pool
func (l *Ledger) Contribute(arguments *ContributeArguments, reply *ContributeReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	value, err := amount.Parse(arguments.Amount)
	if nil != err {
		return err
	}

	l.Log.Infof("contribute: %s  circle: %d  caller: %s", arguments.Amount, arguments.CircleId, arguments.Caller)

	receipt, m, err := l.Engine.Contribute(arguments.Caller, arguments.CircleId, value)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	reply.Member = memberFrom(m)
	return nil
}

// ---

// MemberArguments - identify a member of a circle
type MemberArguments struct {
	CircleId uint64          `json:"circleId"`
	Member   account.Address `json:"member"`
}

// Member - the ledger record of one member
func (l *Ledger) Member(arguments *MemberArguments, reply *Member) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	m, err := l.Engine.Member(arguments.CircleId, arguments.Member)
	if nil != err {
		return err
	}
	*reply = memberFrom(m)
	return nil
}

// Streak - the contribution streak of one member
func (l *Ledger) Streak(arguments *MemberArguments, reply *streak.Streak) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	s, err := l.Engine.Streak(arguments.CircleId, arguments.Member)
	if nil != err {
		return err
	}
	*reply = s
	return nil
}

// ---

// DisbursementsArguments - identify a recipient
type DisbursementsArguments struct {
	Recipient account.Address `json:"recipient"`
}

// Disbursement - a payout as presented to clients
type Disbursement struct {
	CircleId   uint64          `json:"circleId"`
	ProposalId uint64          `json:"proposalId"`
	Recipient  account.Address `json:"recipient"`
	Amount     string          `json:"amount"`
	Timestamp  uint64          `json:"timestamp"`
}

// DisbursementsReply - all payouts to a recipient
type DisbursementsReply struct {
	Disbursements []Disbursement `json:"disbursements"`
}

// Disbursements - funds paid to a recipient by executed proposals
func (l *Ledger) Disbursements(arguments *DisbursementsArguments, reply *DisbursementsReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}

	paid, err := l.Engine.Disbursements(arguments.Recipient)
	if nil != err {
		return err
	}
	reply.Disbursements = make([]Disbursement, len(paid))
	for i, d := range paid {
		reply.Disbursements[i] = Disbursement{
			CircleId:   d.CircleId,
			ProposalId: d.ProposalId,
			Recipient:  d.Recipient,
			Amount:     amount.String(d.Amount),
			Timestamp:  d.Timestamp,
		}
	}
	return nil
}
