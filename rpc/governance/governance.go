// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package governance - RPC calls for proposals and votes
package governance

import (
	"strconv"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/rpc/ratelimit"
	"github.com/bitmark-inc/circled/substrate"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitGovernance = 200
	rateBurstGovernance = 100
)

// Governance - type for RPC calls
type Governance struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create a governance RPC handler
func New(log *logger.L, e engine.Engine) *Governance {
	return &Governance{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGovernance, rateBurstGovernance),
		Engine:  e,
	}
}

// Proposal - a proposal as presented to clients
//
// amount is a decimal string except for a contributionPeriod change
// where it is a whole number of seconds
type Proposal struct {
	Id             uint64           `json:"id"`
	CircleId       uint64           `json:"circleId"`
	Kind           governance.Kind  `json:"kind"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Amount         string           `json:"amount"`
	Recipient      account.Address  `json:"recipient"`
	Parameter      circle.Parameter `json:"parameter,omitempty"`
	Proposer       account.Address  `json:"proposer"`
	CreatedAt      uint64           `json:"createdAt"`
	VotingDeadline uint64           `json:"votingDeadline"`
	VotesFor       uint64           `json:"votesFor"`
	VotesAgainst   uint64           `json:"votesAgainst"`
	Executed       bool             `json:"executed"`
	ExecutedAt     uint64           `json:"executedAt,omitempty"`
	State          governance.State `json:"state,omitempty"`
}

func proposalFrom(p *governance.Proposal, state governance.State) Proposal {
	value := amount.String(p.Amount)
	if circle.ContributionPeriod == p.Parameter {
		value = strconv.FormatUint(p.Amount, 10)
	}
	return Proposal{
		Id:             p.Id,
		CircleId:       p.CircleId,
		Kind:           p.Kind,
		Title:          p.Title,
		Description:    p.Description,
		Amount:         value,
		Recipient:      p.Recipient,
		Parameter:      p.Parameter,
		Proposer:       p.Proposer,
		CreatedAt:      p.CreatedAt,
		VotingDeadline: p.VotingDeadline,
		VotesFor:       p.VotesFor,
		VotesAgainst:   p.VotesAgainst,
		Executed:       p.Executed,
		ExecutedAt:     p.ExecutedAt,
		State:          state,
	}
}

// ---

// ProposeArguments - a new proposal
type ProposeArguments struct {
	Caller      account.Address `json:"caller"`
	CircleId    uint64          `json:"circleId"`
	Kind        string          `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Amount      string          `json:"amount"`
	Recipient   account.Address `json:"recipient"`
	Parameter   string          `json:"parameter"`
}

// Request - decode the arguments into a governance request
func (arguments *ProposeArguments) Request() (governance.Request, error) {
	kind, err := governance.KindFromString(arguments.Kind)
	if nil != err {
		return governance.Request{}, err
	}

	request := governance.Request{
		Kind:        kind,
		Title:       arguments.Title,
		Description: arguments.Description,
		Recipient:   arguments.Recipient,
	}

	if "" != arguments.Parameter {
		request.Parameter, err = circle.ParameterFromString(arguments.Parameter)
		if nil != err {
			return governance.Request{}, err
		}
	}

	if circle.ContributionPeriod == request.Parameter {
		request.Amount, err = strconv.ParseUint(arguments.Amount, 10, 64)
		if nil != err {
			return governance.Request{}, fault.ErrInvalidAmount
		}
	} else {
		request.Amount, err = amount.Parse(arguments.Amount)
		if nil != err {
			return governance.Request{}, err
		}
	}
	return request, nil
}

// ProposalReply - result of a mutating governance call
type ProposalReply struct {
	*substrate.Receipt
	Proposal Proposal `json:"proposal"`
}

// Propose - a member creates a proposal
func (g *Governance) Propose(arguments *ProposeArguments, reply *ProposalReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	request, err := arguments.Request()
	if nil != err {
		return err
	}

	g.Log.Infof("propose: %s  circle: %d  caller: %s", request.Kind, arguments.CircleId, arguments.Caller)

	receipt, p, err := g.Engine.CreateProposal(arguments.Caller, arguments.CircleId, request)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	reply.Proposal = proposalFrom(p, governance.Open)
	return nil
}

// ---

// VoteArguments - a member's vote
type VoteArguments struct {
	Caller     account.Address `json:"caller"`
	CircleId   uint64          `json:"circleId"`
	ProposalId uint64          `json:"proposalId"`
	Support    bool            `json:"support"`
}

// Vote - a member votes once on an open proposal
func (g *Governance) Vote(arguments *VoteArguments, reply *ProposalReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	receipt, p, err := g.Engine.Vote(arguments.Caller, arguments.CircleId, arguments.ProposalId, arguments.Support)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	reply.Proposal = proposalFrom(p, governance.Open)
	return nil
}

// ---

// ProposalArguments - identify a proposal
type ProposalArguments struct {
	Caller     account.Address `json:"caller"`
	CircleId   uint64          `json:"circleId"`
	ProposalId uint64          `json:"proposalId"`
}

// Execute - carry out a passed proposal
func (g *Governance) Execute(arguments *ProposalArguments, reply *ProposalReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	g.Log.Infof("execute: %d  circle: %d  caller: %s", arguments.ProposalId, arguments.CircleId, arguments.Caller)

	receipt, p, err := g.Engine.Execute(arguments.Caller, arguments.CircleId, arguments.ProposalId)
	if nil != err {
		return err
	}
	reply.Receipt = receipt
	reply.Proposal = proposalFrom(p, governance.Executed)
	return nil
}

// Get - a proposal and its current state
func (g *Governance) Get(arguments *ProposalArguments, reply *Proposal) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	p, state, err := g.Engine.Proposal(arguments.CircleId, arguments.ProposalId)
	if nil != err {
		return err
	}
	*reply = proposalFrom(p, state)
	return nil
}

// ---

// ListArguments - identify a circle
type ListArguments struct {
	CircleId uint64 `json:"circleId"`
}

// ListReply - proposals in creation order
type ListReply struct {
	Proposals []Proposal `json:"proposals"`
}

// List - all proposals of a circle
func (g *Governance) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(g.Limiter); nil != err {
		return err
	}

	proposals, err := g.Engine.Proposals(arguments.CircleId)
	if nil != err {
		return err
	}

	info := g.Engine.Info()
	reply.Proposals = make([]Proposal, len(proposals))
	for i := range proposals {
		p := &proposals[i]
		reply.Proposals[i] = proposalFrom(p, p.State(info.Now, info.Governance))
	}
	return nil
}
