// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/logger"
)

// Funds - the circle's ledger as seen by governance
type Funds interface {
	IsMember(r storage.Reader, member account.Address) bool
	Balance(r storage.Reader) (uint64, error)
	Disburse(trx storage.Transaction, caller account.Address, proposalId uint64, recipient account.Address, value uint64) (uint64, error)
	ApplyParameter(trx storage.Transaction, caller account.Address, parameter circle.Parameter, value uint64) error
}

// Governance - proposals and votes of one circle
type Governance struct {
	circleId   uint64
	address    account.Address
	deployer   account.Address
	funds      Funds
	badges     badge.Granter
	parameters Parameters
	db         *storage.Database
	log        *logger.L
}

// New - create an unwired governance module
func New(db *storage.Database, circleId uint64, address account.Address, deployer account.Address, badges badge.Granter, parameters Parameters) *Governance {
	return &Governance{
		circleId:   circleId,
		address:    address,
		deployer:   deployer,
		badges:     badges,
		parameters: parameters,
		db:         db,
		log:        logger.New("governance"),
	}
}

// Address - the module's own address
func (g *Governance) Address() account.Address {
	return g.address
}

// Parameters - the time rules in force
func (g *Governance) Parameters() Parameters {
	return g.parameters
}

// SetLedger - one time wiring, a repeat call returns the prior ledger unchanged
func (g *Governance) SetLedger(caller account.Address, funds Funds) (Funds, error) {
	if caller != g.deployer {
		return nil, fault.Unauthorized
	}
	if nil != g.funds {
		g.log.Warnf("circle: %d  ledger already set", g.circleId)
		return g.funds, nil
	}
	g.funds = funds
	return funds, nil
}

// CreateProposal - a member opens a proposal for voting
func (g *Governance) CreateProposal(trx storage.Transaction, caller account.Address, request Request) (*Proposal, error) {
	if nil == g.funds {
		return nil, fault.ErrWiringIncomplete
	}
	if !g.funds.IsMember(trx, caller) {
		return nil, fault.NotMember
	}
	if err := request.validate(); nil != err {
		return nil, err
	}
	if Withdrawal == request.Kind && !g.funds.IsMember(trx, request.Recipient) {
		return nil, fault.NotMember
	}

	counterKey := g.counterKey()
	n, _ := trx.GetN(g.db.Pool.Counters, counterKey)
	n += 1
	trx.PutN(g.db.Pool.Counters, counterKey, n)

	now := trx.Timestamp()
	p := &Proposal{
		Id:             n,
		CircleId:       g.circleId,
		Kind:           request.Kind,
		Title:          request.Title,
		Description:    request.Description,
		Amount:         request.Amount,
		Recipient:      request.Recipient,
		Parameter:      request.Parameter,
		Proposer:       caller,
		CreatedAt:      now,
		VotingDeadline: now + g.parameters.VotingWindow,
	}
	if err := g.put(trx, p); nil != err {
		return nil, err
	}

	data := event.ProposalCreatedData{
		ProposalId:     p.Id,
		Kind:           string(p.Kind),
		Title:          p.Title,
		Description:    p.Description,
		Amount:         p.Amount,
		Recipient:      p.Recipient,
		Parameter:      string(p.Parameter),
		Proposer:       p.Proposer,
		VotingDeadline: p.VotingDeadline,
	}
	if err := event.Emit(trx, g.db, event.ProposalCreated, g.circleId, &data); nil != err {
		return nil, err
	}

	g.log.Infof("circle: %d  proposal: %d  kind: %s  by: %s", g.circleId, p.Id, p.Kind, caller)
	return p, nil
}

// Vote - a member votes once on an open proposal
func (g *Governance) Vote(trx storage.Transaction, caller account.Address, id uint64, support bool) (*Proposal, error) {
	if nil == g.funds {
		return nil, fault.ErrWiringIncomplete
	}
	if !g.funds.IsMember(trx, caller) {
		return nil, fault.NotMember
	}
	p, err := g.get(trx, id)
	if nil != err {
		return nil, err
	}
	if trx.Timestamp() >= p.VotingDeadline {
		return nil, fault.VotingClosed
	}

	voteKey := g.voteKey(id, caller)
	if trx.Has(g.db.Pool.Votes, voteKey) {
		return nil, fault.AlreadyVoted
	}

	if support {
		p.VotesFor += 1
		trx.Put(g.db.Pool.Votes, voteKey, []byte{1})
	} else {
		p.VotesAgainst += 1
		trx.Put(g.db.Pool.Votes, voteKey, []byte{0})
	}
	if err := g.put(trx, p); nil != err {
		return nil, err
	}

	data := event.VoteCastData{
		ProposalId:   id,
		Voter:        caller,
		Support:      support,
		VotesFor:     p.VotesFor,
		VotesAgainst: p.VotesAgainst,
	}
	if err := event.Emit(trx, g.db, event.VoteCast, g.circleId, &data); nil != err {
		return nil, err
	}

	g.log.Debugf("circle: %d  proposal: %d  vote: %v by: %s", g.circleId, id, support, caller)
	return p, nil
}

// Execute - carry out a passed proposal after the execution delay
func (g *Governance) Execute(trx storage.Transaction, caller account.Address, id uint64) (*Proposal, error) {
	if nil == g.funds {
		return nil, fault.ErrWiringIncomplete
	}
	if !g.funds.IsMember(trx, caller) {
		return nil, fault.NotMember
	}
	p, err := g.get(trx, id)
	if nil != err {
		return nil, err
	}
	if p.Executed {
		return nil, fault.AlreadyExecuted
	}

	now := trx.Timestamp()
	executableAt := p.VotingDeadline + g.parameters.ExecutionDelay
	if now < executableAt {
		return nil, fault.TooEarly
	}
	if 0 != g.parameters.ExecutionGrace && now >= executableAt+g.parameters.ExecutionGrace {
		return nil, fault.ProposalExpired
	}
	if p.VotesFor <= p.VotesAgainst {
		return nil, fault.ProposalRejected
	}

	switch p.Kind {
	case Withdrawal, Donation:
		if _, err := g.funds.Disburse(trx, g.address, p.Id, p.Recipient, p.Amount); nil != err {
			return nil, err
		}
	case ParamChange:
		if err := g.funds.ApplyParameter(trx, g.address, p.Parameter, p.Amount); nil != err {
			return nil, err
		}
	default:
		return nil, fault.ErrInvalidProposalKind
	}

	p.Executed = true
	p.ExecutedAt = now
	p.Executor = caller
	if err := g.put(trx, p); nil != err {
		return nil, err
	}

	balance, err := g.funds.Balance(trx)
	if nil != err {
		return nil, err
	}
	data := event.ProposalExecutedData{
		ProposalId: p.Id,
		Kind:       string(p.Kind),
		Amount:     p.Amount,
		Recipient:  p.Recipient,
		Parameter:  string(p.Parameter),
		Executor:   caller,
		Balance:    balance,
	}
	if err := event.Emit(trx, g.db, event.ProposalExecuted, g.circleId, &data); nil != err {
		return nil, err
	}

	if nil != g.badges {
		recipients := []account.Address{p.Proposer}
		if caller != p.Proposer {
			recipients = append(recipients, caller)
		}
		for _, member := range recipients {
			if _, err := g.badges.Grant(trx, g.address, member, g.circleId, badge.Governor); nil != err {
				return nil, err
			}
		}
	}

	g.log.Infof("circle: %d  executed proposal: %d  by: %s", g.circleId, p.Id, caller)
	return p, nil
}

// Proposal - committed proposal
func (g *Governance) Proposal(id uint64) (*Proposal, error) {
	return g.get(g.db, id)
}

// Proposals - all committed proposals of the circle in id order
func (g *Governance) Proposals() ([]Proposal, error) {
	list := make([]Proposal, 0, 8)
	var decodeError error
	g.db.Pool.Proposals.Iterate(storage.N(g.circleId), func(key []byte, value []byte) bool {
		var p Proposal
		if err := storage.DecodeObject(value, &p); nil != err {
			decodeError = err
			return false
		}
		list = append(list, p)
		return true
	})
	if nil != decodeError {
		return nil, decodeError
	}
	return list, nil
}

// HasVoted - committed vote check
func (g *Governance) HasVoted(id uint64, member account.Address) bool {
	return g.db.Has(g.db.Pool.Votes, g.voteKey(id, member))
}

func (g *Governance) get(r storage.Reader, id uint64) (*Proposal, error) {
	p := &Proposal{}
	found, err := storage.GetObject(r, g.db.Pool.Proposals, storage.Key(storage.N(g.circleId), storage.N(id)), p)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, fault.ErrProposalNotFound
	}
	return p, nil
}

func (g *Governance) put(trx storage.Transaction, p *Proposal) error {
	return storage.PutObject(trx, g.db.Pool.Proposals, storage.Key(storage.N(g.circleId), storage.N(p.Id)), p)
}

func (g *Governance) counterKey() []byte {
	return storage.Key([]byte("proposal"), storage.N(g.circleId))
}

func (g *Governance) voteKey(id uint64, member account.Address) []byte {
	return storage.Key(storage.N(g.circleId), storage.N(id), member.Bytes())
}
