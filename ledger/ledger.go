// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/streak"
	"github.com/bitmark-inc/logger"
)

// Member - one member of a circle
type Member struct {
	Address          account.Address `json:"address"`
	Exists           bool            `json:"exists"`
	TotalContributed uint64          `json:"totalContributed"`
	LastContribution uint64          `json:"lastContributionTimestamp"`
	JoinedAt         uint64          `json:"joinedAt"`
	Contributions    uint64          `json:"contributions"`
}

// Disbursement - funds paid out by an executed proposal
type Disbursement struct {
	CircleId   uint64          `json:"circleId"`
	ProposalId uint64          `json:"proposalId"`
	Recipient  account.Address `json:"recipient"`
	Amount     uint64          `json:"amount"`
	Timestamp  uint64          `json:"timestamp"`
}

// Recorder - receives every accepted contribution
type Recorder interface {
	RecordContribution(trx storage.Transaction, caller account.Address, member account.Address) (streak.Streak, error)
}

// Ledger - membership and pooled funds of one circle
type Ledger struct {
	circleId   uint64
	address    account.Address
	deployer   account.Address
	tracker    Recorder
	badges     badge.Granter
	governance account.Address
	db         *storage.Database
	log        *logger.L
}

// New - create an unwired ledger
//
// deployer is the only address allowed to wire it
func New(db *storage.Database, circleId uint64, address account.Address, deployer account.Address) *Ledger {
	return &Ledger{
		circleId: circleId,
		address:  address,
		deployer: deployer,
		db:       db,
		log:      logger.New("ledger"),
	}
}

// Address - the ledger's own address
func (l *Ledger) Address() account.Address {
	return l.address
}

// CircleId - the circle this ledger belongs to
func (l *Ledger) CircleId() uint64 {
	return l.circleId
}

// SetStreakTracker - one time wiring, a repeat call returns the prior tracker unchanged
func (l *Ledger) SetStreakTracker(caller account.Address, tracker Recorder) (Recorder, error) {
	if caller != l.deployer {
		return nil, fault.Unauthorized
	}
	if nil != l.tracker {
		l.log.Warnf("circle: %d  streak tracker already set", l.circleId)
		return l.tracker, nil
	}
	l.tracker = tracker
	return tracker, nil
}

// SetBadgeSystem - one time wiring, a repeat call returns the prior badge system unchanged
func (l *Ledger) SetBadgeSystem(caller account.Address, badges badge.Granter) (badge.Granter, error) {
	if caller != l.deployer {
		return nil, fault.Unauthorized
	}
	if nil != l.badges {
		l.log.Warnf("circle: %d  badge system already set", l.circleId)
		return l.badges, nil
	}
	l.badges = badges
	return badges, nil
}

// SetGovernance - one time wiring of the only address allowed to move funds out
func (l *Ledger) SetGovernance(caller account.Address, governance account.Address) (account.Address, error) {
	if caller != l.deployer {
		return account.Zero, fault.Unauthorized
	}
	if !l.governance.IsZero() {
		l.log.Warnf("circle: %d  governance already set to: %s", l.circleId, l.governance)
		return l.governance, nil
	}
	l.governance = governance
	return governance, nil
}

// AddMember - owner adds a member
func (l *Ledger) AddMember(trx storage.Transaction, caller account.Address, member account.Address) error {
	c, err := circle.Get(trx, l.db.Pool.Circles, l.circleId)
	if nil != err {
		return err
	}
	if caller != c.Owner {
		return fault.Unauthorized
	}
	return l.enrol(trx, c, member)
}

// Enrol - the deployer registers the owner as the first member
func (l *Ledger) Enrol(trx storage.Transaction, caller account.Address, member account.Address) error {
	if caller != l.deployer {
		return fault.Unauthorized
	}
	c, err := circle.Get(trx, l.db.Pool.Circles, l.circleId)
	if nil != err {
		return err
	}
	return l.enrol(trx, c, member)
}

func (l *Ledger) enrol(trx storage.Transaction, c *circle.Circle, member account.Address) error {
	if member.IsZero() {
		return fault.ErrInvalidAddress
	}
	if l.IsMember(trx, member) {
		return fault.AlreadyMember
	}

	m := Member{
		Address:  member,
		Exists:   true,
		JoinedAt: trx.Timestamp(),
	}
	if err := l.putMember(trx, &m); nil != err {
		return err
	}

	c.MemberCount += 1
	trx.Put(l.db.Pool.MemberList, storage.Key(storage.N(l.circleId), storage.N(c.MemberCount)), member.Bytes())
	trx.Put(l.db.Pool.MemberCircles, storage.Key(member.Bytes(), storage.N(l.circleId)), []byte{})

	if err := circle.Put(trx, l.db.Pool.Circles, c); nil != err {
		return err
	}

	data := event.MemberAddedData{
		Member:      member,
		MemberCount: c.MemberCount,
	}
	if err := event.Emit(trx, l.db, event.MemberAdded, l.circleId, &data); nil != err {
		return err
	}

	l.log.Infof("circle: %d  add member: %s  count: %d", l.circleId, member, c.MemberCount)
	return nil
}

// Contribute - a member pays the exact contribution amount into the pool
func (l *Ledger) Contribute(trx storage.Transaction, caller account.Address, value uint64) (*Member, streak.Streak, error) {
	if nil == l.tracker {
		return nil, streak.Streak{}, fault.ErrWiringIncomplete
	}

	c, err := circle.Get(trx, l.db.Pool.Circles, l.circleId)
	if nil != err {
		return nil, streak.Streak{}, err
	}

	m, err := l.getMember(trx, caller)
	if nil != err {
		return nil, streak.Streak{}, err
	}
	if nil == m {
		return nil, streak.Streak{}, fault.NotMember
	}
	if value != c.ContributionAmount {
		return nil, streak.Streak{}, fault.IncorrectAmount
	}
	if c.Balance+value < c.Balance {
		return nil, streak.Streak{}, fault.ErrInvalidAmount
	}

	m.TotalContributed += value
	m.LastContribution = trx.Timestamp()
	m.Contributions += 1
	if err := l.putMember(trx, m); nil != err {
		return nil, streak.Streak{}, err
	}

	c.Balance += value
	c.TotalContributed += value

	newTop := false
	if m.TotalContributed > c.TopContribution {
		newTop = c.TopContributor != caller
		c.TopContributor = caller
		c.TopContribution = m.TotalContributed
	}
	if err := circle.Put(trx, l.db.Pool.Circles, c); nil != err {
		return nil, streak.Streak{}, err
	}

	s, err := l.tracker.RecordContribution(trx, l.address, caller)
	if nil != err {
		return nil, streak.Streak{}, err
	}

	data := event.ContributionMadeData{
		Member:           caller,
		Amount:           value,
		TotalContributed: m.TotalContributed,
		Balance:          c.Balance,
		CurrentStreak:    s.Current,
		LongestStreak:    s.Longest,
	}
	if err := event.Emit(trx, l.db, event.ContributionMade, l.circleId, &data); nil != err {
		return nil, streak.Streak{}, err
	}

	if newTop && nil != l.badges {
		if _, err := l.badges.Grant(trx, l.address, caller, l.circleId, badge.TopContributor); nil != err {
			return nil, streak.Streak{}, err
		}
	}

	l.log.Infof("circle: %d  contribution: %d from: %s  balance: %d", l.circleId, value, caller, c.Balance)
	return m, s, nil
}

// Disburse - pay out pooled funds, only for the wired governance module
func (l *Ledger) Disburse(trx storage.Transaction, caller account.Address, proposalId uint64, recipient account.Address, value uint64) (uint64, error) {
	if l.governance.IsZero() || caller != l.governance {
		return 0, fault.Unauthorized
	}

	c, err := circle.Get(trx, l.db.Pool.Circles, l.circleId)
	if nil != err {
		return 0, err
	}
	if value > c.Balance {
		return 0, fault.InsufficientBalance
	}

	c.Balance -= value
	c.TotalDisbursed += value
	if err := circle.Put(trx, l.db.Pool.Circles, c); nil != err {
		return 0, err
	}

	d := Disbursement{
		CircleId:   l.circleId,
		ProposalId: proposalId,
		Recipient:  recipient,
		Amount:     value,
		Timestamp:  trx.Timestamp(),
	}
	key := storage.Key(recipient.Bytes(), storage.N(l.circleId), storage.N(proposalId))
	if err := storage.PutObject(trx, l.db.Pool.Disbursements, key, &d); nil != err {
		return 0, err
	}

	l.log.Infof("circle: %d  disburse: %d to: %s  balance: %d", l.circleId, value, recipient, c.Balance)
	return c.Balance, nil
}

// ApplyParameter - change a circle setting, only for the wired governance module
func (l *Ledger) ApplyParameter(trx storage.Transaction, caller account.Address, parameter circle.Parameter, value uint64) error {
	if l.governance.IsZero() || caller != l.governance {
		return fault.Unauthorized
	}

	c, err := circle.Get(trx, l.db.Pool.Circles, l.circleId)
	if nil != err {
		return err
	}
	if err := c.Apply(parameter, value); nil != err {
		return err
	}

	l.log.Infof("circle: %d  set: %s to: %d", l.circleId, parameter, value)
	return circle.Put(trx, l.db.Pool.Circles, c)
}

// IsMember - membership check against pending or committed data
func (l *Ledger) IsMember(r storage.Reader, member account.Address) bool {
	return r.Has(l.db.Pool.Members, l.memberKey(member))
}

// Balance - pooled funds seen by the reader
func (l *Ledger) Balance(r storage.Reader) (uint64, error) {
	c, err := circle.Get(r, l.db.Pool.Circles, l.circleId)
	if nil != err {
		return 0, err
	}
	return c.Balance, nil
}

// Member - committed member record, error if not a member
func (l *Ledger) Member(member account.Address) (*Member, error) {
	m, err := l.getMember(l.db, member)
	if nil != err {
		return nil, err
	}
	if nil == m {
		return nil, fault.NotMember
	}
	return m, nil
}

func (l *Ledger) getMember(r storage.Reader, member account.Address) (*Member, error) {
	m := &Member{}
	found, err := storage.GetObject(r, l.db.Pool.Members, l.memberKey(member), m)
	if nil != err {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return m, nil
}

func (l *Ledger) putMember(trx storage.Transaction, m *Member) error {
	return storage.PutObject(trx, l.db.Pool.Members, l.memberKey(m.Address), m)
}

func (l *Ledger) memberKey(member account.Address) []byte {
	return storage.Key(storage.N(l.circleId), member.Bytes())
}
