// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package streak

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/logger"
)

// Tracker - streak state of one circle
type Tracker struct {
	circleId  uint64
	address   account.Address
	deployer  account.Address
	ledger    account.Address
	badges    badge.Granter
	milestone uint64
	db        *storage.Database
	log       *logger.L
}

// New - create an unwired tracker
func New(db *storage.Database, circleId uint64, address account.Address, deployer account.Address, badges badge.Granter, milestone uint64) *Tracker {
	if 0 == milestone {
		milestone = DefaultMilestone
	}
	return &Tracker{
		circleId:  circleId,
		address:   address,
		deployer:  deployer,
		badges:    badges,
		milestone: milestone,
		db:        db,
		log:       logger.New("streak"),
	}
}

// Address - the tracker's own address
func (t *Tracker) Address() account.Address {
	return t.address
}

// SetLedger - one time wiring of the only permitted caller
//
// a repeat call leaves the wiring unchanged and returns the prior ledger
func (t *Tracker) SetLedger(caller account.Address, ledger account.Address) (account.Address, error) {
	if caller != t.deployer {
		return account.Zero, fault.Unauthorized
	}
	if !t.ledger.IsZero() {
		t.log.Warnf("circle: %d  ledger already set to: %s", t.circleId, t.ledger)
		return t.ledger, nil
	}
	t.ledger = ledger
	return ledger, nil
}

// RecordContribution - advance the member's streak
func (t *Tracker) RecordContribution(trx storage.Transaction, caller account.Address, member account.Address) (Streak, error) {
	if t.ledger.IsZero() || caller != t.ledger {
		return Streak{}, fault.Unauthorized
	}

	c, err := circle.Get(trx, t.db.Pool.Circles, t.circleId)
	if nil != err {
		return Streak{}, err
	}

	before, err := t.get(trx, member)
	if nil != err {
		return Streak{}, err
	}
	after := Next(before, trx.Timestamp(), c.ContributionPeriod)

	err = storage.PutObject(trx, t.db.Pool.Streaks, t.key(member), &after)
	if nil != err {
		return Streak{}, err
	}

	if Crossed(before, after, t.milestone) && nil != t.badges {
		if _, err := t.badges.Grant(trx, t.address, member, t.circleId, badge.Streak); nil != err {
			return Streak{}, err
		}
	}

	t.log.Debugf("circle: %d  member: %s  streak: %d  longest: %d", t.circleId, member, after.Current, after.Longest)
	return after, nil
}

// Streak - committed streak of a member
func (t *Tracker) Streak(member account.Address) (Streak, error) {
	return t.get(t.db, member)
}

func (t *Tracker) get(r storage.Reader, member account.Address) (Streak, error) {
	s := Streak{}
	found, err := storage.GetObject(r, t.db.Pool.Streaks, t.key(member), &s)
	if nil != err {
		return Streak{}, err
	}
	if !found {
		s.Member = member
	}
	return s, nil
}

func (t *Tracker) key(member account.Address) []byte {
	return storage.Key(storage.N(t.circleId), member.Bytes())
}
