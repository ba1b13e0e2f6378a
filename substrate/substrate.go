// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package substrate runs each top level operation as one serialised,
// all or nothing transaction and publishes its events after commit
package substrate

import (
	"sync"

	"github.com/bitmark-inc/circled/clock"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/messagebus"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/logger"
)

// Receipt - result of a committed operation
type Receipt struct {
	TxId      storage.TxId  `json:"txId"`
	Sequence  uint64        `json:"sequence"`
	Timestamp uint64        `json:"timestamp"`
	Events    []event.Event `json:"events"`
}

// Substrate - the execution environment shared by all components
type Substrate struct {
	sync.Mutex

	db    *storage.Database
	clock clock.Clock
	bus   *messagebus.BroadcastQueue
	log   *logger.L
}

// Operation - the body of a top level call
type Operation func(trx storage.Transaction) error

// New - create a substrate over an open database
func New(db *storage.Database, c clock.Clock, bus *messagebus.BroadcastQueue) *Substrate {
	return &Substrate{
		db:    db,
		clock: c,
		bus:   bus,
		log:   logger.New("substrate"),
	}
}

// DB - the underlying database for committed reads
func (s *Substrate) DB() *storage.Database {
	return s.db
}

// Now - timestamp a read-only query would observe
func (s *Substrate) Now() uint64 {
	return s.clock.Now()
}

// Execute - run an operation
//
// the clock is read once, inside the lock, so operations commit in
// timestamp order; nothing is published for a failed operation
func (s *Substrate) Execute(name string, operation Operation) (*Receipt, error) {
	s.Lock()
	defer s.Unlock()

	now := s.clock.Now()
	trx, err := s.db.Atomic(now, operation)
	if nil != err {
		s.log.Infof("%s: rejected: %s", name, err)
		return nil, err
	}

	receipt := &Receipt{
		TxId:      trx.Id(),
		Sequence:  trx.Sequence(),
		Timestamp: now,
		Events:    make([]event.Event, 0, len(trx.Notes())),
	}
	for _, n := range trx.Notes() {
		if e, ok := n.(event.Event); ok {
			receipt.Events = append(receipt.Events, e)
		}
	}

	s.log.Infof("%s: committed: %s  events: %d", name, receipt.TxId, len(receipt.Events))

	if nil != s.bus {
		for _, e := range receipt.Events {
			s.bus.Send(string(e.Kind), e)
		}
	}
	return receipt, nil
}
