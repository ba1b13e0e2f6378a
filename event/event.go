// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event records the facts emitted by committed operations
package event

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
)

// Kind - type of fact
type Kind string

// all event kinds
const (
	BadgeGranted     Kind = "badgeGranted"
	CircleCreated    Kind = "circleCreated"
	ContributionMade Kind = "contributionMade"
	MemberAdded      Kind = "memberAdded"
	ProposalCreated  Kind = "proposalCreated"
	ProposalExecuted Kind = "proposalExecuted"
	VoteCast         Kind = "voteCast"
)

// MaximumCount - most events returned by one List
const MaximumCount = 100

// Event - an entry in the append-only log
type Event struct {
	Sequence  uint64          `json:"sequence"`
	Kind      Kind            `json:"kind"`
	TxId      storage.TxId    `json:"txId"`
	Timestamp uint64          `json:"timestamp"`
	CircleId  uint64          `json:"circleId"`
	Data      cbor.RawMessage `cbor:"data" json:"-"`
}

var sequenceKey = []byte("event")

// Emit - append a fact to the log inside the transaction
//
// the event is also noted on the transaction so it can be published
// after commit
func Emit(trx storage.Transaction, db *storage.Database, kind Kind, circleId uint64, data interface{}) error {
	payload, err := cbor.Marshal(data)
	if nil != err {
		return err
	}

	n, _ := trx.GetN(db.Pool.Counters, sequenceKey)
	n += 1

	e := Event{
		Sequence:  n,
		Kind:      kind,
		TxId:      trx.Id(),
		Timestamp: trx.Timestamp(),
		CircleId:  circleId,
		Data:      payload,
	}
	if err := storage.PutObject(trx, db.Pool.Events, storage.N(n), &e); nil != err {
		return err
	}
	trx.PutN(db.Pool.Counters, sequenceKey, n)
	trx.Note(e)
	return nil
}

// Count - number of committed events
func Count(db *storage.Database) uint64 {
	last, found := db.Pool.Events.LastElement()
	if !found {
		return 0
	}
	return storage.FromN(last.Key)
}

// List - committed events starting at a sequence number
func List(db *storage.Database, start uint64, count int) ([]Event, error) {
	if count <= 0 || count > MaximumCount {
		return nil, fault.ErrInvalidCount
	}

	events := make([]Event, 0, count)
	var decodeError error
	db.Pool.Events.IterateFrom(storage.N(start), func(key []byte, value []byte) bool {
		var e Event
		if err := cbor.Unmarshal(value, &e); nil != err {
			decodeError = err
			return false
		}
		events = append(events, e)
		return len(events) < count
	})
	if nil != decodeError {
		return nil, decodeError
	}
	return events, nil
}

// Decode - unpack the payload into a kind specific structure
func (e Event) Decode(v interface{}) error {
	return cbor.Unmarshal(e.Data, v)
}

// Payload - the kind specific structure for this event
func (e Event) Payload() (interface{}, error) {
	var v interface{}
	switch e.Kind {
	case BadgeGranted:
		v = &BadgeGrantedData{}
	case CircleCreated:
		v = &CircleCreatedData{}
	case ContributionMade:
		v = &ContributionMadeData{}
	case MemberAdded:
		v = &MemberAddedData{}
	case ProposalCreated:
		v = &ProposalCreatedData{}
	case ProposalExecuted:
		v = &ProposalExecutedData{}
	case VoteCast:
		v = &VoteCastData{}
	default:
		return nil, fault.ErrUnmarshalTextFail
	}
	if err := e.Decode(v); nil != err {
		return nil, err
	}
	return v, nil
}

// MarshalJSON - include the decoded payload
func (e Event) MarshalJSON() ([]byte, error) {
	payload, err := e.Payload()
	if nil != err {
		return nil, err
	}
	type plain Event
	return json.Marshal(struct {
		plain
		Data interface{} `json:"data"`
	}{
		plain: plain(e),
		Data:  payload,
	})
}
