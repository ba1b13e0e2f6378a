// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package event_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
)

var member = account.Derive(account.Zero, "member", 0)

func emitAdded(t *testing.T, db *storage.Database, timestamp uint64, count uint64) storage.Transaction {
	trx, err := db.Atomic(timestamp, func(trx storage.Transaction) error {
		return event.Emit(trx, db, event.MemberAdded, 5, &event.MemberAddedData{
			Member:      member,
			MemberCount: count,
		})
	})
	require.Nil(t, err, "emit")
	return trx
}

func TestEmitAndList(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	assert.Equal(t, uint64(0), event.Count(db), "empty")
	for i := uint64(1); i <= 5; i += 1 {
		trx := emitAdded(t, db, 1000*i, i)
		require.Equal(t, 1, len(trx.Notes()), "noted")
	}
	assert.Equal(t, uint64(5), event.Count(db), "count")

	list, err := event.List(db, 1, 10)
	require.Nil(t, err, "list")
	require.Equal(t, 5, len(list), "all")
	for i, e := range list {
		assert.Equal(t, uint64(i+1), e.Sequence, "sequence: %d", i)
		assert.Equal(t, uint64(1000*(i+1)), e.Timestamp, "timestamp: %d", i)
		assert.Equal(t, uint64(5), e.CircleId, "circle: %d", i)
	}

	list, err = event.List(db, 4, 10)
	require.Nil(t, err, "tail")
	assert.Equal(t, 2, len(list), "from four")
	assert.Equal(t, uint64(4), list[0].Sequence, "first of tail")

	list, err = event.List(db, 2, 2)
	require.Nil(t, err, "window")
	assert.Equal(t, 2, len(list), "limited")

	list, err = event.List(db, 9, 10)
	require.Nil(t, err, "past end")
	assert.Equal(t, 0, len(list), "empty")

	_, err = event.List(db, 1, 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")
	_, err = event.List(db, 1, event.MaximumCount+1)
	assert.Equal(t, fault.ErrInvalidCount, err, "too many")
}

func TestPayload(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open")
	defer db.Close()

	emitAdded(t, db, 42, 3)

	list, err := event.List(db, 1, 1)
	require.Nil(t, err, "list")
	require.Equal(t, 1, len(list), "one")

	p, err := list[0].Payload()
	require.Nil(t, err, "payload")
	data, ok := p.(*event.MemberAddedData)
	require.True(t, ok, "type")
	assert.Equal(t, member, data.Member, "member")
	assert.Equal(t, uint64(3), data.MemberCount, "count")

	buffer, err := json.Marshal(list[0])
	require.Nil(t, err, "json")

	var decoded map[string]interface{}
	require.Nil(t, json.Unmarshal(buffer, &decoded), "decode json")
	assert.Equal(t, "memberAdded", decoded["kind"], "kind")
	assert.Equal(t, float64(42), decoded["timestamp"], "timestamp")
	inner := decoded["data"].(map[string]interface{})
	assert.Equal(t, member.String(), inner["member"], "data member")
	assert.Equal(t, float64(3), inner["memberCount"], "data count")

	unknown := list[0]
	unknown.Kind = event.Kind("unknown")
	_, err = unknown.Payload()
	assert.Equal(t, fault.ErrUnmarshalTextFail, err, "unknown kind")
}
