// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package badge issues non-transferable achievement tokens
//
// a badge is keyed by (member, circle, kind); it can only be minted
// by a trusted component and is never revoked
package badge

import (
	"strings"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/logger"
)

// Kind - type of achievement
type Kind uint8

// badge kinds, values are fixed
const (
	Streak         Kind = 1
	TopContributor Kind = 2
	Governor       Kind = 3
)

// String - display name
func (k Kind) String() string {
	switch k {
	case Streak:
		return "Streak"
	case TopContributor:
		return "Top Contributor"
	case Governor:
		return "Circle Governor"
	default:
		return "Unknown"
	}
}

// Valid - true for a known kind
func (k Kind) Valid() bool {
	return k >= Streak && k <= Governor
}

// KindFromString - accept a badge name or its number
func KindFromString(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "1", "streak":
		return Streak, nil
	case "2", "topcontributor", "top-contributor", "top contributor":
		return TopContributor, nil
	case "3", "governor", "circle governor":
		return Governor, nil
	default:
		return 0, fault.ErrInvalidBadgeKind
	}
}

// Badge - a granted badge
type Badge struct {
	Member    account.Address `json:"member"`
	CircleId  uint64          `json:"circleId"`
	Kind      Kind            `json:"kind"`
	Name      string          `json:"name"`
	GrantedAt uint64          `json:"grantedAt"`
}

// Granter - anything that can mint a badge
type Granter interface {
	Grant(trx storage.Transaction, caller account.Address, member account.Address, circleId uint64, kind Kind) (bool, error)
}

// Registry - the badge system
type Registry struct {
	address account.Address
	admin   account.Address
	db      *storage.Database
	log     *logger.L
}

// New - create the badge registry
//
// admin is the only address that may add trusted minters
func New(db *storage.Database, admin account.Address) *Registry {
	return &Registry{
		address: account.Derive(account.Zero, "badges", 0),
		admin:   admin,
		db:      db,
		log:     logger.New("badge"),
	}
}

// Address - the registry's own address
func (r *Registry) Address() account.Address {
	return r.address
}

// Trust - allow a component to mint badges
func (r *Registry) Trust(trx storage.Transaction, caller account.Address, minter account.Address) error {
	if caller != r.admin {
		return fault.Unauthorized
	}
	if minter.IsZero() {
		return fault.ErrInvalidAddress
	}
	trx.Put(r.db.Pool.BadgeMinters, minter.Bytes(), []byte{})
	r.log.Debugf("trust minter: %s", minter)
	return nil
}

// IsTrusted - check if a component may mint badges
func (r *Registry) IsTrusted(rd storage.Reader, minter account.Address) bool {
	return rd.Has(r.db.Pool.BadgeMinters, minter.Bytes())
}

// Grant - mint a badge
//
// returns true only when the badge is newly minted; a repeat grant is
// not an error and emits nothing
func (r *Registry) Grant(trx storage.Transaction, caller account.Address, member account.Address, circleId uint64, kind Kind) (bool, error) {
	if !r.IsTrusted(trx, caller) {
		return false, fault.Unauthorized
	}
	if !kind.Valid() {
		return false, fault.ErrInvalidBadgeKind
	}

	key := badgeKey(member, circleId, kind)
	if trx.Has(r.db.Pool.Badges, key) {
		return false, nil
	}
	trx.PutN(r.db.Pool.Badges, key, trx.Timestamp())

	data := event.BadgeGrantedData{
		Member: member,
		Badge:  uint8(kind),
		Name:   kind.String(),
	}
	if err := event.Emit(trx, r.db, event.BadgeGranted, circleId, &data); nil != err {
		return false, err
	}

	r.log.Infof("grant: %q to: %s  circle: %d", kind, member, circleId)
	return true, nil
}

// Has - committed badge check, read only
func (r *Registry) Has(member account.Address, circleId uint64, kind Kind) bool {
	return r.db.Has(r.db.Pool.Badges, badgeKey(member, circleId, kind))
}

// List - all committed badges of a member, optionally limited to one circle
func (r *Registry) List(member account.Address, circleId uint64) []Badge {
	prefix := member.Bytes()
	if 0 != circleId {
		prefix = storage.Key(prefix, storage.N(circleId))
	}

	badges := make([]Badge, 0, 4)
	r.db.Pool.Badges.Iterate(prefix, func(key []byte, value []byte) bool {
		kind := Kind(key[account.AddressLength+8])
		badges = append(badges, Badge{
			Member:    member,
			CircleId:  storage.FromN(key[account.AddressLength:]),
			Kind:      kind,
			Name:      kind.String(),
			GrantedAt: storage.FromN(value),
		})
		return true
	})
	return badges
}

func badgeKey(member account.Address, circleId uint64, kind Kind) []byte {
	return storage.Key(member.Bytes(), storage.N(circleId), []byte{byte(kind)})
}
