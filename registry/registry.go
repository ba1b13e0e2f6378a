// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/ledger"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/streak"
	"github.com/bitmark-inc/logger"
)

// DefaultCacheSize - circles whose components are kept in memory
const DefaultCacheSize = 1024

// component address labels
const (
	ledgerLabel     = "ledger"
	trackerLabel    = "tracker"
	governanceLabel = "governance"
)

var circleCountKey = []byte("circle")

// Components - the wired per-circle state machines
type Components struct {
	CircleId   uint64
	Ledger     *ledger.Ledger
	Tracker    *streak.Tracker
	Governance *governance.Governance
}

// Configuration - registry settings
type Configuration struct {
	Governance governance.Parameters
	Milestone  uint64
	CacheSize  int
}

// Registry - the circle factory and directory
type Registry struct {
	sync.RWMutex // protects deployers

	address    account.Address
	db         *storage.Database
	badges     *badge.Registry
	governance governance.Parameters
	milestone  uint64
	deployers  map[account.Address]struct{}
	cache      *lru.Cache
	log        *logger.L
}

// Address - the fixed address of the registry, this is the admin of
// the badge registry
func Address() account.Address {
	return account.Derive(account.Zero, "registry", 0)
}

// New - create the registry
func New(db *storage.Database, badges *badge.Registry, configuration Configuration) (*Registry, error) {
	size := configuration.CacheSize
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New(size)
	if nil != err {
		return nil, err
	}

	return &Registry{
		address:    Address(),
		db:         db,
		badges:     badges,
		governance: configuration.Governance,
		milestone:  configuration.Milestone,
		deployers:  make(map[account.Address]struct{}),
		cache:      cache,
		log:        logger.New("registry"),
	}, nil
}

// Address - the registry's own address
func (r *Registry) Address() account.Address {
	return r.address
}

// Authorise - allow a deployer to create circles on behalf of an owner
func (r *Registry) Authorise(deployer account.Address) {
	r.Lock()
	r.deployers[deployer] = struct{}{}
	r.Unlock()
	r.log.Infof("authorised deployer: %s", deployer)
}

func (r *Registry) isDeployer(caller account.Address) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.deployers[caller]
	return ok
}

// CreateCircle - allocate an id, deploy and wire the components and
// register the owner as the first member
func (r *Registry) CreateCircle(trx storage.Transaction, caller account.Address, owner account.Address, settings circle.Settings) (*circle.Circle, error) {
	if caller != owner && !r.isDeployer(caller) {
		return nil, fault.Unauthorized
	}
	// premium is only granted through a deployer that collected the fee
	if settings.IsPremium && !r.isDeployer(caller) {
		return nil, fault.Unauthorized
	}
	if owner.IsZero() {
		return nil, fault.ErrInvalidAddress
	}
	if err := settings.Validate(); nil != err {
		return nil, err
	}

	n, _ := trx.GetN(r.db.Pool.Counters, circleCountKey)
	id := n + 1
	trx.PutN(r.db.Pool.Counters, circleCountKey, id)

	c := &circle.Circle{
		Id:                 id,
		Owner:              owner,
		Name:               settings.Name,
		Goal:               settings.Goal,
		ContributionAmount: settings.ContributionAmount,
		ContributionPeriod: settings.ContributionPeriod,
		Ledger:             account.Derive(r.address, ledgerLabel, id),
		Tracker:            account.Derive(r.address, trackerLabel, id),
		Governance:         account.Derive(r.address, governanceLabel, id),
		IsPremium:          settings.IsPremium,
		CreatedAt:          trx.Timestamp(),
	}
	if err := circle.Put(trx, r.db.Pool.Circles, c); nil != err {
		return nil, err
	}

	components, err := r.build(c)
	if nil != err {
		return nil, err
	}

	for _, minter := range []account.Address{c.Ledger, c.Tracker, c.Governance} {
		if err := r.badges.Trust(trx, r.address, minter); nil != err {
			return nil, err
		}
	}

	data := event.CircleCreatedData{
		Id:                 c.Id,
		Owner:              c.Owner,
		Ledger:             c.Ledger,
		Tracker:            c.Tracker,
		Governance:         c.Governance,
		Name:               c.Name,
		Goal:               c.Goal,
		ContributionAmount: c.ContributionAmount,
		ContributionPeriod: c.ContributionPeriod,
		IsPremium:          c.IsPremium,
	}
	if err := event.Emit(trx, r.db, event.CircleCreated, c.Id, &data); nil != err {
		return nil, err
	}

	if err := components.Ledger.Enrol(trx, r.address, owner); nil != err {
		return nil, err
	}

	r.log.Infof("created circle: %d  owner: %s  name: %q", c.Id, owner, c.Name)
	return circle.Get(trx, r.db.Pool.Circles, id)
}

// AddMember - owner adds a member, checked here and again by the ledger
func (r *Registry) AddMember(trx storage.Transaction, caller account.Address, id uint64, member account.Address) error {
	c, err := circle.Get(trx, r.db.Pool.Circles, id)
	if nil != err {
		return err
	}
	if caller != c.Owner {
		return fault.Unauthorized
	}
	components, err := r.Components(id)
	if nil != err {
		return err
	}
	return components.Ledger.AddMember(trx, caller, member)
}

// InviteMember - same as AddMember
func (r *Registry) InviteMember(trx storage.Transaction, caller account.Address, id uint64, member account.Address) error {
	return r.AddMember(trx, caller, id, member)
}

// Components - the wired components of an existing circle
func (r *Registry) Components(id uint64) (*Components, error) {
	if value, ok := r.cache.Get(id); ok {
		return value.(*Components), nil
	}

	c, err := circle.Get(r.db, r.db.Pool.Circles, id)
	if nil != err {
		return nil, err
	}
	components, err := r.build(c)
	if nil != err {
		return nil, err
	}
	r.cache.Add(id, components)
	return components, nil
}

// instantiate and wire the three components of a circle
func (r *Registry) build(c *circle.Circle) (*Components, error) {
	l := ledger.New(r.db, c.Id, c.Ledger, r.address)
	t := streak.New(r.db, c.Id, c.Tracker, r.address, r.badges, r.milestone)
	g := governance.New(r.db, c.Id, c.Governance, r.address, r.badges, r.governance)

	if _, err := l.SetStreakTracker(r.address, t); nil != err {
		return nil, err
	}
	if _, err := l.SetBadgeSystem(r.address, r.badges); nil != err {
		return nil, err
	}
	if _, err := l.SetGovernance(r.address, g.Address()); nil != err {
		return nil, err
	}
	if _, err := t.SetLedger(r.address, l.Address()); nil != err {
		return nil, err
	}
	if _, err := g.SetLedger(r.address, l); nil != err {
		return nil, err
	}

	return &Components{
		CircleId:   c.Id,
		Ledger:     l,
		Tracker:    t,
		Governance: g,
	}, nil
}
