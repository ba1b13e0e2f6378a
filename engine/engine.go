// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine is the single entry point to the circle engine
//
// every mutating call resolves the circle's components and runs as one
// substrate operation; queries read committed state without locking
package engine

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/deployer"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/ledger"
	"github.com/bitmark-inc/circled/registry"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/streak"
	"github.com/bitmark-inc/circled/substrate"
	"github.com/bitmark-inc/circled/treasury"
	"github.com/bitmark-inc/logger"
)

// Engine - operations available to the RPC layer
type Engine interface {
	CreateCircle(caller account.Address, owner account.Address, settings circle.Settings) (*substrate.Receipt, *circle.Circle, error)
	DeployCircle(caller account.Address, request deployer.Request, fee uint64) (*substrate.Receipt, *circle.Circle, error)
	AddMember(caller account.Address, circleId uint64, member account.Address) (*substrate.Receipt, error)
	Contribute(caller account.Address, circleId uint64, value uint64) (*substrate.Receipt, *ledger.Member, error)
	CreateProposal(caller account.Address, circleId uint64, request governance.Request) (*substrate.Receipt, *governance.Proposal, error)
	Vote(caller account.Address, circleId uint64, proposalId uint64, support bool) (*substrate.Receipt, *governance.Proposal, error)
	Execute(caller account.Address, circleId uint64, proposalId uint64) (*substrate.Receipt, *governance.Proposal, error)

	GetCircle(circleId uint64) (*registry.CircleInfo, error)
	GetCircleMembers(circleId uint64) ([]account.Address, error)
	GetCirclesForMember(member account.Address) []uint64
	Member(circleId uint64, member account.Address) (*ledger.Member, error)
	Streak(circleId uint64, member account.Address) (streak.Streak, error)
	Proposal(circleId uint64, proposalId uint64) (*governance.Proposal, governance.State, error)
	Proposals(circleId uint64) ([]governance.Proposal, error)
	HasBadge(member account.Address, circleId uint64, kind badge.Kind) bool
	Badges(member account.Address, circleId uint64) []badge.Badge
	Disbursements(recipient account.Address) ([]ledger.Disbursement, error)
	Events(start uint64, count int) ([]event.Event, error)
	Info() Info
}

// Configuration - engine settings
type Configuration struct {
	Governance governance.Parameters
	Milestone  uint64
	PremiumFee uint64
	CacheSize  int
}

// Info - summary of the engine state
type Info struct {
	Now          uint64                `json:"now"`
	Circles      uint64                `json:"circles"`
	Events       uint64                `json:"events"`
	TreasuryFees uint64                `json:"treasuryFees"`
	PremiumFee   uint64                `json:"premiumFee"`
	Governance   governance.Parameters `json:"governance"`
	Milestone    uint64                `json:"milestone"`
}

type engine struct {
	substrate     *substrate.Substrate
	db            *storage.Database
	badges        *badge.Registry
	registry      *registry.Registry
	treasury      *treasury.Treasury
	deployer      *deployer.Deployer
	configuration Configuration
	log           *logger.L
}

// New - bootstrap the badge registry, circle registry, treasury and deployer
func New(s *substrate.Substrate, configuration Configuration) (Engine, error) {
	db := s.DB()

	if 0 == configuration.Milestone {
		configuration.Milestone = streak.DefaultMilestone
	}
	if (governance.Parameters{}) == configuration.Governance {
		configuration.Governance = governance.DefaultParameters()
	}
	if 0 == configuration.PremiumFee {
		configuration.PremiumFee = deployer.DefaultPremiumFee
	}

	badges := badge.New(db, registry.Address())
	reg, err := registry.New(db, badges, registry.Configuration{
		Governance: configuration.Governance,
		Milestone:  configuration.Milestone,
		CacheSize:  configuration.CacheSize,
	})
	if nil != err {
		return nil, err
	}
	t := treasury.New(db, deployer.Address())
	d := deployer.New(reg, t, configuration.PremiumFee)

	e := &engine{
		substrate:     s,
		db:            db,
		badges:        badges,
		registry:      reg,
		treasury:      t,
		deployer:      d,
		configuration: configuration,
		log:           logger.New("engine"),
	}
	e.log.Infof("registry: %s  badges: %s  deployer: %s  treasury: %s", reg.Address(), badges.Address(), d.Address(), t.Address())
	return e, nil
}
