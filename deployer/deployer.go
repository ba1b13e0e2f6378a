// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package deployer creates and registers a circle, with an optional
// premium fee, as a single operation
package deployer

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/registry"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/treasury"
	"github.com/bitmark-inc/logger"
)

// DefaultPremiumFee - 0.01 unit
const DefaultPremiumFee = uint64(1000000)

// Request - a circle to deploy
type Request struct {
	Owner    account.Address
	Settings circle.Settings
}

// Deployer - the relay entry point for circle creation
type Deployer struct {
	address    account.Address
	registry   *registry.Registry
	treasury   *treasury.Treasury
	premiumFee uint64
	log        *logger.L
}

// Address - the fixed address of the deployer
func Address() account.Address {
	return account.Derive(account.Zero, "deployer", 0)
}

// New - create a deployer and authorise it with the registry
//
// the treasury must accept deposits from Address()
func New(reg *registry.Registry, t *treasury.Treasury, premiumFee uint64) *Deployer {
	d := &Deployer{
		address:    Address(),
		registry:   reg,
		treasury:   t,
		premiumFee: premiumFee,
		log:        logger.New("deployer"),
	}
	reg.Authorise(d.address)
	return d
}

// Address - the deployer's own address
func (d *Deployer) Address() account.Address {
	return d.address
}

// PremiumFee - minimum fee for a premium circle
func (d *Deployer) PremiumFee() uint64 {
	return d.premiumFee
}

// DeployAndRegisterCircle - check the fee, create the circle, pay the fee
//
// all steps share the caller's transaction so a failure in any of them
// leaves neither a circle nor a fee
func (d *Deployer) DeployAndRegisterCircle(trx storage.Transaction, caller account.Address, request Request, fee uint64) (*circle.Circle, error) {
	if request.Settings.IsPremium {
		if fee < d.premiumFee {
			return nil, fault.InsufficientFee
		}
	} else if 0 != fee {
		return nil, fault.UnexpectedFee
	}

	c, err := d.registry.CreateCircle(trx, d.address, request.Owner, request.Settings)
	if nil != err {
		return nil, err
	}

	if 0 != fee {
		if err := d.treasury.Deposit(trx, d.address, caller, c.Id, fee); nil != err {
			return nil, err
		}
	}

	d.log.Infof("deployed circle: %d  for: %s  premium: %v  fee: %d", c.Id, request.Owner, request.Settings.IsPremium, fee)
	return c, nil
}
