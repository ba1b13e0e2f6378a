// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/circle"
	"github.com/bitmark-inc/circled/deployer"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/ledger"
	"github.com/bitmark-inc/circled/storage"
	"github.com/bitmark-inc/circled/substrate"
)

func (e *engine) CreateCircle(caller account.Address, owner account.Address, settings circle.Settings) (*substrate.Receipt, *circle.Circle, error) {
	var c *circle.Circle
	receipt, err := e.substrate.Execute("createCircle", func(trx storage.Transaction) error {
		var err error
		c, err = e.registry.CreateCircle(trx, caller, owner, settings)
		return err
	})
	if nil != err {
		return nil, nil, err
	}
	return receipt, c, nil
}

func (e *engine) DeployCircle(caller account.Address, request deployer.Request, fee uint64) (*substrate.Receipt, *circle.Circle, error) {
	var c *circle.Circle
	receipt, err := e.substrate.Execute("deployAndRegisterCircle", func(trx storage.Transaction) error {
		var err error
		c, err = e.deployer.DeployAndRegisterCircle(trx, caller, request, fee)
		return err
	})
	if nil != err {
		return nil, nil, err
	}
	return receipt, c, nil
}

func (e *engine) AddMember(caller account.Address, circleId uint64, member account.Address) (*substrate.Receipt, error) {
	return e.substrate.Execute("addMember", func(trx storage.Transaction) error {
		return e.registry.AddMember(trx, caller, circleId, member)
	})
}

func (e *engine) Contribute(caller account.Address, circleId uint64, value uint64) (*substrate.Receipt, *ledger.Member, error) {
	components, err := e.registry.Components(circleId)
	if nil != err {
		return nil, nil, err
	}

	var m *ledger.Member
	receipt, err := e.substrate.Execute("contribute", func(trx storage.Transaction) error {
		var err error
		m, _, err = components.Ledger.Contribute(trx, caller, value)
		return err
	})
	if nil != err {
		return nil, nil, err
	}
	return receipt, m, nil
}

func (e *engine) CreateProposal(caller account.Address, circleId uint64, request governance.Request) (*substrate.Receipt, *governance.Proposal, error) {
	return e.governance("createProposal", circleId, func(trx storage.Transaction, g *governance.Governance) (*governance.Proposal, error) {
		return g.CreateProposal(trx, caller, request)
	})
}

func (e *engine) Vote(caller account.Address, circleId uint64, proposalId uint64, support bool) (*substrate.Receipt, *governance.Proposal, error) {
	return e.governance("vote", circleId, func(trx storage.Transaction, g *governance.Governance) (*governance.Proposal, error) {
		return g.Vote(trx, caller, proposalId, support)
	})
}

func (e *engine) Execute(caller account.Address, circleId uint64, proposalId uint64) (*substrate.Receipt, *governance.Proposal, error) {
	return e.governance("executeProposal", circleId, func(trx storage.Transaction, g *governance.Governance) (*governance.Proposal, error) {
		return g.Execute(trx, caller, proposalId)
	})
}

type governanceOperation func(trx storage.Transaction, g *governance.Governance) (*governance.Proposal, error)

func (e *engine) governance(name string, circleId uint64, operation governanceOperation) (*substrate.Receipt, *governance.Proposal, error) {
	components, err := e.registry.Components(circleId)
	if nil != err {
		return nil, nil, err
	}

	var p *governance.Proposal
	receipt, err := e.substrate.Execute(name, func(trx storage.Transaction) error {
		var err error
		p, err = operation(trx, components.Governance)
		return err
	})
	if nil != err {
		return nil, nil, err
	}
	return receipt, p, nil
}
