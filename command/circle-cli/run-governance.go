// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/command/circle-cli/rpccalls"
	"github.com/bitmark-inc/circled/rpc/governance"
)

func runPropose(c *cli.Context) error {
	caller, err := checkCaller(c)
	if nil != err {
		return err
	}
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	kind, err := checkString(c, "kind")
	if nil != err {
		return err
	}
	title, err := checkString(c, "title")
	if nil != err {
		return err
	}
	value, err := checkString(c, "amount")
	if nil != err {
		return err
	}
	recipient, err := checkOptionalAddress(c, "recipient", account.Zero)
	if nil != err {
		return err
	}

	arguments := &governance.ProposeArguments{
		Caller:      caller,
		CircleId:    id,
		Kind:        kind,
		Title:       title,
		Description: c.String("description"),
		Amount:      value,
		Recipient:   recipient,
		Parameter:   c.String("parameter"),
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.Propose(arguments)
	})
}

func proposalArguments(c *cli.Context, needCaller bool) (*governance.ProposalArguments, error) {
	arguments := &governance.ProposalArguments{}
	if needCaller {
		caller, err := checkCaller(c)
		if nil != err {
			return nil, err
		}
		arguments.Caller = caller
	}

	var err error
	arguments.CircleId, err = checkId(c, "circle")
	if nil != err {
		return nil, err
	}
	arguments.ProposalId, err = checkId(c, "proposal")
	if nil != err {
		return nil, err
	}
	return arguments, nil
}

func runVote(c *cli.Context) error {
	p, err := proposalArguments(c, true)
	if nil != err {
		return err
	}
	arguments := &governance.VoteArguments{
		Caller:     p.Caller,
		CircleId:   p.CircleId,
		ProposalId: p.ProposalId,
		Support:    !c.Bool("against"),
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.Vote(arguments)
	})
}

func runExecute(c *cli.Context) error {
	arguments, err := proposalArguments(c, true)
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.Execute(arguments)
	})
}

func runProposal(c *cli.Context) error {
	arguments, err := proposalArguments(c, false)
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.GetProposal(arguments)
	})
}

func runProposals(c *cli.Context) error {
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.ListProposals(id)
	})
}
