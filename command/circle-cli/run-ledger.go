// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/circled/command/circle-cli/rpccalls"
	"github.com/bitmark-inc/circled/rpc/ledger"
)

func runContribute(c *cli.Context) error {
	caller, err := checkCaller(c)
	if nil != err {
		return err
	}
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	value, err := checkString(c, "amount")
	if nil != err {
		return err
	}
	arguments := &ledger.ContributeArguments{
		Caller:   caller,
		CircleId: id,
		Amount:   value,
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.Contribute(arguments)
	})
}

func memberArguments(c *cli.Context) (*ledger.MemberArguments, error) {
	id, err := checkId(c, "circle")
	if nil != err {
		return nil, err
	}
	member, err := checkAddress(c, "member")
	if nil != err {
		return nil, err
	}
	return &ledger.MemberArguments{
		CircleId: id,
		Member:   member,
	}, nil
}

func runMember(c *cli.Context) error {
	arguments, err := memberArguments(c)
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.GetMember(arguments)
	})
}

func runStreak(c *cli.Context) error {
	arguments, err := memberArguments(c)
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.GetStreak(arguments)
	})
}

func runDisbursements(c *cli.Context) error {
	recipient, err := checkAddress(c, "member")
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.Disbursements(&ledger.DisbursementsArguments{Recipient: recipient})
	})
}
