// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/circled/command/circle-cli/rpccalls"
	"github.com/bitmark-inc/circled/rpc/circle"
)

func runCreate(c *cli.Context) error {
	caller, err := checkCaller(c)
	if nil != err {
		return err
	}
	owner, err := checkOptionalAddress(c, "owner", caller)
	if nil != err {
		return err
	}
	name, err := checkString(c, "name")
	if nil != err {
		return err
	}
	goal, err := checkString(c, "goal")
	if nil != err {
		return err
	}
	contribution, err := checkString(c, "amount")
	if nil != err {
		return err
	}
	period, err := checkId(c, "period")
	if nil != err {
		return err
	}

	arguments := &circle.CreateArguments{
		Caller:             caller,
		Owner:              owner,
		Name:               name,
		Goal:               goal,
		ContributionAmount: contribution,
		ContributionPeriod: period,
		IsPremium:          c.Bool("premium"),
		Fee:                c.String("fee"),
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.CreateCircle(arguments)
	})
}

func runCircle(c *cli.Context) error {
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.GetCircle(id)
	})
}

func runMembers(c *cli.Context) error {
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.GetMembers(id)
	})
}

func runCircles(c *cli.Context) error {
	member, err := checkAddress(c, "member")
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.ForMember(&circle.ForMemberArguments{Member: member})
	})
}

func runAddMember(c *cli.Context) error {
	caller, err := checkCaller(c)
	if nil != err {
		return err
	}
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	member, err := checkAddress(c, "member")
	if nil != err {
		return err
	}
	arguments := &circle.AddMemberArguments{
		Caller: caller,
		Id:     id,
		Member: member,
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.AddMember(arguments)
	})
}
