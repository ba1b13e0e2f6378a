// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/circled/command/circle-cli/rpccalls"
	"github.com/bitmark-inc/circled/rpc/badge"
	"github.com/bitmark-inc/circled/rpc/events"
)

func runHasBadge(c *cli.Context) error {
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	member, err := checkAddress(c, "member")
	if nil != err {
		return err
	}
	kind, err := checkString(c, "kind")
	if nil != err {
		return err
	}
	arguments := &badge.HasArguments{
		Member:   member,
		CircleId: id,
		Kind:     kind,
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.HasBadge(arguments)
	})
}

func runBadges(c *cli.Context) error {
	id, err := checkId(c, "circle")
	if nil != err {
		return err
	}
	member, err := checkAddress(c, "member")
	if nil != err {
		return err
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.ListBadges(&badge.ListArguments{Member: member, CircleId: id})
	})
}

func runEvents(c *cli.Context) error {
	arguments := &events.ListArguments{
		Start: c.Uint64("start"),
		Count: c.Int("count"),
	}
	return display(c, func(client *rpccalls.Client) (json.RawMessage, error) {
		return client.ListEvents(arguments)
	})
}

func runInfo(c *cli.Context) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}
