// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/command/circle-cli/rpccalls"
)

func connect(c *cli.Context) (*rpccalls.Client, *metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	client, err := rpccalls.NewClient(m.connect, m.insecure, m.verbose, m.e)
	if nil != err {
		return nil, nil, err
	}
	return client, m, nil
}

// run one call and print its raw result
func display(c *cli.Context, call func(client *rpccalls.Client) (json.RawMessage, error)) error {
	client, m, err := connect(c)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := call(client)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func checkAddress(c *cli.Context, name string) (account.Address, error) {
	s := c.String(name)
	if "" == s {
		return account.Address{}, fmt.Errorf("%s is required", name)
	}
	return account.AddressFromString(s)
}

func checkCaller(c *cli.Context) (account.Address, error) {
	s := c.GlobalString("caller")
	if "" == s {
		return account.Address{}, fmt.Errorf("caller is required")
	}
	return account.AddressFromString(s)
}

func checkOptionalAddress(c *cli.Context, name string, fallback account.Address) (account.Address, error) {
	s := c.String(name)
	if "" == s {
		return fallback, nil
	}
	return account.AddressFromString(s)
}

func checkId(c *cli.Context, name string) (uint64, error) {
	id := c.Uint64(name)
	if 0 == id {
		return 0, fmt.Errorf("%s is required", name)
	}
	return id, nil
}

func checkString(c *cli.Context, name string) (string, error) {
	s := c.String(name)
	if "" == s {
		return "", fmt.Errorf("%s is required", name)
	}
	return s, nil
}
