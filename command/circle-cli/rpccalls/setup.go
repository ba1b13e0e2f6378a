// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - typed JSON RPC calls to a circled node
//
// replies are kept as raw JSON so that event payloads are displayed
// exactly as the node rendered them
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a circled
func NewClient(connect string, insecure bool, verbose bool, handle io.Writer) (*Client, error) {

	var conn net.Conn
	var err error
	if insecure {
		conn, err = net.Dial("tcp", connect)
	} else {
		tlsConfig := &tls.Config{
			InsecureSkipVerify: true,
		}
		conn, err = tls.Dial("tcp", connect, tlsConfig)
	}
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the circled connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

func (client *Client) call(method string, arguments interface{}) (json.RawMessage, error) {
	if client.verbose {
		client.printJson(method, arguments)
	}

	var reply json.RawMessage
	if err := client.client.Call(method, arguments, &reply); nil != err {
		return nil, err
	}

	if client.verbose {
		client.printJson("reply", reply)
	}
	return reply, nil
}

func (client *Client) printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
