// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/circled/rpc/badge"
	"github.com/bitmark-inc/circled/rpc/events"
	"github.com/bitmark-inc/circled/rpc/node"
)

// HasBadge - check for one badge kind
func (client *Client) HasBadge(arguments *badge.HasArguments) (json.RawMessage, error) {
	return client.call("Badge.Has", arguments)
}

// ListBadges - all badges of a member in a circle
func (client *Client) ListBadges(arguments *badge.ListArguments) (json.RawMessage, error) {
	return client.call("Badge.List", arguments)
}

// ListEvents - read the event log
func (client *Client) ListEvents(arguments *events.ListArguments) (json.RawMessage, error) {
	return client.call("Events.List", arguments)
}

// GetInfo - request status from circled
func (client *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.client.Call("Node.Info", node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}

	return &reply, nil
}
