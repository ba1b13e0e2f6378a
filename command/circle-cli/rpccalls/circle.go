// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/bitmark-inc/circled/rpc/circle"
)

// CreateCircle - create directly or through the deployer
func (client *Client) CreateCircle(arguments *circle.CreateArguments) (json.RawMessage, error) {
	return client.call("Circle.Create", arguments)
}

// GetCircle - committed state of one circle
func (client *Client) GetCircle(id uint64) (json.RawMessage, error) {
	return client.call("Circle.Get", &circle.GetArguments{Id: id})
}

// GetMembers - members of a circle in join order
func (client *Client) GetMembers(id uint64) (json.RawMessage, error) {
	return client.call("Circle.Members", &circle.GetArguments{Id: id})
}

// ForMember - circles an address belongs to
func (client *Client) ForMember(arguments *circle.ForMemberArguments) (json.RawMessage, error) {
	return client.call("Circle.ForMember", arguments)
}

// AddMember - owner adds an address
func (client *Client) AddMember(arguments *circle.AddMemberArguments) (json.RawMessage, error) {
	return client.call("Circle.AddMember", arguments)
}
