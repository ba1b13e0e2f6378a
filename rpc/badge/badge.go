// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package badge - RPC calls to inspect achievement badges
package badge

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/circled/account"
	"github.com/bitmark-inc/circled/badge"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitBadge = 200
	rateBurstBadge = 100
)

// Badge - type for RPC calls
type Badge struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create a badge RPC handler
func New(log *logger.L, e engine.Engine) *Badge {
	return &Badge{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitBadge, rateBurstBadge),
		Engine:  e,
	}
}

// HasArguments - a badge to look for
type HasArguments struct {
	Member   account.Address `json:"member"`
	CircleId uint64          `json:"circleId"`
	Kind     string          `json:"kind"`
}

// HasReply - whether it was granted
type HasReply struct {
	Granted bool `json:"granted"`
}

// Has - check whether a member holds a badge in a circle
func (b *Badge) Has(arguments *HasArguments, reply *HasReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	kind, err := badge.KindFromString(arguments.Kind)
	if nil != err {
		return err
	}
	reply.Granted = b.Engine.HasBadge(arguments.Member, arguments.CircleId, kind)
	return nil
}

// ListArguments - a member in a circle
type ListArguments struct {
	Member   account.Address `json:"member"`
	CircleId uint64          `json:"circleId"`
}

// ListReply - badges held
type ListReply struct {
	Badges []badge.Badge `json:"badges"`
}

// List - all badges a member holds in a circle
func (b *Badge) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.Limit(b.Limiter); nil != err {
		return err
	}

	reply.Badges = b.Engine.Badges(arguments.Member, arguments.CircleId)
	if nil == reply.Badges {
		reply.Badges = []badge.Badge{}
	}
	return nil
}
