// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package events - RPC access to the committed event history
package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/event"
	"github.com/bitmark-inc/circled/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitEvents = 200
	rateBurstEvents = 100
)

// Events - type for RPC calls
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Engine  engine.Engine
}

// New - create an events RPC handler
func New(log *logger.L, e engine.Engine) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Engine:  e,
	}
}

// ListArguments - a window of the history
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// ListReply - events in sequence order
type ListReply struct {
	Events    []event.Event `json:"events"`
	NextStart uint64        `json:"nextStart,string"`
}

// List - events from start onwards
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {
	if err := ratelimit.LimitN(e.Limiter, arguments.Count, event.MaximumCount); nil != err {
		return err
	}

	list, err := e.Engine.Events(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events = list
	reply.NextStart = arguments.Start
	if n := len(list); n > 0 {
		reply.NextStart = list[n-1].Sequence + 1
	}
	return nil
}
