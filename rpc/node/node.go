// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node - RPC call describing the running daemon
package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/circled/amount"
	"github.com/bitmark-inc/circled/counter"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/governance"
	"github.com/bitmark-inc/circled/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Engine  engine.Engine
	counter *counter.Counter
}

// New - create a node RPC handler
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, e engine.Engine) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Engine:  e,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version      string                `json:"version"`
	Uptime       string                `json:"uptime"`
	RPCs         uint64                `json:"rpcs"`
	Now          uint64                `json:"now"`
	Circles      uint64                `json:"circles"`
	Events       uint64                `json:"events"`
	TreasuryFees string                `json:"treasuryFees"`
	PremiumFee   string                `json:"premiumFee"`
	Milestone    uint64                `json:"milestone"`
	Governance   governance.Parameters `json:"governance"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {
	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	info := node.Engine.Info()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Now = info.Now
	reply.Circles = info.Circles
	reply.Events = info.Events
	reply.TreasuryFees = amount.String(info.TreasuryFees)
	reply.PremiumFee = amount.String(info.PremiumFee)
	reply.Milestone = info.Milestone
	reply.Governance = info.Governance
	return nil
}
