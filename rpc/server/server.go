// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package server - the net/rpc server holding every circled service
package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/circled/counter"
	"github.com/bitmark-inc/circled/engine"
	"github.com/bitmark-inc/circled/rpc/badge"
	"github.com/bitmark-inc/circled/rpc/circle"
	"github.com/bitmark-inc/circled/rpc/events"
	"github.com/bitmark-inc/circled/rpc/governance"
	"github.com/bitmark-inc/circled/rpc/ledger"
	"github.com/bitmark-inc/circled/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - register all services
func Create(log *logger.L, version string, e engine.Engine, rpcCount *counter.Counter) *rpc.Server {
	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(circle.New(log, e))
	_ = server.Register(ledger.New(log, e))
	_ = server.Register(governance.New(log, e))
	_ = server.Register(badge.New(log, e))
	_ = server.Register(events.New(log, e))
	_ = server.Register(node.New(log, start, version, rpcCount, e))

	return server
}
