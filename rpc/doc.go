// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring circled services
//
// standard golang RPC services can be used on the client side to
// access these services; the same services are also reachable via
// HTTPS POST to /circled/rpc
//
// the caller address of every request is taken from the request body
// and is not authenticated, so listeners must only be reachable from
// trusted networks: bind to loopback or restrict each path with an
// allow list
package rpc
