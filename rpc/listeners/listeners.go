// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listeners - network listeners for the JSON RPC and HTTPS servers
package listeners

import (
	"net"
	"strings"

	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/logger"
)

// Listener - a server that can be started and stopped
type Listener interface {
	Serve() error
	Close() error
}

// change "*:PORT" to "[::]:PORT" on the assumption that this will
// listen on tcp4 and tcp6; returns the network for each address
func parseListenAddress(addrs []string, log *logger.L) ([]string, []string, error) {
	networks := make([]string, len(addrs))
	listen := make([]string, len(addrs))
	for i, address := range addrs {
		host, port, err := net.SplitHostPort(strings.TrimSpace(address))
		if nil != err {
			log.Errorf("listen address: %q  error: %s", address, err)
			return nil, nil, fault.ErrInvalidIPAddress
		}

		switch {
		case "*" == host:
			networks[i] = "tcp"
			host = "::"
		case strings.Contains(host, ":"):
			networks[i] = "tcp6"
		default:
			networks[i] = "tcp4"
		}

		if ip := net.ParseIP(host); nil == ip {
			log.Errorf("listen address: %q  error: %s", address, fault.ErrInvalidIPAddress)
			return nil, nil, fault.ErrInvalidIPAddress
		}
		listen[i] = net.JoinHostPort(host, port)
	}
	return networks, listen, nil
}
