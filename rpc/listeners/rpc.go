// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bitmark-inc/circled/counter"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/rpc/certificate"
	"github.com/bitmark-inc/logger"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

type rpcListener struct {
	sync.Mutex

	log       *logger.L
	count     *counter.Counter
	server    *rpc.Server
	slots     *semaphore.Weighted
	tlsConfig *tls.Config
	networks  []string
	listen    []string
	listeners []net.Listener
}

// NewRPC - a JSON RPC listener on raw TCP, wrapped in TLS when a
// TLS configuration is given
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	fingerprint certificate.Fingerprint,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	networks, listen, err := parseListenAddress(configuration.Listen, log)
	if nil != err {
		return nil, err
	}

	if nil != tlsConfig {
		log.Infof("%s: SHA3-256 fingerprint: %x", logName, fingerprint)
	}

	r := &rpcListener{
		log:       log,
		count:     count,
		server:    server,
		slots:     semaphore.NewWeighted(int64(configuration.MaximumConnections)),
		tlsConfig: tlsConfig,
		networks:  networks,
		listen:    listen,
	}
	return r, nil
}

// Serve - start accepting on every address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for i, listen := range r.listen {
		r.log.Infof("starting RPC server: %s", listen)

		var l net.Listener
		var err error
		if nil == r.tlsConfig {
			l, err = net.Listen(r.networks[i], listen)
		} else {
			l, err = tls.Listen(r.networks[i], listen, r.tlsConfig)
		}
		if nil != err {
			r.log.Errorf("rpc server listen error: %s", err)
			return err
		}
		r.listeners = append(r.listeners, l)

		go r.accept(l)
	}
	return nil
}

// Close - stop accepting, open connections run to completion
func (r *rpcListener) Close() error {
	r.Lock()
	defer r.Unlock()

	for _, l := range r.listeners {
		_ = l.Close()
	}
	r.listeners = nil
	return nil
}

func (r *rpcListener) accept(listen net.Listener) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			break
		}

		if !r.slots.TryAcquire(1) {
			r.log.Warnf("connection limit reached, rejecting: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		if nil != r.count {
			r.count.Acquire(^uint64(0))
		}
		go func() {
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
			_ = conn.Close()
			if nil != r.count {
				r.count.Release()
			}
			r.slots.Release(1)
		}()
	}
	_ = listen.Close()
}
