// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"math/rand"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/circled/counter"
	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/rpc/certificate"
	"github.com/bitmark-inc/circled/rpc/fixtures"
	"github.com/bitmark-inc/circled/rpc/listeners"
	"github.com/bitmark-inc/logger"
)

type Add struct{}
type AddArg struct {
	A, B int
}

func (a Add) Add(arg *AddArg, reply *int) error {
	*reply = arg.A + arg.B
	return nil
}

func newServer(t *testing.T) *rpc.Server {
	s := rpc.NewServer()
	require.Nil(t, s.Register(Add{}), "register")
	return s
}

func TestRpcListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	con := listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
	}

	cer, key := fixtures.KeyPair(t)
	tlsConfig, fingerprint, err := certificate.Get(logger.New(fixtures.LogCategory), "test", cer, key)
	require.Nil(t, err, "certificate")

	var count counter.Counter
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), tlsConfig, fingerprint)
	require.Nil(t, err, "wrong NewRPC")

	err = l.Serve()
	require.Nil(t, err, "wrong Serve")
	defer l.Close()

	c, err := tls.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port), &tls.Config{InsecureSkipVerify: true})
	require.Nil(t, err, "dial")

	client := jsonrpc.NewClient(c)
	defer client.Close()

	arg := AddArg{A: 2, B: 5}
	var reply int
	err = client.Call("Add.Add", &arg, &reply)
	assert.Nil(t, err, "wrong client Call")
	assert.Equal(t, arg.A+arg.B, reply, "wrong result")
	assert.Equal(t, uint64(1), count.Uint64(), "open connections")
}

func TestRpcListenerConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	port := rand.Intn(30000) + 30000
	address := fmt.Sprintf("127.0.0.1:%d", port)
	con := listeners.RPCConfiguration{
		MaximumConnections: 1,
		Listen:             []string{address},
	}

	var count counter.Counter
	l, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, newServer(t), nil, certificate.Fingerprint{})
	require.Nil(t, err, "wrong NewRPC")
	require.Nil(t, l.Serve(), "wrong Serve")
	defer l.Close()

	first, err := net.Dial("tcp", address)
	require.Nil(t, err, "first dial")
	client := jsonrpc.NewClient(first)
	defer client.Close()

	var reply int
	require.Nil(t, client.Call("Add.Add", &AddArg{A: 1, B: 1}, &reply), "first call")

	second, err := net.Dial("tcp", address)
	require.Nil(t, err, "second dial")
	defer second.Close()

	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	buffer := make([]byte, 1)
	_, err = second.Read(buffer)
	assert.NotNil(t, err, "second connection was not closed")
}

func TestRpcListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	tests := []struct {
		configuration listeners.RPCConfiguration
		err           error
	}{
		{listeners.RPCConfiguration{MaximumConnections: 0, Listen: []string{"127.0.0.1:1234"}}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{}}, fault.ErrMissingParameters},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"1"}}, fault.ErrInvalidIPAddress},
		{listeners.RPCConfiguration{MaximumConnections: 1, Listen: []string{"localhost:1234"}}, fault.ErrInvalidIPAddress},
	}

	for i, item := range tests {
		var count counter.Counter
		_, err := listeners.NewRPC(&item.configuration, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestRpcListenerAddresses(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	for _, listen := range []string{"*:1234", "[::1]:1234", "[1:2:3:4:5:6:7:8]:1234", "0.0.0.0:1234"} {
		con := listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{listen},
		}
		var count counter.Counter
		_, err := listeners.NewRPC(&con, logger.New(fixtures.LogCategory), &count, rpc.NewServer(), &tls.Config{}, certificate.Fingerprint{})
		assert.Nil(t, err, "%q: wrong NewRPC", listen)
	}
}
