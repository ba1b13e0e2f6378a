// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/circled/fault"
	"github.com/bitmark-inc/circled/messagebus"
	"github.com/bitmark-inc/circled/zmqutil"
	"github.com/bitmark-inc/logger"
)

const (
	broadcasterZapDomain = "broadcaster"
	queueSize            = 1000
)

type broadcaster struct {
	log      *logger.L
	socket4  *zmq.Socket
	socket6  *zmq.Socket
	listener *messagebus.Listener
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, bus *messagebus.BroadcastQueue) error {
	log := logger.New("broadcaster")
	if nil == log {
		return fault.ErrInvalidLoggerChannel
	}
	brdc.log = log

	log.Info("initialising…")

	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.listener = bus.Chan(queueSize)
	return nil
}

// Run - forward events from the bus until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {
	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.listener.C:
			if !ok {
				break loop
			}
			parts, err := encode(item)
			if nil != err {
				log.Errorf("encode: %s  error: %s", item.Command, err)
				continue loop
			}
			log.Debugf("sending: %s  data: %s", parts[0], parts[1])
			brdc.process(brdc.socket4, parts)
			brdc.process(brdc.socket6, parts)
		}
	}

	brdc.listener.Release()
	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

// send one multipart message, subscribers that are not keeping up lose it
func (brdc *broadcaster) process(socket *zmq.Socket, parts [][]byte) {
	if nil == socket {
		return
	}
	last := len(parts) - 1
	for i, p := range parts {
		flags := zmq.SNDMORE | zmq.DONTWAIT
		if i == last {
			flags = zmq.DONTWAIT
		}
		if _, err := socket.SendBytes(p, flags); nil != err {
			brdc.log.Warnf("send error: %s", err)
			return
		}
	}
}

// the wire form of a bus message: kind then JSON
func encode(item messagebus.Message) ([][]byte, error) {
	data, err := json.Marshal(item.Item)
	if nil != err {
		return nil, err
	}
	return [][]byte{[]byte(item.Command), data}, nil
}
