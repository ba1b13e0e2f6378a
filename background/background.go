// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background runs long lived processes that stop together
package background

// Process - a background task, Run must return once shutdown is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle to a running set of processes
type T struct {
	shutdown chan struct{}
	finished []chan struct{}
}

// Start - start up a set of background processes
func Start(processes Processes, args interface{}) *T {
	register := &T{
		shutdown: make(chan struct{}),
		finished: make([]chan struct{}, len(processes)),
	}

	for i, p := range processes {
		finished := make(chan struct{})
		register.finished[i] = finished
		go func(p Process, finished chan<- struct{}) {
			p.Run(args, register.shutdown)
			close(finished)
		}(p, finished)
	}
	return register
}

// Stop - signal all processes and wait for them to finish
func (t *T) Stop() {
	if nil == t {
		return
	}
	close(t.shutdown)
	for _, finished := range t.finished {
		<-finished
	}
}
