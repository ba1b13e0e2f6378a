// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
	"sync/atomic"
)

// DefaultQueueSize - buffer for each listener
const DefaultQueueSize = 1000

// Message - one broadcast item
type Message struct {
	Command string
	Item    interface{}
}

// BroadcastQueue - fan out each message to every listener
//
// a listener that falls behind loses messages rather than
// blocking the sender
type BroadcastQueue struct {
	dropped uint64 // first for 64 bit alignment of atomic access

	sync.RWMutex
	listeners map[int]chan Message
	next      int
}

// Listener - receiving end of a broadcast
type Listener struct {
	C     <-chan Message
	id    int
	queue *BroadcastQueue
}

// New - create an empty broadcast queue
func New() *BroadcastQueue {
	return &BroadcastQueue{
		listeners: make(map[int]chan Message),
	}
}

// Send - broadcast a message to all current listeners
func (queue *BroadcastQueue) Send(command string, item interface{}) {
	m := Message{
		Command: command,
		Item:    item,
	}

	queue.RLock()
	defer queue.RUnlock()
	for _, c := range queue.listeners {
		select {
		case c <- m:
		default:
			atomic.AddUint64(&queue.dropped, 1)
		}
	}
}

// Chan - add a listener with the given buffer size
func (queue *BroadcastQueue) Chan(size int) *Listener {
	if size <= 0 {
		size = DefaultQueueSize
	}
	c := make(chan Message, size)

	queue.Lock()
	defer queue.Unlock()
	queue.next += 1
	queue.listeners[queue.next] = c
	return &Listener{
		C:     c,
		id:    queue.next,
		queue: queue,
	}
}

// Dropped - count of messages not delivered to slow listeners
func (queue *BroadcastQueue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}

// Release - detach the listener and close its channel
func (l *Listener) Release() {
	queue := l.queue
	queue.Lock()
	defer queue.Unlock()
	if c, ok := queue.listeners[l.id]; ok {
		delete(queue.listeners, l.id)
		close(c)
	}
}
