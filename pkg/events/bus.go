// Package events implements the in-process message bus that carries IPC
// traffic between the host handlers and the renderer-facing bridge.
//
// Dispatch is synchronous and single-goroutine friendly: Publish runs every
// matching handler before returning, in subscription order. Handlers that
// panic are recovered and logged so one bad listener cannot take down the
// host process.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paintapp/paintapp/pkg/logger"
)

// Wildcard subscribes a handler to every channel.
const Wildcard = "*"

// Message is one delivery on a channel.
type Message struct {
	// Channel the message was published on.
	Channel string

	// Args are the payload values, in publish order.
	Args []interface{}

	// Time is when the message was published.
	Time time.Time
}

// Handler consumes a message. Handlers must not block; the bus dispatches
// inline on the publisher's goroutine.
type Handler func(Message)

type subscriber struct {
	id      string
	channel string
	handler Handler
	once    bool
	fired   bool
}

// Bus routes published messages to channel subscribers.
type Bus struct {
	mu   sync.Mutex
	subs []*subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for a channel and returns its subscriber
// id, used to Unsubscribe later.
func (b *Bus) Subscribe(channel string, h Handler) string {
	return b.add(channel, h, false)
}

// SubscribeOnce registers a handler that is removed after its first
// delivery.
func (b *Bus) SubscribeOnce(channel string, h Handler) string {
	return b.add(channel, h, true)
}

func (b *Bus) add(channel string, h Handler, once bool) string {
	sub := &subscriber{
		id:      uuid.NewString(),
		channel: channel,
		handler: h,
		once:    once,
	}
	b.mu.Lock()
	b.subs = append(b.subs, sub)
	b.mu.Unlock()
	return sub.id
}

// Unsubscribe removes a subscriber by id. Unknown ids are ignored.
func (b *Bus) Unsubscribe(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers args to every subscriber of channel, plus wildcard
// subscribers, in subscription order.
func (b *Bus) Publish(channel string, args ...interface{}) {
	msg := Message{Channel: channel, Args: args, Time: time.Now()}

	b.mu.Lock()
	matched := make([]*subscriber, 0, 4)
	removedOnce := false
	for _, sub := range b.subs {
		if sub.channel != channel && sub.channel != Wildcard {
			continue
		}
		if sub.once {
			sub.fired = true
			removedOnce = true
		}
		matched = append(matched, sub)
	}
	if removedOnce {
		kept := b.subs[:0]
		for _, sub := range b.subs {
			if sub.once && sub.fired {
				continue
			}
			kept = append(kept, sub)
		}
		b.subs = kept
	}
	b.mu.Unlock()

	for _, sub := range matched {
		b.dispatch(sub, msg)
	}
}

// dispatch runs one handler with panic recovery.
func (b *Bus) dispatch(sub *subscriber, msg Message) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("event handler panicked", logger.Attrs{
				"channel": msg.Channel,
				"panic":   r,
			})
		}
	}()
	sub.handler(msg)
}

// SubscriberCount reports the number of handlers registered for a channel,
// wildcard subscribers excluded.
func (b *Bus) SubscriberCount(channel string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, sub := range b.subs {
		if sub.channel == channel {
			n++
		}
	}
	return n
}
