package ipc

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/paintapp/paintapp/internal/infrastructure/platform"
	"github.com/paintapp/paintapp/pkg/events"
	"github.com/paintapp/paintapp/pkg/logger"
)

// ErrInvalidChannel rejects Invoke calls on channels outside the send
// whitelist. Send and On drop silently (with a warning) instead, so a
// misbehaving renderer learns nothing about the host's surface.
var ErrInvalidChannel = errors.New("ipc: invalid channel")

// ErrNoHandler rejects Invoke calls on whitelisted channels nothing
// answers.
var ErrNoHandler = errors.New("ipc: no handler for channel")

// Listener receives deliveries on a subscribed channel.
type Listener func(args ...interface{})

// InvokeHandler answers an Invoke round-trip.
type InvokeHandler func(args ...interface{}) (interface{}, error)

// RuntimeInfo is the read-only environment record exposed to the
// renderer alongside the channel operations.
type RuntimeInfo struct {
	Platform  string `json:"platform"`
	IsMac     bool   `json:"isMac"`
	IsWindows bool   `json:"isWindows"`
	IsLinux   bool   `json:"isLinux"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// Bridge is the narrow surface the renderer talks through. Every
// operation checks its channel against the whitelist before anything else
// happens; out-of-list traffic is dropped with exactly one warning.
type Bridge struct {
	bus *events.Bus

	mu       sync.RWMutex
	handlers map[string]InvokeHandler
}

// NewBridge builds a bridge over the process bus.
func NewBridge(bus *events.Bus) *Bridge {
	return &Bridge{
		bus:      bus,
		handlers: make(map[string]InvokeHandler),
	}
}

// Send forwards a renderer message to the host. Non-whitelisted channels
// are dropped.
func (b *Bridge) Send(channel string, args ...interface{}) {
	if !IsValidChannel(channel, Send) {
		logger.Warn("blocked send on invalid channel", logger.Attrs{"channel": channel})
		return
	}
	b.bus.Publish(channel, args...)
}

// On subscribes the renderer to a host channel and returns an unsubscribe
// function. Non-whitelisted channels get a no-op unsubscriber.
func (b *Bridge) On(channel string, l Listener) func() {
	if !IsValidChannel(channel, Receive) {
		logger.Warn("blocked subscription on invalid channel", logger.Attrs{"channel": channel})
		return func() {}
	}
	id := b.bus.Subscribe(channel, func(msg events.Message) {
		l(msg.Args...)
	})
	return func() { b.bus.Unsubscribe(id) }
}

// Once subscribes for a single delivery.
func (b *Bridge) Once(channel string, l Listener) func() {
	if !IsValidChannel(channel, Receive) {
		logger.Warn("blocked subscription on invalid channel", logger.Attrs{"channel": channel})
		return func() {}
	}
	id := b.bus.SubscribeOnce(channel, func(msg events.Message) {
		l(msg.Args...)
	})
	return func() { b.bus.Unsubscribe(id) }
}

// Invoke performs a request/response round-trip with the host. Invalid
// channels reject with ErrInvalidChannel.
func (b *Bridge) Invoke(channel string, args ...interface{}) (interface{}, error) {
	if !IsValidChannel(channel, Send) {
		logger.Warn("rejected invoke on invalid channel", logger.Attrs{"channel": channel})
		return nil, fmt.Errorf("%w: %q", ErrInvalidChannel, channel)
	}
	b.mu.RLock()
	handler, ok := b.handlers[channel]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoHandler, channel)
	}
	return handler(args...)
}

// Handle registers the host-side answer for an invokable channel. The
// host registers its handlers during startup; re-registration replaces.
func (b *Bridge) Handle(channel string, h InvokeHandler) {
	b.mu.Lock()
	b.handlers[channel] = h
	b.mu.Unlock()
}

// Info returns the read-only runtime record.
func (b *Bridge) Info() RuntimeInfo {
	return RuntimeInfo{
		Platform:  string(platform.Current()),
		IsMac:     platform.IsMac(),
		IsWindows: platform.IsWindows(),
		IsLinux:   platform.IsLinux(),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
