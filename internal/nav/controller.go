package nav

import (
	"errors"
	"sync"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/clock"
	"go.uber.org/zap"
)

// Bus event kinds published by the controller.
const (
	KindChanged   = "nav.changed"
	KindLoggedOut = "nav.logged_out"
)

// Change is the payload of KindChanged.
type Change struct {
	Event string
	From  Screen
	To    Screen
}

// Controller is the single owner of the navigation State. Every event runs
// to completion under its lock before the next one is processed.
type Controller struct {
	mu     sync.Mutex
	state  State
	chats  ConversationResolver
	bus    *bus.Bus
	clock  clock.Clock
	logger *zap.Logger
}

// NewController creates a controller on the splash screen. b may be nil.
func NewController(chats ConversationResolver, b *bus.Bus, clk clock.Clock, logger *zap.Logger) *Controller {
	return &Controller{
		state:  Initial(),
		chats:  chats,
		bus:    b,
		clock:  clk,
		logger: logger.Named("nav"),
	}
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Screen
}

// Dispatch applies ev and returns the resulting state. Events the current
// screen does not handle leave the state as it was.
func (c *Controller) Dispatch(ev Event) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := c.state
	next, err := Transition(from, ev, c.chats)
	if err != nil {
		var ignored *IgnoredError
		if errors.As(err, &ignored) {
			c.logger.Debug("event ignored",
				zap.String("event", ignored.Event),
				zap.Stringer("screen", ignored.Screen))
		}
		return from.clone()
	}

	if nv, ok := ev.(Navigate); ok {
		if _, known := ParseScreen(nv.Target); !known {
			c.logger.Warn("unknown navigation target, falling back to splash",
				zap.String("target", nv.Target))
		}
	}

	c.state = next
	c.logger.Info("transition",
		zap.String("event", ev.name()),
		zap.Stringer("from", from.Screen),
		zap.Stringer("to", next.Screen))

	c.publish(KindChanged, Change{Event: ev.name(), From: from.Screen, To: next.Screen})
	if _, ok := ev.(Logout); ok {
		c.publish(KindLoggedOut, from.Screen)
	}
	return next.clone()
}

// TakeCallRequest returns the pending call request and clears it.
func (c *Controller) TakeCallRequest() *CallRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	req := c.state.CallRequest
	c.state.CallRequest = nil
	return req
}

func (c *Controller) publish(kind string, payload any) {
	if c.bus == nil {
		return
	}
	c.bus.Publish(bus.Event{
		Kind:      kind,
		Timestamp: c.clock.Now(),
		Payload:   payload,
	})
}
