// Package call models an in-progress voice or video call owned by a single
// screen. There is no transport: starting and ending always succeed.
package call

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Bus event kinds published by a Session.
const (
	KindStarted = "call.started"
	KindTick    = "call.tick"
	KindEnded   = "call.ended"
)

var (
	// ErrCallActive is returned by Start while a call is in progress.
	ErrCallActive = errors.New("a call is already in progress")
	// ErrNoActiveCall is returned by the toggles while idle.
	ErrNoActiveCall = errors.New("no call in progress")
)

// ActiveCall is the call currently in progress.
type ActiveCall struct {
	ID        uuid.UUID
	Contact   domain.Contact
	Type      domain.CallType
	StartedAt time.Time
}

// Snapshot is a point-in-time view of a Session.
type Snapshot struct {
	Owner   string
	Active  *ActiveCall
	Elapsed int // seconds
	Muted   bool
	Speaker bool
}

// InCall reports whether a call is in progress.
func (s Snapshot) InCall() bool { return s.Active != nil }

// Session is the idle / in-call state machine. The zero value is not
// usable; create one with NewSession.
type Session struct {
	owner  string
	clock  clock.Clock
	bus    *bus.Bus
	logger *zap.Logger

	mu      sync.Mutex
	active  *ActiveCall
	elapsed int
	muted   bool
	speaker bool
	stop    chan struct{}
	done    chan struct{}
}

// NewSession creates an idle session. owner names the hosting screen in
// logs and bus payloads. b may be nil.
func NewSession(owner string, clk clock.Clock, b *bus.Bus, logger *zap.Logger) *Session {
	return &Session{
		owner:  owner,
		clock:  clk,
		bus:    b,
		logger: logger.Named("call").With(zap.String("owner", owner)),
	}
}

// Start moves to in-call and starts the one-second elapsed tick.
func (s *Session) Start(contact domain.Contact, typ domain.CallType) error {
	s.mu.Lock()
	if s.active != nil {
		s.mu.Unlock()
		return ErrCallActive
	}
	call := &ActiveCall{
		ID:        uuid.New(),
		Contact:   contact,
		Type:      typ,
		StartedAt: s.clock.Now(),
	}
	s.active = call
	s.elapsed = 0
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	// Created before returning so no tick after Start can be missed.
	ticker := s.clock.NewTicker(time.Second)
	go s.run(call, ticker, s.stop, s.done)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Info("call started",
		zap.Stringer("call_id", call.ID),
		zap.Int64("contact_id", contact.ID),
		zap.String("type", string(typ)))
	s.publish(KindStarted, snap)
	return nil
}

// End returns to idle, resetting elapsed time and both toggles. It
// returns only after the tick goroutine has exited. Ending an idle
// session does nothing.
func (s *Session) End() {
	s.mu.Lock()
	call := s.active
	if call == nil {
		s.mu.Unlock()
		return
	}
	elapsed := s.elapsed
	stop, done := s.stop, s.done
	s.active = nil
	s.elapsed = 0
	s.muted = false
	s.speaker = false
	s.stop, s.done = nil, nil
	snap := s.snapshotLocked()
	s.mu.Unlock()

	close(stop)
	<-done

	s.logger.Info("call ended",
		zap.Stringer("call_id", call.ID),
		zap.String("duration", FormatElapsed(elapsed)))
	s.publish(KindEnded, snap)
}

// ToggleMute flips the mute flag and returns the new value.
func (s *Session) ToggleMute() (bool, error) {
	return s.toggle(&s.muted)
}

// ToggleSpeaker flips the speaker flag and returns the new value.
func (s *Session) ToggleSpeaker() (bool, error) {
	return s.toggle(&s.speaker)
}

func (s *Session) toggle(flag *bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return false, ErrNoActiveCall
	}
	*flag = !*flag
	return *flag, nil
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		Owner:   s.owner,
		Elapsed: s.elapsed,
		Muted:   s.muted,
		Speaker: s.speaker,
	}
	if s.active != nil {
		a := *s.active
		snap.Active = &a
	}
	return snap
}

func (s *Session) run(call *ActiveCall, ticker clock.Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C():
			s.tick(call)
		case <-stop:
			return
		}
	}
}

// tick counts one second for call. A tick racing with End for the same
// call finds a different (or no) active call and is dropped.
func (s *Session) tick(call *ActiveCall) {
	s.mu.Lock()
	if s.active != call {
		s.mu.Unlock()
		return
	}
	s.elapsed++
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.publish(KindTick, snap)
}

func (s *Session) publish(kind string, snap Snapshot) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(bus.Event{
		Kind:      kind,
		Timestamp: s.clock.Now(),
		Payload:   snap,
	})
}

// FormatElapsed renders seconds as m:ss.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
