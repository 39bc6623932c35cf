package call

import (
	"errors"
	"testing"
	"time"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/domain"
	"go.uber.org/zap"
)

var raj = domain.Contact{ID: 1, Name: "Raj Sharma"}

func newTestSession(t *testing.T, owner string) (*Session, *clock.Fake, *bus.Subscription) {
	t.Helper()
	clk := clock.NewFake(time.Unix(1700000000, 0))
	b := bus.New()
	sub := b.Subscribe(bus.CallNamespace, 64)
	t.Cleanup(sub.Cancel)
	return NewSession(owner, clk, b, zap.NewNop()), clk, sub
}

// waitFor returns the next event of the given kind.
func waitFor(t *testing.T, sub *bus.Subscription, kind string) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-sub.C():
			if evt.Kind == kind {
				return evt.Payload.(Snapshot)
			}
		case <-deadline:
			t.Fatalf("timeout waiting for %s", kind)
		}
	}
}

func TestInitiallyIdle(t *testing.T) {
	s, _, _ := newTestSession(t, "chat")
	snap := s.Snapshot()
	if snap.InCall() || snap.Elapsed != 0 || snap.Muted || snap.Speaker {
		t.Errorf("initial snapshot = %+v", snap)
	}
}

func TestStartSetsActiveCall(t *testing.T) {
	s, _, sub := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Video); err != nil {
		t.Fatal(err)
	}
	defer s.End()

	snap := waitFor(t, sub, KindStarted)
	if !snap.InCall() || snap.Active.Contact.ID != raj.ID || snap.Active.Type != domain.Video {
		t.Errorf("started snapshot = %+v", snap)
	}
	if snap.Elapsed != 0 {
		t.Errorf("elapsed = %d, want 0", snap.Elapsed)
	}
	if snap.Owner != "chat" {
		t.Errorf("owner = %q", snap.Owner)
	}
}

func TestStartWhileActive(t *testing.T) {
	s, _, _ := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	defer s.End()

	if err := s.Start(raj, domain.Video); !errors.Is(err, ErrCallActive) {
		t.Errorf("second Start() error = %v, want ErrCallActive", err)
	}
	if got := s.Snapshot().Active.Type; got != domain.Voice {
		t.Errorf("call type = %s, want voice (unchanged)", got)
	}
}

func TestTickIncrementsElapsed(t *testing.T) {
	s, clk, sub := newTestSession(t, "calls")
	if err := s.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	defer s.End()

	for want := 1; want <= 3; want++ {
		clk.Advance(time.Second)
		snap := waitFor(t, sub, KindTick)
		if snap.Elapsed != want {
			t.Fatalf("elapsed = %d, want %d", snap.Elapsed, want)
		}
	}
	if got := s.Snapshot().Elapsed; got != 3 {
		t.Errorf("Snapshot().Elapsed = %d, want 3", got)
	}
}

func TestEndResetsEverything(t *testing.T) {
	s, clk, sub := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	clk.Advance(time.Second)
	waitFor(t, sub, KindTick)
	if _, err := s.ToggleMute(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.ToggleSpeaker(); err != nil {
		t.Fatal(err)
	}

	s.End()

	snap := s.Snapshot()
	if snap.InCall() || snap.Elapsed != 0 || snap.Muted || snap.Speaker {
		t.Errorf("after End snapshot = %+v", snap)
	}
	ended := waitFor(t, sub, KindEnded)
	if ended.InCall() {
		t.Error("ended event still carries an active call")
	}
}

func TestStartThenImmediateEnd(t *testing.T) {
	s, _, _ := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Video); err != nil {
		t.Fatal(err)
	}
	s.End()

	snap := s.Snapshot()
	if snap.Elapsed != 0 || snap.Muted || snap.Speaker {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestEndStopsTicker(t *testing.T) {
	s, clk, _ := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	if got := clk.ActiveTickers(); got != 1 {
		t.Fatalf("active tickers = %d, want 1", got)
	}

	s.End()

	if got := clk.ActiveTickers(); got != 0 {
		t.Errorf("active tickers after End = %d, want 0", got)
	}
	clk.Advance(5 * time.Second)
	if got := s.Snapshot().Elapsed; got != 0 {
		t.Errorf("elapsed after End = %d, want 0", got)
	}
}

func TestRestartStartsFromZero(t *testing.T) {
	s, clk, sub := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	clk.Advance(time.Second)
	waitFor(t, sub, KindTick)
	s.End()

	if err := s.Start(raj, domain.Video); err != nil {
		t.Fatal(err)
	}
	defer s.End()
	if got := s.Snapshot().Elapsed; got != 0 {
		t.Errorf("elapsed on restart = %d, want 0", got)
	}
	if got := clk.ActiveTickers(); got != 1 {
		t.Errorf("active tickers = %d, want 1", got)
	}
}

func TestTogglesRequireCall(t *testing.T) {
	s, _, _ := newTestSession(t, "chat")
	if _, err := s.ToggleMute(); !errors.Is(err, ErrNoActiveCall) {
		t.Errorf("ToggleMute() error = %v, want ErrNoActiveCall", err)
	}
	if _, err := s.ToggleSpeaker(); !errors.Is(err, ErrNoActiveCall) {
		t.Errorf("ToggleSpeaker() error = %v, want ErrNoActiveCall", err)
	}
}

func TestTogglesAreIndependent(t *testing.T) {
	s, _, _ := newTestSession(t, "chat")
	if err := s.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	defer s.End()

	muted, _ := s.ToggleMute()
	if !muted {
		t.Error("ToggleMute() = false, want true")
	}
	snap := s.Snapshot()
	if !snap.Muted || snap.Speaker {
		t.Errorf("after mute: %+v", snap)
	}
	speaker, _ := s.ToggleSpeaker()
	muted, _ = s.ToggleMute()
	if !speaker || muted {
		t.Errorf("speaker = %v, muted = %v; want true, false", speaker, muted)
	}
	if !s.Snapshot().InCall() {
		t.Error("toggles changed the call state")
	}
}

func TestEndWhenIdle(t *testing.T) {
	s, _, _ := newTestSession(t, "chat")
	s.End()
	if s.Snapshot().InCall() {
		t.Error("idle End started a call")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	chat := NewSession("chat", clk, nil, zap.NewNop())
	history := NewSession("calls", clk, nil, zap.NewNop())

	if err := chat.Start(raj, domain.Voice); err != nil {
		t.Fatal(err)
	}
	if err := history.Start(raj, domain.Video); err != nil {
		t.Fatal(err)
	}
	if _, err := history.ToggleMute(); err != nil {
		t.Fatal(err)
	}

	chat.End()

	snap := history.Snapshot()
	if !snap.InCall() || !snap.Muted {
		t.Errorf("ending one session affected the other: %+v", snap)
	}
	history.End()
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{65, "1:05"},
		{600, "10:00"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatElapsed(tt.in); got != tt.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
