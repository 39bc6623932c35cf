package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/config"
	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/nav"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *nav.Controller) {
	t.Helper()
	dir := directory.Seed()
	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	ctrl := nav.NewController(nav.NewChatStarter(dir, clk), nil, clk, zap.NewNop())
	a := NewApp(Deps{
		Instance:   "test",
		Config:     config.Default(),
		Controller: ctrl,
		Directory:  dir,
		Clock:      clk,
		Logger:     zap.NewNop(),
	})
	return a, ctrl
}

func signIn(t *testing.T, ctrl *nav.Controller) {
	t.Helper()
	ctrl.Dispatch(nav.SplashElapsed{})
	ctrl.Dispatch(nav.PhoneVerified{Phone: "9876543210"})
	ctrl.Dispatch(nav.ProfileCompleted{Profile: domain.UserProfile{DisplayName: "Ana"}})
	if ctrl.Screen() != nav.Chats {
		t.Fatalf("screen = %s after sign in", ctrl.Screen())
	}
}

func TestScreenViewCoversEveryScreen(t *testing.T) {
	a, _ := newTestApp(t)
	seen := make(map[any]nav.Screen)
	for _, s := range nav.Screens() {
		v := a.screenView(s)
		if prev, ok := seen[v]; ok {
			t.Errorf("%s and %s share a view", prev, s)
		}
		seen[v] = s
		if !a.pages.HasPage(s.String()) {
			t.Errorf("no page for %s", s)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	raj := domain.Contact{ID: 1, Name: "Raj Sharma"}
	tests := []struct {
		state nav.State
		want  []string
	}{
		{nav.State{Screen: nav.Splash}, []string{"DAMRU"}},
		{nav.State{Screen: nav.OTP}, []string{"DAMRU", "Verify"}},
		{nav.State{Screen: nav.Profile}, []string{"DAMRU", "Profile setup"}},
		{nav.State{Screen: nav.Chats}, []string{"Chats"}},
		{nav.State{Screen: nav.Chat, Contact: &raj}, []string{"Chats", "Raj Sharma"}},
		{nav.State{Screen: nav.Chat}, []string{"Chats", "Chat"}},
		{nav.State{Screen: nav.Contacts}, []string{"Chats", "Contacts"}},
		{nav.State{Screen: nav.Calls}, []string{"Chats", "Calls"}},
		{nav.State{Screen: nav.Settings}, []string{"Chats", "Settings"}},
	}
	for _, tt := range tests {
		if got := Breadcrumbs(tt.state); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Breadcrumbs(%s) = %v, want %v", tt.state.Screen, got, tt.want)
		}
	}
}

func TestShowSwitchesPages(t *testing.T) {
	a, ctrl := newTestApp(t)
	a.show(ctrl.State())
	if a.current != nav.Splash || a.pages.Current() != "splash" {
		t.Fatalf("current = %s, page = %q", a.current, a.pages.Current())
	}

	signIn(t, ctrl)
	a.show(ctrl.State())
	if a.current != nav.Chats || a.pages.Current() != "chats" {
		t.Fatalf("current = %s, page = %q", a.current, a.pages.Current())
	}
}

func TestReconcilePlacesPendingCall(t *testing.T) {
	a, ctrl := newTestApp(t)
	signIn(t, ctrl)
	ctrl.Dispatch(nav.Navigate{Target: "calls"})
	a.show(ctrl.State())
	defer a.shown.Stop()

	neha, _ := a.deps.Directory.FindContactByID(4)
	ctrl.Dispatch(nav.StartCall{Contact: neha, Type: domain.Voice})
	if ctrl.Screen() != nav.Calls {
		t.Fatalf("screen = %s", ctrl.Screen())
	}

	a.reconcile(ctrl.State())
	snap := a.calls.CallPanel().Session().Snapshot()
	if !snap.InCall() || snap.Active.Contact.ID != 4 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if ctrl.State().CallRequest != nil {
		t.Fatal("call request not consumed")
	}
	if len(a.calls.History()) != 8 {
		t.Fatalf("history = %d, want 8", len(a.calls.History()))
	}

	a.reconcile(ctrl.State())
	if len(a.calls.History()) != 8 {
		t.Fatal("reconcile placed the call twice")
	}
}

func TestNumberKeysNavigate(t *testing.T) {
	a, ctrl := newTestApp(t)
	a.show(ctrl.State())

	// Signed-out screens ignore navigation.
	a.capture(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone))
	if ctrl.Screen() != nav.Splash {
		t.Fatalf("screen = %s, want splash", ctrl.Screen())
	}

	signIn(t, ctrl)
	a.show(ctrl.State())
	tests := []struct {
		key  rune
		want nav.Screen
	}{
		{'2', nav.Contacts},
		{'3', nav.Calls},
		{'4', nav.Settings},
		{'1', nav.Chats},
	}
	for _, tt := range tests {
		if ev := a.capture(tcell.NewEventKey(tcell.KeyRune, tt.key, tcell.ModNone)); ev != nil {
			t.Fatalf("key %q not consumed", tt.key)
		}
		if got := ctrl.Screen(); got != tt.want {
			t.Fatalf("key %q: screen = %s, want %s", tt.key, got, tt.want)
		}
		a.show(ctrl.State())
	}
}

func TestRunCommand(t *testing.T) {
	a, ctrl := newTestApp(t)
	signIn(t, ctrl)

	a.runCommand(ParseCommand("calls"))
	if ctrl.Screen() != nav.Calls {
		t.Fatalf("screen = %s, want calls", ctrl.Screen())
	}

	a.runCommand(ParseCommand("nowhere"))
	if ctrl.Screen() != nav.Splash {
		t.Fatalf("screen = %s, want splash for unknown target", ctrl.Screen())
	}
	if ctrl.State().Profile == nil {
		t.Fatal("unknown target cleared the session")
	}

	a.runCommand(ParseCommand("logout"))
	if ctrl.State().Profile != nil {
		t.Fatal("logout kept the profile")
	}
}

func TestHelpOverlay(t *testing.T) {
	a, ctrl := newTestApp(t)
	signIn(t, ctrl)
	a.show(ctrl.State())

	a.capture(tcell.NewEventKey(tcell.KeyRune, '?', tcell.ModNone))
	if a.pages.Current() != pageHelp {
		t.Fatalf("page = %q, want help", a.pages.Current())
	}
	a.capture(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	if a.pages.Current() != "chats" {
		t.Fatalf("page = %q after Esc, want chats", a.pages.Current())
	}
	if ctrl.Screen() != nav.Chats {
		t.Fatalf("Esc on help reached the controller: %s", ctrl.Screen())
	}
}

func TestPromptSwallowsShortcuts(t *testing.T) {
	a, ctrl := newTestApp(t)
	signIn(t, ctrl)
	a.show(ctrl.State())

	a.capture(tcell.NewEventKey(tcell.KeyRune, ':', tcell.ModNone))
	if !a.promptOpen {
		t.Fatal("':' did not open the command prompt")
	}
	if ev := a.capture(tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone)); ev == nil {
		t.Fatal("typing into the prompt triggered a shortcut")
	}
	if ctrl.Screen() != nav.Chats {
		t.Fatalf("screen = %s, want chats", ctrl.Screen())
	}

	a.closePrompt()
	a.show(nav.State{Screen: nav.Splash})
	a.capture(tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone))
	if a.promptOpen {
		t.Fatal("filter prompt opened on a screen without a list")
	}
}
