package nav

import (
	"errors"
	"testing"

	"github.com/damru/damru/internal/domain"
)

type stubResolver struct {
	conv  domain.Conversation
	calls int
}

func (r *stubResolver) Resolve(contact domain.Contact) domain.Conversation {
	r.calls++
	c := r.conv
	c.ContactID = contact.ID
	return c
}

var (
	amit    = domain.Contact{ID: 3, Name: "Amit Kumar"}
	amitCnv = domain.Conversation{ID: 3, ContactID: 3}
	ana     = domain.UserProfile{DisplayName: "Ana", Status: domain.DefaultStatus, Phone: "+91 9876543210"}
)

func on(screen Screen) State {
	return State{Screen: screen}
}

func TestTransitionTable(t *testing.T) {
	tests := []struct {
		name string
		from Screen
		ev   Event
		want Screen
	}{
		{"splash timer", Splash, SplashElapsed{}, OTP},
		{"phone verified", OTP, PhoneVerified{Phone: "9876543210"}, Profile},
		{"profile completed", Profile, ProfileCompleted{Profile: ana}, Chats},
		{"chat selected", Chats, ChatSelected{Conversation: amitCnv, Contact: amit}, Chat},
		{"start chat", Contacts, StartChat{Contact: amit}, Chat},
		{"start call from contacts", Contacts, StartCall{Contact: amit, Type: domain.Voice}, Calls},
		{"start call from chats", Chats, StartCall{Contact: amit, Type: domain.Video}, Calls},
		{"start call from calls", Calls, StartCall{Contact: amit, Type: domain.Voice}, Calls},
		{"back from chat", Chat, Back{}, Chats},
		{"back from contacts", Contacts, Back{}, Chats},
		{"back from calls", Calls, Back{}, Chats},
		{"back from settings", Settings, Back{}, Chats},
		{"navigate contacts", Chats, Navigate{Target: "contacts"}, Contacts},
		{"navigate settings from chat", Chat, Navigate{Target: "settings"}, Settings},
		{"navigate calls from settings", Settings, Navigate{Target: "calls"}, Calls},
		{"navigate unknown", Contacts, Navigate{Target: "nonexistent-screen"}, Splash},
		{"profile updated", Settings, ProfileUpdated{Profile: ana}, Settings},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(on(tt.from), tt.ev, &stubResolver{conv: amitCnv})
			if err != nil {
				t.Fatalf("Transition() error = %v", err)
			}
			if got.Screen != tt.want {
				t.Errorf("screen = %s, want %s", got.Screen, tt.want)
			}
		})
	}
}

func TestTransitionIgnored(t *testing.T) {
	tests := []struct {
		name string
		from Screen
		ev   Event
	}{
		{"back from chats", Chats, Back{}},
		{"back from splash", Splash, Back{}},
		{"back from otp", OTP, Back{}},
		{"back from profile", Profile, Back{}},
		{"splash timer late", OTP, SplashElapsed{}},
		{"phone verified twice", Profile, PhoneVerified{Phone: "1"}},
		{"profile outside setup", Chats, ProfileCompleted{Profile: ana}},
		{"chat selected from contacts", Contacts, ChatSelected{Conversation: amitCnv, Contact: amit}},
		{"start chat from chats", Chats, StartChat{Contact: amit}},
		{"start call from settings", Settings, StartCall{Contact: amit, Type: domain.Voice}},
		{"navigate before sign in", OTP, Navigate{Target: "chats"}},
		{"profile update outside settings", Chats, ProfileUpdated{Profile: ana}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(on(tt.from), tt.ev, &stubResolver{})
			var ignored *IgnoredError
			if !errors.As(err, &ignored) {
				t.Fatalf("Transition() error = %v, want *IgnoredError", err)
			}
			if ignored.Screen != tt.from {
				t.Errorf("IgnoredError.Screen = %s, want %s", ignored.Screen, tt.from)
			}
			if got.Screen != tt.from {
				t.Errorf("screen = %s, want unchanged %s", got.Screen, tt.from)
			}
		})
	}
}

func TestBackFromChatsIsNoOp(t *testing.T) {
	s := State{Screen: Chats, Profile: &ana}
	got, err := Transition(s, Back{}, nil)
	if err == nil {
		t.Fatal("expected Back on chats to be reported as ignored")
	}
	if got.Screen != Chats {
		t.Errorf("screen = %s, want chats", got.Screen)
	}
	if got.Profile == nil || got.Profile.DisplayName != "Ana" {
		t.Error("profile lost on ignored back")
	}
}

func TestBackKeepsSessionState(t *testing.T) {
	s := State{Screen: Chat, Profile: &ana, Conversation: &amitCnv, Contact: &amit}
	got, err := Transition(s, Back{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Profile == nil || got.Conversation == nil || got.Contact == nil {
		t.Errorf("back cleared session state: %+v", got)
	}
}

func TestLogoutFromEveryScreen(t *testing.T) {
	for _, screen := range Screens() {
		t.Run(screen.String(), func(t *testing.T) {
			s := State{
				Screen:       screen,
				Phone:        "9876543210",
				Profile:      &ana,
				Conversation: &amitCnv,
				Contact:      &amit,
				CallRequest:  &CallRequest{Contact: amit, Type: domain.Voice},
			}
			got, err := Transition(s, Logout{}, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got.Screen != Splash {
				t.Errorf("screen = %s, want splash", got.Screen)
			}
			if got.Profile != nil || got.Conversation != nil || got.Contact != nil || got.CallRequest != nil || got.Phone != "" {
				t.Errorf("logout left session state: %+v", got)
			}
		})
	}
}

func TestNavigateUnknownKeepsSession(t *testing.T) {
	s := State{Screen: Chats, Profile: &ana}
	got, err := Transition(s, Navigate{Target: "nonexistent-screen"}, nil)
	if err != nil {
		t.Fatalf("Transition() error = %v", err)
	}
	if got.Screen != Splash {
		t.Errorf("screen = %s, want splash", got.Screen)
	}
	if got.Profile == nil {
		t.Error("unknown navigation cleared the profile")
	}
}

func TestStartChatStoresResolvedConversation(t *testing.T) {
	r := &stubResolver{conv: domain.Conversation{ID: 77}}
	got, err := Transition(on(Contacts), StartChat{Contact: amit}, r)
	if err != nil {
		t.Fatal(err)
	}
	if r.calls != 1 {
		t.Errorf("resolver calls = %d, want 1", r.calls)
	}
	if got.Conversation == nil || got.Conversation.ID != 77 || got.Conversation.ContactID != amit.ID {
		t.Errorf("conversation = %+v", got.Conversation)
	}
	if got.Contact == nil || got.Contact.ID != amit.ID {
		t.Errorf("contact = %+v", got.Contact)
	}
}

func TestStartCallStoresRequest(t *testing.T) {
	got, err := Transition(on(Contacts), StartCall{Contact: amit, Type: domain.Video}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Contact == nil || got.Contact.ID != amit.ID {
		t.Errorf("contact = %+v", got.Contact)
	}
	if got.CallRequest == nil || got.CallRequest.Type != domain.Video {
		t.Errorf("call request = %+v", got.CallRequest)
	}
}

func TestTransitionDoesNotAliasInput(t *testing.T) {
	profile := ana
	s := State{Screen: Settings, Profile: &profile}
	updated := ana
	updated.DisplayName = "Ana B"

	got, err := Transition(s, ProfileUpdated{Profile: updated}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if profile.DisplayName != "Ana" {
		t.Error("transition mutated the input state's profile")
	}
	got.Profile.Status = "changed"
	if profile.Status == "changed" {
		t.Error("output state aliases input state")
	}
}

func TestParseScreenRoundTrip(t *testing.T) {
	for _, s := range Screens() {
		got, ok := ParseScreen(s.String())
		if !ok || got != s {
			t.Errorf("ParseScreen(%q) = %s, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseScreen("nonexistent-screen"); ok {
		t.Error("ParseScreen accepted an unknown name")
	}
	if Screen(42).Valid() {
		t.Error("Screen(42).Valid() = true")
	}
}
