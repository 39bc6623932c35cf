package domain

import (
	"errors"
	"testing"
)

func TestNewProfile(t *testing.T) {
	tests := []struct {
		name    string
		in      ProfileInput
		want    UserProfile
		wantErr error
	}{
		{
			name: "defaults status",
			in:   ProfileInput{DisplayName: "Ana", Phone: "9876543210", CountryCode: "+91", Security: true},
			want: UserProfile{DisplayName: "Ana", Status: DefaultStatus, Phone: "+91 9876543210", Avatar: DefaultAvatar, Security: true},
		},
		{
			name: "keeps status",
			in:   ProfileInput{DisplayName: "Ana", Status: "busy", Phone: "9876543210", CountryCode: "+91"},
			want: UserProfile{DisplayName: "Ana", Status: "busy", Phone: "+91 9876543210", Avatar: DefaultAvatar},
		},
		{
			name: "no country code",
			in:   ProfileInput{DisplayName: "Ana", Phone: "9876543210"},
			want: UserProfile{DisplayName: "Ana", Status: DefaultStatus, Phone: "9876543210", Avatar: DefaultAvatar},
		},
		{
			name:    "blank name",
			in:      ProfileInput{DisplayName: "   ", Phone: "9876543210"},
			wantErr: ErrDisplayNameRequired,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewProfile(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewProfile() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NewProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithEditsKeepsNameWhenBlank(t *testing.T) {
	p := UserProfile{DisplayName: "Ana", Status: "old"}
	got := p.WithEdits("", "new")
	if got.DisplayName != "Ana" || got.Status != "new" {
		t.Errorf("WithEdits() = %+v", got)
	}
	if p.Status != "old" {
		t.Error("WithEdits mutated the receiver")
	}
}

func TestPresenceLabel(t *testing.T) {
	if got := (Contact{Status: Online, LastSeen: "now"}).PresenceLabel(); got != "● Online" {
		t.Errorf("online label = %q", got)
	}
	if got := (Contact{Status: Away, LastSeen: "30 min ago"}).PresenceLabel(); got != "● Last seen 30 min ago" {
		t.Errorf("away label = %q", got)
	}
}

func TestCallRecordDirection(t *testing.T) {
	tests := []struct {
		rec  CallRecord
		want string
	}{
		{CallRecord{Missed: true, Incoming: true}, "missed"},
		{CallRecord{Incoming: true}, "incoming"},
		{CallRecord{}, "outgoing"},
	}
	for _, tt := range tests {
		if got := tt.rec.Direction(); got != tt.want {
			t.Errorf("Direction(%+v) = %q, want %q", tt.rec, got, tt.want)
		}
	}
}

func TestNewOutgoingCall(t *testing.T) {
	r := NewOutgoingCall(99, 14, Video)
	if r.Direction() != "outgoing" {
		t.Errorf("Direction() = %q, want outgoing", r.Direction())
	}
	if r.Duration != "0:00" || r.Timestamp != "Just now" || r.Missed || r.Incoming {
		t.Errorf("record = %+v", r)
	}
	if r.Type.Label() != "Video Call" {
		t.Errorf("Label() = %q", r.Type.Label())
	}
}
