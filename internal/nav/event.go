package nav

import "github.com/damru/damru/internal/domain"

// Event is a user intent handled by the controller. The set is closed.
type Event interface {
	event()
	name() string
}

// SplashElapsed fires when the splash timer runs out.
type SplashElapsed struct{}

// PhoneVerified fires when the OTP screen accepts a code.
type PhoneVerified struct {
	Phone string
}

// ProfileCompleted carries the profile built at setup.
type ProfileCompleted struct {
	Profile domain.UserProfile
}

// ChatSelected opens a conversation from the chat list.
type ChatSelected struct {
	Conversation domain.Conversation
	Contact      domain.Contact
}

// StartChat opens a chat with a contact, resolving or synthesizing the
// conversation.
type StartChat struct {
	Contact domain.Contact
}

// StartCall moves to the call screen with a call request for Contact.
type StartCall struct {
	Contact domain.Contact
	Type    domain.CallType
}

// Back returns to the chat list from a secondary screen.
type Back struct{}

// Navigate switches to the screen named Target.
type Navigate struct {
	Target string
}

// Logout ends the session.
type Logout struct{}

// ProfileUpdated replaces the stored profile from the settings screen.
type ProfileUpdated struct {
	Profile domain.UserProfile
}

func (SplashElapsed) event()    {}
func (PhoneVerified) event()    {}
func (ProfileCompleted) event() {}
func (ChatSelected) event()     {}
func (StartChat) event()        {}
func (StartCall) event()        {}
func (Back) event()             {}
func (Navigate) event()         {}
func (Logout) event()           {}
func (ProfileUpdated) event()   {}

func (SplashElapsed) name() string    { return "splash-timer-elapsed" }
func (PhoneVerified) name() string    { return "phone-verified" }
func (ProfileCompleted) name() string { return "profile-completed" }
func (ChatSelected) name() string     { return "chat-selected" }
func (StartChat) name() string        { return "start-chat" }
func (StartCall) name() string        { return "start-call" }
func (Back) name() string             { return "back" }
func (Navigate) name() string         { return "navigate" }
func (Logout) name() string           { return "logout" }
func (ProfileUpdated) name() string   { return "profile-updated" }
