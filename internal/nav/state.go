package nav

import (
	"fmt"

	"github.com/damru/damru/internal/domain"
)

// CallRequest is left by StartCall for the call screen to pick up.
type CallRequest struct {
	Contact domain.Contact
	Type    domain.CallType
}

// State is everything the controller carries between screens. Pointer
// fields are nil when unset and are never shared with the caller.
type State struct {
	Screen       Screen
	Phone        string
	Profile      *domain.UserProfile
	Conversation *domain.Conversation
	Contact      *domain.Contact
	CallRequest  *CallRequest
}

// Initial returns the state of a fresh session.
func Initial() State {
	return State{Screen: Splash}
}

func (s State) clone() State {
	out := s
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	if s.Conversation != nil {
		c := *s.Conversation
		out.Conversation = &c
	}
	if s.Contact != nil {
		c := *s.Contact
		out.Contact = &c
	}
	if s.CallRequest != nil {
		r := *s.CallRequest
		out.CallRequest = &r
	}
	return out
}

// IgnoredError reports an event the current screen does not handle. The
// state is left unchanged.
type IgnoredError struct {
	Screen Screen
	Event  string
}

func (e *IgnoredError) Error() string {
	return fmt.Sprintf("%s not handled on %s screen", e.Event, e.Screen)
}
