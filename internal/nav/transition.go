package nav

import "github.com/damru/damru/internal/domain"

// ConversationResolver produces the conversation to open for a contact.
type ConversationResolver interface {
	Resolve(contact domain.Contact) domain.Conversation
}

// Transition computes the state that follows ev. It has no side effects
// beyond calling chats for StartChat. Events the current screen does not
// handle return s unchanged and an *IgnoredError.
func Transition(s State, ev Event, chats ConversationResolver) (State, error) {
	s = s.clone()

	switch e := ev.(type) {
	case Logout:
		return Initial(), nil

	case SplashElapsed:
		if s.Screen == Splash {
			s.Screen = OTP
			return s, nil
		}

	case PhoneVerified:
		if s.Screen == OTP {
			s.Phone = e.Phone
			s.Screen = Profile
			return s, nil
		}

	case ProfileCompleted:
		if s.Screen == Profile {
			p := e.Profile
			s.Profile = &p
			s.Screen = Chats
			return s, nil
		}

	case ChatSelected:
		if s.Screen == Chats {
			return selectChat(s, e.Conversation, e.Contact), nil
		}

	case StartChat:
		if s.Screen == Contacts && chats != nil {
			return selectChat(s, chats.Resolve(e.Contact), e.Contact), nil
		}

	case StartCall:
		switch s.Screen {
		case Contacts, Chats, Calls:
			contact := e.Contact
			s.Contact = &contact
			s.CallRequest = &CallRequest{Contact: e.Contact, Type: e.Type}
			s.Screen = Calls
			return s, nil
		}

	case Back:
		switch s.Screen {
		case Chat, Contacts, Calls, Settings:
			s.Screen = Chats
			return s, nil
		}

	case Navigate:
		if s.Screen.signedIn() {
			target, ok := ParseScreen(e.Target)
			if !ok {
				target = Splash
			}
			s.Screen = target
			return s, nil
		}

	case ProfileUpdated:
		if s.Screen == Settings {
			p := e.Profile
			s.Profile = &p
			return s, nil
		}
	}

	return s, &IgnoredError{Screen: s.Screen, Event: ev.name()}
}

func selectChat(s State, conv domain.Conversation, contact domain.Contact) State {
	s.Conversation = &conv
	s.Contact = &contact
	s.Screen = Chat
	return s
}
