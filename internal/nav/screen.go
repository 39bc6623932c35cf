// Package nav owns which top-level screen is visible and the identity and
// selection state that travels between screens.
package nav

// Screen is one mutually exclusive top-level view.
type Screen int

const (
	Splash Screen = iota
	OTP
	Profile
	Chats
	Chat
	Contacts
	Calls
	Settings
)

var screenNames = [...]string{
	Splash:   "splash",
	OTP:      "otp",
	Profile:  "profile",
	Chats:    "chats",
	Chat:     "chat",
	Contacts: "contacts",
	Calls:    "calls",
	Settings: "settings",
}

// Screens lists every screen in declaration order.
func Screens() []Screen {
	return []Screen{Splash, OTP, Profile, Chats, Chat, Contacts, Calls, Settings}
}

// String returns the screen's name as used by Navigate.
func (s Screen) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return screenNames[s]
}

// Valid reports whether s is one of the declared screens.
func (s Screen) Valid() bool {
	return s >= Splash && s <= Settings
}

// ParseScreen maps a screen name to a Screen.
func ParseScreen(name string) (Screen, bool) {
	for i, n := range screenNames {
		if n == name {
			return Screen(i), true
		}
	}
	return Splash, false
}

// signedIn reports whether the screen belongs to the main app, after
// profile setup.
func (s Screen) signedIn() bool {
	switch s {
	case Chats, Chat, Contacts, Calls, Settings:
		return true
	}
	return false
}
