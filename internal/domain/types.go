package domain

// Presence is a contact's availability.
type Presence string

const (
	Online  Presence = "online"
	Offline Presence = "offline"
	Away    Presence = "away"
)

// Contact is a directory identity record.
type Contact struct {
	ID        int64
	Name      string
	Status    Presence
	LastSeen  string
	Avatar    string
	Phone     string
	IsContact bool
}

// PresenceLabel returns the one-line presence shown under a contact name.
func (c Contact) PresenceLabel() string {
	if c.Status == Online {
		return "● Online"
	}
	return "● Last seen " + c.LastSeen
}

// Conversation is a chat thread summary. Pinned, Muted and Encrypted are
// independent of each other.
type Conversation struct {
	ID          int64
	ContactID   int64
	LastMessage string
	Timestamp   string
	Unread      int
	Encrypted   bool
	Pinned      bool
	Muted       bool
}

// CallType distinguishes voice from video calls.
type CallType string

const (
	Voice CallType = "voice"
	Video CallType = "video"
)

// Label returns the human readable call type.
func (t CallType) Label() string {
	if t == Video {
		return "Video Call"
	}
	return "Voice Call"
}

// CallRecord is one entry in the call history.
type CallRecord struct {
	ID        int64
	ContactID int64
	Type      CallType
	Duration  string
	Timestamp string
	Missed    bool
	Incoming  bool
}

// NewOutgoingCall is the record added to the history when a call is placed.
func NewOutgoingCall(id, contactID int64, typ CallType) CallRecord {
	return CallRecord{
		ID:        id,
		ContactID: contactID,
		Type:      typ,
		Duration:  "0:00",
		Timestamp: "Just now",
	}
}

// Direction returns "missed", "incoming" or "outgoing".
func (r CallRecord) Direction() string {
	switch {
	case r.Missed:
		return "missed"
	case r.Incoming:
		return "incoming"
	default:
		return "outgoing"
	}
}

// Sender identifies who wrote a message.
type Sender string

const (
	Self  Sender = "self"
	Other Sender = "other"
)

// MessageType is the payload kind of a message.
type MessageType string

const (
	TextMessage  MessageType = "text"
	ImageMessage MessageType = "image"
	FileMessage  MessageType = "file"
)

// Message is a single chat message inside an open thread.
type Message struct {
	ID        int64
	Text      string
	Sender    Sender
	Timestamp string
	Read      bool
	Type      MessageType
}
