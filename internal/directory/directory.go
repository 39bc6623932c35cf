// Package directory is the read-only table of contacts, conversations and
// call history that every screen resolves display data from.
package directory

import "github.com/damru/damru/internal/domain"

// Directory is a read-only lookup. Misses report false, never an error.
type Directory interface {
	Contacts() []domain.Contact
	Conversations() []domain.Conversation
	CallHistory() []domain.CallRecord
	FindContactByID(id int64) (domain.Contact, bool)
	FindConversationByContactID(contactID int64) (domain.Conversation, bool)
}

// Memory is an in-memory Directory that keeps insertion order.
type Memory struct {
	contacts      []domain.Contact
	conversations []domain.Conversation
	calls         []domain.CallRecord
	byID          map[int64]int
}

// NewMemory copies the given records into a new directory.
func NewMemory(contacts []domain.Contact, conversations []domain.Conversation, calls []domain.CallRecord) *Memory {
	m := &Memory{
		contacts:      append([]domain.Contact(nil), contacts...),
		conversations: append([]domain.Conversation(nil), conversations...),
		calls:         append([]domain.CallRecord(nil), calls...),
		byID:          make(map[int64]int, len(contacts)),
	}
	for i, c := range m.contacts {
		// First record wins on duplicate ids, matching a linear scan.
		if _, ok := m.byID[c.ID]; !ok {
			m.byID[c.ID] = i
		}
	}
	return m
}

// Contacts returns a copy of all contacts in directory order.
func (m *Memory) Contacts() []domain.Contact {
	return append([]domain.Contact(nil), m.contacts...)
}

// Conversations returns a copy of all conversations in directory order.
func (m *Memory) Conversations() []domain.Conversation {
	return append([]domain.Conversation(nil), m.conversations...)
}

// CallHistory returns a copy of the call history, newest first.
func (m *Memory) CallHistory() []domain.CallRecord {
	return append([]domain.CallRecord(nil), m.calls...)
}

// FindContactByID looks up a contact.
func (m *Memory) FindContactByID(id int64) (domain.Contact, bool) {
	i, ok := m.byID[id]
	if !ok {
		return domain.Contact{}, false
	}
	return m.contacts[i], true
}

// FindConversationByContactID returns the first conversation for a contact.
func (m *Memory) FindConversationByContactID(contactID int64) (domain.Conversation, bool) {
	for _, c := range m.conversations {
		if c.ContactID == contactID {
			return c, true
		}
	}
	return domain.Conversation{}, false
}
