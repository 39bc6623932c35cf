package directory

import (
	"strings"

	"github.com/damru/damru/internal/domain"
)

// ConversationRow is a conversation joined with its contact.
type ConversationRow struct {
	Conversation domain.Conversation
	Contact      domain.Contact
}

// CallRow is a call record joined with its contact.
type CallRow struct {
	Call    domain.CallRecord
	Contact domain.Contact
}

// Scope selects which contacts the contacts screen lists.
type Scope int

const (
	// MyContacts lists only saved contacts.
	MyContacts Scope = iota
	// AllUsers lists every directory entry.
	AllUsers
)

// String returns the tab label for the scope.
func (s Scope) String() string {
	if s == AllUsers {
		return "All Users"
	}
	return "My Contacts"
}

// FilterConversations returns conversations whose contact name contains
// term, case-insensitively. Conversations whose contact does not resolve
// are skipped.
func FilterConversations(d Directory, term string) []ConversationRow {
	term = strings.ToLower(term)
	var rows []ConversationRow
	for _, conv := range d.Conversations() {
		contact, ok := d.FindContactByID(conv.ContactID)
		if !ok {
			continue
		}
		if !strings.Contains(strings.ToLower(contact.Name), term) {
			continue
		}
		rows = append(rows, ConversationRow{Conversation: conv, Contact: contact})
	}
	return rows
}

// FilterContacts matches term against the contact name (case-insensitive)
// or phone number, restricted to scope.
func FilterContacts(contacts []domain.Contact, term string, scope Scope) []domain.Contact {
	lower := strings.ToLower(term)
	var out []domain.Contact
	for _, c := range contacts {
		matches := strings.Contains(strings.ToLower(c.Name), lower) || strings.Contains(c.Phone, term)
		if !matches {
			continue
		}
		if scope == MyContacts && !c.IsContact {
			continue
		}
		out = append(out, c)
	}
	return out
}

// ResolveCalls joins call records with their contacts, skipping records
// whose contact is missing.
func ResolveCalls(d Directory, calls []domain.CallRecord) []CallRow {
	rows := make([]CallRow, 0, len(calls))
	for _, call := range calls {
		contact, ok := d.FindContactByID(call.ContactID)
		if !ok {
			continue
		}
		rows = append(rows, CallRow{Call: call, Contact: contact})
	}
	return rows
}
