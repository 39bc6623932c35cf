package store

import (
	"fmt"

	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/domain"
)

// ListContacts returns every contact in id order.
func (db *DB) ListContacts() ([]domain.Contact, error) {
	rows, err := db.Query(`
		SELECT id, name, status, last_seen, avatar, phone, is_contact
		FROM contacts
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Status, &c.LastSeen, &c.Avatar, &c.Phone, &c.IsContact); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// ListConversations returns every conversation in id order.
func (db *DB) ListConversations() ([]domain.Conversation, error) {
	rows, err := db.Query(`
		SELECT id, contact_id, last_message, timestamp, unread, encrypted, pinned, muted
		FROM conversations
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var convs []domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		if err := rows.Scan(&c.ID, &c.ContactID, &c.LastMessage, &c.Timestamp, &c.Unread, &c.Encrypted, &c.Pinned, &c.Muted); err != nil {
			return nil, err
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

// ListCallHistory returns the call history, newest first.
func (db *DB) ListCallHistory() ([]domain.CallRecord, error) {
	rows, err := db.Query(`
		SELECT id, contact_id, type, duration, timestamp, missed, incoming
		FROM call_history
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var calls []domain.CallRecord
	for rows.Next() {
		var r domain.CallRecord
		if err := rows.Scan(&r.ID, &r.ContactID, &r.Type, &r.Duration, &r.Timestamp, &r.Missed, &r.Incoming); err != nil {
			return nil, err
		}
		calls = append(calls, r)
	}
	return calls, rows.Err()
}

// LoadDirectory reads all three tables into an in-memory directory.
func (db *DB) LoadDirectory() (*directory.Memory, error) {
	contacts, err := db.ListContacts()
	if err != nil {
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	convs, err := db.ListConversations()
	if err != nil {
		return nil, fmt.Errorf("load conversations: %w", err)
	}
	calls, err := db.ListCallHistory()
	if err != nil {
		return nil, fmt.Errorf("load call history: %w", err)
	}
	return directory.NewMemory(contacts, convs, calls), nil
}

// ContactCount returns the total number of contacts.
func (db *DB) ContactCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

// ConversationCount returns the total number of conversations.
func (db *DB) ConversationCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM conversations`).Scan(&count)
	return count, err
}
