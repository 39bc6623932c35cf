// Package chat holds the messages of the currently open chat thread.
package chat

import (
	"strings"
	"sync"

	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/domain"
)

// TimeLayout formats message timestamps.
const TimeLayout = "15:04"

// Thread is the message list of one open conversation. It lives only as
// long as the chat screen shows that conversation.
type Thread struct {
	ConversationID int64

	clock    clock.Clock
	mu       sync.RWMutex
	messages []domain.Message
}

// NewThread opens a thread seeded with the sample exchange.
func NewThread(conversationID int64, clk clock.Clock) *Thread {
	return &Thread{
		ConversationID: conversationID,
		clock:          clk,
		messages:       SeedMessages(),
	}
}

// SeedMessages returns the opening exchange every thread shows.
func SeedMessages() []domain.Message {
	return []domain.Message{
		{ID: 1, Text: "Hi there!", Sender: domain.Other, Timestamp: "10:30 AM", Read: true, Type: domain.TextMessage},
		{ID: 2, Text: "Hey! How are you?", Sender: domain.Self, Timestamp: "10:31 AM", Read: true, Type: domain.TextMessage},
		{ID: 3, Text: "I'm doing great! Talk later?", Sender: domain.Other, Timestamp: "10:32 AM", Read: false, Type: domain.TextMessage},
	}
}

// Send appends a message from the local user. Blank text is ignored and
// reported as false.
func (t *Thread) Send(text string) (domain.Message, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	msg := domain.Message{
		ID:        int64(len(t.messages) + 1),
		Text:      text,
		Sender:    domain.Self,
		Timestamp: t.clock.Now().Format(TimeLayout),
		Read:      true,
		Type:      domain.TextMessage,
	}
	t.messages = append(t.messages, msg)
	return msg, true
}

// Messages returns a copy of the thread, oldest first.
func (t *Thread) Messages() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]domain.Message(nil), t.messages...)
}
