package nav

import (
	"sync"

	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/domain"
)

const (
	// PlaceholderMessage is the preview of a synthesized conversation.
	PlaceholderMessage = "Start a conversation..."
	// PlaceholderTimestamp is the timestamp label of a synthesized conversation.
	PlaceholderTimestamp = "Now"
)

// ChatStarter resolves the conversation for a contact from the directory,
// synthesizing one when the directory has none. The directory is never
// written to.
type ChatStarter struct {
	dir   directory.Directory
	clock clock.Clock

	mu     sync.Mutex
	lastID int64
}

// NewChatStarter creates a resolver over dir.
func NewChatStarter(dir directory.Directory, clk clock.Clock) *ChatStarter {
	return &ChatStarter{dir: dir, clock: clk}
}

// Resolve implements ConversationResolver. Each synthesized conversation
// gets a new id, even for the same contact.
func (cs *ChatStarter) Resolve(contact domain.Contact) domain.Conversation {
	if conv, ok := cs.dir.FindConversationByContactID(contact.ID); ok {
		return conv
	}
	return domain.Conversation{
		ID:          cs.nextID(),
		ContactID:   contact.ID,
		LastMessage: PlaceholderMessage,
		Timestamp:   PlaceholderTimestamp,
		Unread:      0,
		Encrypted:   true,
		Pinned:      false,
		Muted:       false,
	}
}

// nextID derives an id from the clock in milliseconds, bumped past the
// previous id when the clock has not moved.
func (cs *ChatStarter) nextID() int64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	id := cs.clock.Now().UnixMilli()
	if id <= cs.lastID {
		id = cs.lastID + 1
	}
	cs.lastID = id
	return id
}
