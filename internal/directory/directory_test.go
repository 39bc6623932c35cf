package directory

import (
	"testing"

	"github.com/damru/damru/internal/domain"
)

func TestSeedSizes(t *testing.T) {
	d := Seed()
	if got := len(d.Contacts()); got != 15 {
		t.Errorf("contacts = %d, want 15", got)
	}
	if got := len(d.Conversations()); got != 6 {
		t.Errorf("conversations = %d, want 6", got)
	}
	if got := len(d.CallHistory()); got != 7 {
		t.Errorf("calls = %d, want 7", got)
	}
}

func TestFindContactByID(t *testing.T) {
	d := Seed()
	c, ok := d.FindContactByID(3)
	if !ok || c.Name != "Amit Kumar" {
		t.Errorf("FindContactByID(3) = %+v, %v", c, ok)
	}
	if _, ok := d.FindContactByID(99); ok {
		t.Error("FindContactByID(99) reported a match")
	}
}

func TestFindConversationByContactIDFirstMatch(t *testing.T) {
	d := NewMemory(
		[]domain.Contact{{ID: 1, Name: "A"}},
		[]domain.Conversation{
			{ID: 10, ContactID: 1},
			{ID: 11, ContactID: 1},
		},
		nil,
	)
	conv, ok := d.FindConversationByContactID(1)
	if !ok || conv.ID != 10 {
		t.Errorf("FindConversationByContactID(1) = %+v, %v; want id 10", conv, ok)
	}
	if _, ok := d.FindConversationByContactID(2); ok {
		t.Error("FindConversationByContactID(2) reported a match")
	}
}

func TestMemoryReturnsCopies(t *testing.T) {
	d := Seed()
	cs := d.Contacts()
	cs[0].Name = "changed"
	if c, _ := d.FindContactByID(1); c.Name != "Raj Sharma" {
		t.Errorf("directory mutated through returned slice: %q", c.Name)
	}
}

func TestFilterConversations(t *testing.T) {
	d := Seed()

	tests := []struct {
		term string
		want []int64
	}{
		{"", []int64{1, 2, 3, 4, 5, 6}},
		{"AMIT", []int64{3}},
		{"an", []int64{5, 6}},
		{"nobody", nil},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			rows := FilterConversations(d, tt.term)
			if len(rows) != len(tt.want) {
				t.Fatalf("got %d rows, want %d", len(rows), len(tt.want))
			}
			for i, r := range rows {
				if r.Conversation.ID != tt.want[i] {
					t.Errorf("row %d id = %d, want %d", i, r.Conversation.ID, tt.want[i])
				}
				if r.Contact.ID != r.Conversation.ContactID {
					t.Errorf("row %d joined contact %d to conversation of %d", i, r.Contact.ID, r.Conversation.ContactID)
				}
			}
		})
	}
}

func TestFilterConversationsSkipsUnresolvable(t *testing.T) {
	d := NewMemory(
		[]domain.Contact{{ID: 1, Name: "A"}},
		[]domain.Conversation{{ID: 1, ContactID: 1}, {ID: 2, ContactID: 42}},
		nil,
	)
	rows := FilterConversations(d, "")
	if len(rows) != 1 || rows[0].Conversation.ID != 1 {
		t.Errorf("rows = %+v, want only conversation 1", rows)
	}
}

func TestFilterContacts(t *testing.T) {
	contacts := SeedContacts()

	tests := []struct {
		name  string
		term  string
		scope Scope
		want  int
	}{
		{"my contacts", "", MyContacts, 10},
		{"all users", "", AllUsers, 15},
		{"name match saved only", "meera", MyContacts, 0},
		{"name match all", "meera", AllUsers, 1},
		{"phone match", "98765", AllUsers, 1},
		{"case insensitive", "SHARMA", MyContacts, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterContacts(contacts, tt.term, tt.scope)
			if len(got) != tt.want {
				t.Errorf("FilterContacts(%q, %v) = %d contacts, want %d", tt.term, tt.scope, len(got), tt.want)
			}
		})
	}
}

func TestResolveCallsSkipsMissing(t *testing.T) {
	d := NewMemory([]domain.Contact{{ID: 1}}, nil, nil)
	rows := ResolveCalls(d, []domain.CallRecord{{ID: 1, ContactID: 1}, {ID: 2, ContactID: 9}})
	if len(rows) != 1 || rows[0].Call.ID != 1 {
		t.Errorf("rows = %+v", rows)
	}
}
