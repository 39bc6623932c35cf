package directory

import "github.com/damru/damru/internal/domain"

// Seed returns the sample directory shipped with the client.
func Seed() *Memory {
	return NewMemory(SeedContacts(), SeedConversations(), SeedCallHistory())
}

// SeedContacts returns the sample contacts.
func SeedContacts() []domain.Contact {
	return []domain.Contact{
		{ID: 1, Name: "Raj Sharma", Status: domain.Online, LastSeen: "2 min ago", Avatar: "👨", Phone: "+91 98765 43210", IsContact: true},
		{ID: 2, Name: "Priya Patel", Status: domain.Offline, LastSeen: "1 hour ago", Avatar: "👩", Phone: "+91 87654 32109", IsContact: true},
		{ID: 3, Name: "Amit Kumar", Status: domain.Online, LastSeen: "5 min ago", Avatar: "👨", Phone: "+91 76543 21098", IsContact: true},
		{ID: 4, Name: "Neha Gupta", Status: domain.Online, LastSeen: "now", Avatar: "👩", Phone: "+91 65432 10987", IsContact: true},
		{ID: 5, Name: "Sanjay Singh", Status: domain.Away, LastSeen: "30 min ago", Avatar: "👨", Phone: "+91 94321 09876", IsContact: true},
		{ID: 6, Name: "Anjali Mehta", Status: domain.Online, LastSeen: "10 min ago", Avatar: "👩", Phone: "+91 83210 98765", IsContact: true},
		{ID: 7, Name: "Vikram Joshi", Status: domain.Offline, LastSeen: "2 hours ago", Avatar: "👨", Phone: "+91 72109 87654", IsContact: true},
		{ID: 8, Name: "Sneha Reddy", Status: domain.Online, LastSeen: "just now", Avatar: "👩", Phone: "+91 61098 76543", IsContact: true},
		{ID: 9, Name: "Rahul Verma", Status: domain.Away, LastSeen: "45 min ago", Avatar: "👨", Phone: "+91 50987 65432", IsContact: true},
		{ID: 10, Name: "Pooja Mishra", Status: domain.Online, LastSeen: "3 min ago", Avatar: "👩", Phone: "+91 49876 54321", IsContact: true},
		{ID: 11, Name: "Arun Desai", Status: domain.Offline, LastSeen: "5 hours ago", Avatar: "👨", Phone: "+91 38765 43210", IsContact: false},
		{ID: 12, Name: "Kavita Nair", Status: domain.Online, LastSeen: "1 min ago", Avatar: "👩", Phone: "+91 27654 32109", IsContact: false},
		{ID: 13, Name: "Deepak Iyer", Status: domain.Away, LastSeen: "20 min ago", Avatar: "👨", Phone: "+91 16543 21098", IsContact: false},
		{ID: 14, Name: "Meera Choudhary", Status: domain.Online, LastSeen: "just now", Avatar: "👩", Phone: "+91 95432 10987", IsContact: false},
		{ID: 15, Name: "Suresh Menon", Status: domain.Offline, LastSeen: "1 day ago", Avatar: "👨", Phone: "+91 84321 09876", IsContact: false},
	}
}

// SeedConversations returns the sample conversations.
func SeedConversations() []domain.Conversation {
	return []domain.Conversation{
		{ID: 1, ContactID: 1, LastMessage: "Meeting at 3 PM tomorrow?", Timestamp: "2:30 PM", Unread: 2, Encrypted: true},
		{ID: 2, ContactID: 2, LastMessage: "Thanks for the documents!", Timestamp: "1:15 PM", Encrypted: true},
		{ID: 3, ContactID: 3, LastMessage: "Let's catch up this weekend", Timestamp: "Yesterday", Unread: 5, Encrypted: true, Pinned: true},
		{ID: 4, ContactID: 4, LastMessage: "Dinner tonight?", Timestamp: "11:45 AM", Unread: 1, Encrypted: true, Muted: true},
		{ID: 5, ContactID: 5, LastMessage: "Project completed successfully", Timestamp: "10:20 AM", Encrypted: true},
		{ID: 6, ContactID: 6, LastMessage: "Call me when you're free", Timestamp: "Yesterday", Unread: 3, Encrypted: true},
	}
}

// SeedCallHistory returns the sample call history, newest first.
func SeedCallHistory() []domain.CallRecord {
	return []domain.CallRecord{
		{ID: 1, ContactID: 1, Type: domain.Voice, Duration: "2:45", Timestamp: "3:30 PM"},
		{ID: 2, ContactID: 2, Type: domain.Voice, Duration: "0:00", Timestamp: "2:15 PM", Missed: true, Incoming: true},
		{ID: 3, ContactID: 3, Type: domain.Video, Duration: "5:20", Timestamp: "Yesterday", Incoming: true},
		{ID: 4, ContactID: 4, Type: domain.Video, Duration: "12:10", Timestamp: "2 days ago"},
		{ID: 5, ContactID: 5, Type: domain.Voice, Duration: "1:30", Timestamp: "2 days ago", Missed: true, Incoming: true},
		{ID: 6, ContactID: 6, Type: domain.Voice, Duration: "3:15", Timestamp: "3 days ago"},
		{ID: 7, ContactID: 7, Type: domain.Video, Duration: "7:45", Timestamp: "4 days ago", Incoming: true},
	}
}
