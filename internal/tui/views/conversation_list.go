package views

import (
	"fmt"

	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageList = "list"
	pageMenu = "menu"
)

// Context menu actions. They are acknowledged only; the directory is
// read-only.
var chatMenuActions = []string{"Pin chat", "Mute notifications", "Delete chat", "Cancel"}

// ConversationList is the chats screen: the filtered conversation table
// with a per-row context menu.
type ConversationList struct {
	*tview.Pages
	env    *Env
	table  *tview.Table
	menu   *tview.Modal
	rows   []directory.ConversationRow
	filter string
}

// NewConversationList creates the chats screen.
func NewConversationList(env *Env) *ConversationList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	styleTable(table, env.Theme)

	cl := &ConversationList{
		Pages: tview.NewPages(),
		env:   env,
		table: table,
	}

	cl.menu = tview.NewModal().
		AddButtons(chatMenuActions).
		SetDoneFunc(func(_ int, label string) { cl.MenuAction(label) })
	cl.menu.SetBackgroundColor(env.Theme.BgColor)
	cl.menu.SetBorderColor(env.Theme.BorderColor)

	table.SetSelectedFunc(func(row, _ int) { cl.Open(row - 1) })

	cl.AddPage(pageList, table, true, true)
	cl.AddPage(pageMenu, cl.menu, true, false)
	return cl
}

// Name implements Component.
func (cl *ConversationList) Name() string { return "Chats" }

// Init implements Component.
func (cl *ConversationList) Init() {}

// Start implements Component.
func (cl *ConversationList) Start() {}

// Stop closes the context menu.
func (cl *ConversationList) Stop() { cl.closeMenu() }

// Hints implements Component.
func (cl *ConversationList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "m", Description: "Menu"},
		{Key: "c/v", Description: "Voice/Video call"},
		{Key: "/", Description: "Filter"},
	}
}

// Enter clears the filter and reloads the rows.
func (cl *ConversationList) Enter(nav.State) {
	cl.closeMenu()
	cl.filter = ""
	cl.render()
	cl.table.Select(1, 0)
}

// Refresh implements Screen.
func (cl *ConversationList) Refresh(nav.State) { cl.render() }

// Bind implements Screen.
func (cl *ConversationList) Bind(r *keys.Registry) {
	view := nav.Chats.String()
	r.AddView(view, "menu", &keys.Action{
		Key: tcell.KeyRune, Rune: 'm', Description: "Menu", Visible: true,
		Handler: cl.openMenu,
	})
	r.AddView(view, "voice", &keys.Action{
		Key: tcell.KeyRune, Rune: 'c', Description: "Voice call", Visible: true,
		Handler: func() { cl.Call(domain.Voice) },
	})
	r.AddView(view, "video", &keys.Action{
		Key: tcell.KeyRune, Rune: 'v', Description: "Video call", Visible: true,
		Handler: func() { cl.Call(domain.Video) },
	})
	r.AddView(view, "close-menu", &keys.Action{
		Key: tcell.KeyEscape, Label: "Esc",
		Handler: func() {
			if cl.menuOpen() {
				cl.closeMenu()
				return
			}
			cl.env.Nav.Dispatch(nav.Back{})
		},
	})
}

// SetFilter implements Filterable.
func (cl *ConversationList) SetFilter(term string) {
	cl.filter = term
	cl.render()
}

// Rows returns the visible rows.
func (cl *ConversationList) Rows() []directory.ConversationRow {
	return append([]directory.ConversationRow(nil), cl.rows...)
}

// Open selects the i-th visible conversation.
func (cl *ConversationList) Open(i int) {
	row, ok := cl.row(i)
	if !ok {
		return
	}
	cl.env.Nav.Dispatch(nav.ChatSelected{Conversation: row.Conversation, Contact: row.Contact})
}

// Call starts a call with the selected conversation's contact.
func (cl *ConversationList) Call(typ domain.CallType) {
	row, ok := cl.selected()
	if !ok {
		return
	}
	cl.env.Nav.Dispatch(nav.StartCall{Contact: row.Contact, Type: typ})
}

// MenuAction acknowledges a context menu choice.
func (cl *ConversationList) MenuAction(label string) {
	row, ok := cl.selected()
	cl.closeMenu()
	if !ok || label == "" || label == "Cancel" {
		return
	}
	ref := uuid.New()
	cl.env.Logger.Info("chat menu action",
		zap.Stringer("ref", ref),
		zap.String("action", label),
		zap.Int64("conversation_id", row.Conversation.ID))
	cl.env.Flash.Info(fmt.Sprintf("%s: %s", label, row.Contact.Name))
}

func (cl *ConversationList) openMenu() {
	row, ok := cl.selected()
	if !ok {
		return
	}
	cl.menu.SetText(fmt.Sprintf("%s %s", row.Contact.Avatar, row.Contact.Name))
	cl.ShowPage(pageMenu)
}

func (cl *ConversationList) closeMenu() {
	cl.HidePage(pageMenu)
}

func (cl *ConversationList) menuOpen() bool {
	name, _ := cl.GetFrontPage()
	return name == pageMenu
}

func (cl *ConversationList) selected() (directory.ConversationRow, bool) {
	r, _ := cl.table.GetSelection()
	return cl.row(r - 1)
}

func (cl *ConversationList) row(i int) (directory.ConversationRow, bool) {
	if i < 0 || i >= len(cl.rows) {
		return directory.ConversationRow{}, false
	}
	return cl.rows[i], true
}

func (cl *ConversationList) render() {
	cl.rows = directory.FilterConversations(cl.env.Directory, cl.filter)
	theme := cl.env.Theme
	cl.table.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" NAME", 1},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
		{" ", 0},
	}
	for col, h := range headers {
		cl.table.SetCell(0, col, headerCell(h.text, theme, h.exp))
	}

	for i, r := range cl.rows {
		row := i + 1
		name := fmt.Sprintf("%s %s", r.Contact.Avatar, r.Contact.Name)
		if r.Conversation.Unread > 0 {
			name = fmt.Sprintf("%s (%d)", name, r.Conversation.Unread)
		}
		cl.table.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(name))).SetExpansion(1).SetTextColor(theme.FgColor))
		cl.table.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(r.Conversation.LastMessage))).SetExpansion(2).SetTextColor(theme.FgColor))
		cl.table.SetCell(row, 2, tview.NewTableCell(r.Conversation.Timestamp).SetTextColor(theme.FgColor).SetAlign(tview.AlignRight))
		cl.table.SetCell(row, 3, tview.NewTableCell(conversationFlags(r.Conversation)).SetTextColor(theme.AccentColor))
	}

	total := len(cl.env.Directory.Conversations())
	if cl.filter != "" {
		cl.table.SetTitle(fmt.Sprintf(" Chats (%d/%d) filter: %s ", len(cl.rows), total, tview.Escape(cl.filter)))
	} else {
		cl.table.SetTitle(fmt.Sprintf(" Chats (%d) ", len(cl.rows)))
	}
}

// conversationFlags renders the pinned, muted and encrypted markers.
func conversationFlags(c domain.Conversation) string {
	flags := ""
	if c.Pinned {
		flags += "📌"
	}
	if c.Muted {
		flags += "🔇"
	}
	if c.Encrypted {
		flags += "🔒"
	}
	return flags
}
