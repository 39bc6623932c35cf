package views

import (
	"fmt"

	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// ContactsView lists directory identities under two tabs and starts
// chats or calls with them.
type ContactsView struct {
	*tview.Flex
	env    *Env
	tabs   *tview.TextView
	table  *tview.Table
	scope  directory.Scope
	filter string
	rows   []domain.Contact
}

// NewContactsView creates the contacts screen.
func NewContactsView(env *Env) *ContactsView {
	tabs := tview.NewTextView().SetDynamicColors(true)
	tabs.SetBackgroundColor(env.Theme.BgColor)
	tabs.SetBorderPadding(0, 0, 1, 1)

	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	styleTable(table, env.Theme)

	cv := &ContactsView{
		Flex: tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(tabs, 1, 0, false).
			AddItem(table, 0, 1, true),
		env:   env,
		tabs:  tabs,
		table: table,
	}
	table.SetSelectedFunc(func(row, _ int) { cv.StartChat(row - 1) })
	return cv
}

// Name implements Component.
func (cv *ContactsView) Name() string { return "Contacts" }

// Init implements Component.
func (cv *ContactsView) Init() {}

// Start implements Component.
func (cv *ContactsView) Start() {}

// Stop implements Component.
func (cv *ContactsView) Stop() {}

// Hints implements Component.
func (cv *ContactsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Chat"},
		{Key: "Tab", Description: "Switch tab"},
		{Key: "c/v", Description: "Voice/Video call"},
		{Key: "a", Description: "Add contact"},
		{Key: "/", Description: "Filter"},
	}
}

// Enter resets to the My Contacts tab with no filter.
func (cv *ContactsView) Enter(nav.State) {
	cv.scope = directory.MyContacts
	cv.filter = ""
	cv.render()
	cv.table.Select(1, 0)
}

// Refresh implements Screen.
func (cv *ContactsView) Refresh(nav.State) { cv.render() }

// Bind implements Screen.
func (cv *ContactsView) Bind(r *keys.Registry) {
	view := nav.Contacts.String()
	r.AddView(view, "tab", &keys.Action{
		Key: tcell.KeyTab, Label: "Tab", Description: "Switch tab", Visible: true,
		Handler: cv.ToggleScope,
	})
	r.AddView(view, "voice", &keys.Action{
		Key: tcell.KeyRune, Rune: 'c', Description: "Voice call", Visible: true,
		Handler: func() { cv.Call(domain.Voice) },
	})
	r.AddView(view, "video", &keys.Action{
		Key: tcell.KeyRune, Rune: 'v', Description: "Video call", Visible: true,
		Handler: func() { cv.Call(domain.Video) },
	})
	r.AddView(view, "add", &keys.Action{
		Key: tcell.KeyRune, Rune: 'a', Description: "Add contact", Visible: true,
		Handler: func() { cv.AddContact() },
	})
}

// SetFilter implements Filterable.
func (cv *ContactsView) SetFilter(term string) {
	cv.filter = term
	cv.render()
}

// ToggleScope switches between My Contacts and All Users.
func (cv *ContactsView) ToggleScope() {
	if cv.scope == directory.MyContacts {
		cv.scope = directory.AllUsers
	} else {
		cv.scope = directory.MyContacts
	}
	cv.render()
	cv.table.Select(1, 0)
}

// Scope returns the active tab.
func (cv *ContactsView) Scope() directory.Scope { return cv.scope }

// Rows returns the visible contacts.
func (cv *ContactsView) Rows() []domain.Contact {
	return append([]domain.Contact(nil), cv.rows...)
}

// StartChat opens a chat with the i-th visible contact.
func (cv *ContactsView) StartChat(i int) {
	if i < 0 || i >= len(cv.rows) {
		return
	}
	cv.env.Nav.Dispatch(nav.StartChat{Contact: cv.rows[i]})
}

// Call starts a call with the selected contact.
func (cv *ContactsView) Call(typ domain.CallType) {
	c, ok := cv.selected()
	if !ok {
		return
	}
	cv.env.Nav.Dispatch(nav.StartCall{Contact: c, Type: typ})
}

// AddContact acknowledges adding the selected user to contacts. Rows that
// are already contacts are skipped.
func (cv *ContactsView) AddContact() bool {
	c, ok := cv.selected()
	if !ok || c.IsContact {
		return false
	}
	cv.env.Logger.Info("add contact requested", zap.Int64("contact_id", c.ID))
	cv.env.Flash.Info(fmt.Sprintf("Added %s to contacts", c.Name))
	return true
}

func (cv *ContactsView) selected() (domain.Contact, bool) {
	r, _ := cv.table.GetSelection()
	i := r - 1
	if i < 0 || i >= len(cv.rows) {
		return domain.Contact{}, false
	}
	return cv.rows[i], true
}

func (cv *ContactsView) render() {
	theme := cv.env.Theme
	cv.rows = directory.FilterContacts(cv.env.Directory.Contacts(), cv.filter, cv.scope)

	cv.tabs.Clear()
	for _, s := range []directory.Scope{directory.MyContacts, directory.AllUsers} {
		if s == cv.scope {
			_, _ = fmt.Fprintf(cv.tabs, "[%s:%s:b] %s [-:-:-] ", hexColor(theme.CrumbActiveFg), hexColor(theme.CrumbActiveBg), s)
		} else {
			_, _ = fmt.Fprintf(cv.tabs, "[%s:%s:] %s [-:-:-] ", hexColor(theme.CrumbInactiveFg), hexColor(theme.CrumbInactiveBg), s)
		}
	}

	cv.table.Clear()
	cv.table.SetCell(0, 0, headerCell(" NAME", theme, 1))
	cv.table.SetCell(0, 1, headerCell(" PHONE", theme, 1))
	cv.table.SetCell(0, 2, headerCell(" PRESENCE", theme, 1))
	for i, c := range cv.rows {
		row := i + 1
		presenceColor := theme.FgColor
		if c.Status == domain.Online {
			presenceColor = theme.OnlineColor
		}
		name := fmt.Sprintf("%s %s", c.Avatar, c.Name)
		cv.table.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(name))).SetExpansion(1).SetTextColor(theme.FgColor))
		cv.table.SetCell(row, 1, tview.NewTableCell(" "+c.Phone).SetExpansion(1).SetTextColor(theme.FgColor))
		cv.table.SetCell(row, 2, tview.NewTableCell(" "+c.PresenceLabel()).SetExpansion(1).SetTextColor(presenceColor))
	}

	title := fmt.Sprintf(" %s (%d) ", cv.scope, len(cv.rows))
	if cv.filter != "" {
		title = fmt.Sprintf(" %s (%d) filter: %s ", cv.scope, len(cv.rows), tview.Escape(cv.filter))
	}
	cv.table.SetTitle(title)
}
