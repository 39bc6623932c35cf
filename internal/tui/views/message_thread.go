package views

import (
	"fmt"

	"github.com/damru/damru/internal/chat"
	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// MessageThread is the chat screen: contact header, messages, an in-chat
// call panel and a composer. Messages live only while the screen is open.
type MessageThread struct {
	*tview.Flex
	env      *Env
	header   *tview.TextView
	messages *tview.TextView
	composer *tview.InputField
	call     *CallPanel

	contact domain.Contact
	thread  *chat.Thread
}

// NewMessageThread creates the chat screen.
func NewMessageThread(env *Env) *MessageThread {
	theme := env.Theme

	header := tview.NewTextView().SetDynamicColors(true)
	header.SetBackgroundColor(theme.BgColor)
	header.SetBorderPadding(0, 0, 1, 1)

	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetWordWrap(true)
	styleText(messages, theme, " Messages ")

	composer := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0).
		SetPlaceholder("Type a message")
	composer.SetBorder(true)
	composer.SetBorderColor(theme.BorderColor)
	composer.SetBackgroundColor(theme.BgColor)
	composer.SetFieldBackgroundColor(theme.BgColor)
	composer.SetFieldTextColor(theme.FgColor)
	composer.SetLabelColor(theme.MenuKeyColor)
	composer.SetTitle(" Compose (i to focus, Tab to leave) ")
	composer.SetTitleColor(theme.TitleColor)

	mt := &MessageThread{
		env:      env,
		header:   header,
		messages: messages,
		composer: composer,
		call:     NewCallPanel(env, nav.Chat.String()),
	}

	mt.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 2, 0, false).
		AddItem(mt.call, 0, 0, false).
		AddItem(messages, 0, 1, true).
		AddItem(composer, 3, 0, false)

	mt.call.SetOnShow(func(visible bool) {
		height := 0
		if visible {
			height = 4
		}
		mt.ResizeItem(mt.call, height, 0)
	})

	composer.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			if mt.Send(composer.GetText()) {
				composer.SetText("")
			}
		case tcell.KeyTab, tcell.KeyBacktab:
			mt.focusMessages()
		}
	})

	return mt
}

// Name implements Component.
func (mt *MessageThread) Name() string {
	if mt.contact.Name != "" {
		return mt.contact.Name
	}
	return "Chat"
}

// Init implements Component.
func (mt *MessageThread) Init() {}

// Start implements Component.
func (mt *MessageThread) Start() { mt.call.Start() }

// Stop ends any call and discards the thread.
func (mt *MessageThread) Stop() {
	mt.call.Stop()
	mt.thread = nil
	mt.composer.SetText("")
}

// Hints implements Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "c/v", Description: "Voice/Video call"},
		{Key: "Esc", Description: "Back"},
	}
}

// Enter opens the selected conversation with fresh sample messages.
func (mt *MessageThread) Enter(state nav.State) {
	mt.contact = domain.Contact{}
	if state.Contact != nil {
		mt.contact = *state.Contact
	}
	var convID int64
	encrypted := false
	if state.Conversation != nil {
		convID = state.Conversation.ID
		encrypted = state.Conversation.Encrypted
	}
	mt.thread = chat.NewThread(convID, mt.env.Clock)
	mt.renderHeader(encrypted)
	mt.renderMessages()
	mt.call.Update(mt.call.Session().Snapshot())
}

// Refresh implements Screen.
func (mt *MessageThread) Refresh(nav.State) {}

// Bind implements Screen.
func (mt *MessageThread) Bind(r *keys.Registry) {
	view := nav.Chat.String()
	r.AddView(view, "compose", &keys.Action{
		Key: tcell.KeyRune, Rune: 'i', Description: "Compose", Visible: true,
		Handler: mt.focusComposer,
	})
	r.AddView(view, "voice", &keys.Action{
		Key: tcell.KeyRune, Rune: 'c', Description: "Voice call", Visible: true,
		Handler: func() { mt.Call(domain.Voice) },
	})
	r.AddView(view, "video", &keys.Action{
		Key: tcell.KeyRune, Rune: 'v', Description: "Video call", Visible: true,
		Handler: func() { mt.Call(domain.Video) },
	})
	mt.call.Bind(r, view)
}

// Call starts a call with the open chat's contact. It reports false when
// no contact is selected or another call is active.
func (mt *MessageThread) Call(typ domain.CallType) bool {
	if mt.contact.ID == 0 {
		mt.env.Flash.Warn("No contact selected")
		return false
	}
	return mt.call.Place(mt.contact, typ)
}

// Send appends text to the thread. Blank input is ignored.
func (mt *MessageThread) Send(text string) bool {
	if mt.thread == nil {
		return false
	}
	if _, ok := mt.thread.Send(text); !ok {
		return false
	}
	mt.renderMessages()
	return true
}

// Messages returns the open thread's messages.
func (mt *MessageThread) Messages() []domain.Message {
	if mt.thread == nil {
		return nil
	}
	return mt.thread.Messages()
}

// CallPanel returns the in-chat call panel.
func (mt *MessageThread) CallPanel() *CallPanel { return mt.call }

func (mt *MessageThread) focusComposer() { mt.env.Updater.SetFocus(mt.composer) }

func (mt *MessageThread) focusMessages() { mt.env.Updater.SetFocus(mt.messages) }

func (mt *MessageThread) renderHeader(encrypted bool) {
	theme := mt.env.Theme
	mt.header.Clear()
	mt.messages.SetTitle(fmt.Sprintf(" %s ", tview.Escape(mt.Name())))
	if mt.contact.ID == 0 {
		_, _ = fmt.Fprint(mt.header, "[::b]Chat[-:-:-]  [::d]no contact selected[-:-:-]")
		return
	}
	presenceColor := theme.FgColor
	if mt.contact.Status == domain.Online {
		presenceColor = theme.OnlineColor
	}
	_, _ = fmt.Fprintf(mt.header, "%s [::b]%s[-:-:-]  [%s]%s[-]",
		mt.contact.Avatar, tview.Escape(mt.contact.Name),
		hexColor(presenceColor), tview.Escape(mt.contact.PresenceLabel()))
	if encrypted {
		_, _ = fmt.Fprint(mt.header, "\n[::d]🔒 Messages are end-to-end encrypted[-:-:-]")
	}
}

func (mt *MessageThread) renderMessages() {
	theme := mt.env.Theme
	mt.messages.Clear()
	for _, m := range mt.Messages() {
		sender := mt.Name()
		color := theme.OtherMessageColor
		if m.Sender == domain.Self {
			sender = "You"
			color = theme.SelfMessageColor
		}
		ticks := ""
		if m.Sender == domain.Self {
			ticks = " ✓"
			if m.Read {
				ticks = " ✓✓"
			}
		}
		_, _ = fmt.Fprintf(mt.messages, "[%s::b]%s[-:-:-] [::d]%s%s[-:-:-]\n%s\n\n",
			hexColor(color), tview.Escape(sanitizeForTerminal(sender)), m.Timestamp, ticks,
			tview.Escape(sanitizeForTerminal(m.Text)))
	}
	mt.messages.ScrollToEnd()
}
