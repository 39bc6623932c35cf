package views

import (
	"fmt"

	"github.com/damru/damru/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	styleText(tv, theme, " Help ")

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	hv.render()
	return hv
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Init implements Component.
func (hv *HelpView) Init() {}

// Start implements Component.
func (hv *HelpView) Start() {}

// Stop implements Component.
func (hv *HelpView) Stop() {}

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Close"},
	}
}

func (hv *HelpView) render() {
	kc := hexColor(hv.theme.MenuKeyColor)
	k := func(key string) string { return fmt.Sprintf("[%s]%s[-:-:-]", kc, key) }

	help := fmt.Sprintf(`
  [::b]Global Keys[-:-:-]

  %s      Chats              %s      Contacts
  %s      Calls              %s      Settings
  %s    Back / close       %s      Help
  %s      Filter list        %s      Command mode
  %s      Quit

  [::b]Chats[-:-:-]

  %s  Open conversation  %s      Chat menu (pin, mute, delete)
  %s      Voice call         %s      Video call

  [::b]Chat[-:-:-]

  %s      Write a message    %s    Send (in composer)
  %s    Back to messages   %s / %s  Voice / video call

  [::b]Contacts[-:-:-]

  %s  Start chat         %s    My contacts / All users
  %s / %s  Voice / video call %s      Add to contacts

  [::b]Calls[-:-:-]

  %s  Call back          %s / %s  Voice / video call

  [::b]During a call[-:-:-]

  %s      End call           %s      Mute
  %s      Speaker

  [::b]Commands (: mode)[-:-:-]

  %s  chats, contacts, calls, settings
  %s            Log out
  %s / %s       Show this help
  %s / %s       Quit application
`,
		k("1"), k("2"), k("3"), k("4"), k("Esc"), k("?"), k("/"), k(":"), k("q"),
		k("Enter"), k("m"), k("c"), k("v"),
		k("i"), k("Enter"), k("Tab"), k("c"), k("v"),
		k("Enter"), k("Tab"), k("c"), k("v"), k("a"),
		k("Enter"), k("c"), k("v"),
		k("e"), k("m"), k("s"),
		k(":<screen>"), k(":logout"), k(":help"), k(":h"), k(":quit"), k(":q"),
	)

	_, _ = fmt.Fprint(hv, help)
}
