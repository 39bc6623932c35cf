package ui

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// ProfileData holds the signed-in user and instance details for display.
type ProfileData struct {
	Instance    string
	DisplayName string
	Phone       string
	Screen      string
	Unread      int
	Contacts    int
	Uptime      time.Duration
}

// ProfileInfo displays profile metadata in the header.
type ProfileInfo struct {
	*tview.TextView
	theme *Theme
}

// NewProfileInfo creates a new profile info panel.
func NewProfileInfo(theme *Theme) *ProfileInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &ProfileInfo{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the profile info.
func (pi *ProfileInfo) Update(data *ProfileData) {
	pi.Clear()
	if data == nil {
		return
	}

	fgColor := colorName(pi.theme.FgColor)
	counterColor := colorName(pi.theme.CounterColor)

	name := data.DisplayName
	if name == "" {
		name = "-"
	}
	phone := data.Phone
	if phone == "" {
		phone = "-"
	}

	text := fmt.Sprintf(
		"[%s::b]Instance:[-:-:-] [%s]%s[-]\n"+
			"[%s::b]Name:[-:-:-]     [%s]%s[-]\n"+
			"[%s::b]Phone:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]Screen:[-:-:-]   [%s]%s[-]\n"+
			"[%s::b]Unread:[-:-:-]   [%s]%d[-] [%s::b]Contacts:[-:-:-] [%s]%d[-]\n"+
			"[%s::b]Uptime:[-:-:-]   [%s]%s[-]",
		fgColor, counterColor, data.Instance,
		fgColor, counterColor, tview.Escape(name),
		fgColor, counterColor, phone,
		fgColor, counterColor, data.Screen,
		fgColor, counterColor, data.Unread, fgColor, counterColor, data.Contacts,
		fgColor, counterColor, FormatUptime(data.Uptime),
	)

	_, _ = fmt.Fprint(pi, text)
}

// FormatUptime renders d as "1h5m" or "12m".
func FormatUptime(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
