// Package views holds one tview view per navigation screen plus the help
// overlay.
package views

import (
	"fmt"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/config"
	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Navigator is the part of the navigation controller views drive.
type Navigator interface {
	Dispatch(ev nav.Event) nav.State
	TakeCallRequest() *nav.CallRequest
}

// Updater schedules work on the UI goroutine and moves keyboard focus.
// *tview.Application satisfies it.
type Updater interface {
	QueueUpdateDraw(f func()) *tview.Application
	SetFocus(p tview.Primitive) *tview.Application
}

// Env is what every screen view shares.
type Env struct {
	Theme     *ui.Theme
	Nav       Navigator
	Updater   Updater
	Directory directory.Directory
	Clock     clock.Clock
	Bus       *bus.Bus
	Flash     *ui.FlashModel
	Config    *config.Config
	Logger    *zap.Logger
}

// Screen is a view shown for exactly one nav.Screen.
//
// The shell calls Enter when the screen becomes current, Refresh when a
// transition keeps it current, and Stop when it is left. Start runs
// after Enter and owns any timers or subscriptions; Stop releases them.
type Screen interface {
	ui.Component
	tview.Primitive
	Enter(state nav.State)
	Refresh(state nav.State)
	Bind(r *keys.Registry)
}

// Filterable is a screen with a text filter driven by the shell prompt.
type Filterable interface {
	SetFilter(term string)
}

// styleTable applies the shared table look.
func styleTable(table *tview.Table, theme *ui.Theme) {
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetTitleColor(theme.TitleColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
}

// styleText applies the shared text view look.
func styleText(tv *tview.TextView, theme *ui.Theme, title string) {
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(title)
	tv.SetTitleColor(theme.TitleColor)
}

// styleForm applies the shared form look.
func styleForm(form *tview.Form, theme *ui.Theme, title string) {
	form.SetBorder(true)
	form.SetBorderColor(theme.BorderColor)
	form.SetBackgroundColor(theme.BgColor)
	form.SetTitle(title)
	form.SetTitleColor(theme.TitleColor)
	form.SetLabelColor(theme.MenuKeyColor)
	form.SetFieldBackgroundColor(theme.BgColor)
	form.SetFieldTextColor(theme.FgColor)
	form.SetButtonBackgroundColor(theme.BorderColor)
	form.SetButtonTextColor(theme.BgColor)
}

func headerCell(text string, theme *ui.Theme, expansion int) *tview.TableCell {
	return tview.NewTableCell(text).
		SetSelectable(false).
		SetTextColor(theme.TableHeaderFg).
		SetBackgroundColor(theme.TableHeaderBg).
		SetAttributes(tcell.AttrBold).
		SetExpansion(expansion)
}

// hexColor renders c as a tview color tag value.
func hexColor(c tcell.Color) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
