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
)

// CallsView is the call history screen. It keeps a local copy of the
// history that grows as calls are placed and hosts its own call panel.
type CallsView struct {
	*tview.Flex
	env     *Env
	table   *tview.Table
	call    *CallPanel
	history []domain.CallRecord
	rows    []directory.CallRow
}

// NewCallsView creates the calls screen.
func NewCallsView(env *Env) *CallsView {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	styleTable(table, env.Theme)

	cv := &CallsView{
		env:   env,
		table: table,
		call:  NewCallPanel(env, nav.Calls.String()),
	}
	cv.Flex = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(cv.call, 0, 0, false).
		AddItem(table, 0, 1, true)
	cv.call.SetOnShow(func(visible bool) {
		height := 0
		if visible {
			height = 4
		}
		cv.ResizeItem(cv.call, height, 0)
	})
	table.SetSelectedFunc(func(row, _ int) { cv.CallBack(row - 1) })
	return cv
}

// Name implements Component.
func (cv *CallsView) Name() string { return "Calls" }

// Init implements Component.
func (cv *CallsView) Init() {}

// Start implements Component.
func (cv *CallsView) Start() { cv.call.Start() }

// Stop ends any call in progress.
func (cv *CallsView) Stop() { cv.call.Stop() }

// Hints implements Component.
func (cv *CallsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Call back"},
		{Key: "c/v", Description: "Voice/Video call"},
		{Key: "e", Description: "End call"},
	}
}

// Enter reloads the history and places any requested call.
func (cv *CallsView) Enter(nav.State) {
	cv.history = cv.env.Directory.CallHistory()
	cv.render()
	cv.table.Select(1, 0)
	cv.takeRequest()
}

// Refresh places a call requested while the screen was already showing.
func (cv *CallsView) Refresh(nav.State) { cv.takeRequest() }

// Bind implements Screen.
func (cv *CallsView) Bind(r *keys.Registry) {
	view := nav.Calls.String()
	r.AddView(view, "voice", &keys.Action{
		Key: tcell.KeyRune, Rune: 'c', Description: "Voice call", Visible: true,
		Handler: func() { cv.Call(domain.Voice) },
	})
	r.AddView(view, "video", &keys.Action{
		Key: tcell.KeyRune, Rune: 'v', Description: "Video call", Visible: true,
		Handler: func() { cv.Call(domain.Video) },
	})
	cv.call.Bind(r, view)
}

// History returns the screen's local call history, newest first.
func (cv *CallsView) History() []domain.CallRecord {
	return append([]domain.CallRecord(nil), cv.history...)
}

// CallPanel returns the screen's call panel.
func (cv *CallsView) CallPanel() *CallPanel { return cv.call }

// CallBack calls the i-th row's contact with that record's call type.
func (cv *CallsView) CallBack(i int) {
	if i < 0 || i >= len(cv.rows) {
		return
	}
	r := cv.rows[i]
	cv.env.Nav.Dispatch(nav.StartCall{Contact: r.Contact, Type: r.Call.Type})
}

// Call calls the selected row's contact with the given type.
func (cv *CallsView) Call(typ domain.CallType) {
	row, _ := cv.table.GetSelection()
	i := row - 1
	if i < 0 || i >= len(cv.rows) {
		return
	}
	cv.env.Nav.Dispatch(nav.StartCall{Contact: cv.rows[i].Contact, Type: typ})
}

func (cv *CallsView) takeRequest() {
	req := cv.env.Nav.TakeCallRequest()
	if req == nil {
		return
	}
	if !cv.call.Place(req.Contact, req.Type) {
		return
	}
	rec := domain.NewOutgoingCall(cv.env.Clock.Now().UnixMilli(), req.Contact.ID, req.Type)
	cv.history = append([]domain.CallRecord{rec}, cv.history...)
	cv.render()
}

func (cv *CallsView) render() {
	theme := cv.env.Theme
	cv.rows = directory.ResolveCalls(cv.env.Directory, cv.history)

	cv.table.Clear()
	cv.table.SetCell(0, 0, headerCell(" NAME", theme, 2))
	cv.table.SetCell(0, 1, headerCell(" TYPE", theme, 1))
	cv.table.SetCell(0, 2, headerCell(" DIRECTION", theme, 1))
	cv.table.SetCell(0, 3, headerCell(" DURATION", theme, 0))
	cv.table.SetCell(0, 4, headerCell(" WHEN", theme, 1))
	for i, r := range cv.rows {
		row := i + 1
		dirColor := theme.FgColor
		if r.Call.Missed {
			dirColor = theme.MissedColor
		}
		name := fmt.Sprintf("%s %s", r.Contact.Avatar, r.Contact.Name)
		cv.table.SetCell(row, 0, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(name))).SetExpansion(2).SetTextColor(theme.FgColor))
		cv.table.SetCell(row, 1, tview.NewTableCell(" "+callIcon(r.Call.Type)+" "+r.Call.Type.Label()).SetExpansion(1).SetTextColor(theme.FgColor))
		cv.table.SetCell(row, 2, tview.NewTableCell(" "+r.Call.Direction()).SetExpansion(1).SetTextColor(dirColor))
		cv.table.SetCell(row, 3, tview.NewTableCell(" "+r.Call.Duration).SetTextColor(theme.FgColor).SetAlign(tview.AlignRight))
		cv.table.SetCell(row, 4, tview.NewTableCell(" "+r.Call.Timestamp).SetExpansion(1).SetTextColor(theme.FgColor))
	}
	cv.table.SetTitle(fmt.Sprintf(" Calls (%d) ", len(cv.rows)))
}
