package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/tview"
)

// Menu lays keyboard shortcut hints out in columns of a fixed height.
type Menu struct {
	*tview.TextView
	theme *Theme
	rows  int
}

// NewMenu creates a menu that fills columns of rows lines each.
func NewMenu(theme *Theme, rows int) *Menu {
	if rows < 1 {
		rows = 1
	}
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	return &Menu{
		TextView: tv,
		theme:    theme,
		rows:     rows,
	}
}

// Update renders hints top to bottom, then left to right.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()
	if len(hints) == 0 {
		return
	}

	keyColor := colorName(m.theme.MenuKeyColor)
	numColor := colorName(m.theme.NumericKeyColor)

	cols := (len(hints) + m.rows - 1) / m.rows
	widths := make([]int, cols)
	for i, h := range hints {
		if w := hintWidth(h); w > widths[i/m.rows] {
			widths[i/m.rows] = w
		}
	}

	var b strings.Builder
	for r := 0; r < m.rows && r < len(hints); r++ {
		for c := 0; c < cols; c++ {
			i := c*m.rows + r
			if i >= len(hints) {
				break
			}
			h := hints[i]
			kc := keyColor
			if h.Numeric {
				kc = numColor
			}
			fmt.Fprintf(&b, "[%s::b]<%s>[-:-:-] %s", kc, tview.Escape(h.Key), h.Description)
			if c < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[c]-hintWidth(h)+2))
			}
		}
		b.WriteByte('\n')
	}
	_, _ = fmt.Fprint(m, b.String())
}

func hintWidth(h MenuHint) int {
	return utf8.RuneCountInString(h.Key) + utf8.RuneCountInString(h.Description) + 3
}
