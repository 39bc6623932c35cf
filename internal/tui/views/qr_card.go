package views

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/damru/damru/internal/tui/ui"
	"github.com/rivo/tview"
)

// QRCard displays a QR code of the user's phone number, or the about text
// when the code is hidden.
type QRCard struct {
	*tview.TextView
	theme *ui.Theme
}

// NewQRCard creates a new QR card.
func NewQRCard(theme *ui.Theme) *QRCard {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	styleText(tv, theme, " About ")

	return &QRCard{
		TextView: tv,
		theme:    theme,
	}
}

// ShowQR renders content as a scannable block. On error the card is left
// unchanged.
func (qc *QRCard) ShowQR(content string) error {
	block, err := renderQR("tel:" + strings.ReplaceAll(content, " ", ""))
	if err != nil {
		return err
	}
	qc.Clear()
	qc.SetTitle(" My QR code ")
	_, _ = fmt.Fprintf(qc, "\n  Scan to add me on DAMRU:\n\n%s\n  [::d]%s[-:-:-]", block, tview.Escape(content))
	return nil
}

// ShowAbout renders the about and help text.
func (qc *QRCard) ShowAbout() {
	qc.Clear()
	qc.SetTitle(" About ")
	_, _ = fmt.Fprint(qc, "\n[::b]DAMRU[-:-:-]\nSecure messaging for everyone.\n\n"+
		"Messages and calls are end-to-end encrypted.\n\n"+
		"[::d]Press ? for keyboard help.[-:-:-]")
}

// renderQR converts a string to a compact QR code using Unicode
// half-block characters.
func renderQR(content string) (string, error) {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "", fmt.Errorf("qr code: %w", err)
	}
	qr.DisableBorder = false

	bitmap := qr.Bitmap()
	rows := len(bitmap)
	cols := 0
	if rows > 0 {
		cols = len(bitmap[0])
	}

	var sb strings.Builder

	for y := 0; y < rows; y += 2 {
		sb.WriteString("  ")
		for x := 0; x < cols; x++ {
			top := bitmap[y][x]
			bot := false
			if y+1 < rows {
				bot = bitmap[y+1][x]
			}
			switch {
			case top && bot:
				sb.WriteRune('█') // █
			case top && !bot:
				sb.WriteRune('▀') // ▀
			case !top && bot:
				sb.WriteRune('▄') // ▄
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String(), nil
}
