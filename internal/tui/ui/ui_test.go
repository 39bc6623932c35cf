package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/damru/damru/internal/clock"
	"github.com/gdamore/tcell/v2"
)

func TestFlashExpires(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	f := NewFlashModel(clk)

	if f.GetMessage() != nil {
		t.Fatal("new model should have no message")
	}

	f.Info("chat pinned")
	if got := f.Get(); got != "chat pinned" {
		t.Errorf("Get() = %q, want %q", got, "chat pinned")
	}

	clk.Advance(5*time.Second + time.Millisecond)
	if got := f.Get(); got != "" {
		t.Errorf("Get() after expiry = %q, want empty", got)
	}
}

func TestFlashLevels(t *testing.T) {
	clk := clock.NewFake(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	f := NewFlashModel(clk)

	f.Warn("careful")
	if m := f.GetMessage(); m == nil || m.Level != FlashWarn {
		t.Errorf("Warn message = %+v", m)
	}
	f.Err(errors.New("boom"))
	m := f.GetMessage()
	if m == nil || m.Level != FlashErr || m.Text != "boom" {
		t.Errorf("Err message = %+v", m)
	}

	select {
	case got := <-f.Watch():
		if got.Text != "careful" {
			t.Errorf("first watched = %q, want careful", got.Text)
		}
	default:
		t.Error("Watch() delivered nothing")
	}
}

func TestPagesOverlay(t *testing.T) {
	p := NewPages()
	p.Reset("chats")
	if got := p.Pop(); got != "" || p.Current() != "chats" {
		t.Fatalf("Pop() on base = %q, current = %q", got, p.Current())
	}

	p.Push("help")
	if p.Current() != "help" || !p.Overlaid() {
		t.Errorf("after Push: current=%q overlaid=%v", p.Current(), p.Overlaid())
	}
	if got := p.Pop(); got != "help" {
		t.Errorf("Pop() = %q, want help", got)
	}
	if p.Current() != "chats" || p.Overlaid() {
		t.Errorf("after Pop: current=%q overlaid=%v", p.Current(), p.Overlaid())
	}

	p.Push("help")
	p.Reset("contacts")
	if p.Current() != "contacts" || p.Overlaid() {
		t.Errorf("Reset kept the overlay: current=%q", p.Current())
	}
	if got := NewPages().Pop(); got != "" {
		t.Errorf("Pop() on empty = %q", got)
	}
}

func TestMenuColumns(t *testing.T) {
	m := NewMenu(DefaultTheme(), 3)
	m.Update([]MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "m", Description: "Menu"},
		{Key: "c", Description: "Voice call"},
		{Key: "1", Description: "Chats", Numeric: true},
	})
	lines := strings.Split(strings.TrimRight(m.GetText(true), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q, want 3 rows", lines)
	}
	if !strings.HasPrefix(lines[0], "<Enter> Open") || !strings.Contains(lines[0], "<1> Chats") {
		t.Errorf("first row = %q", lines[0])
	}
	if strings.Contains(lines[1], "Chats") {
		t.Errorf("second row = %q", lines[1])
	}
}

func TestCrumbs(t *testing.T) {
	c := NewCrumbs(DefaultTheme())
	c.Update([]string{"Chats", "Raj Sharma"})
	if got := c.GetText(true); got != " Chats  ›  Raj Sharma " {
		t.Errorf("crumbs = %q", got)
	}
	c.Update(nil)
	if got := c.GetText(true); got != "" {
		t.Errorf("empty crumbs = %q", got)
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0m"},
		{12 * time.Minute, "12m"},
		{65 * time.Minute, "1h5m"},
	}
	for _, tt := range tests {
		if got := FormatUptime(tt.d); got != tt.want {
			t.Errorf("FormatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestColorName(t *testing.T) {
	if got := colorName(tcell.NewRGBColor(1, 2, 3)); got != "#010203" {
		t.Errorf("colorName(rgb) = %q", got)
	}
}

func TestLogoText(t *testing.T) {
	if !strings.Contains(LogoText(DefaultTheme()), "Secure messaging") {
		t.Error("logo is missing its tagline")
	}
}
