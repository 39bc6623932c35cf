package otp

import (
	"errors"
	"testing"
	"time"

	"github.com/damru/damru/internal/clock"
)

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "9876543210", "9876543210", false},
		{"formatted", "98765-432 10", "9876543210", false},
		{"short", "987654321", "", true},
		{"long", "98765432101", "", true},
		{"empty", "", "", true},
		{"letters", "98765abc10", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePhone(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidatePhone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidPhone) {
				t.Errorf("error = %v, want ErrInvalidPhone", err)
			}
			if got != tt.want {
				t.Errorf("ValidatePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhoneTruncates(t *testing.T) {
	if got := NormalizePhone("+91 98765 43210 99"); got != "9198765432" {
		t.Errorf("NormalizePhone() = %q", got)
	}
	if got := NormalizeCode("12a34567"); got != "123456" {
		t.Errorf("NormalizeCode() = %q", got)
	}
}

func TestVerifierCheck(t *testing.T) {
	v := NewVerifier("123456")
	tests := []struct {
		code string
		want error
	}{
		{"123456", nil},
		{"12345", ErrIncompleteCode},
		{"", ErrIncompleteCode},
		{"12a456", ErrIncompleteCode},
		{"654321", ErrWrongCode},
	}
	for _, tt := range tests {
		err := v.Check(tt.code)
		if !errors.Is(err, tt.want) {
			t.Errorf("Check(%q) = %v, want %v", tt.code, err, tt.want)
		}
	}
	if err := v.Check("000000"); err == nil || err.Error() != "invalid OTP, try 123456" {
		t.Errorf("wrong code message = %v", err)
	}
}

func TestCountdownRunsToZero(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	ticks := make(chan int, 8)
	c := NewCountdown(clk, func(left int) { ticks <- left })

	c.Start(3 * time.Second)
	if c.CanResend() {
		t.Fatal("CanResend() = true right after Start")
	}
	for want := 2; want >= 0; want-- {
		clk.Advance(time.Second)
		select {
		case got := <-ticks:
			if got != want {
				t.Fatalf("remaining = %d, want %d", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for tick %d", want)
		}
	}
	if !c.CanResend() {
		t.Error("CanResend() = false at zero")
	}
	c.Cancel()
	if got := clk.ActiveTickers(); got != 0 {
		t.Errorf("active tickers = %d, want 0", got)
	}
}

func TestCountdownCancel(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	c := NewCountdown(clk, nil)
	c.Start(30 * time.Second)
	if got := c.Remaining(); got != 30 {
		t.Fatalf("Remaining() = %d, want 30", got)
	}

	c.Cancel()

	if got := clk.ActiveTickers(); got != 0 {
		t.Errorf("active tickers after Cancel = %d, want 0", got)
	}
	clk.Advance(5 * time.Second)
	if got := c.Remaining(); got != 0 {
		t.Errorf("Remaining() after Cancel = %d, want 0", got)
	}
	c.Cancel()
}

func TestCountdownRestart(t *testing.T) {
	clk := clock.NewFake(time.Unix(0, 0))
	c := NewCountdown(clk, nil)
	c.Start(10 * time.Second)
	c.Start(30 * time.Second)
	defer c.Cancel()

	if got := c.Remaining(); got != 30 {
		t.Errorf("Remaining() = %d, want 30", got)
	}
	if got := clk.ActiveTickers(); got != 1 {
		t.Errorf("active tickers = %d, want 1", got)
	}
}
