package views

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/otp"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

type otpStep int

const (
	stepPhone otpStep = iota
	stepCode
)

// OTPView collects the phone number, then the one-time code.
type OTPView struct {
	*tview.Flex
	env       *Env
	form      *tview.Form
	status    *tview.TextView
	verifier  *otp.Verifier
	countdown *otp.Countdown

	step  otpStep
	phone string
}

// NewOTPView creates the phone verification screen.
func NewOTPView(env *Env) *OTPView {
	form := tview.NewForm()
	styleForm(form, env.Theme, " Verify your phone ")

	status := tview.NewTextView().SetDynamicColors(true)
	status.SetBackgroundColor(env.Theme.BgColor)
	status.SetTextColor(env.Theme.FgColor)
	status.SetBorderPadding(0, 0, 1, 1)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(status, 2, 0, false)

	ov := &OTPView{
		Flex:     flex,
		env:      env,
		form:     form,
		status:   status,
		verifier: otp.NewVerifier(env.Config.DemoOTP),
	}
	ov.countdown = otp.NewCountdown(env.Clock, func(remaining int) {
		env.Updater.QueueUpdateDraw(func() { ov.renderStatus("") })
	})
	ov.showPhoneStep()
	return ov
}

// Name implements Component.
func (ov *OTPView) Name() string { return "Verify" }

// Init implements Component.
func (ov *OTPView) Init() {}

// Start implements Component.
func (ov *OTPView) Start() {}

// Stop cancels the resend countdown and resets to the phone step.
func (ov *OTPView) Stop() {
	ov.countdown.Cancel()
	ov.showPhoneStep()
}

// Hints implements Component.
func (ov *OTPView) Hints() []ui.MenuHint {
	if ov.step == stepCode {
		return []ui.MenuHint{
			{Key: "Enter", Description: "Verify"},
			{Key: "Esc", Description: "Change number"},
		}
	}
	return []ui.MenuHint{{Key: "Enter", Description: "Send OTP"}}
}

// Enter implements Screen.
func (ov *OTPView) Enter(nav.State) { ov.showPhoneStep() }

// Refresh implements Screen.
func (ov *OTPView) Refresh(nav.State) {}

// Bind registers Esc to return from the code step to the phone step.
func (ov *OTPView) Bind(r *keys.Registry) {
	r.AddView(nav.OTP.String(), "change-number", &keys.Action{
		Key: tcell.KeyEscape, Label: "Esc", Description: "Change number",
		Handler: func() {
			if ov.step == stepCode {
				ov.countdown.Cancel()
				ov.showPhoneStep()
			}
		},
	})
}

// AwaitingCode reports whether the view is asking for the code.
func (ov *OTPView) AwaitingCode() bool { return ov.step == stepCode }

func (ov *OTPView) showPhoneStep() {
	ov.step = stepPhone
	ov.phone = ""
	ov.form.Clear(true)
	ov.form.AddFormItem(digitField("Phone "+ov.env.Config.CountryCode, otp.PhoneDigits+2, otp.NormalizePhone))
	ov.form.AddButton("Send OTP", func() {
		ov.SubmitPhone(ov.form.GetFormItem(0).(*tview.InputField).GetText())
	})
	ov.renderStatus("")
}

func (ov *OTPView) showCodeStep() {
	ov.step = stepCode
	ov.form.Clear(true)
	ov.form.AddFormItem(digitField("Code", otp.CodeDigits+2, otp.NormalizeCode))
	ov.form.AddButton("Verify", func() {
		ov.SubmitCode(ov.form.GetFormItem(0).(*tview.InputField).GetText())
	})
	ov.form.AddButton("Resend", ov.Resend)
	ov.form.SetFocus(0)
	ov.renderStatus("")
}

// SubmitPhone validates the number and moves to the code step.
func (ov *OTPView) SubmitPhone(raw string) {
	phone, err := otp.ValidatePhone(raw)
	if err != nil {
		ov.renderStatus(capitalize(err.Error()))
		return
	}
	ov.phone = phone
	ov.countdown.Start(ov.env.Config.OTPResend.Duration)
	ov.env.Logger.Info("otp sent", zap.Int("digits", len(phone)))
	ov.env.Flash.Info(fmt.Sprintf("OTP sent to %s %s", ov.env.Config.CountryCode, phone))
	ov.showCodeStep()
}

// SubmitCode checks the code and reports the verified phone.
func (ov *OTPView) SubmitCode(raw string) {
	if err := ov.verifier.Check(raw); err != nil {
		if errors.Is(err, otp.ErrWrongCode) {
			ov.env.Logger.Info("otp rejected")
		}
		ov.renderStatus(capitalize(err.Error()))
		return
	}
	ov.countdown.Cancel()
	ov.env.Nav.Dispatch(nav.PhoneVerified{Phone: ov.phone})
}

// Resend restarts the cooldown once it has run out.
func (ov *OTPView) Resend() {
	if !ov.countdown.CanResend() {
		ov.env.Flash.Warn(fmt.Sprintf("Resend available in %ds", ov.countdown.Remaining()))
		return
	}
	ov.countdown.Start(ov.env.Config.OTPResend.Duration)
	ov.env.Flash.Info("OTP resent")
	ov.renderStatus("")
}

func (ov *OTPView) renderStatus(msg string) {
	ov.status.Clear()
	if msg != "" {
		_, _ = fmt.Fprintf(ov.status, "[%s]%s[-]\n", hexColor(ov.env.Theme.FlashErrColor), tview.Escape(msg))
	} else {
		_, _ = fmt.Fprintln(ov.status)
	}
	if ov.step != stepCode {
		return
	}
	if n := ov.countdown.Remaining(); n > 0 {
		_, _ = fmt.Fprintf(ov.status, "[::d]Resend OTP in %ds[-:-:-]", n)
	} else {
		_, _ = fmt.Fprint(ov.status, "[::d]Didn't get it? Resend OTP[-:-:-]")
	}
}

// StatusText returns the text under the form, for tests.
func (ov *OTPView) StatusText() string {
	return ov.status.GetText(true)
}

// digitField returns an input whose text is kept normalized, so pasted
// numbers with spaces or dashes collapse to their digits.
func digitField(label string, width int, normalize func(string) string) *tview.InputField {
	field := tview.NewInputField().
		SetLabel(label).
		SetFieldWidth(width)
	field.SetChangedFunc(func(text string) {
		if n := normalize(text); n != text {
			field.SetText(n)
		}
	})
	return field
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
