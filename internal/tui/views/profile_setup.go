package views

import (
	"fmt"

	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// ProfileSetupView collects the display name, status and security flag
// after the phone has been verified.
type ProfileSetupView struct {
	*tview.Form
	env   *Env
	phone string
}

const (
	profileNameField = iota
	profileStatusField
	profileSecurityField
)

// NewProfileSetupView creates the profile setup screen.
func NewProfileSetupView(env *Env) *ProfileSetupView {
	form := tview.NewForm()
	styleForm(form, env.Theme, " Set up your profile ")

	pv := &ProfileSetupView{Form: form, env: env}
	form.AddInputField("Display name", "", 32, nil, nil)
	form.AddInputField("Status", "", 48, nil, nil)
	form.AddCheckbox("Security notifications", true, nil)
	form.AddButton("Continue", pv.Submit)
	return pv
}

// Name implements Component.
func (pv *ProfileSetupView) Name() string { return "Profile" }

// Init implements Component.
func (pv *ProfileSetupView) Init() {}

// Start implements Component.
func (pv *ProfileSetupView) Start() {}

// Stop implements Component.
func (pv *ProfileSetupView) Stop() {}

// Hints implements Component.
func (pv *ProfileSetupView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Continue"},
	}
}

// Enter resets the form for the verified phone.
func (pv *ProfileSetupView) Enter(state nav.State) {
	pv.phone = state.Phone
	pv.input(profileNameField).SetText("")
	pv.input(profileStatusField).SetText("")
	pv.input(profileStatusField).SetPlaceholder(domain.DefaultStatus)
	pv.checkbox(profileSecurityField).SetChecked(true)
	pv.SetTitle(fmt.Sprintf(" Set up your profile (%s %s) ", pv.env.Config.CountryCode, pv.phone))
	pv.SetFocus(profileNameField)
}

// Refresh implements Screen.
func (pv *ProfileSetupView) Refresh(nav.State) {}

// Bind implements Screen.
func (pv *ProfileSetupView) Bind(*keys.Registry) {}

// Fill sets the form fields.
func (pv *ProfileSetupView) Fill(name, status string, security bool) {
	pv.input(profileNameField).SetText(name)
	pv.input(profileStatusField).SetText(status)
	pv.checkbox(profileSecurityField).SetChecked(security)
}

// Submit builds the profile and completes setup.
func (pv *ProfileSetupView) Submit() {
	profile, err := domain.NewProfile(domain.ProfileInput{
		DisplayName: pv.input(profileNameField).GetText(),
		Status:      pv.input(profileStatusField).GetText(),
		Phone:       pv.phone,
		CountryCode: pv.env.Config.CountryCode,
		Security:    pv.checkbox(profileSecurityField).IsChecked(),
	})
	if err != nil {
		pv.env.Flash.Warn(capitalize(err.Error()))
		return
	}
	pv.env.Logger.Info("profile created", zap.Bool("security", profile.Security))
	pv.env.Nav.Dispatch(nav.ProfileCompleted{Profile: profile})
}

func (pv *ProfileSetupView) input(i int) *tview.InputField {
	return pv.GetFormItem(i).(*tview.InputField)
}

func (pv *ProfileSetupView) checkbox(i int) *tview.Checkbox {
	return pv.GetFormItem(i).(*tview.Checkbox)
}
