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

const (
	settingsNameField = iota
	settingsStatusField
	settingsNotificationsField
	settingsSecurityField
	settingsReceiptsField
)

// SettingsView edits the profile, holds local preference toggles, shows
// the QR card and logs out.
type SettingsView struct {
	*tview.Flex
	env     *Env
	card    *tview.TextView
	form    *tview.Form
	qr      *QRCard
	profile domain.UserProfile
	showQR  bool
}

// NewSettingsView creates the settings screen.
func NewSettingsView(env *Env) *SettingsView {
	card := tview.NewTextView().SetDynamicColors(true)
	styleText(card, env.Theme, " Profile ")

	form := tview.NewForm()
	styleForm(form, env.Theme, " Settings ")

	sv := &SettingsView{
		env:  env,
		card: card,
		form: form,
		qr:   NewQRCard(env.Theme),
	}

	toggle := func(label string) func(bool) {
		return func(on bool) {
			state := "off"
			if on {
				state = "on"
			}
			env.Flash.Info(fmt.Sprintf("%s %s", label, state))
		}
	}
	form.AddInputField("Display name", "", 32, nil, nil)
	form.AddInputField("Status", "", 48, nil, nil)
	form.AddCheckbox("Notifications", true, toggle("Notifications"))
	form.AddCheckbox("Security notifications", true, toggle("Security notifications"))
	form.AddCheckbox("Read receipts", true, toggle("Read receipts"))
	form.AddButton("Save", sv.Save)
	form.AddButton("QR code", sv.ToggleQR)
	form.AddButton("Export data", sv.ExportData)
	form.AddButton("Logout", sv.Logout)

	left := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(card, 6, 0, false).
		AddItem(form, 0, 1, true)

	sv.Flex = tview.NewFlex().
		AddItem(left, 0, 1, true).
		AddItem(sv.qr, 0, 1, false)
	return sv
}

// Name implements Component.
func (sv *SettingsView) Name() string { return "Settings" }

// Init implements Component.
func (sv *SettingsView) Init() {}

// Start implements Component.
func (sv *SettingsView) Start() {}

// Stop implements Component.
func (sv *SettingsView) Stop() {}

// Hints implements Component.
func (sv *SettingsView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Activate"},
		{Key: "Esc", Description: "Back"},
	}
}

// Enter loads the current profile into the form.
func (sv *SettingsView) Enter(state nav.State) {
	sv.load(state)
	sv.input(settingsNameField).SetText(sv.profile.DisplayName)
	sv.input(settingsStatusField).SetText(sv.profile.Status)
	sv.checkbox(settingsSecurityField).SetChecked(sv.profile.Security)
	sv.showQR = false
	sv.qr.ShowAbout()
	sv.form.SetFocus(settingsNameField)
}

// Refresh re-renders the profile card after an edit.
func (sv *SettingsView) Refresh(state nav.State) { sv.load(state) }

// Bind implements Screen.
func (sv *SettingsView) Bind(*keys.Registry) {}

// Edit sets the name and status fields.
func (sv *SettingsView) Edit(name, status string) {
	sv.input(settingsNameField).SetText(name)
	sv.input(settingsStatusField).SetText(status)
}

// Save publishes the edited profile. A blank name is rejected.
func (sv *SettingsView) Save() {
	name := sv.input(settingsNameField).GetText()
	if _, err := domain.NewProfile(domain.ProfileInput{DisplayName: name}); err != nil {
		sv.env.Flash.Warn(capitalize(err.Error()))
		return
	}
	updated := sv.profile.WithEdits(name, sv.input(settingsStatusField).GetText())
	updated.Security = sv.checkbox(settingsSecurityField).IsChecked()
	sv.env.Logger.Info("profile updated")
	sv.env.Nav.Dispatch(nav.ProfileUpdated{Profile: updated})
	sv.env.Flash.Info("Profile saved")
}

// ToggleQR switches the right pane between the QR code and about text.
func (sv *SettingsView) ToggleQR() {
	if sv.showQR {
		sv.showQR = false
		sv.qr.ShowAbout()
		return
	}
	if err := sv.qr.ShowQR(sv.profile.Phone); err != nil {
		sv.env.Logger.Warn("render qr code", zap.Error(err))
		sv.env.Flash.Err(err)
		return
	}
	sv.showQR = true
}

// ExportData acknowledges a data export request.
func (sv *SettingsView) ExportData() {
	sv.env.Logger.Info("data export requested")
	sv.env.Flash.Info("Data export started... This may take a few minutes.")
}

// Logout clears the session and returns to the splash screen.
func (sv *SettingsView) Logout() {
	sv.env.Logger.Info("logout requested", zap.String("screen", nav.Settings.String()))
	sv.env.Nav.Dispatch(nav.Logout{})
}

// Profile returns the profile shown on the card.
func (sv *SettingsView) Profile() domain.UserProfile { return sv.profile }

func (sv *SettingsView) load(state nav.State) {
	sv.profile = domain.UserProfile{}
	if state.Profile != nil {
		sv.profile = *state.Profile
	}
	sv.renderCard()
}

func (sv *SettingsView) renderCard() {
	p := sv.profile
	sv.card.Clear()
	_, _ = fmt.Fprintf(sv.card, " %s [::b]%s[-:-:-]\n [::d]%s[-:-:-]\n\n 📱 %s",
		p.Avatar, tview.Escape(p.DisplayName), tview.Escape(p.Status), p.Phone)
}

func (sv *SettingsView) input(i int) *tview.InputField {
	return sv.form.GetFormItem(i).(*tview.InputField)
}

func (sv *SettingsView) checkbox(i int) *tview.Checkbox {
	return sv.form.GetFormItem(i).(*tview.Checkbox)
}
