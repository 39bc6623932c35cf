package views

import (
	"fmt"
	"sync"

	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// SplashView shows the banner and moves on to the OTP screen after the
// configured delay.
type SplashView struct {
	*tview.TextView
	env *Env

	mu    sync.Mutex
	timer clock.Stopper
}

// NewSplashView creates the splash screen.
func NewSplashView(env *Env) *SplashView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	styleText(tv, env.Theme, "")
	tv.SetBorder(false)

	sv := &SplashView{TextView: tv, env: env}
	_, _ = fmt.Fprintf(sv, "\n\n\n%s\n\n[::d]End-to-end encrypted. Made for India.[-:-:-]", ui.LogoText(env.Theme))
	return sv
}

// Name implements Component.
func (sv *SplashView) Name() string { return "Splash" }

// Init implements Component.
func (sv *SplashView) Init() {}

// Start arms the one-shot timer.
func (sv *SplashView) Start() {
	delay := sv.env.Config.SplashDelay.Duration
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.timer != nil {
		sv.timer.Stop()
	}
	sv.timer = sv.env.Clock.AfterFunc(delay, func() {
		sv.env.Logger.Debug("splash elapsed", zap.Duration("delay", delay))
		sv.env.Nav.Dispatch(nav.SplashElapsed{})
	})
}

// Stop cancels the timer if it has not fired.
func (sv *SplashView) Stop() {
	sv.mu.Lock()
	defer sv.mu.Unlock()
	if sv.timer != nil {
		sv.timer.Stop()
		sv.timer = nil
	}
}

// Hints implements Component.
func (sv *SplashView) Hints() []ui.MenuHint { return nil }

// Enter implements Screen.
func (sv *SplashView) Enter(nav.State) {}

// Refresh implements Screen.
func (sv *SplashView) Refresh(nav.State) {}

// Bind implements Screen.
func (sv *SplashView) Bind(*keys.Registry) {}
