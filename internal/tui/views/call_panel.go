package views

import (
	"errors"
	"fmt"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/call"
	"github.com/damru/damru/internal/domain"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// CallPanel renders one call.Session and keeps it in sync through the
// session's bus events. Each hosting screen owns its own panel.
type CallPanel struct {
	*tview.TextView
	env     *Env
	owner   string
	session *call.Session
	sub     *bus.Subscription
	onShow  func(visible bool)
}

// NewCallPanel creates an idle call panel for the named owner.
func NewCallPanel(env *Env, owner string) *CallPanel {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	styleText(tv, env.Theme, " Call ")

	return &CallPanel{
		TextView: tv,
		env:      env,
		owner:    owner,
		session:  call.NewSession(owner, env.Clock, env.Bus, env.Logger),
	}
}

// SetOnShow sets the callback fired when the panel should appear or hide.
func (cp *CallPanel) SetOnShow(fn func(visible bool)) {
	cp.onShow = fn
}

// Session returns the panel's call session.
func (cp *CallPanel) Session() *call.Session { return cp.session }

// Start subscribes to the session's tick events.
func (cp *CallPanel) Start() {
	if cp.sub != nil || cp.env.Bus == nil {
		return
	}
	cp.sub = cp.env.Bus.Subscribe(bus.CallNamespace, 8)
	go cp.watch(cp.sub)
}

// Stop ends any call in progress and stops watching the bus.
func (cp *CallPanel) Stop() {
	cp.session.End()
	if cp.sub != nil {
		cp.sub.Cancel()
		cp.sub = nil
	}
	cp.Update(cp.session.Snapshot())
}

// Place starts a call. It reports false when another call is active.
func (cp *CallPanel) Place(contact domain.Contact, typ domain.CallType) bool {
	if err := cp.session.Start(contact, typ); err != nil {
		cp.env.Flash.Warn(capitalize(err.Error()))
		return false
	}
	cp.Update(cp.session.Snapshot())
	return true
}

// End hangs up.
func (cp *CallPanel) End() {
	snap := cp.session.Snapshot()
	if !snap.InCall() {
		return
	}
	cp.session.End()
	cp.env.Flash.Info(fmt.Sprintf("Call with %s ended (%s)", snap.Active.Contact.Name, call.FormatElapsed(snap.Elapsed)))
	cp.Update(cp.session.Snapshot())
}

// ToggleMute flips mute on the active call.
func (cp *CallPanel) ToggleMute() { cp.toggle(cp.session.ToggleMute) }

// ToggleSpeaker flips the speaker on the active call.
func (cp *CallPanel) ToggleSpeaker() { cp.toggle(cp.session.ToggleSpeaker) }

func (cp *CallPanel) toggle(fn func() (bool, error)) {
	if _, err := fn(); err != nil {
		if errors.Is(err, call.ErrNoActiveCall) {
			cp.env.Flash.Warn("No call in progress")
		}
		return
	}
	cp.Update(cp.session.Snapshot())
}

// Bind registers the in-call keys for a view.
func (cp *CallPanel) Bind(r *keys.Registry, view string) {
	r.AddView(view, "end-call", &keys.Action{
		Key: tcell.KeyRune, Rune: 'e', Description: "End call", Visible: true,
		Handler: cp.End,
	})
	r.AddView(view, "mute", &keys.Action{
		Key: tcell.KeyRune, Rune: 'm', Description: "Mute", Visible: true,
		Handler: cp.ToggleMute,
	})
	r.AddView(view, "speaker", &keys.Action{
		Key: tcell.KeyRune, Rune: 's', Description: "Speaker", Visible: true,
		Handler: cp.ToggleSpeaker,
	})
}

// Update renders snap.
func (cp *CallPanel) Update(snap call.Snapshot) {
	cp.Clear()
	if cp.onShow != nil {
		cp.onShow(snap.InCall())
	}
	if !snap.InCall() {
		return
	}
	a := snap.Active
	mute, speaker := "🎤 mic on", "🔈 speaker off"
	if snap.Muted {
		mute = "🔇 muted"
	}
	if snap.Speaker {
		speaker = "🔊 speaker on"
	}
	_, _ = fmt.Fprintf(cp, "%s [::b]%s[-:-:-] with %s  [%s]%s[-]\n%s | %s   [::d]e:end m:mute s:speaker[-:-:-]",
		callIcon(a.Type), a.Type.Label(), tview.Escape(a.Contact.Name),
		hexColor(cp.env.Theme.CounterColor), call.FormatElapsed(snap.Elapsed),
		mute, speaker)
}

func (cp *CallPanel) watch(sub *bus.Subscription) {
	for evt := range sub.C() {
		snap, ok := evt.Payload.(call.Snapshot)
		if !ok || snap.Owner != cp.owner {
			continue
		}
		cp.env.Updater.QueueUpdateDraw(func() {
			// A late event may describe an older call; render the latest.
			cp.Update(cp.session.Snapshot())
		})
	}
}

func callIcon(t domain.CallType) string {
	if t == domain.Video {
		return "📹"
	}
	return "📞"
}
