// Package tui is the terminal shell: it renders whichever screen the
// navigation controller says is current and turns keys into nav events.
package tui

import (
	"sync"
	"time"

	"github.com/damru/damru/internal/bus"
	"github.com/damru/damru/internal/clock"
	"github.com/damru/damru/internal/config"
	"github.com/damru/damru/internal/directory"
	"github.com/damru/damru/internal/nav"
	"github.com/damru/damru/internal/tui/keys"
	"github.com/damru/damru/internal/tui/ui"
	"github.com/damru/damru/internal/tui/views"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageHelp     = "help"
	headerHeight = 6
	promptHeight = 3
)

// Deps is what the shell needs from the rest of the process.
type Deps struct {
	Instance   string
	Config     *config.Config
	Controller *nav.Controller
	Directory  directory.Directory
	Bus        *bus.Bus
	Clock      clock.Clock
	Logger     *zap.Logger
}

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	deps     Deps
	logger   *zap.Logger
	theme    *ui.Theme
	registry *keys.Registry
	flash    *ui.FlashModel

	root     *tview.Flex
	pages    *ui.Pages
	profile  *ui.ProfileInfo
	menu     *ui.Menu
	logo     *ui.Logo
	prompt   *ui.Prompt
	crumbs   *ui.Crumbs
	flashBar *ui.FlashBar
	help     *views.HelpView

	splash   *views.SplashView
	otp      *views.OTPView
	setup    *views.ProfileSetupView
	chats    *views.ConversationList
	chat     *views.MessageThread
	contacts *views.ContactsView
	calls    *views.CallsView
	settings *views.SettingsView

	current    nav.Screen
	shown      views.Screen
	promptOpen bool
	started    time.Time

	done     chan struct{}
	stopOnce sync.Once
}

// NewApp creates the TUI application.
func NewApp(deps Deps) *App {
	theme := ui.DefaultTheme()
	a := &App{
		app:      tview.NewApplication(),
		deps:     deps,
		logger:   deps.Logger.Named("tui"),
		theme:    theme,
		registry: keys.NewRegistry(),
		flash:    ui.NewFlashModel(deps.Clock),
		pages:    ui.NewPages(),
		profile:  ui.NewProfileInfo(theme),
		menu:     ui.NewMenu(theme, headerHeight),
		logo:     ui.NewLogo(theme),
		prompt:   ui.NewPrompt(theme),
		crumbs:   ui.NewCrumbs(theme),
		flashBar: ui.NewFlashBar(theme),
		help:     views.NewHelpView(theme),
		started:  deps.Clock.Now(),
		done:     make(chan struct{}),
	}

	env := &views.Env{
		Theme:     theme,
		Nav:       deps.Controller,
		Updater:   a.app,
		Directory: deps.Directory,
		Clock:     deps.Clock,
		Bus:       deps.Bus,
		Flash:     a.flash,
		Config:    deps.Config,
		Logger:    a.logger,
	}
	a.splash = views.NewSplashView(env)
	a.otp = views.NewOTPView(env)
	a.setup = views.NewProfileSetupView(env)
	a.chats = views.NewConversationList(env)
	a.chat = views.NewMessageThread(env)
	a.contacts = views.NewContactsView(env)
	a.calls = views.NewCallsView(env)
	a.settings = views.NewSettingsView(env)

	a.setupBindings()
	a.setupPrompt()
	a.setupLayout()
	return a
}

// screenView returns the view rendered for s.
func (a *App) screenView(s nav.Screen) views.Screen {
	switch s {
	case nav.Splash:
		return a.splash
	case nav.OTP:
		return a.otp
	case nav.Profile:
		return a.setup
	case nav.Chats:
		return a.chats
	case nav.Chat:
		return a.chat
	case nav.Contacts:
		return a.contacts
	case nav.Calls:
		return a.calls
	case nav.Settings:
		return a.settings
	}
	return a.splash
}

func (a *App) setupBindings() {
	a.registry.AddGlobal("back", &keys.Action{
		Key: tcell.KeyEscape, Label: "Esc", Description: "Back", Visible: true,
		Handler: func() { a.dispatch(nav.Back{}) },
	})
	for i, s := range []nav.Screen{nav.Chats, nav.Contacts, nav.Calls, nav.Settings} {
		target := s.String()
		r := rune('1' + i)
		a.registry.AddGlobal("goto-"+target, &keys.Action{
			Key: tcell.KeyRune, Rune: r, Description: a.screenView(s).Name(),
			Visible: true, Numeric: true,
			Handler: func() { a.dispatch(nav.Navigate{Target: target}) },
		})
	}
	a.registry.AddGlobal("filter", &keys.Action{
		Key: tcell.KeyRune, Rune: '/', Description: "Filter",
		Handler: func() { a.activatePrompt(ui.PromptFilter) },
	})
	a.registry.AddGlobal("command", &keys.Action{
		Key: tcell.KeyRune, Rune: ':', Description: "Command",
		Handler: func() { a.activatePrompt(ui.PromptCommand) },
	})
	a.registry.AddGlobal("help", &keys.Action{
		Key: tcell.KeyRune, Rune: '?', Description: "Help", Visible: true,
		Handler: a.openHelp,
	})
	a.registry.AddGlobal("quit", &keys.Action{
		Key: tcell.KeyRune, Rune: 'q', Description: "Quit", Visible: true,
		Handler: a.Stop,
	})

	for _, s := range nav.Screens() {
		a.screenView(s).Bind(a.registry)
	}
}

func (a *App) setupPrompt() {
	a.prompt.SetOnChange(func(mode ui.PromptMode, text string) {
		if mode != ui.PromptFilter {
			return
		}
		if f, ok := a.shown.(views.Filterable); ok {
			f.SetFilter(text)
		}
	})
	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.closePrompt()
		if mode == ui.PromptCommand {
			a.runCommand(ParseCommand(text))
		}
	})
	a.prompt.SetOnCancel(func() {
		if f, ok := a.shown.(views.Filterable); ok && a.prompt.Mode() == ui.PromptFilter {
			f.SetFilter("")
		}
		a.closePrompt()
	})
}

func (a *App) setupLayout() {
	for _, s := range nav.Screens() {
		a.pages.AddPage(s.String(), a.screenView(s), true, false)
	}
	a.pages.AddPage(pageHelp, a.help, true, false)

	header := tview.NewFlex().
		AddItem(a.profile, 0, 2, false).
		AddItem(a.menu, 0, 2, false).
		AddItem(a.logo, 18, 0, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, headerHeight, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false)
	a.root.SetBackgroundColor(a.theme.BgColor)

	a.app.SetRoot(a.root, true)
	a.app.SetInputCapture(a.capture)
}

func (a *App) capture(ev *tcell.EventKey) *tcell.EventKey {
	if a.pages.Overlaid() {
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == '?') {
			a.closeHelp()
			return nil
		}
		return ev
	}

	// The prompt handles its own Esc and Enter.
	if a.promptOpen {
		return ev
	}
	if _, ok := a.app.GetFocus().(*tview.InputField); ok && ev.Key() != tcell.KeyEscape {
		return ev
	}

	if a.registry.HandleEvent(a.current.String(), ev) {
		return nil
	}
	return ev
}

func (a *App) dispatch(ev nav.Event) {
	a.deps.Controller.Dispatch(ev)
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Kind() {
	case CmdQuit:
		a.Stop()
	case CmdHelp:
		a.openHelp()
	case CmdLogout:
		a.dispatch(nav.Logout{})
	case CmdNavigate:
		a.dispatch(nav.Navigate{Target: cmd.Name})
	}
}

func (a *App) activatePrompt(mode ui.PromptMode) {
	if mode == ui.PromptFilter {
		if _, ok := a.shown.(views.Filterable); !ok {
			return
		}
	}
	a.prompt.Activate(mode)
	a.promptOpen = true
	a.root.ResizeItem(a.prompt, promptHeight, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) closePrompt() {
	a.promptOpen = false
	a.root.ResizeItem(a.prompt, 0, 0)
	if a.shown != nil {
		a.app.SetFocus(a.shown)
	}
}

func (a *App) openHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
	a.refreshChrome(a.deps.Controller.State())
}

func (a *App) closeHelp() {
	a.pages.Pop()
	if a.shown != nil {
		a.app.SetFocus(a.shown)
	}
	a.refreshChrome(a.deps.Controller.State())
}

// show renders state. Leaving a screen stops it; a transition that keeps
// the screen refreshes it in place.
func (a *App) show(state nav.State) {
	view := a.screenView(state.Screen)
	if view == a.shown {
		view.Refresh(state)
		a.refreshChrome(state)
		return
	}

	if a.shown != nil {
		a.shown.Stop()
	}
	a.logger.Debug("show screen", zap.Stringer("screen", state.Screen))
	a.current = state.Screen
	a.shown = view
	a.promptOpen = false
	a.root.ResizeItem(a.prompt, 0, 0)
	view.Enter(state)
	view.Start()
	a.pages.Reset(state.Screen.String())
	a.app.SetFocus(view)
	a.refreshChrome(state)
}

func (a *App) refreshChrome(state nav.State) {
	data := &ui.ProfileData{
		Instance: a.deps.Instance,
		Screen:   state.Screen.String(),
		Uptime:   a.deps.Clock.Now().Sub(a.started),
	}
	if state.Profile != nil {
		data.DisplayName = state.Profile.DisplayName
		data.Phone = state.Profile.Phone
	}
	for _, c := range a.deps.Directory.Conversations() {
		data.Unread += c.Unread
	}
	for _, c := range a.deps.Directory.Contacts() {
		if c.IsContact {
			data.Contacts++
		}
	}
	a.profile.Update(data)

	var hints []ui.MenuHint
	if a.shown != nil {
		hints = append(hints, a.shown.Hints()...)
	}
	a.menu.Update(append(hints, a.registry.Hints("")...))

	crumbs := Breadcrumbs(state)
	if a.pages.Overlaid() {
		crumbs = append(crumbs, a.help.Name())
	}
	a.crumbs.Update(crumbs)
	a.flashBar.Update(a.flash.GetMessage())
}

// Breadcrumbs returns the navigation trail for state. Secondary screens
// sit under Chats, where Back leads.
func Breadcrumbs(state nav.State) []string {
	switch state.Screen {
	case nav.Splash:
		return []string{"DAMRU"}
	case nav.OTP:
		return []string{"DAMRU", "Verify"}
	case nav.Profile:
		return []string{"DAMRU", "Profile setup"}
	case nav.Chats:
		return []string{"Chats"}
	case nav.Chat:
		name := "Chat"
		if state.Contact != nil {
			name = state.Contact.Name
		}
		return []string{"Chats", name}
	case nav.Contacts:
		return []string{"Chats", "Contacts"}
	case nav.Calls:
		return []string{"Chats", "Calls"}
	case nav.Settings:
		return []string{"Chats", "Settings"}
	}
	return nil
}

func (a *App) watchNav(sub *bus.Subscription) {
	for evt := range sub.C() {
		if evt.Kind == nav.KindLoggedOut {
			a.logger.Info("logged out")
			a.flash.Info("Logged out")
		}
		a.app.QueueUpdateDraw(func() {
			a.show(a.deps.Controller.State())
		})
	}
}

// tick refreshes the header and flash bar every second and catches up
// with any screen change whose bus event was dropped.
func (a *App) tick(ticker clock.Ticker) {
	defer ticker.Stop()
	flashes := a.flash.Watch()
	for {
		select {
		case <-ticker.C():
		case <-flashes:
		case <-a.done:
			return
		}
		a.app.QueueUpdateDraw(func() { a.reconcile(a.deps.Controller.State()) })
	}
}

// reconcile catches up with transitions whose nav events were dropped. A
// pending call request still needs the calls screen to refresh.
func (a *App) reconcile(state nav.State) {
	if state.Screen != a.current || state.CallRequest != nil {
		a.show(state)
		return
	}
	a.refreshChrome(state)
}

// Run shows the current screen and blocks until the application stops.
func (a *App) Run() error {
	var sub *bus.Subscription
	if a.deps.Bus != nil {
		sub = a.deps.Bus.Subscribe(bus.NavNamespace, 16)
		go a.watchNav(sub)
	}
	go a.tick(a.deps.Clock.NewTicker(time.Second))

	a.show(a.deps.Controller.State())
	a.logger.Info("tui started", zap.Stringer("screen", a.current))

	err := a.app.Run()

	a.shutdown()
	if sub != nil {
		sub.Cancel()
	}
	if a.shown != nil {
		a.shown.Stop()
	}
	a.logger.Info("tui stopped")
	return err
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.shutdown()
	a.app.Stop()
}

func (a *App) shutdown() {
	a.stopOnce.Do(func() { close(a.done) })
}
