// Package tui is the terminal front end: one bubbletea program whose
// screens call the backend through api.Service and steer navigation
// through nav.Router. All state mutation happens on the single update
// loop; network calls run as commands whose completion messages are
// marshalled back into it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heelin/finfolio/internal/api"
	"github.com/heelin/finfolio/internal/bus"
	"github.com/heelin/finfolio/internal/nav"
	"github.com/heelin/finfolio/internal/notice"
)

// App composes the router, the notice manager, the refresh bus and the
// screens. It owns no business state of its own.
type App struct {
	d       deps
	router  *nav.Router
	notices *notice.Manager

	login       *loginScreen
	register    *registerScreen
	accounts    *accountsScreen
	accountForm *accountFormScreen
	historyForm *historyFormScreen
	palette     *paletteScreen

	sheetDest *nav.Destination
	wasAuth   bool
	width     int
	height    int
	now       func() time.Time
}

// Options tune app construction.
type Options struct {
	CurrencySymbol string
	Now            func() time.Time
}

func NewApp(svc api.Service, session *api.Session, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.CurrencySymbol == "" {
		opts.CurrencySymbol = "R"
	}
	router := nav.NewRouter(session)
	notices := notice.NewManager()
	d := deps{
		svc:      svc,
		session:  session,
		router:   router,
		notices:  notices,
		refresh:  bus.New(),
		currency: opts.CurrencySymbol,
	}
	a := &App{
		d:       d,
		router:  router,
		notices: notices,
		login:   newLoginScreen(d),
		width:   100,
		height:  32,
		now:     opts.Now,
	}
	if router.Authenticated() {
		a.accounts = newAccountsScreen(d)
		a.wasAuth = true
	}
	return a
}

// Router exposes navigation state to the palette and tests.
func (a *App) Router() *nav.Router { return a.router }

// Notices exposes the notice manager to tests.
func (a *App) Notices() *notice.Manager { return a.notices }

func (a *App) Init() tea.Cmd {
	if a.accounts != nil {
		return a.accounts.Init()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	case toastExpiredMsg:
		a.notices.Expire(msg.id)
	case loginDoneMsg:
		if a.login != nil {
			cmd = a.login.HandleLoginDone(msg)
		}
	case registerDoneMsg:
		if a.register != nil {
			cmd = a.register.HandleRegisterDone(msg)
		}
	case accountCreatedMsg:
		if a.accountForm != nil {
			cmd = a.accountForm.HandleCreated(msg)
		}
	case historySavedMsg:
		if a.historyForm != nil {
			cmd = a.historyForm.HandleSaved(msg)
		}
	case accountsLoadedMsg, accountsStaleMsg, accountDeletedMsg:
		if a.accounts != nil {
			cmd = a.accounts.Update(msg)
		}
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		cmd = a.routeKey(msg)
	default:
		cmd = a.routeOther(msg)
	}

	syncCmd := a.sync()
	return a, tea.Batch(cmd, syncCmd)
}

// routeKey delivers a key press to exactly one surface: palette, then
// alert, then modal, then sheet, then the main screen.
func (a *App) routeKey(msg tea.KeyMsg) tea.Cmd {
	if a.palette != nil {
		cmd, done := a.palette.Update(msg, a)
		if done {
			a.palette = nil
		}
		return cmd
	}
	if _, ok := a.notices.Alert(); ok && a.accounts != nil {
		cmd, _ := a.accounts.HandleAlertKey(msg)
		return cmd
	}
	if a.register != nil {
		return a.register.Update(msg)
	}
	if a.accountForm != nil {
		return a.accountForm.Update(msg)
	}
	if a.historyForm != nil {
		return a.historyForm.Update(msg)
	}
	if a.accounts != nil {
		if msg.String() == "q" {
			return tea.Quit
		}
		if msg.String() == ":" {
			a.palette = newPaletteScreen()
			return nil
		}
		return a.accounts.Update(msg)
	}
	return a.login.Update(msg)
}

// routeOther hands non-key messages (input blink and the like) to the
// focused input surface.
func (a *App) routeOther(msg tea.Msg) tea.Cmd {
	switch {
	case a.register != nil:
		return a.register.Update(msg)
	case a.accountForm != nil:
		return a.accountForm.Update(msg)
	case a.historyForm != nil:
		return a.historyForm.Update(msg)
	case a.accounts != nil:
		return a.accounts.Update(msg)
	default:
		return a.login.Update(msg)
	}
}

// sync reconciles screen instances with router state: overlay slots
// materialize and tear down screens, and authentication flips swap the
// root screen.
func (a *App) sync() tea.Cmd {
	var cmd tea.Cmd

	if a.router.Authenticated() && !a.wasAuth {
		a.accounts = newAccountsScreen(a.d)
		a.wasAuth = true
		cmd = a.accounts.Init()
	} else if !a.router.Authenticated() && a.wasAuth {
		a.accounts = nil
		a.login = newLoginScreen(a.d)
		a.wasAuth = false
	}

	if d, ok := a.router.Sheet(); ok {
		if a.sheetDest == nil || a.sheetDest.Kind != d.Kind || !sameHistoryTarget(a.sheetDest, &d) {
			a.sheetDest = &d
			a.accountForm = nil
			a.historyForm = nil
			switch d.Kind {
			case nav.KindAddAccount:
				a.accountForm = newAccountFormScreen(a.d)
			case nav.KindUpdateAccountHistory:
				a.historyForm = newHistoryFormScreen(a.d, *d.Account, a.now())
			}
		}
	} else {
		a.sheetDest = nil
		a.accountForm = nil
		a.historyForm = nil
	}

	if d, ok := a.router.Modal(); ok && d.Kind == nav.KindRegistration {
		if a.register == nil {
			a.register = newRegisterScreen(a.d)
		}
	} else {
		a.register = nil
	}

	return cmd
}

func sameHistoryTarget(prev, next *nav.Destination) bool {
	if prev.Kind != nav.KindUpdateAccountHistory || next.Kind != nav.KindUpdateAccountHistory {
		return true
	}
	return prev.Account != nil && next.Account != nil && prev.Account.ID == next.Account.ID
}

func (a *App) View() string {
	body := a.baseView()
	view := lipgloss.JoinVertical(lipgloss.Left, body, a.footer())

	if a.accountForm != nil {
		view = overlayCenter(view, a.accountForm.View(), a.width, a.height)
	}
	if a.historyForm != nil {
		view = overlayCenter(view, a.historyForm.View(), a.width, a.height)
	}
	if a.register != nil {
		view = overlayCenter(view, a.register.View(), a.width, a.height)
	}
	if a.palette != nil {
		view = overlayCenter(view, a.palette.View(a), a.width, a.height)
	}
	if alert, ok := a.notices.Alert(); ok {
		view = overlayCenter(view, renderAlert(alert), a.width, a.height)
	}
	if toast, ok := a.notices.Toast(); ok {
		banner := renderToast(toast)
		x := max(0, (a.width-maxLineWidth(splitLines(banner)))/2)
		view = overlayAt(view, banner, x, 0, a.width, a.height)
	}
	return view
}

func (a *App) baseView() string {
	h := max(1, a.height-1)
	if a.accounts != nil {
		return lipgloss.NewStyle().Height(h).Render(a.accounts.View(a.width, h))
	}
	return a.login.View(a.width, h)
}

func (a *App) footer() string {
	help := "enter: sign in  ctrl+r: register  ctrl+c: quit"
	if a.accounts != nil {
		help = a.accounts.FooterHelp()
	}
	return footerStyle.Width(a.width).Render(truncate(help, max(0, a.width-4)))
}

func renderToast(t notice.Toast) string {
	kind := toastColorInfo
	switch t.Style {
	case notice.ToastSuccess:
		kind = toastColorSuccess
	case notice.ToastFailure:
		kind = toastColorFailure
	case notice.ToastWarning:
		kind = toastColorWarning
	}
	return toastStyle(kind).Render(t.Message)
}

func renderAlert(al notice.Alert) string {
	confirm := al.ConfirmLabel
	if al.Destructive {
		confirm = errorStyle.Render(confirm)
	}
	lines := []string{
		titleStyle.Render(al.Title),
		"",
		valueStyle.Render(al.Message),
		"",
		labelStyle.Render("enter/y: ") + confirm + labelStyle.Render("   esc/n: cancel"),
	}
	return alertStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
