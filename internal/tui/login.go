package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heelin/finfolio/internal/nav"
)

// minUsernameLen is the backend's username rule; shorter names never
// leave the client.
const minUsernameLen = 6

// loginScreen is the unauthenticated root: a single username field.
type loginScreen struct {
	deps    deps
	input   textinput.Model
	loading bool
	errMsg  string
}

func newLoginScreen(d deps) *loginScreen {
	inp := textinput.New()
	inp.Placeholder = "username"
	inp.Prompt = "> "
	inp.CharLimit = 64
	inp.Focus()
	return &loginScreen{deps: d, input: inp}
}

// SubmitDisabled is a pure function of the current input.
func (s *loginScreen) SubmitDisabled() bool {
	return len(s.input.Value()) < minUsernameLen
}

func (s *loginScreen) Loading() bool { return s.loading }

func (s *loginScreen) ErrorMessage() string { return s.errMsg }

func (s *loginScreen) SetUsername(name string) { s.input.SetValue(name) }

// Submit starts one login request. No-op while disabled or loading.
func (s *loginScreen) Submit() tea.Cmd {
	if s.SubmitDisabled() || s.loading {
		return nil
	}
	s.loading = true
	s.errMsg = ""
	return loginCmd(s.deps.svc, s.input.Value())
}

// HandleLoginDone finishes the request: failure keeps the input so the
// user can retry; success stores the token and navigates.
func (s *loginScreen) HandleLoginDone(msg loginDoneMsg) tea.Cmd {
	s.loading = false
	if msg.err != nil {
		toast := s.deps.notices.PresentFailureToast("Login Failed.")
		return expireToastCmd(toast)
	}
	_ = s.deps.session.Set(msg.resp.Token)
	s.deps.router.Navigate(nav.UserAccounts())
	return nil
}

func (s *loginScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		return s.HandleLoginDone(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.Submit()
		case "ctrl+r":
			s.deps.router.Navigate(nav.Modal(nav.Registration()))
			return nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *loginScreen) View(width, height int) string {
	lines := []string{
		titleStyle.Render("finfolio"),
		"",
		labelStyle.Render("Sign in with your username (6+ characters)."),
		"",
		s.input.View(),
		"",
	}
	switch {
	case s.loading:
		lines = append(lines, mutedStyle.Render("Signing in..."))
	case s.SubmitDisabled():
		lines = append(lines, mutedStyle.Render("enter: sign in (disabled)  ctrl+r: register"))
	default:
		lines = append(lines, labelStyle.Render("enter: sign in  ctrl+r: register"))
	}
	if s.errMsg != "" {
		lines = append(lines, "", errorStyle.Render(s.errMsg))
	}
	box := modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
