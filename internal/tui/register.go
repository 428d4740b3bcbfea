package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// registerScreen is presented as a modal over the login screen.
type registerScreen struct {
	deps    deps
	input   textinput.Model
	loading bool
}

func newRegisterScreen(d deps) *registerScreen {
	inp := textinput.New()
	inp.Placeholder = "new username"
	inp.Prompt = "> "
	inp.CharLimit = 64
	inp.Focus()
	return &registerScreen{deps: d, input: inp}
}

func (s *registerScreen) SubmitDisabled() bool {
	return len(s.input.Value()) < minUsernameLen
}

func (s *registerScreen) Loading() bool { return s.loading }

func (s *registerScreen) SetUsername(name string) { s.input.SetValue(name) }

func (s *registerScreen) Submit() tea.Cmd {
	if s.SubmitDisabled() || s.loading {
		return nil
	}
	s.loading = true
	return registerCmd(s.deps.svc, s.input.Value())
}

// HandleRegisterDone closes the modal on both paths; only the toast
// differs.
func (s *registerScreen) HandleRegisterDone(msg registerDoneMsg) tea.Cmd {
	s.loading = false
	s.deps.router.DismissModal()
	if msg.err != nil {
		toast := s.deps.notices.PresentFailureToast("User not created! Please try again.")
		return expireToastCmd(toast)
	}
	toast := s.deps.notices.PresentSuccessToast("User created successfully! Please login")
	return expireToastCmd(toast)
}

func (s *registerScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case registerDoneMsg:
		return s.HandleRegisterDone(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.Submit()
		case "esc":
			s.deps.router.DismissModal()
			return nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *registerScreen) View() string {
	lines := []string{
		titleStyle.Render("Create user"),
		"",
		s.input.View(),
		"",
	}
	if s.loading {
		lines = append(lines, mutedStyle.Render("Creating..."))
	} else {
		lines = append(lines, labelStyle.Render("enter: create  esc: cancel"))
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
