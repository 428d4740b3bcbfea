package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heelin/finfolio/internal/domain"
)

// accountFormScreen is the add-account sheet: a name plus a type
// toggle.
type accountFormScreen struct {
	deps    deps
	input   textinput.Model
	typ     domain.AccountType
	loading bool
}

func newAccountFormScreen(d deps) *accountFormScreen {
	inp := textinput.New()
	inp.Placeholder = "account name"
	inp.Prompt = "> "
	inp.CharLimit = 64
	inp.Focus()
	return &accountFormScreen{deps: d, input: inp, typ: domain.AccountSaving}
}

func (s *accountFormScreen) SubmitDisabled() bool {
	return s.input.Value() == ""
}

func (s *accountFormScreen) Loading() bool { return s.loading }

func (s *accountFormScreen) SetName(name string) { s.input.SetValue(name) }

func (s *accountFormScreen) SetType(typ domain.AccountType) { s.typ = typ }

func (s *accountFormScreen) toggleType() {
	if s.typ == domain.AccountSaving {
		s.typ = domain.AccountLoan
	} else {
		s.typ = domain.AccountSaving
	}
}

func (s *accountFormScreen) Submit() tea.Cmd {
	if s.SubmitDisabled() || s.loading {
		return nil
	}
	s.loading = true
	return createAccountCmd(s.deps.svc, s.input.Value(), s.typ)
}

// HandleCreated closes the sheet on both paths; only a success
// broadcasts the refresh signal.
func (s *accountFormScreen) HandleCreated(msg accountCreatedMsg) tea.Cmd {
	s.loading = false
	s.deps.router.DismissSheet()
	if msg.err != nil {
		toast := s.deps.notices.PresentFailureToast("Account not created! Please try again.")
		return expireToastCmd(toast)
	}
	s.deps.refresh.Publish()
	toast := s.deps.notices.PresentSuccessToast("Account created successfully!")
	return expireToastCmd(toast)
}

func (s *accountFormScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case accountCreatedMsg:
		return s.HandleCreated(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.Submit()
		case "tab":
			s.toggleType()
			return nil
		case "esc":
			s.deps.router.DismissSheet()
			return nil
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *accountFormScreen) View() string {
	typeLine := "type: "
	for _, t := range []domain.AccountType{domain.AccountSaving, domain.AccountLoan} {
		label := " " + string(t) + " "
		if t == s.typ {
			typeLine += selectedStyle.Render(label)
		} else {
			typeLine += mutedStyle.Render(label)
		}
	}

	lines := []string{
		titleStyle.Render("Add account"),
		"",
		s.input.View(),
		typeLine,
		"",
	}
	if s.loading {
		lines = append(lines, mutedStyle.Render("Saving..."))
	} else {
		lines = append(lines, labelStyle.Render("enter: save  tab: type  esc: cancel"))
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
