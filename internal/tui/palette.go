package tui

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heelin/finfolio/internal/nav"
)

type paletteCommand struct {
	ID          string
	Label       string
	Description string
	Enabled     func(a *App) (bool, string)
	Execute     func(a *App) tea.Cmd
}

type paletteMatch struct {
	Command        paletteCommand
	Score          int
	Enabled        bool
	DisabledReason string
}

func alwaysEnabled(*App) (bool, string) { return true, "" }

func defaultCommands() []paletteCommand {
	return []paletteCommand{
		{
			ID:          "accounts:add",
			Label:       "Add Account",
			Description: "Open the new-account form",
			Enabled:     alwaysEnabled,
			Execute: func(a *App) tea.Cmd {
				a.router.Navigate(nav.Sheet(nav.AddAccount()))
				return nil
			},
		},
		{
			ID:          "accounts:refresh",
			Label:       "Refresh Accounts",
			Description: "Refetch the account list",
			Enabled:     alwaysEnabled,
			Execute: func(a *App) tea.Cmd {
				return a.accounts.fetch()
			},
		},
		{
			ID:          "accounts:update-history",
			Label:       "Update Month History",
			Description: "Edit the selected account's history",
			Enabled: func(a *App) (bool, string) {
				if _, ok := a.accounts.selected(); !ok {
					return false, "no account selected"
				}
				return true, ""
			},
			Execute: func(a *App) tea.Cmd {
				if acct, ok := a.accounts.selected(); ok {
					a.router.Navigate(nav.Sheet(nav.UpdateAccountHistory(acct)))
				}
				return nil
			},
		},
		{
			ID:          "session:logout",
			Label:       "Logout",
			Description: "Clear the token and return to login",
			Enabled:     alwaysEnabled,
			Execute: func(a *App) tea.Cmd {
				a.router.Navigate(nav.Login())
				return nil
			},
		},
		{
			ID:          "app:quit",
			Label:       "Quit",
			Description: "Exit finfolio",
			Enabled:     alwaysEnabled,
			Execute: func(a *App) tea.Cmd {
				return tea.Quit
			},
		},
	}
}

// searchCommands ranks commands against a query: substring matches
// first, then by edit distance to the label.
func searchCommands(commands []paletteCommand, query string, a *App) []paletteMatch {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]paletteMatch, 0, len(commands))
	for _, c := range commands {
		label := strings.ToLower(c.Label)
		haystack := label + " " + strings.ToLower(c.Description+" "+c.ID)
		score := levenshtein.ComputeDistance(q, label)
		if q != "" {
			if strings.Contains(haystack, q) {
				score = 0
			} else if score > len(c.Label)/2 {
				continue
			}
		}
		enabled, reason := c.Enabled(a)
		matches = append(matches, paletteMatch{
			Command:        c,
			Score:          score,
			Enabled:        enabled,
			DisabledReason: reason,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score < matches[j].Score
		}
		return matches[i].Command.Label < matches[j].Command.Label
	})
	return matches
}

// paletteScreen is the command palette overlay.
type paletteScreen struct {
	commands []paletteCommand
	input    textinput.Model
	cursor   int
}

func newPaletteScreen() *paletteScreen {
	inp := textinput.New()
	inp.Placeholder = "Search commands"
	inp.Prompt = "cmd> "
	inp.Focus()
	return &paletteScreen{commands: defaultCommands(), input: inp}
}

func (p *paletteScreen) matches(a *App) []paletteMatch {
	return searchCommands(p.commands, p.input.Value(), a)
}

// Update returns (cmd, done); done=true closes the palette.
func (p *paletteScreen) Update(msg tea.Msg, a *App) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return nil, true
		case "up":
			if p.cursor > 0 {
				p.cursor--
			}
			return nil, false
		case "down":
			if p.cursor < len(p.matches(a))-1 {
				p.cursor++
			}
			return nil, false
		case "enter":
			ms := p.matches(a)
			if p.cursor < len(ms) {
				m := ms[p.cursor]
				if !m.Enabled {
					return nil, false
				}
				return m.Command.Execute(a), true
			}
			return nil, true
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.cursor = 0
	return cmd, false
}

func (p *paletteScreen) View(a *App) string {
	lines := []string{titleStyle.Render("Commands"), p.input.View(), ""}
	for i, m := range p.matches(a) {
		label := m.Command.Label
		if !m.Enabled && m.DisabledReason != "" {
			label += " (" + m.DisabledReason + ")"
		}
		switch {
		case i == p.cursor && m.Enabled:
			lines = append(lines, selectedStyle.Render(" "+label+" "))
		case !m.Enabled:
			lines = append(lines, mutedStyle.Render("  "+label))
		default:
			lines = append(lines, valueStyle.Render("  "+label))
		}
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
