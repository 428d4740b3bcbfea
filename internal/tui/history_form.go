package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heelin/finfolio/internal/domain"
)

const (
	fieldOpening = iota
	fieldContribution
	fieldClosing
	fieldRate
	fieldInterest
	fieldTerms
)

var historyFieldLabels = []string{
	"opening balance", "contribution", "closing balance",
	"exchange rate", "interest rate", "terms left",
}

// monthPickerSpan is how many completed months back the picker offers.
const monthPickerSpan = 18

// historyFormScreen edits one month's history entry for one account.
// Saving is only possible when every field parses and at least one
// rounded value differs from the loaded entry.
type historyFormScreen struct {
	deps     deps
	account  domain.Account
	months   []domain.MonthYear
	monthIdx int
	original domain.MonthlyHistory // rounded baseline for change detection
	inputs   []textinput.Model
	focus    int
	loading  bool
}

func newHistoryFormScreen(d deps, acct domain.Account, now time.Time) *historyFormScreen {
	n := 4
	if acct.Type == domain.AccountLoan {
		n = 6
	}
	inputs := make([]textinput.Model, n)
	for i := range inputs {
		inp := textinput.New()
		inp.Prompt = ""
		inp.CharLimit = 16
		inp.Width = 14
		inputs[i] = inp
	}
	s := &historyFormScreen{
		deps:    d,
		account: acct,
		months:  domain.RecentMonths(now, monthPickerSpan),
		inputs:  inputs,
	}
	s.loadMonth(0)
	s.setFocus(0)
	return s
}

// loadMonth points the form at one month: stored values when an entry
// exists, a zeroed entry otherwise. The loaded (rounded) entry becomes
// the change-detection baseline.
func (s *historyFormScreen) loadMonth(idx int) {
	if idx < 0 || idx >= len(s.months) {
		return
	}
	s.monthIdx = idx
	key := s.months[idx].MonthKey
	h, ok := s.account.HistoryFor(key)
	if !ok {
		h = domain.MonthlyHistory{MonthKey: key, ExchangeRate: 1}
		if s.account.Type == domain.AccountLoan {
			zero := 0.0
			terms := 0
			h.InterestRate = &zero
			h.TermsLeft = &terms
		}
	}
	s.original = h.Rounded()

	s.inputs[fieldOpening].SetValue(fmt.Sprintf("%.2f", s.original.OpeningBalance))
	s.inputs[fieldContribution].SetValue(fmt.Sprintf("%.2f", s.original.Contribution))
	s.inputs[fieldClosing].SetValue(fmt.Sprintf("%.2f", s.original.ClosingBalance))
	s.inputs[fieldRate].SetValue(fmt.Sprintf("%.4f", s.original.ExchangeRate))
	if s.account.Type == domain.AccountLoan {
		ir := 0.0
		if s.original.InterestRate != nil {
			ir = *s.original.InterestRate
		}
		terms := 0
		if s.original.TermsLeft != nil {
			terms = *s.original.TermsLeft
		}
		s.inputs[fieldInterest].SetValue(fmt.Sprintf("%.2f", ir))
		s.inputs[fieldTerms].SetValue(strconv.Itoa(terms))
	}
}

// SelectedMonth returns the month the form currently edits.
func (s *historyFormScreen) SelectedMonth() domain.MonthYear {
	return s.months[s.monthIdx]
}

// HistoryExists reports whether the account already has an entry for
// the picker month.
func (s *historyFormScreen) HistoryExists(m domain.MonthYear) bool {
	_, ok := s.account.HistoryFor(m.MonthKey)
	return ok
}

func (s *historyFormScreen) SetField(i int, v string) { s.inputs[i].SetValue(v) }

func (s *historyFormScreen) Loading() bool { return s.loading }

// Entry parses the current field strings into a rounded history entry.
// ok is false when any populated field fails to parse.
func (s *historyFormScreen) Entry() (domain.MonthlyHistory, bool) {
	opening, err1 := parseAmount(s.inputs[fieldOpening].Value())
	contribution, err2 := parseAmount(s.inputs[fieldContribution].Value())
	closing, err3 := parseAmount(s.inputs[fieldClosing].Value())
	rate, err4 := parseAmount(s.inputs[fieldRate].Value())
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return domain.MonthlyHistory{}, false
	}
	h := domain.MonthlyHistory{
		MonthKey:       s.months[s.monthIdx].MonthKey,
		OpeningBalance: domain.RoundCurrency(opening),
		Contribution:   domain.RoundCurrency(contribution),
		ClosingBalance: domain.RoundCurrency(closing),
		ExchangeRate:   domain.RoundRate(rate),
	}
	if s.account.Type == domain.AccountLoan {
		interest, err5 := parseAmount(s.inputs[fieldInterest].Value())
		terms, err6 := strconv.Atoi(strings.TrimSpace(s.inputs[fieldTerms].Value()))
		if err5 != nil || err6 != nil {
			return domain.MonthlyHistory{}, false
		}
		ir := domain.RoundCurrency(interest)
		h.InterestRate = &ir
		h.TermsLeft = &terms
	}
	return h, true
}

// HasChanges compares the rounded current values field-by-field
// against the originally loaded rounded values.
func (s *historyFormScreen) HasChanges() bool {
	h, ok := s.Entry()
	if !ok {
		return false
	}
	if h.OpeningBalance != s.original.OpeningBalance ||
		h.Contribution != s.original.Contribution ||
		h.ClosingBalance != s.original.ClosingBalance ||
		h.ExchangeRate != s.original.ExchangeRate {
		return true
	}
	if s.account.Type == domain.AccountLoan {
		if !floatPtrEq(h.InterestRate, s.original.InterestRate) {
			return true
		}
		if !intPtrEq(h.TermsLeft, s.original.TermsLeft) {
			return true
		}
	}
	return false
}

// SubmitDisabled: every field must parse and something must differ.
func (s *historyFormScreen) SubmitDisabled() bool {
	if _, ok := s.Entry(); !ok {
		return true
	}
	return !s.HasChanges()
}

func (s *historyFormScreen) Submit() tea.Cmd {
	if s.SubmitDisabled() || s.loading {
		return nil
	}
	h, ok := s.Entry()
	if !ok {
		return nil
	}
	s.loading = true
	return saveHistoryCmd(s.deps.svc, s.account.ID, h)
}

// HandleSaved closes the sheet on both paths; only a success
// broadcasts the refresh signal.
func (s *historyFormScreen) HandleSaved(msg historySavedMsg) tea.Cmd {
	s.loading = false
	s.deps.router.DismissSheet()
	if msg.err != nil {
		toast := s.deps.notices.PresentFailureToast("Account history not updated! Please try again.")
		return expireToastCmd(toast)
	}
	s.deps.refresh.Publish()
	toast := s.deps.notices.PresentSuccessToast("Account history updated successfully!")
	return expireToastCmd(toast)
}

func (s *historyFormScreen) setFocus(i int) {
	s.focus = i
	for j := range s.inputs {
		if j == i {
			s.inputs[j].Focus()
		} else {
			s.inputs[j].Blur()
		}
	}
}

func (s *historyFormScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case historySavedMsg:
		return s.HandleSaved(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s.Submit()
		case "esc":
			s.deps.router.DismissSheet()
			return nil
		case "tab", "down":
			s.setFocus((s.focus + 1) % len(s.inputs))
			return nil
		case "shift+tab", "up":
			s.setFocus((s.focus - 1 + len(s.inputs)) % len(s.inputs))
			return nil
		case "[":
			// older month
			if s.monthIdx < len(s.months)-1 {
				s.loadMonth(s.monthIdx + 1)
			}
			return nil
		case "]":
			// newer month
			if s.monthIdx > 0 {
				s.loadMonth(s.monthIdx - 1)
			}
			return nil
		}
	}
	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return cmd
}

func (s *historyFormScreen) View() string {
	month := s.SelectedMonth()
	marker := ""
	if s.HistoryExists(month) {
		marker = labelStyle.Render(" (recorded)")
	}

	lines := []string{
		titleStyle.Render("Update history: " + s.account.Name),
		"",
		valueStyle.Render("month: "+month.DisplayName) + marker + mutedStyle.Render("  [/]: change"),
		"",
	}
	for i := range s.inputs {
		label := fmt.Sprintf("%-16s", historyFieldLabels[i])
		if i == s.focus {
			label = lipgloss.NewStyle().Foreground(colorFocus).Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		lines = append(lines, label+s.inputs[i].View())
	}
	lines = append(lines, "")
	switch {
	case s.loading:
		lines = append(lines, mutedStyle.Render("Saving..."))
	case s.SubmitDisabled():
		lines = append(lines, mutedStyle.Render("enter: save (disabled)  esc: cancel"))
	default:
		lines = append(lines, labelStyle.Render(fmt.Sprintf("enter: save history for %s  esc: cancel", month.DisplayName)))
	}
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func parseAmount(v string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(v), 64)
}

func floatPtrEq(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
