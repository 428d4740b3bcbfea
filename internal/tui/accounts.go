package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heelin/finfolio/internal/domain"
	"github.com/heelin/finfolio/internal/nav"
	"github.com/heelin/finfolio/internal/notice"
)

// accountsScreen is the authenticated root: the account list with
// expandable per-month history.
type accountsScreen struct {
	deps      deps
	keys      accountsKeyMap
	accounts  []domain.Account
	cursor    int
	expanded  map[int]bool
	loading   bool
	errMsg    string
	refreshCh <-chan struct{}

	// set while a delete confirmation alert is up, consumed when the
	// alert's primary action runs
	pendingDelete *domain.Account
}

func newAccountsScreen(d deps) *accountsScreen {
	return &accountsScreen{
		deps:      d,
		keys:      newAccountsKeyMap(),
		expanded:  map[int]bool{},
		refreshCh: d.refresh.Subscribe(),
	}
}

// Init fetches on first appearance and arms the refresh watcher.
func (s *accountsScreen) Init() tea.Cmd {
	return tea.Batch(s.fetch(), watchRefreshCmd(s.refreshCh))
}

func (s *accountsScreen) fetch() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	return fetchAccountsCmd(s.deps.svc)
}

func (s *accountsScreen) Accounts() []domain.Account { return s.accounts }

func (s *accountsScreen) Loading() bool { return s.loading }

func (s *accountsScreen) selected() (domain.Account, bool) {
	if s.cursor < 0 || s.cursor >= len(s.accounts) {
		return domain.Account{}, false
	}
	return s.accounts[s.cursor], true
}

// RequestDelete puts up the confirmation alert for the selected
// account. The delete request itself is issued only after the alert's
// primary action runs.
func (s *accountsScreen) RequestDelete() {
	acct, ok := s.selected()
	if !ok {
		return
	}
	s.deps.notices.PresentAlert(notice.Alert{
		Title:        "Delete account",
		Message:      fmt.Sprintf("Delete %q and all its history? This cannot be undone.", acct.Name),
		ConfirmLabel: "Delete",
		Destructive:  true,
		OnConfirm:    func() { s.pendingDelete = &acct },
	})
}

// HandleAlertKey drives an active confirmation alert. Returns false
// when no alert is up.
func (s *accountsScreen) HandleAlertKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if _, ok := s.deps.notices.Alert(); !ok {
		return nil, false
	}
	switch msg.String() {
	case "enter", "y":
		if action := s.deps.notices.Confirm(); action != nil {
			action()
		}
		if s.pendingDelete != nil {
			acct := *s.pendingDelete
			s.pendingDelete = nil
			return deleteAccountCmd(s.deps.svc, acct), true
		}
		return nil, true
	case "esc", "n":
		s.deps.notices.DismissAlert()
		s.pendingDelete = nil
		return nil, true
	}
	return nil, true
}

func (s *accountsScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case accountsLoadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return nil
		}
		s.accounts = msg.accounts
		if s.cursor >= len(s.accounts) {
			s.cursor = max(0, len(s.accounts)-1)
		}
		return nil
	case accountsStaleMsg:
		// re-arm the watcher alongside the refetch
		return tea.Batch(s.fetch(), watchRefreshCmd(s.refreshCh))
	case accountDeletedMsg:
		if msg.err != nil {
			toast := s.deps.notices.PresentFailureToast("Failed to delete account: " + msg.name)
			return expireToastCmd(toast)
		}
		s.deps.refresh.Publish()
		toast := s.deps.notices.PresentSuccessToast(fmt.Sprintf("Account '%s' deleted.", msg.name))
		return expireToastCmd(toast)
	case tea.KeyMsg:
		if cmd, handled := s.HandleAlertKey(msg); handled {
			return cmd
		}
		return s.handleKey(msg)
	}
	return nil
}

func (s *accountsScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(s.accounts)-1 {
			s.cursor++
		}
	case key.Matches(msg, s.keys.Expand):
		if acct, ok := s.selected(); ok {
			s.expanded[acct.ID] = !s.expanded[acct.ID]
		}
	case key.Matches(msg, s.keys.Add):
		s.deps.router.Navigate(nav.Sheet(nav.AddAccount()))
	case key.Matches(msg, s.keys.Edit):
		if acct, ok := s.selected(); ok {
			s.deps.router.Navigate(nav.Sheet(nav.UpdateAccountHistory(acct)))
		}
	case key.Matches(msg, s.keys.Delete):
		s.RequestDelete()
	case key.Matches(msg, s.keys.Refresh):
		return s.fetch()
	case key.Matches(msg, s.keys.Logout):
		s.deps.router.Navigate(nav.Login())
	}
	return nil
}

func (s *accountsScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Accounts"))
	b.WriteString("\n\n")

	switch {
	case s.loading && len(s.accounts) == 0:
		b.WriteString(mutedStyle.Render("Loading accounts..."))
	case s.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + s.errMsg))
	case len(s.accounts) == 0:
		b.WriteString(mutedStyle.Render("No accounts found. Press 'a' to add one."))
	default:
		for i, acct := range s.accounts {
			b.WriteString(s.renderRow(acct, i == s.cursor, width))
			b.WriteString("\n")
			if s.expanded[acct.ID] {
				b.WriteString(s.renderHistory(acct))
			}
		}
	}
	return b.String()
}

func (s *accountsScreen) renderRow(acct domain.Account, active bool, width int) string {
	marker := "  "
	if active {
		marker = "> "
	}
	line := fmt.Sprintf("%s%-24s %-7s %s%.2f (%s%.2f)",
		marker, truncate(acct.Name, 24), acct.Type,
		s.deps.currency, acct.LatestClosing(),
		s.deps.currency, acct.LatestConverted())
	if active {
		return selectedStyle.Render(padRight(line, max(0, width-2)))
	}
	return valueStyle.Render(line)
}

func (s *accountsScreen) renderHistory(acct domain.Account) string {
	if len(acct.MonthlyHistory) == 0 {
		return mutedStyle.Render("    no history recorded") + "\n"
	}
	var b strings.Builder
	// newest first
	for i := len(acct.MonthlyHistory) - 1; i >= 0; i-- {
		h := acct.MonthlyHistory[i]
		line := fmt.Sprintf("    %s  open %s%.2f  contrib %s%.2f  close %s%.2f  rate %.4f",
			h.MonthKey,
			s.deps.currency, h.OpeningBalance,
			s.deps.currency, h.Contribution,
			s.deps.currency, h.ClosingBalance,
			h.ExchangeRate)
		if acct.Type == domain.AccountLoan {
			if h.InterestRate != nil {
				line += fmt.Sprintf("  interest %.2f%%", *h.InterestRate)
			}
			if h.TermsLeft != nil {
				line += fmt.Sprintf("  terms left %d", *h.TermsLeft)
			}
		}
		b.WriteString(labelStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *accountsScreen) FooterHelp() string {
	return "enter: history  a: add  u: update month  d: delete  r: refresh  L: logout  :: commands  q: quit"
}
