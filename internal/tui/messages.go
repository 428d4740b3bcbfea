package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/heelin/finfolio/internal/api"
	"github.com/heelin/finfolio/internal/domain"
	"github.com/heelin/finfolio/internal/notice"
)

// refreshDebounce collapses a burst of refresh signals into one refetch.
const refreshDebounce = 100 * time.Millisecond

type loginDoneMsg struct {
	resp api.TokenResponse
	err  error
}

type registerDoneMsg struct {
	id  int
	err error
}

type accountsLoadedMsg struct {
	accounts []domain.Account
	err      error
}

type accountCreatedMsg struct {
	id  int
	err error
}

type accountDeletedMsg struct {
	name string
	err  error
}

type historySavedMsg struct {
	updated domain.MonthlyHistory
	err     error
}

// accountsStaleMsg means the refresh bus signalled: refetch the list.
type accountsStaleMsg struct{}

type toastExpiredMsg struct {
	id uuid.UUID
}

func loginCmd(svc api.Service, name string) tea.Cmd {
	return func() tea.Msg {
		resp, err := svc.Login(context.Background(), name)
		return loginDoneMsg{resp: resp, err: err}
	}
}

func registerCmd(svc api.Service, name string) tea.Cmd {
	return func() tea.Msg {
		id, err := svc.Register(context.Background(), name)
		return registerDoneMsg{id: id, err: err}
	}
}

func fetchAccountsCmd(svc api.Service) tea.Cmd {
	return func() tea.Msg {
		accounts, err := svc.ListAccounts(context.Background())
		return accountsLoadedMsg{accounts: accounts, err: err}
	}
}

func createAccountCmd(svc api.Service, name string, typ domain.AccountType) tea.Cmd {
	return func() tea.Msg {
		id, err := svc.CreateAccount(context.Background(), name, typ)
		return accountCreatedMsg{id: id, err: err}
	}
}

func deleteAccountCmd(svc api.Service, acct domain.Account) tea.Cmd {
	return func() tea.Msg {
		err := svc.DeleteAccount(context.Background(), acct.ID)
		return accountDeletedMsg{name: acct.Name, err: err}
	}
}

func saveHistoryCmd(svc api.Service, accountID int, h domain.MonthlyHistory) tea.Cmd {
	return func() tea.Msg {
		updated, err := svc.UpdateHistory(context.Background(), accountID, h)
		return historySavedMsg{updated: updated, err: err}
	}
}

// expireToastCmd schedules the toast's own expiry. The ID keeps a
// superseded toast's timer from clearing its successor.
func expireToastCmd(t notice.Toast) tea.Cmd {
	return tea.Tick(t.Duration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: t.ID}
	})
}

// watchRefreshCmd blocks on the refresh bus, then waits out the
// debounce window, draining further signals, before reporting once.
func watchRefreshCmd(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		timer := time.NewTimer(refreshDebounce)
		defer timer.Stop()
		for {
			select {
			case <-ch:
			case <-timer.C:
				return accountsStaleMsg{}
			}
		}
	}
}
