package tui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/heelin/finfolio/internal/api"
	"github.com/heelin/finfolio/internal/bus"
	"github.com/heelin/finfolio/internal/domain"
	"github.com/heelin/finfolio/internal/nav"
	"github.com/heelin/finfolio/internal/notice"
)

// mockService scripts api.Service responses and records calls.
type mockService struct {
	mu sync.Mutex

	loginResp  api.TokenResponse
	loginErr   error
	loginCalls []string

	registerID  int
	registerErr error

	accounts    []domain.Account
	accountsErr error
	listCalls   int

	createID   int
	createErr  error
	createArgs []string

	deleteErr error
	deleteIDs []int

	updateResp domain.MonthlyHistory
	updateErr  error
	updates    []domain.MonthlyHistory
}

func (m *mockService) Login(_ context.Context, name string) (api.TokenResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loginCalls = append(m.loginCalls, name)
	return m.loginResp, m.loginErr
}

func (m *mockService) Register(_ context.Context, name string) (int, error) {
	return m.registerID, m.registerErr
}

func (m *mockService) ListAccounts(_ context.Context) ([]domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	return m.accounts, m.accountsErr
}

func (m *mockService) CreateAccount(_ context.Context, name string, _ domain.AccountType) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.createArgs = append(m.createArgs, name)
	return m.createID, m.createErr
}

func (m *mockService) DeleteAccount(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteIDs = append(m.deleteIDs, id)
	return m.deleteErr
}

func (m *mockService) UpdateHistory(_ context.Context, _ int, h domain.MonthlyHistory) (domain.MonthlyHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, h)
	if m.updateErr != nil {
		return domain.MonthlyHistory{}, m.updateErr
	}
	return h, nil
}

var _ api.Service = (*mockService)(nil)

// newTestDeps builds a fully wired dependency bundle around a mock.
func newTestDeps(svc api.Service, token string) deps {
	session := api.NewEphemeralSession(token)
	return deps{
		svc:      svc,
		session:  session,
		router:   nav.NewRouter(session),
		notices:  notice.NewManager(),
		refresh:  bus.New(),
		currency: "R",
	}
}

func savingAccount() domain.Account {
	return domain.Account{
		ID:      7,
		OwnerID: 1,
		Name:    "Emergency Fund",
		Type:    domain.AccountSaving,
		MonthlyHistory: []domain.MonthlyHistory{
			{MonthKey: "2026-06", OpeningBalance: 100, Contribution: 50, ClosingBalance: 150, ExchangeRate: 1},
			{MonthKey: "2026-07", OpeningBalance: 150, Contribution: 50, ClosingBalance: 200, ExchangeRate: 1.5},
		},
	}
}

func loanAccount() domain.Account {
	ir := 11.25
	terms := 18
	return domain.Account{
		ID:      9,
		OwnerID: 1,
		Name:    "Car Loan",
		Type:    domain.AccountLoan,
		MonthlyHistory: []domain.MonthlyHistory{
			{MonthKey: "2026-07", OpeningBalance: 9000, Contribution: -500, ClosingBalance: 8500, ExchangeRate: 1, InterestRate: &ir, TermsLeft: &terms},
		},
	}
}

var testNow = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

var errConnRefused = errors.New("connection refused")
