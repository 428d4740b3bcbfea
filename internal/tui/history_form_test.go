package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heelin/finfolio/internal/domain"
	"github.com/heelin/finfolio/internal/nav"
)

func TestHistoryFormDisabledUntilSomethingChanges(t *testing.T) {
	t.Parallel()
	s := newHistoryFormScreen(newTestDeps(&mockService{}, "tok"), savingAccount(), testNow)

	// freshly loaded month, nothing edited yet
	require.True(t, s.SubmitDisabled())
	require.Nil(t, s.Submit())

	s.SetField(fieldContribution, "75.00")
	require.True(t, s.HasChanges())
	require.False(t, s.SubmitDisabled())
}

func TestHistoryFormRoundedEqualityIsNoChange(t *testing.T) {
	t.Parallel()
	s := newHistoryFormScreen(newTestDeps(&mockService{}, "tok"), savingAccount(), testNow)

	// picker starts on 2026-07, which has a recorded entry with
	// contribution 50. A value that rounds back to 50.00 is no change.
	require.Equal(t, "2026-07", s.SelectedMonth().MonthKey)
	s.SetField(fieldContribution, "50.001")
	require.False(t, s.HasChanges())
	require.True(t, s.SubmitDisabled())
}

func TestHistoryFormParseFailureDisablesSave(t *testing.T) {
	t.Parallel()
	s := newHistoryFormScreen(newTestDeps(&mockService{}, "tok"), savingAccount(), testNow)

	s.SetField(fieldOpening, "not-a-number")
	require.True(t, s.SubmitDisabled())
	require.Nil(t, s.Submit())
}

func TestHistoryFormLoanCarriesLoanFields(t *testing.T) {
	t.Parallel()
	svc := &mockService{}
	s := newHistoryFormScreen(newTestDeps(svc, "tok"), loanAccount(), testNow)

	require.Equal(t, "2026-07", s.SelectedMonth().MonthKey)
	s.SetField(fieldInterest, "10.50")
	s.SetField(fieldTerms, "17")

	cmd := s.Submit()
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, svc.updates, 1)
	saved := svc.updates[0]
	require.NotNil(t, saved.InterestRate)
	require.InDelta(t, 10.5, *saved.InterestRate, 1e-9)
	require.NotNil(t, saved.TermsLeft)
	require.Equal(t, 17, *saved.TermsLeft)
}

func TestHistoryFormSavingOmitsLoanFields(t *testing.T) {
	t.Parallel()
	svc := &mockService{}
	s := newHistoryFormScreen(newTestDeps(svc, "tok"), savingAccount(), testNow)

	s.SetField(fieldClosing, "225.50")
	cmd := s.Submit()
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, svc.updates, 1)
	require.Nil(t, svc.updates[0].InterestRate)
	require.Nil(t, svc.updates[0].TermsLeft)
}

func TestHistoryFormSuccessClosesSheetAndSignalsRefresh(t *testing.T) {
	t.Parallel()
	svc := &mockService{}
	d := newTestDeps(svc, "tok")
	acct := savingAccount()
	d.router.Navigate(nav.Sheet(nav.UpdateAccountHistory(acct)))
	sub := d.refresh.Subscribe()

	s := newHistoryFormScreen(d, acct, testNow)
	s.SetField(fieldContribution, "80")

	cmd := s.Submit()
	require.NotNil(t, cmd)
	require.NotNil(t, s.HandleSaved(cmd().(historySavedMsg)))

	_, sheetUp := d.router.Sheet()
	require.False(t, sheetUp)
	toast, ok := d.notices.Toast()
	require.True(t, ok)
	require.Equal(t, "Account history updated successfully!", toast.Message)
	select {
	case <-sub:
	default:
		t.Fatal("expected a refresh signal after a saved entry")
	}
}

func TestHistoryFormMonthPickerExcludesCurrentMonth(t *testing.T) {
	t.Parallel()
	s := newHistoryFormScreen(newTestDeps(&mockService{}, "tok"), savingAccount(), testNow)

	require.Len(t, s.months, monthPickerSpan)
	require.Equal(t, "2026-07", s.months[0].MonthKey)
	for _, m := range s.months {
		require.NotEqual(t, "2026-08", m.MonthKey)
	}
	require.True(t, s.HistoryExists(s.months[0]))
	require.False(t, s.HistoryExists(s.months[5]))
}

func TestHistoryFormUnrecordedMonthDefaults(t *testing.T) {
	t.Parallel()
	s := newHistoryFormScreen(newTestDeps(&mockService{}, "tok"), savingAccount(), testNow)

	// step back to a month with no entry
	s.loadMonth(3)
	entry, ok := s.Entry()
	require.True(t, ok)
	require.Equal(t, domain.MonthlyHistory{
		MonthKey:     s.months[3].MonthKey,
		ExchangeRate: 1,
	}, entry)
	require.False(t, s.HasChanges())
}
