package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heelin/finfolio/internal/api"
	"github.com/heelin/finfolio/internal/domain"
	"github.com/heelin/finfolio/internal/nav"
)

func TestAccountFormSuccessClosesSheetAndSignalsRefresh(t *testing.T) {
	t.Parallel()
	svc := &mockService{createID: 3}
	d := newTestDeps(svc, "tok")
	d.router.Navigate(nav.Sheet(nav.AddAccount()))
	sub := d.refresh.Subscribe()

	s := newAccountFormScreen(d)
	s.SetName("Holiday Fund")
	s.SetType(domain.AccountLoan)

	cmd := s.Submit()
	require.NotNil(t, cmd)
	require.True(t, s.Loading())

	require.NotNil(t, s.HandleCreated(cmd().(accountCreatedMsg)))

	_, sheetUp := d.router.Sheet()
	require.False(t, sheetUp)
	toast, ok := d.notices.Toast()
	require.True(t, ok)
	require.Equal(t, "Account created successfully!", toast.Message)

	select {
	case <-sub:
	default:
		t.Fatal("expected one refresh signal")
	}
	select {
	case <-sub:
		t.Fatal("expected exactly one refresh signal")
	default:
	}
}

func TestAccountFormFailureClosesSheetWithoutRefresh(t *testing.T) {
	t.Parallel()
	svc := &mockService{createErr: &api.Failure{Message: "duplicate name"}}
	d := newTestDeps(svc, "tok")
	d.router.Navigate(nav.Sheet(nav.AddAccount()))
	sub := d.refresh.Subscribe()

	s := newAccountFormScreen(d)
	s.SetName("Holiday Fund")

	cmd := s.Submit()
	require.NotNil(t, cmd)
	require.NotNil(t, s.HandleCreated(cmd().(accountCreatedMsg)))

	_, sheetUp := d.router.Sheet()
	require.False(t, sheetUp, "the sheet closes on failure too")
	toast, ok := d.notices.Toast()
	require.True(t, ok)
	require.Equal(t, "Account not created! Please try again.", toast.Message)

	select {
	case <-sub:
		t.Fatal("a failed create must not signal refresh")
	default:
	}
}

func TestAccountFormEmptyNameDisabled(t *testing.T) {
	t.Parallel()
	s := newAccountFormScreen(newTestDeps(&mockService{}, "tok"))
	require.True(t, s.SubmitDisabled())
	require.Nil(t, s.Submit())
}
