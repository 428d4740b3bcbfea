package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heelin/finfolio/internal/api"
)

func TestLoginSubmitDisabledForShortUsername(t *testing.T) {
	t.Parallel()
	s := newLoginScreen(newTestDeps(&mockService{}, ""))

	s.SetUsername("abcde")
	require.True(t, s.SubmitDisabled())
	require.Nil(t, s.Submit())

	s.SetUsername("abcdef")
	require.False(t, s.SubmitDisabled())
}

func TestLoginSuccessStoresTokenAndNavigates(t *testing.T) {
	t.Parallel()
	svc := &mockService{
		loginResp: api.TokenResponse{
			User:  api.UserInfo{ID: 42},
			Token: "TEST_AUTH_TOKEN_12345",
		},
	}
	d := newTestDeps(svc, "")
	s := newLoginScreen(d)

	s.SetUsername("validuser")
	cmd := s.Submit()
	require.NotNil(t, cmd)
	require.True(t, s.Loading())

	msg, ok := cmd().(loginDoneMsg)
	require.True(t, ok)
	require.Equal(t, []string{"validuser"}, svc.loginCalls)
	require.Nil(t, s.HandleLoginDone(msg))

	require.False(t, s.Loading())
	require.Equal(t, "TEST_AUTH_TOKEN_12345", d.session.Token())
	require.True(t, d.router.Authenticated())
	_, toastUp := d.notices.Toast()
	require.False(t, toastUp, "a successful login shows no toast")
}

func TestLoginFailureKeepsInputAndShowsToast(t *testing.T) {
	t.Parallel()
	svc := &mockService{loginErr: &api.StatusError{Code: 401}}
	d := newTestDeps(svc, "")
	s := newLoginScreen(d)

	s.SetUsername("validuser")
	cmd := s.Submit()
	require.NotNil(t, cmd)

	expire := s.HandleLoginDone(cmd().(loginDoneMsg))
	require.NotNil(t, expire)

	require.False(t, s.Loading())
	require.Empty(t, d.session.Token())
	require.False(t, d.router.Authenticated())
	toast, ok := d.notices.Toast()
	require.True(t, ok)
	require.Equal(t, "Login Failed.", toast.Message)
}

func TestLoginSecondSubmitWhileLoadingIsNoop(t *testing.T) {
	t.Parallel()
	svc := &mockService{}
	s := newLoginScreen(newTestDeps(svc, ""))

	s.SetUsername("validuser")
	first := s.Submit()
	require.NotNil(t, first)
	require.Nil(t, s.Submit())
	first()
	require.Len(t, svc.loginCalls, 1)
}
