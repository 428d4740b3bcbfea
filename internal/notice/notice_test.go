package notice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToastExpiryByIdentity(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a := m.PresentSuccessToast("saved")
	b := m.PresentFailureToast("later failure")

	// toast A's timer firing after B replaced it must not clear B
	m.Expire(a.ID)
	active, ok := m.Toast()
	require.True(t, ok)
	require.Equal(t, b.ID, active.ID)
	require.Equal(t, "later failure", active.Message)

	// only B's own expiry clears the slot
	m.Expire(b.ID)
	_, ok = m.Toast()
	require.False(t, ok)

	// expiring an empty slot is a no-op
	m.Expire(b.ID)
}

func TestToastReplacesSlot(t *testing.T) {
	t.Parallel()

	m := NewManager()
	a := m.PresentToast(ToastInfo, "first")
	b := m.PresentToast(ToastWarning, "second")
	require.NotEqual(t, a.ID, b.ID)

	active, ok := m.Toast()
	require.True(t, ok)
	require.Equal(t, "second", active.Message)
	require.Equal(t, ToastWarning, active.Style)
	require.Equal(t, DefaultToastDuration, active.Duration)
}

func TestAlertConfirmHandsBackAction(t *testing.T) {
	t.Parallel()

	m := NewManager()
	ran := false
	m.PresentAlert(Alert{
		Title:       "Delete account",
		Message:     "This cannot be undone.",
		Destructive: true,
		OnConfirm:   func() { ran = true },
	})

	a, ok := m.Alert()
	require.True(t, ok)
	require.Equal(t, "OK", a.ConfirmLabel)
	require.True(t, a.Destructive)

	action := m.Confirm()
	require.NotNil(t, action)
	// the manager never invokes the action itself
	require.False(t, ran)
	action()
	require.True(t, ran)

	_, ok = m.Alert()
	require.False(t, ok)
	require.Nil(t, m.Confirm())
}

func TestAlertDismissWithoutConfirm(t *testing.T) {
	t.Parallel()

	m := NewManager()
	m.PresentAlert(Alert{Title: "t", Message: "m", OnConfirm: func() { t.Fatal("must not run") }})
	m.DismissAlert()
	_, ok := m.Alert()
	require.False(t, ok)
}
