// Package notice manages transient UI notices: at most one toast and
// one confirmation alert at a time.
package notice

import (
	"time"

	"github.com/google/uuid"
)

// ToastStyle selects the toast's appearance.
type ToastStyle int

const (
	ToastSuccess ToastStyle = iota
	ToastFailure
	ToastWarning
	ToastInfo
)

// DefaultToastDuration is how long a toast stays up before expiring.
const DefaultToastDuration = 3 * time.Second

// Toast is one transient notice. ID gives each toast its own identity
// so a superseded toast's expiry timer cannot clear its successor.
type Toast struct {
	ID       uuid.UUID
	Style    ToastStyle
	Message  string
	Duration time.Duration
}

// Alert is a confirmation prompt with a primary action and an implied
// cancel. OnConfirm is handed back from Confirm for the caller to
// invoke; the manager never runs it itself.
type Alert struct {
	Title        string
	Message      string
	ConfirmLabel string
	Destructive  bool
	OnConfirm    func()
}

// Manager holds the single-occupancy toast and alert slots.
type Manager struct {
	toast *Toast
	alert *Alert
}

func NewManager() *Manager { return &Manager{} }

// PresentToast replaces the active toast and returns the new one; the
// caller schedules Expire(id) after toast.Duration.
func (m *Manager) PresentToast(style ToastStyle, message string) Toast {
	t := Toast{
		ID:       uuid.New(),
		Style:    style,
		Message:  message,
		Duration: DefaultToastDuration,
	}
	m.toast = &t
	return t
}

func (m *Manager) PresentSuccessToast(message string) Toast {
	return m.PresentToast(ToastSuccess, message)
}

func (m *Manager) PresentFailureToast(message string) Toast {
	return m.PresentToast(ToastFailure, message)
}

// Expire clears the toast only if the active one still carries this
// ID. A stale timer from a superseded toast is a no-op.
func (m *Manager) Expire(id uuid.UUID) {
	if m.toast != nil && m.toast.ID == id {
		m.toast = nil
	}
}

// Toast returns the active toast, if any.
func (m *Manager) Toast() (Toast, bool) {
	if m.toast == nil {
		return Toast{}, false
	}
	return *m.toast, true
}

// PresentAlert replaces the active alert.
func (m *Manager) PresentAlert(a Alert) {
	if a.ConfirmLabel == "" {
		a.ConfirmLabel = "OK"
	}
	m.alert = &a
}

// Alert returns the active alert, if any.
func (m *Manager) Alert() (Alert, bool) {
	if m.alert == nil {
		return Alert{}, false
	}
	return *m.alert, true
}

// Confirm dismisses the alert and returns its primary action for the
// caller to invoke. Returns nil when no alert is active.
func (m *Manager) Confirm() func() {
	if m.alert == nil {
		return nil
	}
	action := m.alert.OnConfirm
	m.alert = nil
	return action
}

// DismissAlert clears the alert without confirming.
func (m *Manager) DismissAlert() { m.alert = nil }
