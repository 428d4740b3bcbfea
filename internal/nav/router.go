// Package nav owns navigation state: the authenticated flag, the
// destination stack and the single-occupancy sheet and modal slots.
// Transient notices (toasts, alerts) live in the notice package and
// the refresh broadcast in the bus package; the three are composed at
// the top level rather than folded into one coordinator.
package nav

import "github.com/heelin/finfolio/internal/api"

// Stack is a plain destination stack.
type Stack struct {
	items []Destination
}

func (s *Stack) Push(d Destination) {
	s.items = append(s.items, d)
}

func (s *Stack) Pop() (Destination, bool) {
	if len(s.items) == 0 {
		return Destination{}, false
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last, true
}

func (s *Stack) Top() (Destination, bool) {
	if len(s.items) == 0 {
		return Destination{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack) Len() int { return len(s.items) }

func (s *Stack) Reset() { s.items = nil }

// Router tracks where the app is: root destination, stack, and at most
// one active sheet and one active modal.
type Router struct {
	session       *api.Session
	authenticated bool
	stack         Stack
	sheet         *Destination
	modal         *Destination
}

func NewRouter(session *api.Session) *Router {
	return &Router{
		session:       session,
		authenticated: session.Authenticated(),
	}
}

// Navigate applies one destination. Alert destinations are not handled
// here; the notice manager owns them.
func (r *Router) Navigate(d Destination) {
	switch d.Kind {
	case KindLogin:
		_ = r.session.Clear()
		r.authenticated = false
		r.stack.Reset()
		r.sheet = nil
		r.modal = nil
	case KindUserAccounts:
		// ignored when no token is held
		if !r.session.Authenticated() {
			return
		}
		r.authenticated = true
		r.stack.Reset()
	case KindSheet:
		r.sheet = d.Inner
	case KindModal:
		r.modal = d.Inner
	default:
		r.stack.Push(d)
	}
}

func (r *Router) Authenticated() bool { return r.authenticated }

// Sheet returns the active sheet destination, if any.
func (r *Router) Sheet() (Destination, bool) {
	if r.sheet == nil {
		return Destination{}, false
	}
	return *r.sheet, true
}

// Modal returns the active modal destination, if any.
func (r *Router) Modal() (Destination, bool) {
	if r.modal == nil {
		return Destination{}, false
	}
	return *r.modal, true
}

func (r *Router) DismissSheet() { r.sheet = nil }

func (r *Router) DismissModal() { r.modal = nil }

func (r *Router) StackLen() int { return r.stack.Len() }
