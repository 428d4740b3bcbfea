package tui

import (
	"github.com/heelin/finfolio/internal/api"
	"github.com/heelin/finfolio/internal/bus"
	"github.com/heelin/finfolio/internal/nav"
	"github.com/heelin/finfolio/internal/notice"
)

// deps carries the capabilities screens are built with. Each screen
// receives the whole bundle but uses only what it needs; nothing is
// reached through globals or runtime casts.
type deps struct {
	svc      api.Service
	session  *api.Session
	router   *nav.Router
	notices  *notice.Manager
	refresh  *bus.Bus
	currency string
}
