// Package bus carries the refresh broadcast: "the account list is
// stale, refetch it". Mutating operations publish; the accounts screen
// subscribes. The bus is passed to exactly the screens that need it.
package bus

import "sync"

// Bus is a single-topic broadcast. Publish never blocks: each
// subscriber channel has capacity one and coalesces pending signals.
type Bus struct {
	mu   sync.Mutex
	subs []chan struct{}
}

func New() *Bus { return &Bus{} }

// Subscribe registers a listener. The returned channel receives at
// least one signal for any burst of publishes after the last drain.
func (b *Bus) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Publish signals every subscriber without blocking.
func (b *Bus) Publish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
