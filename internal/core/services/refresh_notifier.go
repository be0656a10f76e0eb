package services

import (
	"sync"
	"time"
)

// RefreshTrigger is what mutating services call after a successful snapshot
// change. A nil-safe no-op implementation is used in tests.
type RefreshTrigger interface {
	Notify()
}

// RefreshNotifier collapses bursts of snapshot mutations into a single
// recomputation trigger: each Notify resets a quiet-period timer, and
// subscribers run once after the burst settles. Subscribers run on a single
// goroutine per firing, in subscription order.
type RefreshNotifier struct {
	mu          sync.Mutex
	delay       time.Duration
	timer       *time.Timer
	subscribers []func()
	stopped     bool
}

// NewRefreshNotifier creates a notifier with the given quiet period.
func NewRefreshNotifier(delay time.Duration) *RefreshNotifier {
	return &RefreshNotifier{delay: delay}
}

// Subscribe registers a callback to run after each settled burst.
func (n *RefreshNotifier) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subscribers = append(n.subscribers, fn)
}

// Notify schedules a refresh after the quiet period, resetting any pending
// schedule. Safe for concurrent use.
func (n *RefreshNotifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.stopped {
		return
	}
	if n.timer != nil {
		n.timer.Stop()
	}
	n.timer = time.AfterFunc(n.delay, n.fire)
}

func (n *RefreshNotifier) fire() {
	n.mu.Lock()
	subs := make([]func(), len(n.subscribers))
	copy(subs, n.subscribers)
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Stop cancels any pending refresh and ignores further notifications.
func (n *RefreshNotifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopped = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
