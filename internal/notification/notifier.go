// Package notification keeps transient toasts visible for a fixed duration.
package notification

import (
	"sync"
	"time"

	"task-dashboard/internal/model"
)

// DefaultDuration is how long a toast stays up unless dismissed.
const DefaultDuration = 3000 * time.Millisecond

type slot struct {
	visible bool
	gen     uint64
	timer   *time.Timer
}

// Notifier runs one cancellable one-shot timer per kind.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration
	slots    map[model.NotificationKind]*slot
	onChange func(kind model.NotificationKind, visible bool)
}

// New creates a Notifier. A non-positive duration falls back to DefaultDuration.
func New(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{
		duration: duration,
		slots:    make(map[model.NotificationKind]*slot),
	}
}

// OnChange registers fn to be called after every visibility change,
// including expiry. fn runs outside the Notifier lock.
func (n *Notifier) OnChange(fn func(kind model.NotificationKind, visible bool)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Duration returns the auto-hide duration.
func (n *Notifier) Duration() time.Duration { return n.duration }

// Show makes kind visible and (re)starts its timer.
func (n *Notifier) Show(kind model.NotificationKind) {
	n.mu.Lock()
	s := n.slot(kind)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.visible = true
	s.timer = time.AfterFunc(n.duration, func() { n.expire(kind, gen) })
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(kind, true)
	}
}

// Dismiss hides kind and cancels its timer. It reports whether the
// notification was visible.
func (n *Notifier) Dismiss(kind model.NotificationKind) bool {
	n.mu.Lock()
	s := n.slot(kind)
	wasVisible := s.visible
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	s.visible = false
	fn := n.onChange
	n.mu.Unlock()

	if wasVisible && fn != nil {
		fn(kind, false)
	}
	return wasVisible
}

// Visible reports whether kind is currently shown.
func (n *Notifier) Visible(kind model.NotificationKind) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	s, ok := n.slots[kind]
	return ok && s.visible
}

// Stop cancels every pending timer.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, s := range n.slots {
		if s.timer != nil {
			s.timer.Stop()
			s.timer = nil
		}
		s.gen++
	}
}

// expire hides kind unless it was re-shown or dismissed after gen was issued.
func (n *Notifier) expire(kind model.NotificationKind, gen uint64) {
	n.mu.Lock()
	s := n.slot(kind)
	if s.gen != gen || !s.visible {
		n.mu.Unlock()
		return
	}
	s.visible = false
	s.timer = nil
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn(kind, false)
	}
}

func (n *Notifier) slot(kind model.NotificationKind) *slot {
	s, ok := n.slots[kind]
	if !ok {
		s = &slot{}
		n.slots[kind] = s
	}
	return s
}
