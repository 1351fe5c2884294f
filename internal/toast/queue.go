// Package toast keeps the transient, auto-expiring status messages
// emitted after user actions.
package toast

import (
	"sync"
	"time"

	"github.com/tokoku/storefront/internal/models"
)

// Queue holds live toasts. Every message runs its own two-step
// lifecycle: after the dwell duration it fades, after dwell+fade it is
// evicted. Messages are never deduplicated and never discarded early.
type Queue struct {
	mu     sync.Mutex
	clock  Clock
	dwell  time.Duration
	fade   time.Duration
	nextID int64
	toasts []*models.Toast
}

func NewQueue(clock Clock, dwell, fade time.Duration) *Queue {
	return &Queue{
		clock: clock,
		dwell: dwell,
		fade:  fade,
	}
}

// Enqueue appends a visible toast and schedules its fade and eviction.
// Two toasts with identical text live independent lifecycles.
func (q *Queue) Enqueue(text string) models.Toast {
	q.mu.Lock()
	q.nextID++
	toast := &models.Toast{
		ID:        q.nextID,
		Text:      text,
		CreatedAt: q.clock.Now(),
		State:     models.ToastVisible,
	}
	q.toasts = append(q.toasts, toast)
	// snapshot before the timers can fire and mutate the state
	snapshot := *toast
	q.mu.Unlock()

	id := snapshot.ID
	q.clock.AfterFunc(q.dwell, func() { q.fadeOut(id) })
	q.clock.AfterFunc(q.dwell+q.fade, func() { q.remove(id) })

	return snapshot
}

// Active returns the toasts still on screen, in insertion order.
func (q *Queue) Active() []models.Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		out = append(out, *t)
	}
	return out
}

func (q *Queue) fadeOut(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, t := range q.toasts {
		if t.ID == id && t.State == models.ToastVisible {
			t.State = models.ToastFadingOut
			return
		}
	}
}

func (q *Queue) remove(id int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, t := range q.toasts {
		if t.ID == id {
			t.State = models.ToastRemoved
			q.toasts = append(q.toasts[:i], q.toasts[i+1:]...)
			return
		}
	}
}
