package toast

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoku/storefront/internal/models"
)

// fakeClock drives the queue with virtual time.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.stopped = true
	return !t.fired
}

// Advance moves virtual time forward and fires due timers in
// chronological order, matching insertion order for equal deadlines.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	due := make([]*fakeTimer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.fired && !t.stopped && !t.at.After(c.now) {
			due = append(due, t)
		}
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	c.mu.Unlock()

	for _, t := range due {
		t.fired = true
		t.fn()
	}
}

// eagerClock fires every timer synchronously inside AfterFunc.
type eagerClock struct{}

type firedTimer struct{}

func (eagerClock) Now() time.Time { return time.Unix(1700000000, 0) }

func (eagerClock) AfterFunc(d time.Duration, fn func()) Timer {
	fn()
	return firedTimer{}
}

func (firedTimer) Stop() bool { return false }

const (
	dwell = 3 * time.Second
	fade  = 500 * time.Millisecond
)

func TestToastLifecycle(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(clock, dwell, fade)

	created := q.Enqueue("Shirt... ditambahkan ke keranjang!")
	assert.Equal(t, models.ToastVisible, created.State)
	assert.Equal(t, clock.Now(), created.CreatedAt)

	active := q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, models.ToastVisible, active[0].State)

	// still visible just before the dwell elapses
	clock.Advance(dwell - time.Millisecond)
	assert.Equal(t, models.ToastVisible, q.Active()[0].State)

	// fading after the dwell
	clock.Advance(time.Millisecond)
	require.Len(t, q.Active(), 1)
	assert.Equal(t, models.ToastFadingOut, q.Active()[0].State)

	// evicted after dwell+fade, never revisited
	clock.Advance(fade)
	assert.Empty(t, q.Active())
	clock.Advance(time.Hour)
	assert.Empty(t, q.Active())
}

func TestEnqueueReturnsVisibleSnapshot(t *testing.T) {
	t.Parallel()

	// with zero durations both timers run before Enqueue returns; the
	// returned toast must still be the enqueued visible value
	q := NewQueue(eagerClock{}, 0, 0)
	created := q.Enqueue("instant")

	assert.Equal(t, models.ToastVisible, created.State)
	assert.Equal(t, "instant", created.Text)
	assert.Empty(t, q.Active())
}

func TestToastOrderIsStrict(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(clock, dwell, fade)
	q.Enqueue("first")

	// jumping straight past dwell+fade still walks visible->fading->removed
	clock.Advance(dwell + fade)
	assert.Empty(t, q.Active())
}

func TestNoDeduplication(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(clock, dwell, fade)

	first := q.Enqueue("Keranjang belanja kosong")
	clock.Advance(dwell) // first starts fading
	second := q.Enqueue("Keranjang belanja kosong")

	assert.NotEqual(t, first.ID, second.ID)

	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, models.ToastFadingOut, active[0].State)
	assert.Equal(t, models.ToastVisible, active[1].State)

	// first evicts on its own schedule, second stays
	clock.Advance(fade)
	active = q.Active()
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestInsertionOrderPreserved(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	q := NewQueue(clock, dwell, fade)
	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	active := q.Active()
	require.Len(t, active, 3)
	assert.Equal(t, "a", active[0].Text)
	assert.Equal(t, "b", active[1].Text)
	assert.Equal(t, "c", active[2].Text)
}
