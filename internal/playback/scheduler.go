package playback

import (
	"sync"
	"time"
)

// TimerKind keys the advancement-triggering timers. At most one timer of a
// given kind may be pending; scheduling a new one first cancels the previous
// instance so a stale timer and a fresh trigger cannot double-advance.
type TimerKind int

const (
	// TimerGate opens the click-delay gate on dialogue scenes.
	TimerGate TimerKind = iota
	// TimerAutoAdvance advances dialogue when auto mode is on.
	TimerAutoAdvance
	// TimerTitleAdvance advances past a chapter title card.
	TimerTitleAdvance
)

func (k TimerKind) String() string {
	switch k {
	case TimerGate:
		return "gate"
	case TimerAutoAdvance:
		return "autoAdvance"
	case TimerTitleAdvance:
		return "titleAdvance"
	default:
		return "unknown"
	}
}

// Scheduler schedules and cancels the session's delayed events. All delays
// are scheduled, never spun; callbacks run outside the scheduler's own lock.
type Scheduler interface {
	Schedule(kind TimerKind, delay time.Duration, fn func())
	Cancel(kind TimerKind)
	CancelAll()
}

// TimerScheduler is the wall-clock Scheduler used outside tests.
type TimerScheduler struct {
	mu     sync.Mutex
	timers map[TimerKind]*time.Timer
}

// NewTimerScheduler returns an empty wall-clock scheduler.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[TimerKind]*time.Timer)}
}

// Schedule arms fn to run after delay, replacing any pending timer of the
// same kind.
func (s *TimerScheduler) Schedule(kind TimerKind, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[kind]; ok {
		timer.Stop()
	}
	s.timers[kind] = time.AfterFunc(delay, fn)
}

// Cancel stops the pending timer of the given kind, if any. A timer that has
// already fired cannot be recalled; callers guard against stale callbacks
// with their own scene-instance checks.
func (s *TimerScheduler) Cancel(kind TimerKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if timer, ok := s.timers[kind]; ok {
		timer.Stop()
		delete(s.timers, kind)
	}
}

// CancelAll stops every pending timer.
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for kind, timer := range s.timers {
		timer.Stop()
		delete(s.timers, kind)
	}
}
