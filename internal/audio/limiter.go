package audio

import (
	"sync"
	"time"
)

// limiter drops repeats of a cue that arrive inside its gap.
type limiter struct {
	mu   sync.Mutex
	last [cueCount]time.Time
	now  func() time.Time
}

func newLimiter() *limiter {
	return &limiter{now: time.Now}
}

func (l *limiter) allow(c Cue) bool {
	if c < 0 || c >= cueCount {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	t := l.now()
	if !l.last[c].IsZero() && t.Sub(l.last[c]) < cueGap[c] {
		return false
	}
	l.last[c] = t
	return true
}
