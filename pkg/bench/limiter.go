package bench

import (
	"context"
	"sync/atomic"
	"time"
)

type StopReason int

const (
	StopNone      StopReason = iota
	StopInterrupt            = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime             = 2 // Time limit reached
	StopGames                = 4 // All games played
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopGames, "Games"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Shared by all arena workers, decides when to stop playing
type Limiter struct {
	limits   *Limits
	start    time.Time
	duration time.Duration
	stop     atomic.Bool
	reason   StopReason
	ctx      context.Context
}

func NewLimiter(limits *Limits) *Limiter {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Limiter{
		limits:   limits,
		start:    time.Now(),
		duration: -1,
		ctx:      context.Background(),
	}
}

func (l *Limiter) Reset() {
	l.start = time.Now()
	l.stop.Store(false)
	l.reason = StopNone

	if l.limits.Movetime < 0 {
		l.duration = -1
	} else {
		l.duration = time.Duration(l.limits.Movetime) * time.Millisecond
	}
}

func (l *Limiter) SetContext(ctx context.Context) {
	l.ctx = ctx
}

func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

// Wheter the run was interrupted, also polls the context
func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed time in ms since the last 'Reset', at least 1
func (l *Limiter) Elapsed() int {
	return max(int(time.Since(l.start).Milliseconds()), 1)
}

func (l *Limiter) timeUp() bool {
	return l.duration >= 0 && time.Since(l.start) >= l.duration
}

// Whether the current game may continue with another round
func (l *Limiter) Playing() bool {
	return !l.Stop() && !l.timeUp()
}

// Whether another game may start, given the number of games already played
func (l *Limiter) Ok(played int) bool {
	return l.Playing() && played < l.limits.Games
}

// Evaluate stop reason based on current state, and set it internally,
// called once after all workers finished
func (l *Limiter) EvaluateStopReason(played int) {
	reason := StopNone
	if l.Stop() {
		reason |= StopInterrupt
	}
	if l.timeUp() {
		reason |= StopMovetime
	}
	if played >= l.limits.Games {
		reason |= StopGames
	}
	l.reason = reason
}

func (l *Limiter) StopReason() StopReason {
	return l.reason
}
