package bench

import (
	"context"
	"testing"
	"time"
)

func TestLimiterGames(t *testing.T) {
	limiter := NewLimiter(DefaultLimits().SetGames(10))
	limiter.Reset()

	if !limiter.Ok(9) {
		t.Error("limiter should allow the 10th game")
	}
	if limiter.Ok(10) {
		t.Error("limiter should stop after 10 games")
	}

	limiter.EvaluateStopReason(10)
	if got := limiter.StopReason(); got != StopGames {
		t.Errorf("stop reason = %v, want %v", got, StopReason(StopGames))
	}
}

func TestLimiterMovetime(t *testing.T) {
	limiter := NewLimiter(DefaultLimits().SetMovetime(50))
	limiter.Reset()

	if !limiter.Playing() {
		t.Error("limiter should allow playing before the movetime")
	}

	time.Sleep(time.Millisecond * 60)
	if limiter.Playing() {
		t.Error("limiter should stop after the movetime")
	}

	limiter.EvaluateStopReason(1)
	if got := limiter.StopReason(); got != StopMovetime {
		t.Errorf("stop reason = %v, want Movetime", got)
	}

	limiter.Reset()
	if !limiter.Playing() {
		t.Error("reset should restart the clock")
	}
}

func TestLimiterContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	limiter := NewLimiter(DefaultLimits())
	limiter.SetContext(ctx)
	limiter.Reset()

	if limiter.Stop() {
		t.Error("limiter stopped before cancellation")
	}
	cancel()
	if !limiter.Stop() || limiter.Ok(0) {
		t.Error("limiter should stop after cancellation")
	}

	limiter.EvaluateStopReason(0)
	if got := limiter.StopReason().String(); got != "Interrupt" {
		t.Errorf("stop reason = %s, want Interrupt", got)
	}
	if got := StopReason(StopInterrupt | StopGames).String(); got != "Interrupt|Games" {
		t.Errorf("combined stop reason = %s", got)
	}
}
