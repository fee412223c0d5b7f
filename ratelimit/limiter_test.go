package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLimiterConsumeWithinCapacity(t *testing.T) {
	l := NewLimiter(5, time.Hour)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if err := l.Acquire(ctx, 1); err != nil {
			t.Fatalf("acquire %d: %v", i, err)
		}
	}
	if got := l.Available(); got != 0 {
		t.Fatalf("available = %d, want 0", got)
	}
}

func TestLimiterAcquireBlocksUntilRefill(t *testing.T) {
	l := NewLimiter(1, 20*time.Millisecond)
	ctx := context.Background()
	if err := l.Acquire(ctx, 1); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	start := time.Now()
	if err := l.Acquire(ctx, 1); err != nil {
		t.Fatalf("second acquire: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("second acquire returned too quickly: %v", elapsed)
	}
}

func TestLimiterAcquireCancelDoesNotConsume(t *testing.T) {
	l := NewLimiter(1, time.Hour)
	ctx := context.Background()
	if err := l.Acquire(ctx, 1); err != nil {
		t.Fatalf("first acquire: %v", err)
	}

	cancelCtx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Acquire(cancelCtx, 1); err == nil {
		t.Fatalf("expected cancellation error")
	}

	// Bucket should still be empty — canceling must not have granted or
	// lost a token.
	if got := l.Available(); got != 0 {
		t.Fatalf("available = %d, want 0 after canceled acquire", got)
	}
}

func TestClassify(t *testing.T) {
	cases := map[string]CommandClass{
		"JOIN":    ClassJoinPart,
		"part":    ClassJoinPart,
		"PRIVMSG": ClassPrivmsg,
		"WHISPER": ClassWhisper,
		"BAN":     ClassModeration,
		"SLOW":    ClassModeration,
		"COLOR":   ClassOther,
	}
	for cmd, want := range cases {
		if got := Classify(cmd); got != want {
			t.Fatalf("Classify(%q) = %v, want %v", cmd, got, want)
		}
	}
}

func TestNewLimitersAcquireByCommand(t *testing.T) {
	l := NewLimiters(Regular)
	ctx := context.Background()
	if err := l.Acquire(ctx, "JOIN"); err != nil {
		t.Fatalf("acquire join: %v", err)
	}
	if got := l.JoinPart.Available(); got != 49 {
		t.Fatalf("join/part available = %d, want 49", got)
	}
	if got := l.Privmsg.Available(); got != Regular.Tickets() {
		t.Fatalf("privmsg available = %d, want untouched", got)
	}
}

func TestRateClassTickets(t *testing.T) {
	cases := map[RateClass]uint64{
		Regular:   20,
		Moderator: 100,
		Known:     50,
		Verified:  7500,
	}
	for class, want := range cases {
		if got := class.Tickets(); got != want {
			t.Fatalf("Tickets(%v) = %d, want %d", class, got, want)
		}
	}
}
