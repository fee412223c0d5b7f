// Package ratelimit implements the token-bucket limiter that throttles
// outgoing commands to Twitch's documented per-class rates.
package ratelimit

import (
	"time"
)

// RateClass is one of Twitch's documented PRIVMSG rate tiers.
type RateClass int

const (
	// Regular is the default tier for any authenticated user: 20
	// messages per 30 seconds.
	Regular RateClass = iota
	// Moderator applies to accounts with moderator status in the target
	// channel: 100 messages per 30 seconds.
	Moderator
	// Known applies to "known" bots Twitch has allow-listed: 50 messages
	// per 30 seconds.
	Known
	// Verified applies to Twitch-verified bots: 7500 messages per 30
	// seconds.
	Verified
)

// Period is the refill window Twitch documents for every RateClass.
const Period = 30 * time.Second

// Tickets returns the number of tokens a full bucket holds for this class.
func (c RateClass) Tickets() uint64 {
	switch c {
	case Moderator:
		return 100
	case Known:
		return 50
	case Verified:
		return 7500
	default:
		return 20
	}
}

// bucket is a token-bucket store: tokens refill in whole
// periods, not continuously, matching Twitch's documented windowing.
type bucket struct {
	tokens  uint64
	cap     uint64
	quantum uint64
	period  time.Duration
	next    time.Time
	last    time.Time
}

func newBucket(cap, initial uint64, period time.Duration, now time.Time) *bucket {
	return &bucket{
		tokens:  initial,
		cap:     cap,
		quantum: cap,
		period:  period,
		next:    now.Add(period),
		last:    now,
	}
}

func (b *bucket) refill(now time.Time) {
	if now.Before(b.next) {
		return
	}
	elapsed := now.Sub(b.last)
	periods := uint64(elapsed / b.period)
	if periods == 0 {
		return
	}
	b.last = b.last.Add(b.period * time.Duration(periods))
	b.next = b.last.Add(b.period)
	refilled := periods * b.quantum
	if b.tokens+refilled > b.cap {
		b.tokens = b.cap
	} else {
		b.tokens += refilled
	}
}

// consume attempts to take n tokens as of now. On success it returns the
// remaining token count and true. On failure it returns the duration the
// caller must wait before retrying and false; no tokens are deducted.
func (b *bucket) consume(n uint64, now time.Time) (uint64, time.Duration, bool) {
	b.refill(now)
	if n <= b.tokens {
		b.tokens -= n
		return b.tokens, 0, true
	}
	return 0, b.estimate(n-b.tokens, now), false
}

func (b *bucket) estimate(short uint64, now time.Time) time.Duration {
	until := b.next.Sub(now)
	if until < 0 {
		until = 0
	}
	periods := (short + b.quantum - 1) / b.quantum
	if periods == 0 {
		return until
	}
	return until + b.period*time.Duration(periods-1)
}

func (b *bucket) setCap(cap uint64) {
	b.cap = cap
	b.quantum = cap
}

func (b *bucket) setPeriod(period time.Duration) {
	b.period = period
}
