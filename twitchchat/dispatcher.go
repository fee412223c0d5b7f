package twitchchat

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/museun/twitchchat-go/command"
	"github.com/museun/twitchchat-go/irc"
)

// queue is an unbounded, drop-safe FIFO used as the backing store for one
// subscriber: push never blocks the sender, and a slow consumer only grows
// its own queue rather than stalling other subscribers or the publisher.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	signal chan struct{}
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{signal: make(chan struct{})}
}

func (q *queue[T]) push(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append(q.items, v)
	close(q.signal)
	q.signal = make(chan struct{})
}

func (q *queue[T]) pop(ctx context.Context) (T, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			v := q.items[0]
			q.items = q.items[1:]
			q.mu.Unlock()
			return v, true
		}
		if q.closed {
			q.mu.Unlock()
			var zero T
			return zero, false
		}
		wait := q.signal
		q.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			var zero T
			return zero, false
		}
	}
}

func (q *queue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.signal)
}

// pushFront inserts v ahead of every item currently queued. Used to jump a
// PONG ahead of pending writer submissions.
func (q *queue[T]) pushFront(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.items = append([]T{v}, q.items...)
	close(q.signal)
	q.signal = make(chan struct{})
}

// receiver is the type-erased side of a subscription, letting Dispatcher
// hold heterogeneous Subscription[T] instances in one slice per event type.
type receiver interface {
	deliver(v any)
	closed() bool
	close()
}

type handle[T any] struct {
	q          *queue[T]
	closedFlag atomic.Bool
}

func newHandle[T any]() *handle[T] {
	return &handle[T]{q: newQueue[T]()}
}

func (h *handle[T]) deliver(v any) {
	if h.closedFlag.Load() {
		return
	}
	val, ok := v.(T)
	if !ok {
		return
	}
	h.q.push(val)
}

func (h *handle[T]) closed() bool { return h.closedFlag.Load() }

func (h *handle[T]) close() {
	if h.closedFlag.CompareAndSwap(false, true) {
		h.q.close()
	}
}

// Subscription is one receiver of events of type T, returned by Subscribe,
// SubscribeRaw, or SubscribeAll. Next offers a blocking-iterator style; C
// offers a channel for select/range-based consumption. Use one style per
// Subscription, not both concurrently — they share the same backing queue.
type Subscription[T any] struct {
	h *handle[T]

	chOnce sync.Once
	ch     chan T
	stopCh chan struct{}
}

// Next blocks until an event arrives, ctx is done, or the dispatcher
// closes. The second return value is false on cancellation or end-of-stream.
func (s *Subscription[T]) Next(ctx context.Context) (T, bool) {
	return s.h.q.pop(ctx)
}

// C returns a channel that yields this subscription's events in arrival
// order and closes on end-of-stream. The channel is created lazily on
// first call.
func (s *Subscription[T]) C() <-chan T {
	s.chOnce.Do(func() {
		s.ch = make(chan T)
		s.stopCh = make(chan struct{})
		go func() {
			defer close(s.ch)
			for {
				v, ok := s.h.q.pop(context.Background())
				if !ok {
					return
				}
				select {
				case s.ch <- v:
				case <-s.stopCh:
					return
				}
			}
		}()
	})
	return s.ch
}

// Unsubscribe stops delivery to this subscription and unblocks any pending
// Next or C consumer with end-of-stream. Safe to call more than once.
func (s *Subscription[T]) Unsubscribe() {
	s.h.close()
	if s.stopCh != nil {
		select {
		case <-s.stopCh:
		default:
			close(s.stopCh)
		}
	}
}

// Dispatcher fans decoded events out to subscribers, grouped by concrete
// event type, plus two catch-all channels: Raw (every decoded frame, before
// typing) and All (every typed event as the command.Any sum type). Dispatch
// order for one frame is raw, then its specific type, then all; frames are
// delivered to every subscriber in the order they arrived on the wire.
type Dispatcher struct {
	mu     sync.Mutex
	byType map[reflect.Type][]receiver
	raw    []receiver
	all    []receiver
	closed bool
}

// NewDispatcher constructs an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{byType: make(map[reflect.Type][]receiver)}
}

// Subscribe registers a new receiver for events of concrete type T (e.g.
// command.Privmsg). T must be one of the command package's variant types
// for PublishFrame to ever deliver to it.
func Subscribe[T any](d *Dispatcher) *Subscription[T] {
	h := newHandle[T]()
	t := reflect.TypeOf((*T)(nil)).Elem()

	d.mu.Lock()
	if d.closed {
		h.close()
	} else {
		d.byType[t] = append(d.byType[t], h)
	}
	d.mu.Unlock()

	return &Subscription[T]{h: h}
}

// SubscribeRaw registers a receiver for every decoded frame, typed or not.
func SubscribeRaw(d *Dispatcher) *Subscription[irc.OwnedFrame] {
	h := newHandle[irc.OwnedFrame]()
	d.mu.Lock()
	if d.closed {
		h.close()
	} else {
		d.raw = append(d.raw, h)
	}
	d.mu.Unlock()
	return &Subscription[irc.OwnedFrame]{h: h}
}

// SubscribeAll registers a receiver for every typed event as command.Any.
func SubscribeAll(d *Dispatcher) *Subscription[command.Any] {
	h := newHandle[command.Any]()
	d.mu.Lock()
	if d.closed {
		h.close()
	} else {
		d.all = append(d.all, h)
	}
	d.mu.Unlock()
	return &Subscription[command.Any]{h: h}
}

// WaitFor subscribes for a single event of type T, then unsubscribes,
// returning ctx's error (or a closed-dispatcher error) if no event arrives
// first.
func WaitFor[T any](ctx context.Context, d *Dispatcher) (T, error) {
	sub := Subscribe[T](d)
	defer sub.Unsubscribe()

	v, ok := sub.Next(ctx)
	if ok {
		return v, nil
	}
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return zero, NewError(ClientDisconnected, "dispatcher closed before matching event arrived")
}

// PublishFrame fans raw out to Raw subscribers, ev out to subscribers of
// ev's concrete type, then ev out to All subscribers, in that order.
func (d *Dispatcher) PublishFrame(raw irc.OwnedFrame, ev command.Any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.raw = sendTo(d.raw, raw)

	t := reflect.TypeOf(ev)
	d.byType[t] = sendTo(d.byType[t], ev)

	d.all = sendTo(d.all, ev)
}

// Publish delivers v to subscribers of its exact type T. Used for events
// outside the frame-decoding pipeline, such as StateEvent.
func Publish[T any](d *Dispatcher, v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	d.byType[t] = sendTo(d.byType[t], v)
}

func sendTo(hs []receiver, v any) []receiver {
	alive := hs[:0]
	for _, h := range hs {
		if h.closed() {
			continue
		}
		h.deliver(v)
		alive = append(alive, h)
	}
	return alive
}

// Close ends every subscription with end-of-stream. Further Subscribe calls
// still succeed but their subscriptions are immediately closed, matching
// the "dispatcher drop" behavior spec'd for subscriptions.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	for _, h := range d.raw {
		h.close()
	}
	for _, h := range d.all {
		h.close()
	}
	for _, hs := range d.byType {
		for _, h := range hs {
			h.close()
		}
	}
}
