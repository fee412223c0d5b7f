package twitchchat

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/museun/twitchchat-go/command"
	"github.com/museun/twitchchat-go/internal/conn"
	"github.com/museun/twitchchat-go/irc"
	"github.com/museun/twitchchat-go/ratelimit"
)

// idleTimeout is the inactivity window after which the runner closes the
// connection with Status::TimedOut. Twitch's connection is otherwise
// silent between PINGs, so five minutes without any bytes is a reliable
// sign the transport has gone stale.
const idleTimeout = 5 * time.Minute

// readBufferSize is the chunk size used for each transport Read call; the
// decode buffer grows independently as partial frames accumulate.
const readBufferSize = 4096

var (
	// errEOF signals the read loop observed a clean server-side close.
	errEOF = errors.New("twitchchat: eof")
	// errReconnect signals the read loop observed a RECONNECT command,
	// which this client treats the same as an orderly EOF: the caller is
	// expected to build a fresh transport and call Run again.
	errReconnect = errors.New("twitchchat: reconnect requested")
)

// RunnerOption configures a Runner at construction time.
type RunnerOption func(*Runner)

// WithLogger overrides the runner's Logger.
func WithLogger(l Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRateClass sizes the runner's PRIVMSG-class rate limiter for the
// account's documented Twitch tier. Defaults to ratelimit.Regular.
func WithRateClass(class ratelimit.RateClass) RunnerOption {
	return func(r *Runner) { r.limiters = ratelimit.NewLimiters(class) }
}

// WithDispatcher supplies a Dispatcher to publish into, letting callers
// subscribe before Run starts. A Runner constructed without this option
// builds its own.
func WithDispatcher(d *Dispatcher) RunnerOption {
	return func(r *Runner) {
		if d != nil {
			r.dispatcher = d
		}
	}
}

// Runner owns one connection's read and write halves and drives it through
// registration into steady-state operation. Build one with NewRunner, take
// its Writer and Control handles, then call Run. A Runner is single-use:
// once Run returns, build a new Runner (over a fresh Conn) to reconnect.
type Runner struct {
	conn       *conn.Conn
	cfg        *UserConfig
	logger     Logger
	dispatcher *Dispatcher
	limiters   *ratelimit.Limiters

	out      *queue[outboundFrame]
	activity chan struct{}

	// sawReconnect is only ever touched from the single read loop
	// goroutine.
	sawReconnect bool

	state  atomic.Int32
	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewRunner builds a Runner over an already-dialed transport. Dialing,
// TLS, and DNS are the caller's responsibility; see internal/conn.
func NewRunner(c *conn.Conn, cfg *UserConfig, opts ...RunnerOption) *Runner {
	r := &Runner{
		conn:       c,
		cfg:        cfg,
		logger:     noopLogger{},
		dispatcher: NewDispatcher(),
		limiters:   ratelimit.NewLimiters(ratelimit.Regular),
		out:        newQueue[outboundFrame](),
		activity:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Writer returns a handle for submitting outgoing commands. Safe to call
// and hold before Run starts; submissions before StateRunning fail with
// NotConnected.
func (r *Runner) Writer() *Writer { return &Writer{r: r} }

// Control returns a handle for stopping the runner from outside Run's
// goroutine.
func (r *Runner) Control() *Control { return &Control{r: r} }

// Dispatcher returns the event sink Run publishes decoded frames and state
// transitions into.
func (r *Runner) Dispatcher() *Dispatcher { return r.dispatcher }

// State returns the runner's current lifecycle state.
func (r *Runner) State() RunnerState { return RunnerState(r.state.Load()) }

func (r *Runner) setState(s RunnerState) {
	old := RunnerState(r.state.Swap(int32(s)))
	if old == s {
		return
	}
	Publish(r.dispatcher, StateEvent{Old: old, New: s})
}

func (r *Runner) touch() {
	select {
	case r.activity <- struct{}{}:
	default:
	}
}

// Control stops a running Runner. Dropping a Control (letting it become
// unreachable) does not stop the runner; only an explicit Stop does.
type Control struct {
	r *Runner
}

// State returns the controlled runner's current lifecycle state.
func (c *Control) State() RunnerState { return c.r.State() }

// Stop requests an orderly shutdown. Run returns Status::Canceled once the
// read and write loops have unwound. Safe to call more than once or before
// Run has started.
func (c *Control) Stop() {
	c.r.mu.Lock()
	defer c.r.mu.Unlock()
	if c.r.cancel != nil {
		c.r.cancel()
	}
}

// Run drives registration and then the read/write loops until the
// connection ends, ctx is canceled, or Control.Stop is called. On orderly
// termination it returns a Status and a nil error; on failure it returns
// the error (Status is then meaningless and should be ignored).
func (r *Runner) Run(ctx context.Context) (Status, error) {
	r.setState(StateConnecting)

	runCtx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()
	defer cancel()

	r.setState(StateRegistering)
	leftover, err := r.register(runCtx)
	if err != nil {
		r.setState(StateErrored)
		return 0, err
	}
	r.setState(StateRunning)

	var timedOut atomic.Bool
	errCh := make(chan error, 2)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); r.readLoop(runCtx, leftover, errCh) }()
	go func() { defer wg.Done(); r.writeLoop(runCtx, errCh) }()
	go func() { defer wg.Done(); r.watchdog(runCtx, cancel, &timedOut) }()

	var runErr error
	select {
	case runErr = <-errCh:
	case <-runCtx.Done():
	}

	r.setState(StateClosing)
	cancel()
	// Canceling runCtx does not itself interrupt an in-flight Read on a
	// connection with no deadline; close the transport so the read loop's
	// blocked call returns.
	_ = r.conn.Close()
	wg.Wait()
	r.dispatcher.Close()

	switch {
	case timedOut.Load():
		r.setState(StateClosed)
		return StatusTimedOut, nil
	case errors.Is(runErr, errEOF), errors.Is(runErr, errReconnect):
		r.setState(StateClosed)
		return StatusEof, nil
	case runErr != nil:
		r.setState(StateErrored)
		return 0, runErr
	default:
		r.setState(StateClosed)
		return StatusCanceled, nil
	}
}

// register performs the PASS/NICK/CAP REQ handshake and waits for 001 or
// GLOBALUSERSTATE, per spec §4.7, publishing that frame before returning.
// It returns any bytes read past the ready frame so the read loop doesn't
// lose them.
func (r *Runner) register(ctx context.Context) ([]byte, error) {
	if !r.cfg.IsAnonymous() {
		if err := r.writeLine(ctx, "PASS "+r.cfg.Token); err != nil {
			return nil, err
		}
	}
	if err := r.writeLine(ctx, "NICK "+r.cfg.Nick); err != nil {
		return nil, err
	}
	for _, c := range r.cfg.Capabilities() {
		if err := r.writeLine(ctx, "CAP REQ :"+c); err != nil {
			return nil, err
		}
	}

	buf := make([]byte, 0, readBufferSize)
	tmp := make([]byte, readBufferSize)
	for {
		n, readErr := r.conn.Read(ctx, tmp)
		if n > 0 {
			buf = append(buf, tmp[:n]...)

			var ready bool
			var regErr error
			consumed := irc.DecodeAll(buf, func(f irc.Frame, ferr error) bool {
				if ferr != nil {
					return true
				}
				switch f.Command() {
				case "001", "GLOBALUSERSTATE":
					ready = true
					r.handleFrame(f)
					return false
				case "NOTICE":
					if text, ok := f.Trailing(); ok && isLoginFailure(text) {
						regErr = NewError(InvalidRegistration, text)
						return false
					}
				}
				return true
			})
			buf = buf[:copy(buf, buf[consumed:])]

			if ready {
				return buf, nil
			}
			if regErr != nil {
				return nil, regErr
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil, NewError(InvalidRegistration, "server closed the connection during registration")
			}
			return nil, WrapError(Io, "registration read failed", readErr)
		}
	}
}

func isLoginFailure(text string) bool {
	return strings.Contains(text, "Login authentication failed") ||
		strings.Contains(text, "Improperly formatted auth")
}

func (r *Runner) writeLine(ctx context.Context, line string) error {
	if strings.ContainsAny(line, "\r\n") {
		return NewError(CannotEscape, "line contains CR or LF")
	}
	if _, err := r.conn.Write(ctx, []byte(line+"\r\n")); err != nil {
		return WrapError(Io, "write failed", err)
	}
	return r.conn.Flush(ctx)
}

// readLoop fills a growable buffer, decodes every complete frame, parses it
// into a typed event, and publishes it. A PING triggers an immediate PONG
// ahead of any pending writer submissions. A RECONNECT ends the run with
// Status::Eof.
func (r *Runner) readLoop(ctx context.Context, initial []byte, errCh chan<- error) {
	buf := make([]byte, len(initial), readBufferSize)
	copy(buf, initial)
	tmp := make([]byte, readBufferSize)

	if len(buf) > 0 {
		consumed := irc.DecodeAll(buf, func(f irc.Frame, ferr error) bool {
			if ferr != nil {
				r.logger.Warn("dropping malformed frame", map[string]any{"error": ferr.Error()})
				return true
			}
			return r.handleFrame(f)
		})
		buf = buf[:copy(buf, buf[consumed:])]
		if r.sawReconnect {
			errCh <- errReconnect
			return
		}
	}

	for {
		n, err := r.conn.Read(ctx, tmp)
		if n > 0 {
			r.touch()
			buf = append(buf, tmp[:n]...)
			consumed := irc.DecodeAll(buf, func(f irc.Frame, ferr error) bool {
				if ferr != nil {
					r.logger.Warn("dropping malformed frame", map[string]any{"error": ferr.Error()})
					return true
				}
				return r.handleFrame(f)
			})
			buf = buf[:copy(buf, buf[consumed:])]
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if err == io.EOF {
				errCh <- errEOF
				return
			}
			errCh <- WrapError(Io, "read failed", err)
			return
		}
		if r.sawReconnect {
			errCh <- errReconnect
			return
		}
	}
}

// handleFrame parses f, reacts to PING/RECONNECT, and publishes the
// result. It returns false to stop decoding the rest of the buffer (used
// when a RECONNECT is observed, since no further frames matter).
func (r *Runner) handleFrame(f irc.Frame) bool {
	ev, err := command.ParseAll(f)
	if err != nil {
		r.logger.Warn("dropping unparseable command", map[string]any{"error": err.Error()})
		return true
	}

	switch typed := ev.(type) {
	case command.Ping:
		r.out.pushFront(outboundFrame{verb: "PONG", line: "PONG :" + typed.Token})
	case command.Reconnect:
		r.sawReconnect = true
	}

	r.dispatcher.PublishFrame(f.Owned(), ev)
	return !r.sawReconnect
}

// writeLoop pulls submissions in FIFO order, waits for the rate limiter
// governing each one's class, then writes and flushes it. A PONG queued by
// the read loop via pushFront is always drained before earlier writer
// submissions that were already behind it in the queue.
func (r *Runner) writeLoop(ctx context.Context, errCh chan<- error) {
	for {
		frame, ok := r.out.pop(ctx)
		if !ok {
			return
		}
		if err := r.limiters.Acquire(ctx, frame.verb); err != nil {
			if ctx.Err() != nil {
				return
			}
			errCh <- err
			return
		}
		if err := r.writeLine(ctx, frame.line); err != nil {
			errCh <- err
			return
		}
	}
}

// watchdog closes the connection with TimedOut if no bytes arrive for
// idleTimeout.
func (r *Runner) watchdog(ctx context.Context, cancel context.CancelFunc, timedOut *atomic.Bool) {
	timer := time.NewTimer(idleTimeout)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.activity:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(idleTimeout)
		case <-timer.C:
			timedOut.Store(true)
			cancel()
			return
		}
	}
}
