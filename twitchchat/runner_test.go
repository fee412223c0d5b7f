package twitchchat

import (
	"bufio"
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/museun/twitchchat-go/internal/conn"
	"github.com/museun/twitchchat-go/ratelimit"
)

func newTestRunner(t *testing.T) (*Runner, net.Conn) {
	t.Helper()
	client, server := net.Pipe()
	t.Cleanup(func() { client.Close(); server.Close() })

	cfg, err := NewUserConfig("museun", "oauth:token")
	if err != nil {
		t.Fatalf("NewUserConfig: %v", err)
	}
	r := NewRunner(conn.New(client), cfg)
	return r, server
}

func TestWriterValidatesBeforeRunning(t *testing.T) {
	r, _ := newTestRunner(t)
	err := r.Writer().Privmsg(context.Background(), "#museun", "hello")
	if !errors.Is(err, NewError(NotConnected, "")) {
		t.Fatalf("err = %v, want NotConnected", err)
	}
}

func TestWriterRejectsCRLFOnceRunning(t *testing.T) {
	r, _ := newTestRunner(t)
	r.setState(StateRunning)
	err := r.Writer().Privmsg(context.Background(), "#museun", "line one\r\nline two")
	if !errors.Is(err, NewError(CannotEscape, "")) {
		t.Fatalf("err = %v, want CannotEscape", err)
	}
}

func TestWriterBanClassifiesAsModeration(t *testing.T) {
	r, _ := newTestRunner(t)
	r.setState(StateRunning)
	if err := r.Writer().Ban(context.Background(), "#museun", "baduser", "spam"); err != nil {
		t.Fatalf("Ban: %v", err)
	}
	frame, ok := r.out.pop(context.Background())
	if !ok {
		t.Fatalf("expected a queued outbound frame")
	}
	if frame.verb != "BAN" {
		t.Fatalf("verb = %q, want BAN", frame.verb)
	}
	if frame.line != "PRIVMSG #museun :/ban baduser spam" {
		t.Fatalf("line = %q", frame.line)
	}
	if ratelimit.Classify(frame.verb) != ratelimit.ClassModeration {
		t.Fatalf("Classify(%q) = %v, want ClassModeration", frame.verb, ratelimit.Classify(frame.verb))
	}
}

// serverSide wraps the server end of the net.Pipe with a line-oriented
// reader for the tests below.
type serverSide struct {
	net.Conn
	r *bufio.Reader
}

func newServerSide(c net.Conn) *serverSide {
	return &serverSide{Conn: c, r: bufio.NewReader(c)}
}

func (s *serverSide) readLine(t *testing.T) string {
	t.Helper()
	line, err := s.r.ReadString('\n')
	if err != nil {
		t.Fatalf("readLine: %v", err)
	}
	return strings.TrimRight(line, "\r\n")
}

func (s *serverSide) send(t *testing.T, line string) {
	t.Helper()
	if _, err := s.Conn.Write([]byte(line + "\r\n")); err != nil {
		t.Fatalf("send: %v", err)
	}
}

func TestRunnerRegistersAndHandlesPingPong(t *testing.T) {
	r, serverConn := newTestRunner(t)
	server := newServerSide(serverConn)

	runDone := make(chan struct {
		status Status
		err    error
	}, 1)
	go func() {
		status, err := r.Run(context.Background())
		runDone <- struct {
			status Status
			err    error
		}{status, err}
	}()

	if got := server.readLine(t); got != "PASS oauth:token" {
		t.Fatalf("got %q, want PASS line", got)
	}
	if got := server.readLine(t); got != "NICK museun" {
		t.Fatalf("got %q, want NICK line", got)
	}

	server.send(t, ":tmi.twitch.tv 001 museun :Welcome, GLHF!")

	states := Subscribe[StateEvent](r.Dispatcher())
	deadline, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	for {
		ev, ok := states.Next(deadline)
		if !ok {
			t.Fatalf("runner never reached Running")
		}
		if ev.New == StateRunning {
			break
		}
	}
	states.Unsubscribe()

	server.send(t, "PING :keepalive-token")

	if got := server.readLine(t); got != "PONG :keepalive-token" {
		t.Fatalf("got %q, want PONG reply", got)
	}

	r.Control().Stop()

	result := <-runDone
	if result.err != nil {
		t.Fatalf("Run returned error: %v", result.err)
	}
	if result.status != StatusCanceled {
		t.Fatalf("status = %v, want StatusCanceled", result.status)
	}
}

func TestRunnerLoginFailureReturnsInvalidRegistration(t *testing.T) {
	r, serverConn := newTestRunner(t)
	server := newServerSide(serverConn)

	runDone := make(chan struct {
		status Status
		err    error
	}, 1)
	go func() {
		status, err := r.Run(context.Background())
		runDone <- struct {
			status Status
			err    error
		}{status, err}
	}()

	server.readLine(t) // PASS
	server.readLine(t) // NICK

	server.send(t, "NOTICE * :Login authentication failed")
	server.Close()

	result := <-runDone
	var ce *Error
	if !errors.As(result.err, &ce) || ce.Code != InvalidRegistration {
		t.Fatalf("err = %v, want InvalidRegistration", result.err)
	}
}
