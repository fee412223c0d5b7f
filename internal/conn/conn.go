// Package conn defines the narrow transport capability the runner consumes.
//
// The concrete transport (TCP, TLS, DNS, dialing) is deliberately out of
// scope for this module — see spec §1. Callers hand the runner anything
// that satisfies RawConn (a *net.TCPConn, a *tls.Conn, an in-memory pipe for
// tests, ...) and Conn applies a context's deadline to it via the
// transport's read/write deadlines.
package conn

import (
	"context"
	"io"
	"time"
)

// RawConn is the minimal byte-stream transport the runner needs.
type RawConn interface {
	io.Reader
	io.Writer
}

// Deadliner is implemented by transports that support per-call cancellation
// via deadlines (net.Conn and friends). Conn uses it when present; without
// it, Read/Write block for the lifetime of the underlying call regardless of
// ctx — the same limitation plain io.Reader/io.Writer have in Go.
type Deadliner interface {
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
}

// Conn wraps a RawConn with context-aware Read/Write.
//
// It is the Go shape of the "byte-reader with async-read, byte-writer with
// async-write-and-flush" capability described in the design notes: a single
// narrow interface the runner drives, with everything below it (TLS, DNS,
// TCP) left to the caller.
type Conn struct {
	raw RawConn
}

// New wraps raw as a Conn. raw may additionally implement Deadliner so that
// Read/Write honor ctx's deadline; otherwise calls block until the
// underlying RawConn returns. In both cases a ctx canceled while a call is
// already blocked does not interrupt that call.
func New(raw RawConn) *Conn {
	return &Conn{raw: raw}
}

// Read fills p from the transport, honoring ctx's deadline when the
// underlying RawConn is a Deadliner.
func (c *Conn) Read(ctx context.Context, p []byte) (int, error) {
	if err := c.applyDeadline(ctx, c.setReadDeadline); err != nil {
		return 0, err
	}
	return c.raw.Read(p)
}

// Write writes all of p to the transport, repeating the underlying write
// after a short write, honoring ctx's deadline when possible. A successful return means every byte of p was accepted by
// the transport.
func (c *Conn) Write(ctx context.Context, p []byte) (int, error) {
	if err := c.applyDeadline(ctx, c.setWriteDeadline); err != nil {
		return 0, err
	}
	return writeAll(c.raw, p)
}

// Flush calls the transport's own Flush method when it has one (a buffered
// transport that needs an explicit flush) and is otherwise a no-op, since
// writes are unbuffered at this layer.
func (c *Conn) Flush(ctx context.Context) error {
	if f, ok := c.raw.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close closes the underlying transport if it supports it.
func (c *Conn) Close() error {
	if cl, ok := c.raw.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func (c *Conn) setReadDeadline(t time.Time) error {
	if d, ok := c.raw.(Deadliner); ok {
		return d.SetReadDeadline(t)
	}
	return nil
}

func (c *Conn) setWriteDeadline(t time.Time) error {
	if d, ok := c.raw.(Deadliner); ok {
		return d.SetWriteDeadline(t)
	}
	return nil
}

func (c *Conn) applyDeadline(ctx context.Context, set func(time.Time) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return set(time.Time{})
	}
	return set(deadline)
}

func writeAll(w io.Writer, p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := w.Write(p[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
