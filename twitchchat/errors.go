package twitchchat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/museun/twitchchat-go/command"
	"github.com/museun/twitchchat-go/irc"
)

// ErrorCode categorizes the errors the runner, control handle, and writer
// can return. It mirrors the error kinds of spec §7 rather than a generic
// protocol-error enum: most of these are typed parse or registration
// failures specific to this client, not server-reported codes.
type ErrorCode int

const (
	// ErrorUnknown is the zero value; never returned deliberately.
	ErrorUnknown ErrorCode = iota

	// InvalidRegistration means the server rejected credentials or closed
	// the connection during login.
	InvalidRegistration
	// InvalidMessage means a frame could not be decoded; Wrapped holds the
	// *irc.ParseError.
	InvalidMessage
	// ExpectedTag means a typed parse required a tag that was absent;
	// Message names the tag.
	ExpectedTag
	// ExpectedArg means a typed parse required a positional argument that
	// was absent; Message names the index.
	ExpectedArg
	// ExpectedData means a typed parse required trailing data that was
	// absent.
	ExpectedData
	// InvalidCommand means ParseX was called against a frame of the wrong
	// command, or against a frame lacking the nick!user@host prefix that
	// command requires.
	InvalidCommand
	// CannotEscape means an outgoing payload contains a forbidden CR or LF
	// byte that cannot be sent as a single IRC line.
	CannotEscape
	// Io wraps an underlying transport error.
	Io
	// ClientDisconnected means an orderly close was surfaced to a writer as
	// a failed send.
	ClientDisconnected
	// RateLimited is returned if a writer is submitted to a closed limiter;
	// under normal operation the limiter suspends the caller instead.
	RateLimited
	// NotConnected means a Control or writer method was used before the
	// runner reached Running.
	NotConnected
	// InvalidConfig means a UserConfig failed validation.
	InvalidConfig
)

func (e ErrorCode) String() string {
	switch e {
	case InvalidRegistration:
		return "invalid_registration"
	case InvalidMessage:
		return "invalid_message"
	case ExpectedTag:
		return "expected_tag"
	case ExpectedArg:
		return "expected_arg"
	case ExpectedData:
		return "expected_data"
	case InvalidCommand:
		return "invalid_command"
	case CannotEscape:
		return "cannot_escape"
	case Io:
		return "io"
	case ClientDisconnected:
		return "client_disconnected"
	case RateLimited:
		return "rate_limited"
	case NotConnected:
		return "not_connected"
	case InvalidConfig:
		return "invalid_config"
	default:
		return fmt.Sprintf("unknown_code_%d", int(e))
	}
}

// Error is a structured error with a code, a human-readable message, and an
// optional wrapped cause, supporting errors.Is/errors.As through Is/Unwrap.
type Error struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Wrapped }

// Is reports whether target is an *Error with the same Code, so callers can
// write errors.Is(err, twitchchat.NewError(twitchchat.NotConnected, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError builds an *Error with no wrapped cause.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError builds an *Error that wraps an underlying cause.
func WrapError(code ErrorCode, message string, err error) *Error {
	return &Error{Code: code, Message: message, Wrapped: err}
}

// FromParseError classifies a frame decode failure (*irc.ParseError) or a
// typed command parse failure (*command.ParseError) into the matching
// *Error code.
func FromParseError(err error) *Error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*irc.ParseError); ok {
		return WrapError(InvalidMessage, pe.Error(), pe)
	}
	if ce, ok := err.(*command.ParseError); ok {
		switch {
		case strings.HasPrefix(ce.Reason, "expected tag"):
			return WrapError(ExpectedTag, ce.Reason, ce)
		case strings.HasPrefix(ce.Reason, "expected argument"):
			return WrapError(ExpectedArg, ce.Reason, ce)
		case ce.Reason == "expected trailing data":
			return WrapError(ExpectedData, ce.Reason, ce)
		default:
			return WrapError(InvalidCommand, ce.Reason, ce)
		}
	}
	return WrapError(InvalidMessage, err.Error(), err)
}

// IsIOError reports whether err is an *Error tagged Io, the only class that
// should terminate the runner's read loop outright.
func IsIOError(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == Io
}

// Status is returned by Runner.Run on orderly termination; it is not an
// error in the Go sense, but a classification of how the run ended.
type Status int

const (
	// StatusEof means the server closed the connection in a way this
	// client treats as orderly — in particular after a RECONNECT.
	StatusEof Status = iota
	// StatusCanceled means Control.Stop or a canceled context ended the
	// run.
	StatusCanceled
	// StatusTimedOut means the connection was idle past the inactivity
	// timeout.
	StatusTimedOut
)

func (s Status) String() string {
	switch s {
	case StatusEof:
		return "eof"
	case StatusCanceled:
		return "canceled"
	case StatusTimedOut:
		return "timed_out"
	default:
		return fmt.Sprintf("status_%d", int(s))
	}
}
