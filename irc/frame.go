// Package irc implements the zero-copy IRCv3 frame decoder Twitch chat is
// built on: splitting a byte stream into frames, lexing tags, prefix,
// command, arguments and trailing, and decoding Twitch's tag-escaping
// rules.
package irc

import "bytes"

const crlf = "\r\n"

// Prefix is the optional `:nick!user@host` or `:server` leading component
// of a frame.
type Prefix struct {
	Nick     string
	User     string
	Host     string
	IsServer bool
}

// Frame is a parsed IRCv3 message borrowed from the buffer DecodeOne was
// given. Every []byte field is a sub-slice of that buffer; none of it
// outlives the caller's next call to DecodeOne/DecodeAll on the same
// buffer. Call Owned to get an independent copy.
type Frame struct {
	raw         []byte
	tags        []byte
	hasTags     bool
	prefix      []byte
	hasPrefix   bool
	command     []byte
	params      [][]byte
	trailing    []byte
	hasTrailing bool
}

// Raw returns the full line this frame was parsed from, without the
// trailing CRLF.
func (f Frame) Raw() string { return string(f.raw) }

// Tags parses and returns this frame's tag map. Frames without a tag block
// return the zero Tags value.
func (f Frame) Tags() Tags {
	if !f.hasTags {
		return Tags{}
	}
	return ParseTags(f.tags)
}

// Prefix returns the frame's prefix, if present.
func (f Frame) Prefix() (Prefix, bool) {
	if !f.hasPrefix {
		return Prefix{}, false
	}
	return parsePrefix(f.prefix), true
}

// Command returns the frame's command verb or three-digit numeric.
func (f Frame) Command() string { return string(f.command) }

// NumParams returns the number of middle (non-trailing) arguments.
func (f Frame) NumParams() int { return len(f.params) }

// Param returns the i'th middle argument.
func (f Frame) Param(i int) (string, bool) {
	if i < 0 || i >= len(f.params) {
		return "", false
	}
	return string(f.params[i]), true
}

// Params returns every middle argument, in order.
func (f Frame) Params() []string {
	out := make([]string, len(f.params))
	for i, p := range f.params {
		out[i] = string(p)
	}
	return out
}

// Trailing returns the frame's trailing argument (the `:`-prefixed
// remainder), if present.
func (f Frame) Trailing() (string, bool) {
	if !f.hasTrailing {
		return "", false
	}
	return string(f.trailing), true
}

// Owned returns an independent, fully-copied form of this frame with no
// lifetime coupling to the decoder's input buffer. Dispatched events are
// always built from an OwnedFrame, never a borrowed Frame.
func (f Frame) Owned() OwnedFrame {
	params := make([]string, len(f.params))
	for i, p := range f.params {
		params[i] = string(p)
	}
	o := OwnedFrame{
		Raw:     string(f.raw),
		Command: string(f.command),
		Params:  params,
	}
	if f.hasTags {
		o.Tags = f.Tags()
	}
	if p, ok := f.Prefix(); ok {
		o.Prefix = &p
	}
	if f.hasTrailing {
		trailing := string(f.trailing)
		o.Trailing = &trailing
	}
	return o
}

// OwnedFrame is the allocation-owning counterpart of Frame: every field is
// copied out of the source buffer, so it can be held past the lifetime of
// the decoder's read buffer (e.g. handed to a dispatcher subscriber).
type OwnedFrame struct {
	Raw      string
	Tags     Tags
	Prefix   *Prefix
	Command  string
	Params   []string
	Trailing *string
}

// Param returns the i'th middle argument.
func (o OwnedFrame) Param(i int) (string, bool) {
	if i < 0 || i >= len(o.Params) {
		return "", false
	}
	return o.Params[i], true
}

// DecodeOne parses a single CRLF-terminated frame from the front of input.
//
// On success it returns the number of bytes consumed (pointing just past
// the delimiting CRLF) and the parsed, borrowed Frame. If input does not
// yet contain a full frame, it returns ErrNeedMore and the caller should
// read more bytes before retrying. If input contains a full but malformed
// line, it returns a *ParseError; consumed still accounts for the
// malformed line so the caller can skip past it and keep decoding.
func DecodeOne(input []byte) (consumed int, frame Frame, err error) {
	idx := bytes.Index(input, []byte(crlf))
	if idx < 0 {
		return 0, Frame{}, ErrNeedMore
	}
	line := input[:idx]
	consumed = idx + len(crlf)

	f, perr := parseLine(line)
	if perr != nil {
		return consumed, Frame{}, perr
	}
	return consumed, f, nil
}

// DecodeAll repeatedly calls DecodeOne over input, invoking fn for every
// frame or malformed line found, until the remaining bytes are
// insufficient for another frame (ErrNeedMore). It returns the number of
// bytes consumed across all complete lines, so the caller can slide its
// buffer forward by that amount and keep the remainder for the next read.
//
// fn's second return value stops iteration early when false.
func DecodeAll(input []byte, fn func(Frame, error) bool) (consumed int) {
	for {
		rest := input[consumed:]
		n, frame, err := DecodeOne(rest)
		if err == ErrNeedMore {
			return consumed
		}
		consumed += n
		if !fn(frame, err) {
			return consumed
		}
	}
}

func parseLine(line []byte) (Frame, *ParseError) {
	var f Frame
	f.raw = line
	pos := 0

	if pos < len(line) && line[pos] == '@' {
		space := bytes.IndexByte(line[pos:], ' ')
		if space < 0 {
			return Frame{}, &ParseError{Kind: MalformedTags, Line: string(line)}
		}
		f.tags = line[pos+1 : pos+space]
		f.hasTags = true
		pos += space + 1
	}

	if pos < len(line) && line[pos] == ':' {
		space := bytes.IndexByte(line[pos:], ' ')
		if space < 0 {
			return Frame{}, &ParseError{Kind: MalformedPrefix, Line: string(line)}
		}
		f.prefix = line[pos+1 : pos+space]
		f.hasPrefix = true
		pos += space + 1
	}

	rest := line[pos:]
	cmdEnd := bytes.IndexByte(rest, ' ')
	if cmdEnd < 0 {
		f.command = rest
		rest = nil
	} else {
		f.command = rest[:cmdEnd]
		rest = rest[cmdEnd+1:]
	}
	if len(f.command) == 0 {
		return Frame{}, &ParseError{Kind: EmptyCommand, Line: string(line)}
	}

	if len(rest) > 0 {
		if rest[0] == ':' {
			f.trailing = rest[1:]
			f.hasTrailing = true
		} else if sep := bytes.Index(rest, []byte(" :")); sep >= 0 {
			f.params = splitParams(rest[:sep])
			f.trailing = rest[sep+2:]
			f.hasTrailing = true
		} else {
			f.params = splitParams(rest)
		}
	}

	return f, nil
}

func splitParams(b []byte) [][]byte {
	if len(b) == 0 {
		return nil
	}
	return bytes.Split(b, []byte(" "))
}

func parsePrefix(raw []byte) Prefix {
	if bang := bytes.IndexByte(raw, '!'); bang >= 0 {
		nick := string(raw[:bang])
		rest := raw[bang+1:]
		if at := bytes.IndexByte(rest, '@'); at >= 0 {
			return Prefix{Nick: nick, User: string(rest[:at]), Host: string(rest[at+1:])}
		}
		return Prefix{Nick: nick, User: string(rest)}
	}
	return Prefix{Host: string(raw), IsServer: true}
}
