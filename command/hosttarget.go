package command

import (
	"strconv"
	"strings"

	"github.com/museun/twitchchat-go/irc"
)

// HostTargetKind distinguishes a channel starting to host another channel
// from hosting ending.
type HostTargetKind int

const (
	HostStart HostTargetKind = iota
	HostEnd
)

// HostTarget is sent when a channel starts or stops hosting another.
type HostTarget struct {
	Raw     string
	Source  string
	Kind    HostTargetKind
	Target  string // only meaningful when Kind == HostStart
	Viewers *int
}

// ParseHostTarget parses a HOSTTARGET frame. The trailing is of the form
// `TARGET[ VIEWERS]`, where TARGET is `-` to signal the end of hosting.
func ParseHostTarget(f irc.Frame) (HostTarget, error) {
	if err := expectCommand(f, "HOSTTARGET"); err != nil {
		return HostTarget{}, err
	}
	source, err := expectArg(f, "HOSTTARGET", 0)
	if err != nil {
		return HostTarget{}, err
	}
	data, err := expectData(f, "HOSTTARGET")
	if err != nil {
		return HostTarget{}, err
	}

	head, tail, _ := strings.Cut(data, " ")
	out := HostTarget{Raw: f.Raw(), Source: source}
	if head == "-" {
		out.Kind = HostEnd
	} else {
		out.Kind = HostStart
		out.Target = head
	}
	if tail != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(tail)); err == nil {
			out.Viewers = &n
		}
	}
	return out, nil
}
