package command

import "github.com/museun/twitchchat-go/irc"

// Cap is the server's acknowledgement (ACK) or rejection (NAK) of a
// capability we requested via CAP REQ.
type Cap struct {
	Raw          string
	Acknowledged bool
	Capability   string
}

// ParseCap parses a CAP frame.
func ParseCap(f irc.Frame) (Cap, error) {
	if err := expectCommand(f, "CAP"); err != nil {
		return Cap{}, err
	}
	marker, err := expectArg(f, "CAP", 1)
	if err != nil {
		return Cap{}, err
	}
	capability, err := expectData(f, "CAP")
	if err != nil {
		return Cap{}, err
	}
	return Cap{Raw: f.Raw(), Acknowledged: marker == "ACK", Capability: capability}, nil
}
