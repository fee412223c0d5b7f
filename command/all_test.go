package command

import "testing"

func TestParseAllKnownCommand(t *testing.T) {
	f := decodeOne(t, "PING :1234567890\r\n")
	any, err := ParseAll(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := any.(Ping); !ok {
		t.Fatalf("any = %T, want Ping", any)
	}
}

func TestParseAllUnrecognizedFallsBackToRaw(t *testing.T) {
	f := decodeOne(t, ":tmi.twitch.tv SOMETHING_NEW #museun :hi\r\n")
	any, err := ParseAll(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, ok := any.(Raw)
	if !ok {
		t.Fatalf("any = %T, want Raw", any)
	}
	if raw.Frame.Command != "SOMETHING_NEW" {
		t.Fatalf("command = %q", raw.Frame.Command)
	}
}

func TestParseAllPrivmsg(t *testing.T) {
	f := decodeOne(t, ":test!user@host PRIVMSG #museun :hello\r\n")
	any, err := ParseAll(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p, ok := any.(Privmsg)
	if !ok || p.Data != "hello" {
		t.Fatalf("any = %+v, %v", any, ok)
	}
}
