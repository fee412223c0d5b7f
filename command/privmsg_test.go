package command

import "testing"

func TestParsePrivmsg(t *testing.T) {
	f := decodeOne(t, ":test!user@host PRIVMSG #museun :this is a test\r\n")
	msg, err := ParsePrivmsg(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Name != "test" || msg.Channel != "#museun" || msg.Data != "this is a test" {
		t.Fatalf("msg = %+v", msg)
	}
	if c := msg.Ctcp(); c.Kind != CtcpNone {
		t.Fatalf("ctcp = %+v", c)
	}
}

func TestParsePrivmsgAction(t *testing.T) {
	f := decodeOne(t, ":test!user@host PRIVMSG #museun :\x01ACTION this is a test\x01\r\n")
	msg, err := ParsePrivmsg(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Data != "this is a test" {
		t.Fatalf("data = %q", msg.Data)
	}
	if c := msg.Ctcp(); c.Kind != CtcpAction {
		t.Fatalf("ctcp = %+v", c)
	}
}

func TestParsePrivmsgUnknownCtcp(t *testing.T) {
	f := decodeOne(t, ":test!user@host PRIVMSG #museun :\x01FOOBAR this is a test\x01\r\n")
	msg, err := ParsePrivmsg(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Data != "this is a test" {
		t.Fatalf("data = %q", msg.Data)
	}
	c := msg.Ctcp()
	if c.Kind != CtcpUnknown || c.Command != "FOOBAR" {
		t.Fatalf("ctcp = %+v", c)
	}
}

func TestParsePrivmsgTags(t *testing.T) {
	input := "@badge-info=;badges=subscriber/6;color=#FF0000;display-name=Foo;" +
		"emotes=25:0-4;id=abc;room-id=1;user-id=2;tmi-sent-ts=3;mod=1 " +
		":foo!foo@foo.tmi.twitch.tv PRIVMSG #bar :Kappa hi\r\n"
	f := decodeOne(t, input)
	msg, err := ParsePrivmsg(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if color, ok := msg.Color(); !ok || color.Name != "Red" {
		t.Fatalf("color = %+v, %v", color, ok)
	}
	if name, ok := msg.DisplayName(); !ok || name != "Foo" {
		t.Fatalf("display name = %q, %v", name, ok)
	}
	emotes := msg.Emotes()
	if len(emotes) != 1 || emotes[0].ID != 25 {
		t.Fatalf("emotes = %+v", emotes)
	}
	if id, ok := msg.ID(); !ok || id != "abc" {
		t.Fatalf("id = %q, %v", id, ok)
	}
	if roomID, ok := msg.RoomID(); !ok || roomID != 1 {
		t.Fatalf("room id = %d, %v", roomID, ok)
	}
	if userID, ok := msg.UserID(); !ok || userID != 2 {
		t.Fatalf("user id = %d, %v", userID, ok)
	}
	if !msg.IsModerator() {
		t.Fatalf("expected moderator")
	}
}
