package command

import "testing"

func TestParseGlobalUserState(t *testing.T) {
	input := "@badge-info=;badges=;color=#FF69B4;display-name=shaken_bot;emote-sets=0;" +
		"user-id=241015868;user-type= :tmi.twitch.tv GLOBALUSERSTATE\r\n"
	f := decodeOne(t, input)
	msg, err := ParseGlobalUserState(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.UserID != "241015868" {
		t.Fatalf("user id = %q", msg.UserID)
	}
	if msg.DisplayName == nil || *msg.DisplayName != "shaken_bot" {
		t.Fatalf("display name = %v", msg.DisplayName)
	}
	if msg.Color.Name != "HotPink" {
		t.Fatalf("color = %+v", msg.Color)
	}
	if sets := msg.EmoteSets(); len(sets) != 1 || sets[0] != "0" {
		t.Fatalf("emote sets = %v", sets)
	}
}

func TestParseGlobalUserStateMissingUserID(t *testing.T) {
	f := decodeOne(t, ":tmi.twitch.tv GLOBALUSERSTATE\r\n")
	if _, err := ParseGlobalUserState(f); err == nil {
		t.Fatalf("expected error for missing user-id tag")
	}
}
