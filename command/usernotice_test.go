package command

import "testing"

func TestParseUserNoticeWithMessage(t *testing.T) {
	f := decodeOne(t, ":tmi.twitch.tv USERNOTICE #museun :This room is no longer in slow mode.\r\n")
	msg, err := ParseUserNotice(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Channel != "#museun" {
		t.Fatalf("channel = %q", msg.Channel)
	}
	if msg.Message == nil || *msg.Message != "This room is no longer in slow mode." {
		t.Fatalf("message = %v", msg.Message)
	}
}

func TestParseUserNoticeNoMessage(t *testing.T) {
	f := decodeOne(t, ":tmi.twitch.tv USERNOTICE #museun\r\n")
	msg, err := ParseUserNotice(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Message != nil {
		t.Fatalf("message = %v, want nil", msg.Message)
	}
}

func TestParseUserNoticeResub(t *testing.T) {
	input := "@badge-info=subscriber/8;badges=subscriber/6,bits/100;color=#59517B;" +
		`display-name=lllAirJordanlll;emotes=;flags=;id=3198b02c-eaf4-4904-9b07-eb1b2b12ba50;` +
		`login=lllairjordanlll;mod=0;msg-id=resub;msg-param-cumulative-months=8;` +
		`msg-param-months=0;msg-param-should-share-streak=0;` +
		`msg-param-sub-plan-name=Channel\sSubscription\s(giantwaffle);msg-param-sub-plan=1000;` +
		`room-id=22552479;subscriber=1;` +
		`system-msg=lllAirJordanlll\ssubscribed\sat\sTier\s1.\sThey've\ssubscribed\sfor\s8\smonths!;` +
		"tmi-sent-ts=1580932171144;user-id=44979519;user-type= :tmi.twitch.tv USERNOTICE #giantwaffle\r\n"
	f := decodeOne(t, input)
	msg, err := ParseUserNotice(f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Channel != "#giantwaffle" {
		t.Fatalf("channel = %q", msg.Channel)
	}
	kind, raw, ok := msg.Kind()
	if !ok || kind != UserNoticeResub || raw != "resub" {
		t.Fatalf("kind = %v %q %v", kind, raw, ok)
	}
	if months, ok := msg.CumulativeMonths(); !ok || months != 8 {
		t.Fatalf("cumulative months = %d, %v", months, ok)
	}
	if plan, ok := msg.SubPlan(); !ok || plan != SubPlanTier1 {
		t.Fatalf("sub plan = %v, %v", plan, ok)
	}
	if sys, ok := msg.SystemMsg(); !ok || sys == "" {
		t.Fatalf("system msg = %q, %v", sys, ok)
	}
}
