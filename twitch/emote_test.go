package twitch

import (
	"reflect"
	"testing"
)

func TestParseEmotes(t *testing.T) {
	cases := []struct {
		in   string
		want []Emote
	}{
		{
			"25:0-4,6-10,12-16",
			[]Emote{{ID: 25, Ranges: []ByteRange{{0, 5}, {6, 11}, {12, 17}}}},
		},
		{
			"25:0-4",
			[]Emote{{ID: 25, Ranges: []ByteRange{{0, 5}}}},
		},
		{
			"1077966:0-6/25:8-12",
			[]Emote{
				{ID: 1077966, Ranges: []ByteRange{{0, 7}}},
				{ID: 25, Ranges: []ByteRange{{8, 13}}},
			},
		},
		{
			"25:0-4,6-10/33:12-19",
			[]Emote{
				{ID: 25, Ranges: []ByteRange{{0, 5}, {6, 11}}},
				{ID: 33, Ranges: []ByteRange{{12, 20}}},
			},
		},
	}
	for _, tc := range cases {
		got := ParseEmotes(tc.in)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseEmotes(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseEmotesEmpty(t *testing.T) {
	if got := ParseEmotes(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
