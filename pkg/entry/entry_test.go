package entry

import (
	"testing"
	"time"
)

func TestKeyZeroPadding(t *testing.T) {
	got := Key(time.Date(2024, time.March, 5, 14, 30, 0, 0, time.Local))
	if got != "2024-03-05" {
		t.Fatalf("expected 2024-03-05, got %q", got)
	}
}

func TestParseKeyRoundTrip(t *testing.T) {
	day, err := ParseKey("2024-12-31")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if Key(day) != "2024-12-31" {
		t.Fatalf("round trip mismatch: %q", Key(day))
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"2024-3-5", "2024/03/05", "not-a-date", "2024-02-30"} {
		if _, err := ParseKey(key); err == nil {
			t.Errorf("expected error for %q", key)
		}
	}
}

func TestBlank(t *testing.T) {
	cases := []struct {
		content string
		want    bool
	}{
		{"", true},
		{"   ", true},
		{"\n\t ", true},
		{"Hello", false},
		{"  kept whitespace  ", false},
	}
	for _, tc := range cases {
		if got := Blank(tc.content); got != tc.want {
			t.Errorf("Blank(%q) = %v, want %v", tc.content, got, tc.want)
		}
	}
}
