package uricodec_test

import (
	"testing"
	"time"

	"github.com/ghettovoice/uricodec"
)

func TestStyle_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		style uricodec.Style
		want  string
	}{
		{uricodec.StyleSimple, "simple"},
		{uricodec.StyleForm, "form"},
		{uricodec.StyleDeepObject, "deepObject"},
		{uricodec.Style(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.style.String(); got != c.want {
			t.Errorf("Style(%d).String() = %q, want %q", c.style, got, c.want)
		}
	}
}

func TestSpaceEscaping_String(t *testing.T) {
	t.Parallel()

	if got := uricodec.SpacePercentEncoded.String(); got != "percentEncoded" {
		t.Errorf("SpacePercentEncoded.String() = %q", got)
	}
	if got := uricodec.SpacePlus.String(); got != "plus" {
		t.Errorf("SpacePlus.String() = %q", got)
	}
}

func TestISO8601DateTranscoder(t *testing.T) {
	t.Parallel()

	d := time.Date(2023, 1, 18, 10, 4, 0, 0, time.UTC)
	s, err := uricodec.ISO8601DateTranscoder.EncodeDate(d)
	if err != nil {
		t.Fatalf("EncodeDate() error = %v", err)
	}
	if want := "2023-01-18T10:04:00Z"; s != want {
		t.Errorf("EncodeDate() = %q, want %q", s, want)
	}

	got, err := uricodec.ISO8601DateTranscoder.DecodeDate(s)
	if err != nil {
		t.Fatalf("DecodeDate() error = %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("DecodeDate() = %v, want %v", got, d)
	}
}

// TestConfig_ZeroValue pins the documented zero value: simple style,
// unexploded, percent-encoded spaces, ISO 8601 dates.
func TestConfig_ZeroValue(t *testing.T) {
	t.Parallel()

	var cfg uricodec.Config

	got, err := uricodec.Encode("Hello World", "key", cfg)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "Hello%20World"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}

	got, err = uricodec.Encode(time.Date(2023, 1, 18, 10, 4, 0, 0, time.UTC), "key", cfg)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if want := "2023-01-18T10%3A04%3A00Z"; got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}
