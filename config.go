package uricodec

//go:generate errtrace -w .

import (
	"time"

	"braces.dev/errtrace"
)

// Style selects the OpenAPI 3.0.3 parameter serialization variant.
type Style int

const (
	// StyleSimple is the RFC 6570 simple string expansion: bare
	// comma-separated values, no key prefix.
	StyleSimple Style = iota
	// StyleForm is the RFC 6570 form-style query expansion: key=value pairs
	// joined by '&'.
	StyleForm
	// StyleDeepObject is the OpenAPI deepObject style: key[sub]=value pairs
	// joined by '&'. Always exploded.
	StyleDeepObject
)

func (s Style) String() string {
	switch s {
	case StyleSimple:
		return "simple"
	case StyleForm:
		return "form"
	case StyleDeepObject:
		return "deepObject"
	default:
		return "unknown"
	}
}

// SpaceEscaping selects how a literal space renders in encoded output.
type SpaceEscaping int

const (
	// SpacePercentEncoded renders a space as "%20".
	SpacePercentEncoded SpaceEscaping = iota
	// SpacePlus renders a space as "+", per the
	// application/x-www-form-urlencoded convention.
	SpacePlus
)

func (e SpaceEscaping) String() string {
	if e == SpacePlus {
		return "plus"
	}
	return "percentEncoded"
}

// DateTranscoder converts date values to and from their canonical string
// form. Implementations must be safe for concurrent use.
type DateTranscoder interface {
	// EncodeDate returns the canonical string form of t.
	EncodeDate(t time.Time) (string, error)
	// DecodeDate parses s back into a date value.
	DecodeDate(s string) (time.Time, error)
}

// ISO8601DateTranscoder renders dates in the RFC 3339 profile of ISO 8601.
// It is the default transcoder of [Config].
var ISO8601DateTranscoder DateTranscoder = iso8601Transcoder{}

type iso8601Transcoder struct{}

func (iso8601Transcoder) EncodeDate(t time.Time) (string, error) {
	return t.Format(time.RFC3339), nil
}

func (iso8601Transcoder) DecodeDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errtrace.Wrap(newMalformedValueErr(err))
	}
	return t, nil
}

// Config describes one serialization dialect of the codec. The zero value is
// simple style, unexploded, percent-encoded spaces, ISO 8601 dates.
//
// Config is a value type: construct it once and share it read-only across
// any number of concurrent Encode and Decode calls.
type Config struct {
	Style         Style
	Explode       bool
	SpaceEscaping SpaceEscaping
	// DateTranscoder converts dates to and from strings.
	// Nil means [ISO8601DateTranscoder].
	DateTranscoder DateTranscoder
}

// Standard configurations of the OpenAPI 3.0.3 style/explode matrix.
// DeepObjectExplode is the only deepObject variant: the style is implicitly
// exploded.
var (
	FormExplode       = Config{Style: StyleForm, Explode: true}
	FormUnexplode     = Config{Style: StyleForm, Explode: false}
	SimpleExplode     = Config{Style: StyleSimple, Explode: true}
	SimpleUnexplode   = Config{Style: StyleSimple, Explode: false}
	FormDataExplode   = Config{Style: StyleForm, Explode: true, SpaceEscaping: SpacePlus}
	FormDataUnexplode = Config{Style: StyleForm, Explode: false, SpaceEscaping: SpacePlus}
	DeepObjectExplode = Config{Style: StyleDeepObject, Explode: true}
)

func (c Config) dateTranscoder() DateTranscoder {
	if c.DateTranscoder == nil {
		return ISO8601DateTranscoder
	}
	return c.DateTranscoder
}

func (c Config) plusForSpace() bool { return c.SpaceEscaping == SpacePlus }
