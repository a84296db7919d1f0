package uricodec

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uricodec/internal/grammar"
)

// parseValues splits a raw encoded string into the flat [Values] multimap.
// Values are stored still percent-encoded: unescaping is deferred to the
// decoder, which knows the target shape and therefore which commas are
// delimiters and which are literal (see [Values]).
func parseValues(raw string, cfg Config) (Values, error) {
	vals := make(Values)

	if cfg.Style == StyleSimple {
		// A simple string has no pair structure: the whole input is one
		// value under the empty key. An empty input still registers, an
		// empty simple string is a present, empty value.
		vals.Append("", raw)
		return vals, nil
	}

	if raw == "" {
		return vals, nil
	}
	for seg := range strings.SplitSeq(raw, "&") {
		if seg == "" {
			continue
		}
		rawKey, rawVal, _ := strings.Cut(seg, "=")
		key := grammar.Unescape(rawKey, cfg.plusForSpace())
		if cfg.Style == StyleDeepObject {
			pk, err := parseBracketKey(key)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			key = pk.String()
		}
		vals.Append(key, rawVal)
	}
	return vals, nil
}

// parseBracketKey parses a deepObject key of the form "parent[child]".
// A key without brackets stays a single component.
func parseBracketKey(key string) (Key, error) {
	open := strings.IndexByte(key, '[')
	if open < 0 {
		return Key{key}, nil
	}
	if open == 0 || !strings.HasSuffix(key, "]") {
		return nil, errtrace.Wrap(grammar.ErrMalformedBracketKey)
	}
	child := key[open+1 : len(key)-1]
	if strings.ContainsAny(child, "[]") {
		return nil, errtrace.Wrap(grammar.ErrMalformedBracketKey)
	}
	return Key{key[:open], child}, nil
}
