package uricodec

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uricodec/internal/errorutil"
	"github.com/ghettovoice/uricodec/internal/log"
)

//go:generate mockgen -destination=internal/mocks/mocks.go -package=mocks github.com/ghettovoice/uricodec DateTranscoder,Encodable

// Version is the current uricodec package version.
var Version = "0.0.0"

var logger = log.Noop

// SetLogger installs a logger for debug tracing of encode and decode calls.
// Nil restores the default noop logger. Call it once at startup, before the
// codec is used concurrently.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = log.Noop
	}
	logger = l
}

// Encode serializes a value under the given parameter key according to the
// configuration. An absent (nil) value produces an empty string: absent
// values contribute no entry.
func Encode(v any, key string, cfg Config) (string, error) {
	n, err := encodeToNode(v, cfg)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	out, err := serializeNode(key, n, cfg)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	logger.Debug("value encoded",
		"style", cfg.Style, "explode", cfg.Explode, "key", key, "len", len(out))
	return out, nil
}

// EncodeIfPresent is like [Encode] but spells out the optionality contract:
// a nil value yields an empty string and no error.
func EncodeIfPresent(v any, key string, cfg Config) (string, error) {
	if v == nil {
		return "", nil
	}
	return errtrace.Wrap2(Encode(v, key, cfg))
}

// Decode reconstructs a value from its serialized form under the given
// parameter key. A key absent from the input fails with [ErrValueNotFound];
// use [DecodeIfPresent] for the optional contract.
//
// dst must be a pointer to a supported scalar ([Decoder] lists the lexical
// conversions), *[]string, *map[string]string, or a [Decodable].
func Decode(dst any, key, raw string, cfg Config) error {
	ok, err := DecodeIfPresent(dst, key, raw, cfg)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrValueNotFound, "%q", key))
	}
	return nil
}

// DecodeIfPresent is like [Decode] but reports a missing key as
// (false, nil) instead of an error. dst is left untouched when the key is
// missing.
func DecodeIfPresent(dst any, key, raw string, cfg Config) (bool, error) {
	d, err := newDecoder(raw, key, cfg)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	ok, err := d.decodeValue(dst)
	if err != nil {
		return false, errtrace.Wrap(err)
	}
	logger.Debug("value decoded",
		"style", cfg.Style, "explode", cfg.Explode, "key", key, "found", ok)
	return ok, nil
}
