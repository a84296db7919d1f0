package uricodec

import (
	"strconv"
	"strings"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uricodec/internal/errorutil"
	"github.com/ghettovoice/uricodec/internal/grammar"
)

// Decodable is the traversal contract of the decode path: the dual of
// [Encodable]. A value reconstructs itself field by field through the
// [Decoder].
//
//	func (p *Pet) DecodeURI(d *uricodec.Decoder) error {
//		if err := d.DecodeField("name", &p.Name); err != nil {
//			return err
//		}
//		_, err := d.DecodeFieldIfPresent("age", &p.Age)
//		return err
//	}
type Decodable interface {
	DecodeURI(d *Decoder) error
}

// Decoder reconstructs a typed value from the flat [Values] multimap
// produced by the parser. The target shape drives interpretation: the same
// raw tokens decode differently for a plain string and for a container, so
// unescaping always happens per token, after delimiter commas are split but
// before the tokens are inspected.
//
// Decoders are created fresh per top-level decode call.
type Decoder struct {
	cfg  Config
	vals Values
	root string
}

func newDecoder(raw, key string, cfg Config) (*Decoder, error) {
	vals, err := parseValues(raw, cfg)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if cfg.Style == StyleSimple {
		// Simple strings carry no key: the whole input is the root value.
		key = ""
	}
	return &Decoder{cfg: cfg, vals: vals, root: key}, nil
}

func (d *Decoder) withRoot(key string) *Decoder {
	return &Decoder{cfg: d.cfg, vals: d.vals, root: key}
}

// DecodeField decodes the named field of a struct-like value into dst.
// A missing field fails with [ErrValueNotFound].
func (d *Decoder) DecodeField(name string, dst any) error {
	ok, err := d.DecodeFieldIfPresent(name, dst)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrValueNotFound, "field %q", name))
	}
	return nil
}

// DecodeFieldIfPresent decodes the named field into dst, reporting whether
// the field was present in the input.
func (d *Decoder) DecodeFieldIfPresent(name string, dst any) (bool, error) {
	switch {
	case d.cfg.Style == StyleDeepObject:
		return errtrace.Wrap2(d.withRoot(Key{d.root, name}.String()).decodeValue(dst))
	case d.cfg.Style == StyleForm && d.cfg.Explode:
		// RFC 6570 form-explode of an object omits the parent key: every
		// field is looked up directly by its own name.
		return errtrace.Wrap2(d.withRoot(name).decodeValue(dst))
	default:
		// Unexploded (and simple-exploded) objects are flattened under the
		// root key; fields resolve against the reconstructed pair list.
		fields, ok, err := d.mapTokens()
		if err != nil || !ok {
			return false, errtrace.Wrap(err)
		}
		s, ok := fields[name]
		if !ok {
			return false, nil
		}
		return true, errtrace.Wrap(convertScalar(dst, s, d.cfg))
	}
}

func (d *Decoder) decodeValue(dst any) (bool, error) {
	switch dst := dst.(type) {
	case Decodable:
		if len(d.vals) == 0 {
			return false, nil
		}
		return true, errtrace.Wrap(dst.DecodeURI(d))
	case *[]string:
		tokens, ok, err := d.arrayTokens()
		if err != nil || !ok {
			return false, errtrace.Wrap(err)
		}
		*dst = tokens
		return true, nil
	case *map[string]string:
		fields, ok, err := d.mapTokens()
		if err != nil || !ok {
			return false, errtrace.Wrap(err)
		}
		*dst = fields
		return true, nil
	default:
		raw, ok := d.scalarRaw()
		if !ok {
			return false, nil
		}
		return true, errtrace.Wrap(convertScalar(dst, d.unescape(raw), d.cfg))
	}
}

// scalarRaw resolves the raw (still encoded) value for a scalar target.
// With repeated keys the last value wins, per the form convention.
func (d *Decoder) scalarRaw() (string, bool) {
	if !d.vals.Has(d.root) {
		return "", false
	}
	return d.vals.Last(d.root), true
}

// arrayTokens reconstructs array elements, unescaped. Unexploded (and
// simple) values split on raw delimiter commas first, so a percent-encoded
// comma inside an element survives as a literal.
func (d *Decoder) arrayTokens() ([]string, bool, error) {
	if d.cfg.Style == StyleDeepObject {
		return nil, false, errtrace.Wrap(ErrDeepObjectArray)
	}

	if d.cfg.Style == StyleForm && d.cfg.Explode {
		entries, ok := d.vals[d.root]
		if !ok {
			return nil, false, nil
		}
		tokens := make([]string, len(entries))
		for i, raw := range entries {
			tokens[i] = d.unescape(raw)
		}
		return tokens, true, nil
	}

	// Simple style comma-joins at this nesting level whether exploded or
	// not. Note the empty-string asymmetry: an empty simple input decodes
	// as one empty element, not as an empty array.
	raw, ok := d.scalarRaw()
	if !ok {
		return nil, false, nil
	}
	split := strings.Split(raw, ",")
	tokens := make([]string, len(split))
	for i, t := range split {
		tokens[i] = d.unescape(t)
	}
	return tokens, true, nil
}

// mapTokens reconstructs map entries, unescaped.
func (d *Decoder) mapTokens() (map[string]string, bool, error) {
	switch {
	case d.cfg.Style == StyleDeepObject:
		prefix := d.root + "/"
		var fields map[string]string
		for key := range d.vals {
			name, ok := strings.CutPrefix(key, prefix)
			if !ok || name == "" {
				continue
			}
			if fields == nil {
				fields = make(map[string]string)
			}
			fields[name] = d.unescape(d.vals.Last(key))
		}
		return fields, fields != nil, nil

	case d.cfg.Style == StyleForm && d.cfg.Explode:
		var fields map[string]string
		for key := range d.vals {
			if strings.ContainsRune(key, '[') {
				// Bracket-nested keys are not direct fields of an
				// exploded object.
				continue
			}
			if fields == nil {
				fields = make(map[string]string, len(d.vals))
			}
			fields[key] = d.unescape(d.vals.Last(key))
		}
		return fields, fields != nil, nil

	default:
		raw, ok := d.scalarRaw()
		if !ok {
			return nil, false, nil
		}
		tokens := strings.Split(raw, ",")
		if d.cfg.Style == StyleSimple && d.cfg.Explode {
			// Exploded simple maps carry k=v tokens.
			fields := make(map[string]string, len(tokens))
			for _, t := range tokens {
				k, v, found := strings.Cut(t, "=")
				if !found {
					return nil, false, errtrace.Wrap(newMalformedValueErr("token %q is not a pair", t))
				}
				fields[d.unescape(k)] = d.unescape(v)
			}
			return fields, true, nil
		}
		// Unexploded maps flatten to alternating k,v tokens.
		if len(tokens)%2 != 0 {
			return nil, false, errtrace.Wrap(newMalformedValueErr("odd token count %d", len(tokens)))
		}
		fields := make(map[string]string, len(tokens)/2)
		for i := 0; i < len(tokens); i += 2 {
			fields[d.unescape(tokens[i])] = d.unescape(tokens[i+1])
		}
		return fields, true, nil
	}
}

func (d *Decoder) unescape(s string) string {
	return grammar.Unescape(s, d.cfg.plusForSpace())
}

// convertScalar assigns an already unescaped string to a scalar target,
// converting through the lexical form of the target type.
func convertScalar(dst any, s string, cfg Config) error {
	switch dst := dst.(type) {
	case *string:
		*dst = s
	case *bool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = v
	case *int:
		v, err := strconv.ParseInt(s, 10, 0)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = int(v)
	case *int8:
		v, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = int8(v)
	case *int16:
		v, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = int16(v)
	case *int32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = int32(v)
	case *int64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = v
	case *uint:
		v, err := strconv.ParseUint(s, 10, 0)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = uint(v)
	case *uint8:
		v, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = uint8(v)
	case *uint16:
		v, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = uint16(v)
	case *uint32:
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = uint32(v)
	case *uint64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = v
	case *float32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return errtrace.Wrap(newMalformedValueErr(err))
		}
		*dst = v
	case *time.Time:
		v, err := cfg.dateTranscoder().DecodeDate(s)
		if err != nil {
			return errtrace.Wrap(err)
		}
		*dst = v
	case *[]string, *map[string]string, Decodable:
		// Containers cannot nest inside a flattened scalar slot.
		return errtrace.Wrap(ErrNestedContainer)
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedType, "%T", dst))
	}
	return nil
}
