package uricodec

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uricodec/internal/grammar"
	"github.com/ghettovoice/uricodec/internal/stringutils"
)

// serializer walks an encoded node and writes the final percent-encoded
// string. One serializer serves exactly one top-level call: construct fresh
// per encode, share only the immutable Config.
type serializer struct {
	cfg Config
	sb  *strings.Builder
}

func serializeNode(key string, n *Node, cfg Config) (string, error) {
	sb := stringutils.NewStrBldr()
	defer stringutils.FreeStrBldr(sb)

	s := serializer{cfg: cfg, sb: sb}
	if err := s.serialize(key, n); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

func (s *serializer) serialize(key string, n *Node) error {
	switch n.Kind() {
	case KindUnset:
		// Absent value contributes nothing.
		return nil
	case KindPrimitive:
		return errtrace.Wrap(s.primitive(key, n.prim))
	case KindArray:
		return errtrace.Wrap(s.array(key, n.elems))
	case KindMap:
		return errtrace.Wrap(s.object(key, n.fields))
	default:
		return errtrace.Wrap(NewInvalidArgumentError("node kind %d", n.Kind()))
	}
}

func (s *serializer) primitive(key string, p primitive) error {
	switch s.cfg.Style {
	case StyleDeepObject:
		return errtrace.Wrap(ErrDeepObjectPrimitive)
	case StyleForm:
		s.pair(key, renderPrimitive(p))
	default:
		s.sb.WriteString(s.escape(renderPrimitive(p)))
	}
	return nil
}

func (s *serializer) array(key string, elems []*Node) error {
	if s.cfg.Style == StyleDeepObject {
		return errtrace.Wrap(ErrDeepObjectArray)
	}

	vals := make([]string, 0, len(elems))
	for _, el := range elems {
		switch el.Kind() {
		case KindUnset:
			continue
		case KindPrimitive:
			vals = append(vals, renderPrimitive(el.prim))
		default:
			return errtrace.Wrap(ErrNestedContainer)
		}
	}
	if len(vals) == 0 {
		// Empty array renders as an empty string in every style.
		return nil
	}

	if s.cfg.Style == StyleForm && s.cfg.Explode {
		for i, v := range vals {
			if i > 0 {
				s.sb.WriteByte('&')
			}
			s.pair(key, v)
		}
		return nil
	}

	// RFC 6570 quirk: simple style has no explode distinction at this
	// nesting level, exploded and unexploded arrays both comma-join.
	if s.cfg.Style == StyleForm {
		s.sb.WriteString(s.escape(key))
		s.sb.WriteByte('=')
	}
	for i, v := range vals {
		if i > 0 {
			s.sb.WriteByte(',')
		}
		s.sb.WriteString(s.escape(v))
	}
	return nil
}

func (s *serializer) object(key string, fields map[string]*Node) error {
	// Entries are iterated in lexicographic key order: output must be
	// deterministic regardless of map iteration order.
	if s.cfg.Style == StyleForm && s.cfg.Explode {
		names := slices.Sorted(maps.Keys(fields))
		segs := make([]string, 0, len(names))
		for _, name := range names {
			child := fields[name]
			switch child.Kind() {
			case KindUnset:
				continue
			case KindPrimitive, KindArray:
				seg, err := serializeNode(name, child, s.cfg)
				if err != nil {
					return errtrace.Wrap(err)
				}
				if seg != "" {
					segs = append(segs, seg)
				}
			default:
				return errtrace.Wrap(ErrNestedContainer)
			}
		}
		s.sb.WriteString(strings.Join(segs, "&"))
		return nil
	}

	kvs := make([][]string, 0, len(fields))
	for name, child := range fields {
		switch child.Kind() {
		case KindUnset:
			continue
		case KindPrimitive:
			kvs = append(kvs, []string{name, renderPrimitive(child.prim)})
		case KindArray:
			if s.cfg.Style == StyleDeepObject {
				return errtrace.Wrap(ErrDeepObjectArray)
			}
			return errtrace.Wrap(ErrNestedContainer)
		default:
			if s.cfg.Style == StyleDeepObject {
				return errtrace.Wrap(ErrDeepObjectNested)
			}
			return errtrace.Wrap(ErrNestedContainer)
		}
	}
	slices.SortFunc(kvs, stringutils.CmpKVs)
	if len(kvs) == 0 {
		// Empty map renders as an empty string in every style.
		return nil
	}

	switch {
	case s.cfg.Style == StyleDeepObject:
		for i, kv := range kvs {
			if i > 0 {
				s.sb.WriteByte('&')
			}
			s.pair(key+"["+kv[0]+"]", kv[1])
		}
	case s.cfg.Style == StyleSimple && s.cfg.Explode:
		for i, kv := range kvs {
			if i > 0 {
				s.sb.WriteByte(',')
			}
			s.sb.WriteString(s.escape(kv[0]))
			s.sb.WriteByte('=')
			s.sb.WriteString(s.escape(kv[1]))
		}
	default:
		// Unexploded: flatten to k1,v1,k2,v2.
		if s.cfg.Style == StyleForm {
			s.sb.WriteString(s.escape(key))
			s.sb.WriteByte('=')
		}
		for i, kv := range kvs {
			if i > 0 {
				s.sb.WriteByte(',')
			}
			s.sb.WriteString(s.escape(kv[0]))
			s.sb.WriteByte(',')
			s.sb.WriteString(s.escape(kv[1]))
		}
	}
	return nil
}

func (s *serializer) pair(key, value string) {
	s.sb.WriteString(s.escape(key))
	s.sb.WriteByte('=')
	s.sb.WriteString(s.escape(value))
}

func (s *serializer) escape(v string) string {
	return grammar.Escape(v, s.cfg.plusForSpace())
}

func renderPrimitive(p primitive) string {
	switch p.kind {
	case primBool:
		return strconv.FormatBool(p.b)
	case primInt:
		return strconv.FormatInt(p.i, 10)
	case primFloat:
		return strconv.FormatFloat(p.f, 'f', -1, 64)
	default:
		return p.s
	}
}
