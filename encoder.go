package uricodec

import (
	"math"
	"time"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uricodec/internal/errorutil"
)

// Encodable is the traversal contract of the encode path. A value describes
// itself to the [Encoder] as a primitive, an ordered sequence of elements or
// a named-field map, recursing through [Encoder.EncodeValue] for children.
//
//	type Pet struct {
//		Name string
//		Age  int
//	}
//
//	func (p Pet) EncodeURI(e *uricodec.Encoder) error {
//		if err := e.BeginField("name"); err != nil {
//			return err
//		}
//		if err := e.EncodeString(p.Name); err != nil {
//			return err
//		}
//		if err := e.End(); err != nil {
//			return err
//		}
//		// ... same for "age"
//		return nil
//	}
type Encodable interface {
	EncodeURI(e *Encoder) error
}

// Encoder translates a typed value into an encoded [Node] tree. It keeps an
// explicit stack of in-progress frames: beginning a field or element pushes
// a fresh child node, End pops it and attaches it to its parent. Deferring
// the attachment keeps parent and in-progress child decoupled while the
// child is still being built.
//
// Encoders are created fresh per top-level encode call and must not be
// shared across calls.
type Encoder struct {
	cfg   Config
	stack []encFrame
}

type encFrame struct {
	key  string // map key in the parent; unused for array elements
	elem bool
	node *Node
}

func newEncoder(cfg Config) *Encoder {
	return &Encoder{
		cfg:   cfg,
		stack: []encFrame{{node: &Node{}}},
	}
}

func (e *Encoder) cur() *Node { return e.stack[len(e.stack)-1].node }

func (e *Encoder) root() *Node { return e.stack[0].node }

// BeginField starts building a child value under the given map key.
// Every Begin call must be balanced by [Encoder.End].
func (e *Encoder) BeginField(name string) error {
	return errtrace.Wrap(e.push(encFrame{key: name, node: &Node{}}))
}

// BeginElement starts building the next array element.
// Every Begin call must be balanced by [Encoder.End].
func (e *Encoder) BeginElement() error {
	return errtrace.Wrap(e.push(encFrame{elem: true, node: &Node{}}))
}

func (e *Encoder) push(f encFrame) error {
	if e.cur().Kind() == KindPrimitive {
		// A lone primitive slot cannot host children.
		return errtrace.Wrap(ErrNestedInSingleValue)
	}
	e.stack = append(e.stack, f)
	return nil
}

// End completes the innermost field or element and inserts it into its
// parent. A child left unset (an absent value) is dropped: absent values
// contribute no entry.
func (e *Encoder) End() error {
	if len(e.stack) < 2 {
		return errtrace.Wrap(NewInvalidArgumentError("unbalanced End"))
	}
	f := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]

	if f.node.Kind() == KindUnset {
		return nil
	}
	if f.elem {
		return errtrace.Wrap(e.cur().Append(f.node))
	}
	return errtrace.Wrap(e.cur().Insert(f.key, f.node))
}

// EncodeBool captures a boolean primitive.
func (e *Encoder) EncodeBool(v bool) error { return errtrace.Wrap(e.cur().SetBool(v)) }

// EncodeString captures a string primitive.
func (e *Encoder) EncodeString(v string) error { return errtrace.Wrap(e.cur().SetString(v)) }

// EncodeInt64 captures an integer primitive.
func (e *Encoder) EncodeInt64(v int64) error { return errtrace.Wrap(e.cur().SetInt64(v)) }

// EncodeUint64 captures an unsigned integer primitive. Values beyond the
// 64-bit signed range fail with [ErrIntegerOutOfRange]: the codec never
// truncates or wraps.
func (e *Encoder) EncodeUint64(v uint64) error {
	if v > math.MaxInt64 {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrIntegerOutOfRange, "%d", v))
	}
	return errtrace.Wrap(e.cur().SetInt64(int64(v)))
}

// EncodeFloat64 captures a floating-point primitive.
func (e *Encoder) EncodeFloat64(v float64) error { return errtrace.Wrap(e.cur().SetFloat64(v)) }

// EncodeDate captures a date primitive in its canonical string form,
// produced by the configured [DateTranscoder].
func (e *Encoder) EncodeDate(t time.Time) error {
	s, err := e.cfg.dateTranscoder().EncodeDate(t)
	if err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(e.cur().SetString(s))
}

// EncodeNil marks the current value absent: it contributes no entry to the
// output. Callers that want an empty-but-present value must encode an empty
// string or an empty container explicitly.
func (e *Encoder) EncodeNil() error { return nil }

// EncodeValue translates an arbitrary supported value. Scalar leaves are
// captured directly; slices, maps and [Encodable] implementations recurse.
func (e *Encoder) EncodeValue(v any) error {
	switch v := v.(type) {
	case nil:
		return nil
	case Encodable:
		return errtrace.Wrap(v.EncodeURI(e))
	case *bool:
		if v == nil {
			return nil
		}
		return errtrace.Wrap(e.EncodeBool(*v))
	case *string:
		if v == nil {
			return nil
		}
		return errtrace.Wrap(e.EncodeString(*v))
	case *int64:
		if v == nil {
			return nil
		}
		return errtrace.Wrap(e.EncodeInt64(*v))
	case *float64:
		if v == nil {
			return nil
		}
		return errtrace.Wrap(e.EncodeFloat64(*v))
	case *time.Time:
		if v == nil {
			return nil
		}
		return errtrace.Wrap(e.EncodeDate(*v))
	case bool:
		return errtrace.Wrap(e.EncodeBool(v))
	case string:
		return errtrace.Wrap(e.EncodeString(v))
	case int:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case int8:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case int16:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case int32:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case int64:
		return errtrace.Wrap(e.EncodeInt64(v))
	case uint:
		return errtrace.Wrap(e.EncodeUint64(uint64(v)))
	case uint8:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case uint16:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case uint32:
		return errtrace.Wrap(e.EncodeInt64(int64(v)))
	case uint64:
		return errtrace.Wrap(e.EncodeUint64(v))
	case float32:
		return errtrace.Wrap(e.EncodeFloat64(float64(v)))
	case float64:
		return errtrace.Wrap(e.EncodeFloat64(v))
	case time.Time:
		return errtrace.Wrap(e.EncodeDate(v))
	case []byte:
		// Binary payloads are not representable: base64-encode first.
		return errtrace.Wrap(ErrBinaryData)
	case []string:
		return errtrace.Wrap(encodeSlice(e, v, (*Encoder).EncodeString))
	case []bool:
		return errtrace.Wrap(encodeSlice(e, v, (*Encoder).EncodeBool))
	case []int:
		return errtrace.Wrap(encodeSlice(e, v, func(e *Encoder, el int) error {
			return e.EncodeInt64(int64(el)) //errtrace:skip
		}))
	case []int64:
		return errtrace.Wrap(encodeSlice(e, v, (*Encoder).EncodeInt64))
	case []float64:
		return errtrace.Wrap(encodeSlice(e, v, (*Encoder).EncodeFloat64))
	case []any:
		return errtrace.Wrap(encodeSlice(e, v, (*Encoder).EncodeValue))
	case map[string]string:
		for name, el := range v {
			if err := e.encodeField(name, el); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	case map[string]any:
		for name, el := range v {
			if err := e.encodeField(name, el); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	default:
		return errtrace.Wrap(errorutil.NewWrapperError(ErrUnsupportedType, "%T", v))
	}
}

func (e *Encoder) encodeField(name string, v any) error {
	if err := e.BeginField(name); err != nil {
		return errtrace.Wrap(err)
	}
	if err := e.EncodeValue(v); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(e.End())
}

func encodeSlice[T any](e *Encoder, vals []T, enc func(*Encoder, T) error) error {
	for _, el := range vals {
		if err := e.BeginElement(); err != nil {
			return errtrace.Wrap(err)
		}
		if err := enc(e, el); err != nil {
			return errtrace.Wrap(err)
		}
		if err := e.End(); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

// encodeToNode runs a full value-to-node translation with a fresh encoder.
func encodeToNode(v any, cfg Config) (*Node, error) {
	e := newEncoder(cfg)
	if err := e.EncodeValue(v); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if len(e.stack) != 1 {
		return nil, errtrace.Wrap(NewInvalidArgumentError("unbalanced encoder frames"))
	}
	return e.root(), nil
}
