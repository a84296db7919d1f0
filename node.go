package uricodec

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/uricodec/internal/errorutil"
)

// Kind reports the shape a [Node] holds.
type Kind int

const (
	// KindUnset is the initial state of every node.
	KindUnset Kind = iota
	// KindPrimitive marks a node holding a single scalar value.
	KindPrimitive
	// KindArray marks a node holding an ordered sequence of child nodes.
	KindArray
	// KindMap marks a node holding string-keyed child nodes.
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindPrimitive:
		return "primitive"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

type primKind int

const (
	primString primKind = iota
	primBool
	primInt
	primFloat
)

// primitive is the scalar payload of a node. Dates are transcoded to strings
// by the encoder before the node is built, so no date variant exists here.
type primitive struct {
	kind primKind
	b    bool
	i    int64
	f    float64
	s    string
}

// Node is the intermediate tree built from a typed value before string
// serialization. A fresh tree is built per encode call and discarded
// afterwards; nodes are not safe for concurrent mutation.
//
// A node starts unset and takes exactly one of the primitive, array or map
// shapes on first mutation. Any later attempt to change the shape fails with
// one of the node errors.
type Node struct {
	kind   Kind
	prim   primitive
	elems  []*Node
	fields map[string]*Node
}

// Kind returns the current shape of the node.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindUnset
	}
	return n.kind
}

// SetBool sets a boolean primitive value.
func (n *Node) SetBool(v bool) error {
	return errtrace.Wrap(n.setPrimitive(primitive{kind: primBool, b: v}))
}

// SetInt64 sets an integer primitive value.
func (n *Node) SetInt64(v int64) error {
	return errtrace.Wrap(n.setPrimitive(primitive{kind: primInt, i: v}))
}

// SetFloat64 sets a floating-point primitive value.
func (n *Node) SetFloat64(v float64) error {
	return errtrace.Wrap(n.setPrimitive(primitive{kind: primFloat, f: v}))
}

// SetString sets a string primitive value.
func (n *Node) SetString(v string) error {
	return errtrace.Wrap(n.setPrimitive(primitive{kind: primString, s: v}))
}

func (n *Node) setPrimitive(p primitive) error {
	switch n.kind {
	case KindUnset:
		n.kind = KindPrimitive
		n.prim = p
		return nil
	case KindPrimitive:
		return errtrace.Wrap(ErrPrimitiveAlreadySet)
	default:
		return errtrace.Wrap(ErrValueOnContainer)
	}
}

// Append inserts child at the end of the array, turning an unset node into
// an array on first use.
func (n *Node) Append(child *Node) error {
	return errtrace.Wrap(n.InsertAt(len(n.elems), child))
}

// InsertAt inserts child at index i. Only appending at the current length is
// allowed: arrays grow strictly in order.
func (n *Node) InsertAt(i int, child *Node) error {
	switch n.kind {
	case KindUnset, KindArray:
	default:
		return errtrace.Wrap(ErrAppendToNonArray)
	}
	if i != len(n.elems) {
		// Checked before the kind flips: a failed insert leaves the node as
		// it was.
		return errtrace.Wrap(errorutil.NewWrapperError(ErrSparseArrayInsert, "index %d, length %d", i, len(n.elems)))
	}
	n.kind = KindArray
	n.elems = append(n.elems, child)
	return nil
}

// Insert sets the child node for the given key, turning an unset node into a
// map on first use. An existing child under the same key is replaced.
func (n *Node) Insert(key string, child *Node) error {
	switch n.kind {
	case KindUnset:
		n.kind = KindMap
		n.fields = make(map[string]*Node)
	case KindMap:
	default:
		return errtrace.Wrap(ErrInsertIntoNonContainer)
	}
	n.fields[key] = child
	return nil
}

// Len returns the number of array elements or map entries.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.kind == KindMap {
		return len(n.fields)
	}
	return len(n.elems)
}

// At returns the i-th array element, or nil if out of range.
func (n *Node) At(i int) *Node {
	if n == nil || n.kind != KindArray || i < 0 || i >= len(n.elems) {
		return nil
	}
	return n.elems[i]
}

// Field returns the child node for the given map key.
func (n *Node) Field(key string) (*Node, bool) {
	if n == nil || n.kind != KindMap {
		return nil, false
	}
	child, ok := n.fields[key]
	return child, ok
}
