package uricodec

import (
	"slices"
	"strings"
)

// Key identifies a parsed parameter by its nesting path: empty for a bare
// simple value, one component for "key=value", two components for a
// deepObject "parent[child]" pair.
type Key []string

// ParseKey splits a slash-joined key path back into its components.
func ParseKey(s string) Key {
	if s == "" {
		return Key{}
	}
	return Key(strings.Split(s, "/"))
}

// String renders the key path slash-joined.
func (k Key) String() string { return strings.Join(k, "/") }

// Equal reports whether two keys have identical components.
func (k Key) Equal(other Key) bool { return slices.Equal(k, other) }

// Child returns a copy of the key with one more trailing component.
func (k Key) Child(component string) Key {
	k2 := make(Key, 0, len(k)+1)
	k2 = append(k2, k...)
	return append(k2, component)
}

// Values maps a rendered [Key] to the list of raw values parsed for it.
// It is the parser's output: a flat multimap, deliberately flatter than
// [Node] because a query or path string is a flat key/value sequence before
// structural reconstruction happens at decode time.
//
// Values are stored still percent-encoded; the decoder unescapes them once
// the target shape is known, so an encoded "%2C" stays distinguishable from
// a delimiter comma. Keys are case-sensitive. Per-key value order follows
// encounter order in the input.
type Values map[string][]string

// Get returns values associated with the given key.
// If there are no values associated with the key, Get returns nil.
func (vals Values) Get(key string) []string { return vals[key] }

func (vals Values) First(key string) string {
	v := vals[key]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

func (vals Values) Last(key string) string {
	v := vals[key]
	if len(v) == 0 {
		return ""
	}
	return v[len(v)-1]
}

// Set sets the key to value. It replaces any existing values.
func (vals Values) Set(key, value string) Values {
	vals[key] = []string{value}
	return vals
}

func (vals Values) Append(key, value string) Values {
	vals[key] = append(vals[key], value)
	return vals
}

// Has checks whether a given key is in the map.
func (vals Values) Has(key string) bool {
	_, ok := vals[key]
	return ok
}

// Clone returns a copy of the map.
func (vals Values) Clone() Values {
	var vals2 Values
	for k, vs := range vals {
		if vals2 == nil {
			vals2 = make(Values, len(vals))
		}
		vals2[k] = slices.Clone(vs)
	}
	return vals2
}
