// Package stringutils provides string helpers shared across the module.
package stringutils

import (
	"cmp"
	"strings"
	"sync"
)

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(1024)
		return sb
	},
}

func NewStrBldr() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStrBldr(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}

func CmpKVs[T ~string](kv1, kv2 []T) int { return cmp.Compare(kv1[0], kv2[0]) }
