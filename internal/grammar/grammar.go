// Package grammar implements the RFC 3986 character classes and
// percent-encoding rules used by the URI parameter codec.
package grammar

import "fmt"

type Error string

func (e Error) Error() string { return fmt.Sprintf("grammar error: %s", string(e)) }

func (e Error) Grammar() bool { return true }

const (
	ErrMalformedBracketKey = Error("malformed bracket key")
)

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

var unreservedChars = map[byte]bool{
	'-': true,
	'.': true,
	'_': true,
	'~': true,
}

// IsCharUnreserved checks the RFC 3986 unreserved rule.
func IsCharUnreserved(c byte) bool {
	return unreservedChars[c] || IsAlphanumChar(c)
}
