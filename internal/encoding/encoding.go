// Package encoding implements the percent-encoding and parameter
// normalization rules OAuth 1.0 signing requires (RFC 5849 section 3.6 /
// RFC 3986 section 2.1). These deliberately differ from net/url: a space is
// always %20 and never "+", and reserved characters such as "/" and ":" are
// always escaped.
package encoding

import (
	"fmt"
	"sort"
	"strings"
)

// PercentEncode encodes s byte-wise, preserving only the RFC 3986
// unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~").
func PercentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			fmt.Fprintf(&b, "%%%02X", c)
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' {
		return false
	}
	switch c {
	case '-', '.', '_', '~':
		return false
	}
	return true
}

// PercentDecode reverses PercentEncode. Bytes that do not form a valid
// %XX escape are passed through untouched, matching how providers emit
// partially encoded bodies.
func PercentDecode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, okHi := unhex(s[i+1])
			lo, okLo := unhex(s[i+2])
			if okHi && okLo {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Normalize renders params as the canonical "name=value&..." string:
// names and values percent-encoded, pairs sorted lexicographically by
// their encoded "name=value" form, joined by "&". The ordering is
// deterministic regardless of map iteration order.
func Normalize(params map[string]string) string {
	pairs := make([]string, 0, len(params))
	for name, value := range params {
		pairs = append(pairs, PercentEncode(name)+"="+PercentEncode(value))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "&")
}
