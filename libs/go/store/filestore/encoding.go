package filestore

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// unreserved reports the characters left as-is by URI component encoding.
// '.' is excluded so no file name can start with a dot or equal "..".
func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_!~*'()", c) >= 0
}

// EncodeProfileName turns a profile name into the base name of its document
func EncodeProfileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c == '.':
			b.WriteString("%2e")
		case unreserved(c):
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		}
	}
	return b.String()
}

// DecodeProfileName reverses EncodeProfileName
func DecodeProfileName(encoded string) (string, error) {
	return url.PathUnescape(encoded)
}
