package tabbar

import (
	"net/url"
	"strings"
)

const dataURLPrefix = "data:image/svg+xml,"

const upperhex = "0123456789ABCDEF"

// EncodeDataURL returns the svg text as a percent-encoded data URL. The
// escaped set matches the one of JavaScript's encodeURIComponent so the
// output is byte-for-byte what a web view would produce.
func EncodeDataURL(svg string) string {
	var b strings.Builder
	b.Grow(len(dataURLPrefix) + len(svg)*3/2)
	b.WriteString(dataURLPrefix)
	for i := 0; i < len(svg); i++ {
		c := svg[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

// DecodeDataURL reverses EncodeDataURL.
func DecodeDataURL(s string) (string, error) {
	if !strings.HasPrefix(s, dataURLPrefix) {
		return "", errorf(CodeInvalidSVG, nil, "not an svg data url")
	}
	return url.PathUnescape(strings.TrimPrefix(s, dataURLPrefix))
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
