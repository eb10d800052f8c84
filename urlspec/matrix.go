package urlspec

import (
	"fmt"
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// Escape percent-encodes s for use as a matrix parameter name or value.
// Bytes that are delimiters in a path segment, in the matrix convention
// or in a sub-protocol list are always encoded.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			n++
		}
	}

	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}

	return b.String()
}

// Unescape decodes a value produced by Escape.
func Unescape(s string) (string, error) {
	v, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return v, nil
}

func shouldEscape(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return true
	}

	switch c {
	case '%', ';', '=', '?', '#', '/', ',', ':':
		return true
	}

	return false
}

// Matrix returns the decoded matrix parameters of every segment of an
// escaped path, in order of appearance. Parameters without "=" have an
// empty value.
func Matrix(path string) (url.Values, error) {
	values := url.Values{}

	err := eachParam(path, func(rawName, rawValue string) error {
		name, err := Unescape(rawName)
		if err != nil {
			return err
		}

		value, err := Unescape(rawValue)
		if err != nil {
			return err
		}

		values.Add(name, value)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return values, nil
}

// StripMatrix removes every matrix parameter called name from an escaped
// path. Other parameters and segments are kept verbatim.
func StripMatrix(path, name string) string {
	if !strings.Contains(path, ";") {
		return path
	}

	segments := strings.Split(path, "/")
	for i, segment := range segments {
		base, params, found := strings.Cut(segment, ";")
		if !found {
			continue
		}

		var b strings.Builder
		b.WriteString(base)
		for param := range strings.SplitSeq(params, ";") {
			rawName, _, _ := strings.Cut(param, "=")
			if decoded, err := url.PathUnescape(rawName); err == nil && decoded == name {
				continue
			}
			b.WriteByte(';')
			b.WriteString(param)
		}

		segments[i] = b.String()
	}

	return strings.Join(segments, "/")
}

// eachParam calls fn with the raw name and value of every non-empty
// matrix parameter in an escaped path.
func eachParam(path string, fn func(rawName, rawValue string) error) error {
	for segment := range strings.SplitSeq(path, "/") {
		_, params, found := strings.Cut(segment, ";")
		if !found {
			continue
		}

		for param := range strings.SplitSeq(params, ";") {
			if param == "" {
				continue
			}

			rawName, rawValue, _ := strings.Cut(param, "=")
			if err := fn(rawName, rawValue); err != nil {
				return err
			}
		}
	}

	return nil
}
