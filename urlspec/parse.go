package urlspec

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var errStop = errors.New("stop")

// Parse rewrites spec with ReformSpec and parses the result.
func Parse(spec string) (*url.URL, error) {
	u, err := url.Parse(ReformSpec(spec))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	return u, nil
}

// SubProtocols returns the sub-protocol tokens recorded in the path of u
// by Reform, or nil when there are none.
func SubProtocols(u *url.URL) ([]string, error) {
	var tokens []string

	err := eachParam(u.EscapedPath(), func(rawName, rawValue string) error {
		if rawName != MatrixParam {
			return nil
		}

		for raw := range strings.SplitSeq(rawValue, SubProtocolSeparator) {
			if raw == "" {
				continue
			}

			token, err := Unescape(raw)
			if err != nil {
				return err
			}
			tokens = append(tokens, token)
		}

		return errStop
	})
	if err != nil && !errors.Is(err, errStop) {
		return nil, err
	}

	return tokens, nil
}

// Restore rebuilds the compound spec a rewritten URL was parsed from.
// URLs without sub-protocols are returned as u.String().
func Restore(u *url.URL) (string, error) {
	tokens, err := SubProtocols(u)
	if err != nil {
		return "", err
	}

	if len(tokens) == 0 || u.Scheme == "" {
		return u.String(), nil
	}

	rawPath := StripMatrix(u.EscapedPath(), MatrixParam)
	path, err := Unescape(rawPath)
	if err != nil {
		return "", err
	}

	c := *u
	c.Path = path
	c.RawPath = rawPath

	escaped := make([]string, len(tokens))
	for i, t := range tokens {
		escaped[i] = Escape(t)
	}

	s := c.String()

	return c.Scheme + ":" + strings.Join(escaped, SubProtocolSeparator) + s[len(c.Scheme):], nil
}
