package urlspec

import "strings"

const (
	// MatrixParam is the matrix parameter that carries sub-protocols.
	MatrixParam = "_sp"

	// SubProtocolSeparator joins nested sub-protocol tokens in the
	// MatrixParam value and separates them in a compound scheme.
	SubProtocolSeparator = ":"
)

const authorityMarker = "://"

// Reform rewrites a compound-scheme spec so that the standard parser can
// consume it.
//
// spec[:start] is the already-resolved outer scheme including its colon,
// and [start, limit) is the range the base parser would consume. limit
// normally excludes a trailing "#fragment". Reform returns the rewritten
// spec and the new limit; when no sub-protocol is present both are
// returned unchanged.
func Reform(spec string, start, limit int) (string, int) {
	if start < 0 || start > limit || limit > len(spec) {
		return spec, limit
	}

	rel := strings.Index(spec[start:limit], authorityMarker)
	if rel < 0 {
		return spec, limit
	}

	sep := start + rel
	token := spec[start:sep]

	// The marker belongs to a path or query, not to the scheme.
	if strings.ContainsAny(token, "/?#") {
		return spec, limit
	}

	tokens := splitTokens(token)
	if len(tokens) == 0 {
		return spec, limit
	}

	param := matrixParameter(tokens)

	authStart := sep + len(authorityMarker)
	authEnd := limit
	if i := strings.IndexAny(spec[authStart:limit], "/?"); i >= 0 {
		authEnd = authStart + i
	}

	insert := limit
	if i := strings.IndexAny(spec[authEnd:limit], ";?"); i >= 0 {
		insert = authEnd + i
	}

	// Keep the parameter out of the authority.
	if insert == authEnd {
		param = "/" + param
	}

	// Drop the sub-protocol and its colon; the kept text starts with "//".
	removed := sep + 1 - start

	var b strings.Builder
	b.Grow(len(spec) - removed + len(param))
	b.WriteString(spec[:start])
	b.WriteString(spec[sep+1 : insert])
	b.WriteString(param)
	b.WriteString(spec[insert:])

	return b.String(), limit - removed + len(param)
}

// ReformSpec locates the scheme and fragment of spec and calls Reform on
// the range between them. Specs without a valid scheme are returned
// unchanged.
func ReformSpec(spec string) string {
	colon := schemeEnd(spec)
	if colon < 0 {
		return spec
	}

	limit := len(spec)
	if i := strings.IndexByte(spec, '#'); i > colon {
		limit = i
	}

	reformed, _ := Reform(spec, colon+1, limit)

	return reformed
}

// Scheme returns the lower-cased scheme of a raw spec.
func Scheme(spec string) (string, bool) {
	colon := schemeEnd(spec)
	if colon < 0 {
		return "", false
	}

	return strings.ToLower(spec[:colon]), true
}

// ValidScheme reports whether s matches the scheme grammar of
// RFC 3986 Section 3.1: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func ValidScheme(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' || c == '+' || c == '-' || c == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

// schemeEnd returns the index of the colon terminating a valid scheme,
// or -1.
func schemeEnd(spec string) int {
	colon := strings.IndexByte(spec, ':')
	if colon <= 0 || !ValidScheme(spec[:colon]) {
		return -1
	}

	return colon
}

// splitTokens splits a compound sub-protocol into its non-empty tokens.
func splitTokens(token string) []string {
	var tokens []string
	for t := range strings.SplitSeq(token, SubProtocolSeparator) {
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	return tokens
}

// matrixParameter builds ";_sp=tok1:tok2".
func matrixParameter(tokens []string) string {
	var b strings.Builder
	b.WriteByte(';')
	b.WriteString(MatrixParam)
	b.WriteByte('=')
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(SubProtocolSeparator)
		}
		b.WriteString(Escape(t))
	}

	return b.String()
}
