package transform

import "strings"

// Unpack reverses Pack. It returns false when text does not carry a key
// table header, in which case the caller should use text unchanged.
func Unpack(text string) (string, bool) {
	if !strings.HasPrefix(text, headerOpen) {
		return "", false
	}
	header, body, found := strings.Cut(text, headerClose)
	if !found {
		return "", false
	}
	keys := parseHeader(header)

	body = strings.ReplaceAll(body, legacyBoundarySentinel, legacyBoundaryPrelude)

	// Highest index first: the marker for 1 is a prefix of the marker for 10.
	for i := len(keys) - 1; i >= 0; i-- {
		body = strings.ReplaceAll(body, KeyMarker(i), keyPattern(keys[i]))
	}

	body = strings.ReplaceAll(body, ObjectBoundaryMarker, ObjectBoundary)
	body = strings.ReplaceAll(body, FalseMarker, FalseLiteral)
	body = strings.ReplaceAll(body, TrueMarker, TrueLiteral)
	body = strings.ReplaceAll(body, KeyValueMarker, KeyValueSeparator)
	return body, true
}

// parseHeader splits the key table header, with its leading bracket, into
// the ordered key list. An empty header holds no keys.
func parseHeader(header string) []string {
	list := strings.TrimPrefix(header, headerOpen)
	if list == "" {
		return nil
	}
	return strings.Split(list, headerSep)
}
