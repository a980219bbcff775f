package transform

import (
	"strings"

	"github.com/mcncl/snappier/internal/parser"
)

var defaultTokenizer = NewBlindTokenizer(parser.StructuredText{})

// Pack converts JSON text into the token-compacted frame
// "[k0,k1,...]" + body. It returns false when text is not valid JSON or is
// the literal null.
//
// Newlines and carriage returns are removed everywhere, including inside
// string values, and are not restored by Unpack.
func Pack(text string, keys []string) (string, bool) {
	return defaultTokenizer.Pack(text, keys)
}

func pack(text string, keys []string) string {
	body := StripLineBreaks(text)
	body = strings.ReplaceAll(body, KeyValueSeparator, KeyValueMarker)
	body = strings.ReplaceAll(body, TrueLiteral, TrueMarker)
	body = strings.ReplaceAll(body, FalseLiteral, FalseMarker)
	body = strings.ReplaceAll(body, ObjectBoundary, ObjectBoundaryMarker)

	// Keys are substituted in table order; a key that is a prefix of a later
	// key shadows it.
	for i, key := range keys {
		body = strings.ReplaceAll(body, keyPattern(key), KeyMarker(i))
	}

	var sb strings.Builder
	sb.Grow(len(body) + 2 + len(keys))
	sb.WriteString(headerOpen)
	sb.WriteString(strings.Join(keys, headerSep))
	sb.WriteString(headerClose)
	sb.WriteString(body)
	return sb.String()
}

// StripLineBreaks removes every \n and \r byte from text.
func StripLineBreaks(text string) string {
	if !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return strings.NewReplacer("\n", "", "\r", "").Replace(text)
}
