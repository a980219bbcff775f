package transform

import "strconv"

// MarkerLead starts every structural marker. Input text is expected not to
// contain it.
const MarkerLead = "`"

// Structural markers and the literal text each one replaces.
const (
	KeyValueMarker       = MarkerLead + "!" // replaces `":"`
	TrueMarker           = MarkerLead + "t" // replaces `true`
	FalseMarker          = MarkerLead + "f" // replaces `false`
	ObjectBoundaryMarker = MarkerLead + "{" // replaces `},{`

	KeyValueSeparator = `":"`
	TrueLiteral       = "true"
	FalseLiteral      = "false"
	ObjectBoundary    = "},{"
)

// Legacy sentinel rewritten to the start of an object boundary before key
// markers are restored.
const (
	legacyBoundarySentinel = "^~"
	legacyBoundaryPrelude  = ObjectBoundaryMarker + MarkerLead
)

// Key table header delimiters.
const (
	headerOpen  = "["
	headerClose = "]"
	headerSep   = ","
)

// KeyMarker returns the marker substituted for the key at index i.
func KeyMarker(i int) string {
	return MarkerLead + strconv.Itoa(i)
}

// keyPattern returns the text a key marker stands for: the opening quote
// followed by the key.
func keyPattern(key string) string {
	return `"` + key
}
