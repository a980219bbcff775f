// Package transform implements the reversible structural token substitution
// applied to JSON text before compression.
//
// The substitution is blind: it replaces substrings without regard to JSON
// string boundaries, so values that literally contain true, false, },{ or
// the marker lead byte do not survive a round trip. Callers that need a
// safer scheme can provide their own Tokenizer.
package transform

// Tokenizer packs text into a token-compacted frame and reverses it. The
// boolean result is false when the transform does not apply to the input,
// in which case the caller should use the input unchanged.
type Tokenizer interface {
	Pack(text string, keys []string) (string, bool)
	Unpack(text string) (string, bool)
}

// Validator reports whether text is structured (JSON) text that the
// transform may be applied to.
type Validator interface {
	Valid(text string) bool
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(text string) bool

// Valid calls f(text).
func (f ValidatorFunc) Valid(text string) bool {
	return f(text)
}

// BlindTokenizer is the substring-substitution Tokenizer.
type BlindTokenizer struct {
	validator Validator
}

// NewBlindTokenizer returns a BlindTokenizer gated by v.
func NewBlindTokenizer(v Validator) *BlindTokenizer {
	return &BlindTokenizer{validator: v}
}

// Pack implements Tokenizer.
func (b *BlindTokenizer) Pack(text string, keys []string) (string, bool) {
	if b.validator != nil && !b.validator.Valid(text) {
		return "", false
	}
	return pack(text, keys), true
}

// Unpack implements Tokenizer.
func (b *BlindTokenizer) Unpack(text string) (string, bool) {
	return Unpack(text)
}
