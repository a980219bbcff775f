// Package codec compresses text with an optional structural token transform
// applied before compression and reversed after decompression.
package codec

import (
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/mcncl/snappier/internal/boundary"
	"github.com/mcncl/snappier/internal/compressor"
	"github.com/mcncl/snappier/internal/errors"
	"github.com/mcncl/snappier/internal/parser"
	"github.com/mcncl/snappier/internal/transform"
)

// Codec encodes text to compressed bytes and back. A Codec holds no
// per-call state, but it must not be used from several goroutines at once.
type Codec struct {
	customJSONCompressionLogic bool
	compressor                 compressor.Compressor
	tokenizer                  transform.Tokenizer
	logger                     *slog.Logger
	boundaryScan               bool
	verify                     bool
}

// Option configures a Codec.
type Option func(*Codec)

// WithCompressor sets the block compressor. The default is snappy.
func WithCompressor(c compressor.Compressor) Option {
	return func(cd *Codec) { cd.compressor = c }
}

// WithTokenizer replaces the token transform.
func WithTokenizer(t transform.Tokenizer) Option {
	return func(cd *Codec) { cd.tokenizer = t }
}

// WithLogger sets the logger for debug output. Logs are discarded by default.
func WithLogger(l *slog.Logger) Option {
	return func(cd *Codec) { cd.logger = l }
}

// WithBoundaryScan makes Encode cross-check the length the compressor reports
// against a scan of the output buffer and log any mismatch.
func WithBoundaryScan(enabled bool) Option {
	return func(cd *Codec) { cd.boundaryScan = enabled }
}

// WithVerify makes Encode check that a packed frame unpacks to the input
// and compress the raw input when it does not.
func WithVerify(enabled bool) Option {
	return func(cd *Codec) { cd.verify = enabled }
}

// NewCodec creates a Codec. customJSONCompressionLogic enables the token
// transform for JSON input.
func NewCodec(customJSONCompressionLogic bool, opts ...Option) *Codec {
	c := &Codec{
		customJSONCompressionLogic: customJSONCompressionLogic,
		compressor:                 compressor.NewSnappy(),
		tokenizer:                  transform.NewBlindTokenizer(parser.StructuredText{}),
		logger:                     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TransformEnabled reports whether the token transform is applied.
func (c *Codec) TransformEnabled() bool {
	return c.customJSONCompressionLogic
}

// Compressor returns the block compressor in use.
func (c *Codec) Compressor() compressor.Compressor {
	return c.compressor
}

// Encode compresses text. keys is the key table for the token transform and
// is ignored when the transform is disabled or does not apply.
func (c *Codec) Encode(text string, keys []string) ([]byte, error) {
	if text == "" {
		return []byte{}, nil
	}

	payload := text
	if c.customJSONCompressionLogic {
		payload = c.pack(text, keys)
	}

	src := []byte(payload)
	bound := c.compressor.MaxEncodedLen(len(src))
	if bound < 0 {
		return nil, errors.NewCompressionError(
			fmt.Sprintf("input of %d bytes is too large for %s", len(src), c.compressor.Name()),
			errors.ErrCompressionFailure,
		)
	}
	out := make([]byte, bound)

	n, err := c.compressor.Compress(out, src)
	if err != nil {
		return nil, errors.NewCompressionError(fmt.Sprintf("%s compression failed", c.compressor.Name()), err)
	}

	var result []byte
	switch {
	case n == compressor.LengthUnknown:
		result = boundary.Trim(out)
		c.logger.Debug("recovered compressed length by scanning", "scanned", len(result), "buffer", len(out))
	default:
		if c.boundaryScan {
			c.checkBoundary(out, n)
		}
		result = make([]byte, n)
		copy(result, out[:n])
	}

	c.logger.Debug("encoded", "compressor", c.compressor.Name(), "input", len(text), "payload", len(src), "output", len(result))
	return result, nil
}

// checkBoundary compares the reported length n with a scan of out. The
// reported length always wins; a stream that ends in zero bytes scans short.
func (c *Codec) checkBoundary(out []byte, n int) {
	scanned, found := boundary.Find(out)
	if !found {
		scanned = len(out)
	}
	if scanned != n {
		c.logger.Debug("boundary scan disagrees with reported length", "reported", n, "scanned", scanned, "buffer", len(out))
	}
}

func (c *Codec) pack(text string, keys []string) string {
	packed, ok := c.tokenizer.Pack(text, keys)
	if !ok {
		c.logger.Debug("token transform not applicable, compressing raw text")
		return text
	}
	if c.verify {
		unpacked, ok := c.tokenizer.Unpack(packed)
		if !ok || unpacked != transform.StripLineBreaks(text) {
			c.logger.Warn("token transform does not round-trip, compressing raw text", "keys", len(keys))
			return text
		}
	}
	return packed
}

// Decode decompresses data produced by Encode and reverses the token
// transform when it is enabled.
func (c *Codec) Decode(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	n, err := c.compressor.DecodedLen(data)
	if err != nil {
		return "", errors.NewLengthHeaderError("failed to read decompressed length", err)
	}
	if n < 0 {
		return "", errors.NewLengthHeaderError(
			fmt.Sprintf("%s reported a negative decompressed length", c.compressor.Name()),
			errors.ErrLengthHeaderInvalid,
		)
	}

	out := make([]byte, n)
	if err := c.compressor.Decompress(out, data); err != nil {
		return "", errors.NewCorruptedError(fmt.Sprintf("%s decompression failed", c.compressor.Name()), err)
	}

	if !utf8.Valid(out) {
		return "", errors.NewEncodingError("decompressed data is not valid UTF-8", errors.ErrInvalidTextEncoding)
	}
	text := string(out)

	if c.customJSONCompressionLogic {
		unpacked, ok := c.tokenizer.Unpack(text)
		if !ok {
			c.logger.Debug("no key table header, returning decompressed text")
			return text, nil
		}
		text = unpacked
	}

	c.logger.Debug("decoded", "compressor", c.compressor.Name(), "input", len(data), "output", len(text))
	return text, nil
}
