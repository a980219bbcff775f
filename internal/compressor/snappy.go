package compressor

import (
	"fmt"

	"github.com/golang/snappy"

	"github.com/mcncl/snappier/internal/errors"
)

// Snappy is the snappy block format.
type Snappy struct{}

// NewSnappy returns a snappy block Compressor.
func NewSnappy() *Snappy {
	return &Snappy{}
}

// Name implements Compressor.
func (Snappy) Name() string { return NameSnappy }

// MaxEncodedLen implements Compressor.
func (Snappy) MaxEncodedLen(n int) int { return snappy.MaxEncodedLen(n) }

// Compress implements Compressor.
func (s Snappy) Compress(dst, src []byte) (int, error) {
	if s.MaxEncodedLen(len(src)) < 0 {
		return 0, fmt.Errorf("%w: %w", errors.ErrCompressionFailure, snappy.ErrTooLarge)
	}
	return fit(dst, snappy.Encode(dst, src))
}

// DecodedLen implements Compressor.
func (Snappy) DecodedLen(src []byte) (int, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrLengthHeaderInvalid, err)
	}
	return n, nil
}

// Decompress implements Compressor.
func (Snappy) Decompress(dst, src []byte) error {
	out, err := snappy.Decode(dst, src)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCorruptedData, err)
	}
	if len(out) != len(dst) {
		return fmt.Errorf("%w: decoded %d bytes, expected %d", errors.ErrCorruptedData, len(out), len(dst))
	}
	return nil
}
