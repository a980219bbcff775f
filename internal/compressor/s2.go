package compressor

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/mcncl/snappier/internal/errors"
)

// S2 is the S2 block format, a snappy extension with better ratios on
// repetitive input.
type S2 struct{}

// NewS2 returns an S2 block Compressor.
func NewS2() *S2 {
	return &S2{}
}

// Name implements Compressor.
func (S2) Name() string { return NameS2 }

// MaxEncodedLen implements Compressor.
func (S2) MaxEncodedLen(n int) int { return s2.MaxEncodedLen(n) }

// Compress implements Compressor.
func (c S2) Compress(dst, src []byte) (int, error) {
	if c.MaxEncodedLen(len(src)) < 0 {
		return 0, fmt.Errorf("%w: %w", errors.ErrCompressionFailure, s2.ErrTooLarge)
	}
	return fit(dst, s2.Encode(dst, src))
}

// DecodedLen implements Compressor.
func (S2) DecodedLen(src []byte) (int, error) {
	n, err := s2.DecodedLen(src)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrLengthHeaderInvalid, err)
	}
	return n, nil
}

// Decompress implements Compressor.
func (S2) Decompress(dst, src []byte) error {
	out, err := s2.Decode(dst, src)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCorruptedData, err)
	}
	if len(out) != len(dst) {
		return fmt.Errorf("%w: decoded %d bytes, expected %d", errors.ErrCorruptedData, len(out), len(dst))
	}
	return nil
}
