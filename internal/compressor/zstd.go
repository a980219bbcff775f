package compressor

import (
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/mcncl/snappier/internal/errors"
)

const (
	zstdBlockSize = 128 << 10
	// Frame header, block headers for short inputs, and the checksum.
	zstdFrameOverhead = 32
	// Largest frame content size accepted from a header.
	zstdMaxContentSize = math.MaxInt32
)

// Zstd is a single zstd frame carrying its content size.
type Zstd struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstd returns a zstd Compressor. Its encoder and decoder are single
// threaded.
func NewZstd() (*Zstd, error) {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &Zstd{enc: enc, dec: dec}, nil
}

// Name implements Compressor.
func (*Zstd) Name() string { return NameZstd }

// MaxEncodedLen implements Compressor. It follows ZSTD_COMPRESSBOUND.
func (*Zstd) MaxEncodedLen(n int) int {
	bound := n + n>>8 + zstdFrameOverhead
	if n < zstdBlockSize {
		bound += (zstdBlockSize - n) >> 11
	}
	return bound
}

// Compress implements Compressor.
func (z *Zstd) Compress(dst, src []byte) (int, error) {
	return fit(dst, z.enc.EncodeAll(src, dst[:0]))
}

// DecodedLen implements Compressor. The length comes from the frame content
// size field, which EncodeAll always writes for non-empty input.
func (*Zstd) DecodedLen(src []byte) (int, error) {
	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return 0, fmt.Errorf("%w: %w", errors.ErrLengthHeaderInvalid, err)
	}
	if !h.HasFCS {
		return 0, fmt.Errorf("%w: zstd frame has no content size", errors.ErrLengthHeaderInvalid)
	}
	if h.FrameContentSize > zstdMaxContentSize {
		return 0, fmt.Errorf("%w: zstd content size %d is too large", errors.ErrLengthHeaderInvalid, h.FrameContentSize)
	}
	return int(h.FrameContentSize), nil
}

// Decompress implements Compressor.
func (z *Zstd) Decompress(dst, src []byte) error {
	out, err := z.dec.DecodeAll(src, dst[:0])
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrCorruptedData, err)
	}
	if len(out) != len(dst) {
		return fmt.Errorf("%w: decoded %d bytes, expected %d", errors.ErrCorruptedData, len(out), len(dst))
	}
	copy(dst, out)
	return nil
}

// Close releases the encoder and decoder.
func (z *Zstd) Close() error {
	z.dec.Close()
	return z.enc.Close()
}
