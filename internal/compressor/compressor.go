// Package compressor adapts block compression libraries to the interface the
// codec consumes.
package compressor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/snappier/internal/errors"
)

// LengthUnknown is returned by Compress when the underlying primitive does
// not report how many bytes it wrote. The caller must then recover the
// length from the zero-initialized output buffer.
const LengthUnknown = -1

// Compressor is a block compressor whose output records the decompressed
// length.
type Compressor interface {
	// Name identifies the algorithm.
	Name() string
	// MaxEncodedLen returns the worst-case compressed size of n input bytes.
	MaxEncodedLen(n int) int
	// Compress writes the compressed form of src into dst, which holds at
	// least MaxEncodedLen(len(src)) bytes, and returns the bytes written or
	// LengthUnknown.
	Compress(dst, src []byte) (int, error)
	// DecodedLen returns the decompressed length recorded in src.
	DecodedLen(src []byte) (int, error)
	// Decompress writes the decompressed form of src into dst, which holds
	// exactly DecodedLen(src) bytes.
	Decompress(dst, src []byte) error
}

// Algorithm names accepted by New.
const (
	NameSnappy = "snappy"
	NameS2     = "s2"
	NameZstd   = "zstd"
)

var registry = map[string]func() (Compressor, error){
	NameSnappy: func() (Compressor, error) { return NewSnappy(), nil },
	NameS2:     func() (Compressor, error) { return NewS2(), nil },
	NameZstd:   func() (Compressor, error) { return NewZstd() },
}

// Normalize maps a user-supplied algorithm name such as "Snappy" or "ZSTD"
// to its registry form.
func Normalize(name string) string {
	return strings.ReplaceAll(strcase.ToKebab(strings.TrimSpace(name)), "-", "")
}

// Names returns the registered algorithm names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name refers to a registered algorithm.
func Known(name string) bool {
	_, ok := registry[Normalize(name)]
	return ok
}

// New returns the Compressor registered under name.
func New(name string) (Compressor, error) {
	factory, ok := registry[Normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrUnknownCompressor, name)
	}
	return factory()
}

// fit copies out into the front of dst unless out already is that prefix,
// and returns the number of bytes it occupies.
func fit(dst, out []byte) (int, error) {
	if len(out) > len(dst) {
		return 0, fmt.Errorf("%w: output needs %d bytes, buffer holds %d", errors.ErrCompressionFailure, len(out), len(dst))
	}
	return copy(dst, out), nil
}
