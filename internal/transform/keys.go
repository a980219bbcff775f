package transform

import (
	"fmt"
	"strings"

	"github.com/mcncl/snappier/internal/errors"
)

// ValidateKeys checks that every key can be stored in a frame header and
// substituted unambiguously. Pack does not call it.
func ValidateKeys(keys []string) error {
	seen := make(map[string]struct{}, len(keys))
	for i, key := range keys {
		switch {
		case key == "":
			return fmt.Errorf("%w: key %d is empty", errors.ErrInvalidKey, i)
		case strings.ContainsAny(key, headerSep+headerClose):
			return fmt.Errorf("%w: key %q contains a header delimiter", errors.ErrInvalidKey, key)
		case strings.Contains(key, MarkerLead):
			return fmt.Errorf("%w: key %q contains the marker lead byte", errors.ErrInvalidKey, key)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: key %q is listed twice", errors.ErrInvalidKey, key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
