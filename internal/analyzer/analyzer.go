package analyzer

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mcncl/snappier/internal/config"
	"github.com/mcncl/snappier/internal/models"
	"github.com/mcncl/snappier/internal/transform"
)

// DefaultMaxKeys keeps every marker index to a single digit, so a marker
// followed by a digit in the text can never be read back as a longer index.
const DefaultMaxKeys = config.DefaultMaxAutoKeys

// minKeyLen is the shortest key whose marker is shorter than the text it
// replaces.
const minKeyLen = 2

// Analyzer walks a parsed JSON document and derives a key table for the
// token transform.
type Analyzer struct {
	// counts tracks how often each object key occurs
	counts map[string]int
	// maxKeys bounds the size of the derived key table
	maxKeys int
}

// NewAnalyzer creates a new Analyzer instance.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		counts:  make(map[string]int),
		maxKeys: DefaultMaxKeys,
	}
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom configuration.
func NewAnalyzerWithConfig(cfg *config.Config) *Analyzer {
	a := NewAnalyzer()
	if cfg != nil {
		a.setMaxKeys(cfg.MaxAutoKeys)
	}
	return a
}

// SuggestKeys derives a key table of at most maxKeys keys from ir. maxKeys
// is capped at DefaultMaxKeys.
func SuggestKeys(ir models.IntermediateRepresentation, maxKeys int) (models.KeyTable, error) {
	a := NewAnalyzer()
	a.setMaxKeys(maxKeys)
	return a.Analyze(ir)
}

// setMaxKeys applies a positive limit no larger than DefaultMaxKeys.
func (a *Analyzer) setMaxKeys(n int) {
	if n > 0 {
		a.maxKeys = min(n, DefaultMaxKeys)
	}
}

// Analyze counts the object keys in ir and returns the keys that save the
// most bytes when substituted, best first.
func (a *Analyzer) Analyze(ir models.IntermediateRepresentation) (models.KeyTable, error) {
	a.counts = make(map[string]int)
	if err := a.analyzeNode(ir.Root); err != nil {
		return nil, fmt.Errorf("failed to analyze root node: %w", err)
	}

	candidates := make([]string, 0, len(a.counts))
	for key := range a.counts {
		if a.usable(key) {
			candidates = append(candidates, key)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		si, sj := a.score(candidates[i]), a.score(candidates[j])
		if si != sj {
			return si > sj
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > a.maxKeys {
		candidates = candidates[:a.maxKeys]
	}
	return models.KeyTable(candidates), nil
}

// analyzeNode recursively counts the keys of every object under node.
func (a *Analyzer) analyzeNode(node models.JSONValue) error {
	switch v := node.(type) {
	case models.JSONObject:
		for key, value := range v {
			a.counts[key]++
			if err := a.analyzeNode(value); err != nil {
				return err
			}
		}
	case models.JSONArray:
		for _, value := range v {
			if err := a.analyzeNode(value); err != nil {
				return err
			}
		}
	case nil, bool, string:
	default:
		// Numbers arrive as json.Number; anything else is not from the parser.
		if _, ok := v.(fmt.Stringer); !ok {
			return fmt.Errorf("unexpected json value type: %T", v)
		}
	}
	return nil
}

// score estimates the bytes saved by substituting key.
func (a *Analyzer) score(key string) int {
	return a.counts[key] * (len(key) + 1)
}

// usable reports whether key can be substituted without corrupting the
// frame header or shadowing another key.
func (a *Analyzer) usable(key string) bool {
	if len(key) < minKeyLen || !utf8.ValidString(key) {
		return false
	}
	if transform.ValidateKeys([]string{key}) != nil {
		return false
	}
	// Keys that need escaping never appear verbatim in the text, and keys
	// holding a literal would already be rewritten by the structural pass.
	if strings.ContainsAny(key, `"\`) || strings.ContainsFunc(key, isControl) {
		return false
	}
	if strings.Contains(key, transform.TrueLiteral) || strings.Contains(key, transform.FalseLiteral) {
		return false
	}
	for other := range a.counts {
		if other != key && strings.HasPrefix(other, key) {
			return false
		}
	}
	return true
}

func isControl(r rune) bool {
	return r < 0x20
}
