package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/snappier/internal/config"
	"github.com/mcncl/snappier/internal/models"
	"github.com/mcncl/snappier/internal/parser"
	"github.com/mcncl/snappier/internal/transform"
)

func analyze(t *testing.T, jsonInput string) models.KeyTable {
	t.Helper()
	ir, err := parser.ParseString(jsonInput)
	require.NoError(t, err)

	keys, err := NewAnalyzer().Analyze(ir)
	require.NoError(t, err)
	return keys
}

func TestAnalyze_SimpleObject(t *testing.T) {
	keys := analyze(t, `{"name": "John Doe", "age": 30, "is_student": false, "score": 99.5}`)

	// Each key occurs once, so longer keys save more.
	assert.Equal(t, models.KeyTable{"is_student", "score", "name", "age"}, keys)
}

func TestAnalyze_CountsRepeatedKeys(t *testing.T) {
	keys := analyze(t, `[
		{"id": 1, "description": "first"},
		{"id": 2},
		{"id": 3},
		{"id": 4},
		{"id": 5},
		{"id": 6},
		{"id": 7},
		{"id": 8},
		{"id": 9},
		{"id": 10},
		{"id": 11},
		{"id": 12},
		{"id": 13},
		{"id": 14},
		{"id": 15}
	]`)

	// 15 * 3 beats 1 * 12.
	assert.Equal(t, models.KeyTable{"id", "description"}, keys)
}

func TestAnalyze_NestedObject(t *testing.T) {
	keys := analyze(t, `{
		"user_id": 123,
		"profile": {
			"full_name": "John Doe",
			"address": {
				"street": "123 Main St",
				"city": "Anytown"
			}
		}
	}`)

	assert.ElementsMatch(t, []string{"user_id", "profile", "full_name", "address", "street", "city"}, keys)
	assert.NotContains(t, keys, "123 Main St", "values are not keys")
}

func TestAnalyze_TiesBrokenByKey(t *testing.T) {
	keys := analyze(t, `{"beta": 1, "alfa": 2, "gama": 3}`)
	assert.Equal(t, models.KeyTable{"alfa", "beta", "gama"}, keys)
}

func TestAnalyze_SkipsUnsafeKeys(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"single character", `{"a": 1}`},
		{"marker lead", "{\"a`b\": 1}"},
		{"comma", `{"a,b": 1}`},
		{"closing bracket", `{"a]b": 1}`},
		{"escaped quote", `{"a\"b": 1}`},
		{"backslash", `{"a\\b": 1}`},
		{"newline", `{"a\nb": 1}`},
		{"boolean literal", `{"is_true": 1}`},
		{"empty key", `{"": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, analyze(t, tt.json))
		})
	}
}

func TestAnalyze_SkipsPrefixKeys(t *testing.T) {
	keys := analyze(t, `[{"name": "x", "names": ["y"]}, {"name": "z"}]`)

	// "name" would rewrite the start of "names" and shadow it on restore.
	assert.Equal(t, models.KeyTable{"names"}, keys)
}

func TestAnalyze_Primitives(t *testing.T) {
	for _, input := range []string{`"just a string"`, `42`, `true`, `[1, 2, 3]`, `null`} {
		assert.Empty(t, analyze(t, input), "input %s", input)
	}
}

func TestAnalyze_UnexpectedValue(t *testing.T) {
	ir := models.IntermediateRepresentation{Root: models.JSONObject{"field": 3.14}}
	_, err := NewAnalyzer().Analyze(ir)
	assert.Error(t, err)
}

func TestAnalyze_ResetsBetweenRuns(t *testing.T) {
	a := NewAnalyzer()

	first, err := parser.ParseString(`{"alpha": 1}`)
	require.NoError(t, err)
	_, err = a.Analyze(first)
	require.NoError(t, err)

	second, err := parser.ParseString(`{"bravo": 1}`)
	require.NoError(t, err)
	keys, err := a.Analyze(second)
	require.NoError(t, err)
	assert.Equal(t, models.KeyTable{"bravo"}, keys)
}

func TestSuggestKeys_Limit(t *testing.T) {
	var b strings.Builder
	b.WriteString("{")
	for i := 0; i < 15; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`"field_` + string(rune('a'+i)) + `": 1`)
	}
	b.WriteString("}")

	ir, err := parser.ParseString(b.String())
	require.NoError(t, err)

	keys, err := SuggestKeys(ir, 0)
	require.NoError(t, err)
	assert.Len(t, keys, DefaultMaxKeys)
	assert.Equal(t, "field_a", keys[0])

	keys, err = SuggestKeys(ir, 3)
	require.NoError(t, err)
	assert.Equal(t, models.KeyTable{"field_a", "field_b", "field_c"}, keys)

	// Two-digit marker indexes are never handed out.
	keys, err = SuggestKeys(ir, 15)
	require.NoError(t, err)
	assert.Len(t, keys, DefaultMaxKeys)
}

func TestNewAnalyzerWithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.MaxAutoKeys = 1

	ir, err := parser.ParseString(`{"short": 1, "much_longer": 2}`)
	require.NoError(t, err)

	keys, err := NewAnalyzerWithConfig(cfg).Analyze(ir)
	require.NoError(t, err)
	assert.Equal(t, models.KeyTable{"much_longer"}, keys)

	assert.Equal(t, DefaultMaxKeys, NewAnalyzerWithConfig(nil).maxKeys)

	cfg.MaxAutoKeys = 25
	assert.Equal(t, DefaultMaxKeys, NewAnalyzerWithConfig(cfg).maxKeys)
}

func TestSuggestedKeysRoundTrip(t *testing.T) {
	input := `[{"name":"name","names":["a","b"],"active":true,"profile":{"name":"Bhargav","city":"Pune"}},` +
		`{"name":"Sky","names":[],"active":false,"profile":{"name":"Sky0","city":"x"}}]`

	ir, err := parser.ParseString(input)
	require.NoError(t, err)
	keys, err := SuggestKeys(ir, DefaultMaxKeys)
	require.NoError(t, err)
	require.NoError(t, transform.ValidateKeys(keys))

	packed, ok := transform.Pack(input, keys)
	require.True(t, ok)
	unpacked, ok := transform.Unpack(packed)
	require.True(t, ok)
	assert.Equal(t, input, unpacked)
}
