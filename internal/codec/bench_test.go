package codec

import (
	"fmt"
	"math/rand"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/snappier/internal/analyzer"
	"github.com/mcncl/snappier/internal/compressor"
	"github.com/mcncl/snappier/internal/parser"
	"github.com/mcncl/snappier/internal/transform"
)

// generateNestedJSON creates a deeply nested JSON structure for benchmarking
func generateNestedJSON(rng *rand.Rand, depth int, width int) map[string]interface{} {
	if depth <= 0 {
		return map[string]interface{}{
			"leaf_value": "data",
			"timestamp":  "2024-01-01T00:00:00Z",
			"count":      rng.Intn(100),
			"enabled":    rng.Intn(2) == 1,
		}
	}

	result := make(map[string]interface{})

	for i := 0; i < width; i++ {
		key := fmt.Sprintf("nested_%d_%d", depth, i)
		result[key] = generateNestedJSON(rng, depth-1, width)
	}

	return result
}

// generateWideJSON creates a JSON object with many fields at the same level
func generateWideJSON(fieldCount int) map[string]interface{} {
	result := make(map[string]interface{})

	for i := 0; i < fieldCount; i++ {
		// Mix different types of fields
		switch i % 5 {
		case 0:
			result[fmt.Sprintf("string_field_%d", i)] = fmt.Sprintf("value_%d", i)
		case 1:
			result[fmt.Sprintf("int_field_%d", i)] = i
		case 2:
			result[fmt.Sprintf("bool_field_%d", i)] = i%2 == 0
		case 3:
			result[fmt.Sprintf("float_field_%d", i)] = float64(i) + 0.5
		case 4:
			// Nested object
			result[fmt.Sprintf("object_field_%d", i)] = map[string]interface{}{
				"id":    i,
				"name":  fmt.Sprintf("Object %d", i),
				"value": i * 10,
			}
		}
	}

	return result
}

// generateArrayJSON creates an array of similar records
func generateArrayJSON(rng *rand.Rand, size int) []interface{} {
	items := make([]interface{}, size)
	for i := range items {
		items[i] = map[string]interface{}{
			"id":       i,
			"name":     fmt.Sprintf("Item %d", i),
			"price":    float64(rng.Intn(10000)) / 100,
			"in_stock": rng.Intn(2) == 1,
			"tags":     []string{"sale", "new"},
		}
	}
	return items
}

type benchDocument struct {
	name string
	text string
	keys []string
}

func benchDocuments(tb testing.TB) []benchDocument {
	tb.Helper()
	rng := rand.New(rand.NewSource(1))

	sources := []struct {
		name  string
		value interface{}
	}{
		{"Depth3Width3", generateNestedJSON(rng, 3, 3)},
		{"Depth2Width10", generateNestedJSON(rng, 2, 10)},
		{"Fields100", generateWideJSON(100)},
		{"Array1000", generateArrayJSON(rng, 1000)},
	}

	docs := make([]benchDocument, 0, len(sources))
	for _, src := range sources {
		data, err := gojson.MarshalIndent(src.value, "", "  ")
		require.NoError(tb, err)

		ir, err := parser.ParseString(string(data))
		require.NoError(tb, err)
		keys, err := analyzer.SuggestKeys(ir, analyzer.DefaultMaxKeys)
		require.NoError(tb, err)

		docs = append(docs, benchDocument{name: src.name, text: string(data), keys: keys})
	}
	return docs
}

func TestRoundTrip_GeneratedDocuments(t *testing.T) {
	for _, doc := range benchDocuments(t) {
		for _, name := range compressor.Names() {
			comp, err := compressor.New(name)
			require.NoError(t, err)

			t.Run(doc.name+"/"+name, func(t *testing.T) {
				c := NewCodec(true, WithCompressor(comp))

				encoded, err := c.Encode(doc.text, doc.keys)
				require.NoError(t, err)

				decoded, err := c.Decode(encoded)
				require.NoError(t, err)
				require.Equal(t, transform.StripLineBreaks(doc.text), decoded)
			})
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	docs := benchDocuments(b)

	for _, name := range compressor.Names() {
		comp, err := compressor.New(name)
		require.NoError(b, err)

		for _, doc := range docs {
			for _, enabled := range []bool{false, true} {
				c := NewCodec(enabled, WithCompressor(comp))
				b.Run(fmt.Sprintf("%s/%s/transform=%t", name, doc.name, enabled), func(b *testing.B) {
					b.SetBytes(int64(len(doc.text)))
					b.ReportAllocs()
					b.ResetTimer()

					var encoded []byte
					for i := 0; i < b.N; i++ {
						encoded, err = c.Encode(doc.text, doc.keys)
						if err != nil {
							b.Fatal(err)
						}
					}
					b.ReportMetric(float64(len(encoded))/float64(len(doc.text)), "ratio")
				})
			}
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	docs := benchDocuments(b)

	for _, name := range compressor.Names() {
		comp, err := compressor.New(name)
		require.NoError(b, err)

		for _, doc := range docs {
			c := NewCodec(true, WithCompressor(comp))
			encoded, err := c.Encode(doc.text, doc.keys)
			require.NoError(b, err)

			b.Run(name+"/"+doc.name, func(b *testing.B) {
				b.SetBytes(int64(len(doc.text)))
				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := c.Decode(encoded); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
