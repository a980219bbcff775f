package parser

import (
	stderrors "errors" // Standard errors package
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"

	"github.com/mcncl/snappier/internal/errors" // Custom errors package
	"github.com/mcncl/snappier/internal/models"
)

// Sentinel parse failures, wrapped by the input errors returned below.
var (
	ErrInvalidJSON  = stderrors.New("invalid JSON format")
	ErrMultipleJSON = stderrors.New("multiple JSON values found at the root, only one is allowed")
)

// Parse converts JSON data from an io.Reader into an IntermediateRepresentation
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	decoder := gojson.NewDecoder(reader)
	decoder.UseNumber()

	var rootValue interface{}
	if err := decoder.Decode(&rootValue); err != nil {
		if stderrors.Is(err, io.EOF) {
			return models.IntermediateRepresentation{}, errors.NewInputError("input is empty or contains only whitespace", errors.ErrEmptyInput)
		}
		var syntaxError *gojson.SyntaxError
		var unmarshalTypeError *gojson.UnmarshalTypeError
		if stderrors.As(err, &syntaxError) {
			return models.IntermediateRepresentation{}, errors.NewInputError(
				fmt.Sprintf("JSON syntax error at offset %d", syntaxError.Offset),
				ErrInvalidJSON,
			)
		}
		if stderrors.As(err, &unmarshalTypeError) {
			return models.IntermediateRepresentation{}, errors.NewInputError(
				fmt.Sprintf("JSON type error at offset %d for type %s", unmarshalTypeError.Offset, unmarshalTypeError.Type),
				ErrInvalidJSON,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to decode JSON", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
	}

	// Only whitespace may follow the first value.
	if decoder.More() {
		var trailingValue interface{}
		if err := decoder.Decode(&trailingValue); err != nil {
			if !stderrors.Is(err, io.EOF) {
				return models.IntermediateRepresentation{}, errors.NewInputError("invalid trailing data after first JSON value", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
			}
		} else {
			return models.IntermediateRepresentation{}, errors.NewInputError("multiple JSON values found at the root", ErrMultipleJSON)
		}
	}

	root := normalizeJSONValue(rootValue)
	ir := models.IntermediateRepresentation{
		Root: root,
	}
	if _, ok := root.(models.JSONArray); ok {
		ir.RootIsArray = true
	}

	return ir, nil
}

// normalizeJSONValue converts raw JSON types into our model types
func normalizeJSONValue(val models.JSONValue) models.JSONValue {
	switch v := val.(type) {
	case map[string]interface{}:
		obj := make(models.JSONObject, len(v))
		for key, value := range v {
			obj[key] = normalizeJSONValue(value)
		}
		return obj
	case []interface{}:
		arr := make(models.JSONArray, len(v))
		for i, value := range v {
			arr[i] = normalizeJSONValue(value)
		}
		return arr
	default:
		return v // Primitives (string, json.Number, bool, nil) are returned as is
	}
}

// ParseString parses JSON from a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("input string is empty or consists only of whitespace", errors.ErrEmptyInput)
	}
	return Parse(strings.NewReader(jsonString))
}

// IsStructured reports whether s is a single valid JSON document other than
// the literal null. It is the gate for the token transform.
func IsStructured(s string) bool {
	if !gojson.Valid([]byte(s)) {
		return false
	}
	ir, err := ParseString(s)
	if err != nil {
		return false
	}
	return !ir.IsNull()
}

// StructuredText is the JSON validator used by the token transform.
type StructuredText struct{}

// Valid implements transform.Validator.
func (StructuredText) Valid(s string) bool {
	return IsStructured(s)
}
