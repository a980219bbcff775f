package models

// JSONValue is a generic type to represent any JSON value.
// This can be a string, number, boolean, null, object, or array.
type JSONValue interface{}

// JSONObject represents a JSON object, which is a map of strings to JSONValues.
type JSONObject map[string]JSONValue

// JSONArray represents a JSON array, which is a slice of JSONValues.
type JSONArray []JSONValue

// IntermediateRepresentation holds a parsed JSON document. It is used to
// gate the token transform and to derive key tables from the document.
type IntermediateRepresentation struct {
	Root        JSONValue
	RootIsArray bool // True if the root of the JSON is an array vs an object
}

// IsNull reports whether the document is the JSON literal null.
func (ir IntermediateRepresentation) IsNull() bool {
	return ir.Root == nil
}

// KeyTable is the ordered list of keys substituted by the token transform.
// A key's position in the table is its marker index.
type KeyTable []string
