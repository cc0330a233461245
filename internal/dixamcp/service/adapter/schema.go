package adapter

import (
	"encoding/json"

	jsonx "github.com/kiosk404/dixa-mcp/pkg/utils/json"
)

// FieldType is the semantic type of a tool parameter.
type FieldType int

const (
	String FieldType = iota
	Number
	Integer
	Boolean
	// StringArray is a list of strings.
	StringArray
	// StringArrayMap maps an attribute name to a list of strings.
	StringArrayMap
	// Object is a nested object described by Field.Fields.
	Object
	// ObjectArray is a list of nested objects described by Field.Fields.
	ObjectArray
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case StringArray:
		return "array of strings"
	case StringArrayMap:
		return "map of string arrays"
	case Object:
		return "object"
	case ObjectArray:
		return "array of objects"
	default:
		return "unknown"
	}
}

// Format constrains the content of a String field.
type Format string

const (
	// FormatISO8601 accepts ISO 8601 calendar dates and date-times, with or
	// without a zone offset. It is published as a pattern: JSON Schema's
	// "date-time" format is RFC 3339 and would reject local times.
	FormatISO8601 Format = "iso-8601"
)

// Field describes one accepted argument. The same descriptor drives the
// published JSON Schema and runtime validation.
type Field struct {
	// Name is the argument key. (e.g. "conversationId")
	Name string
	// Type is the semantic type of the value.
	Type FieldType
	// Description is shown to the invoking agent.
	Description string
	// Required fields must be present and non-null.
	Required bool
	// Default is applied when an optional field is absent.
	Default any
	// Enum restricts a String field to a closed set.
	Enum []string
	// Const pins a String field to a single literal.
	Const string
	// MinLength is the minimum length of a String field, in characters.
	MinLength int
	// Minimum is the lower bound of a Number or Integer field.
	Minimum *float64
	// Format constrains a String field.
	Format Format
	// Fields describes the members of an Object or the elements of an
	// ObjectArray.
	Fields []Field
}

// Schema is the ordered parameter list of a tool.
type Schema []Field

// Lookup returns the top-level field called name.
func (s Schema) Lookup(name string) (Field, bool) {
	for _, f := range s {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// JSONSchema renders the schema as a JSON Schema object.
func (s Schema) JSONSchema() map[string]any {
	return objectSchema(s)
}

// RawJSONSchema renders the schema as encoded JSON Schema.
func (s Schema) RawJSONSchema() (json.RawMessage, error) {
	data, err := jsonx.Marshal(s.JSONSchema())
	if err != nil {
		return nil, err
	}
	return json.RawMessage(data), nil
}

func objectSchema(fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))
	for _, f := range fields {
		props[f.Name] = f.jsonSchema()
		if f.Required {
			required = append(required, f.Name)
		}
	}
	out := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

func (f Field) jsonSchema() map[string]any {
	var out map[string]any

	switch {
	case f.Type == Object:
		out = objectSchema(f.Fields)
	case f.Type == ObjectArray:
		out = map[string]any{"type": "array", "items": objectSchema(f.Fields)}
	case f.Type == StringArray:
		out = map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	case f.Type == StringArrayMap:
		out = map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		}
	default:
		out = map[string]any{"type": jsonType(f.Type)}
	}

	if f.Description != "" {
		out["description"] = f.Description
	}
	if f.Default != nil {
		out["default"] = f.Default
	}
	if len(f.Enum) > 0 {
		out["enum"] = f.Enum
	}
	if f.Const != "" {
		out["const"] = f.Const
	}
	if f.MinLength > 0 {
		out["minLength"] = f.MinLength
	}
	if f.Minimum != nil {
		out["minimum"] = *f.Minimum
	}
	if f.Format == FormatISO8601 {
		out["pattern"] = iso8601Pattern
	}
	return out
}

const iso8601Pattern = `^\d{4}-\d{2}-\d{2}(T\d{2}:\d{2}(:\d{2}(\.\d+)?)?(Z|[+-]\d{2}:\d{2})?)?$`

func jsonType(t FieldType) string {
	switch t {
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	default:
		return "string"
	}
}
