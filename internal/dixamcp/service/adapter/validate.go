package adapter

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Args is a validated argument set. Only fields present in the caller's
// input, or filled by a default, appear as keys.
type Args map[string]any

// Has reports whether the argument named name is present.
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// String returns the argument named name when it is a string.
func (a Args) String(name string) (string, bool) {
	s, ok := a[name].(string)
	return s, ok
}

// Validate checks raw against the schema and returns the normalized
// arguments. Unknown keys are dropped, defaults are applied to absent
// optional fields, and the first failing field is reported as a
// *ValidationError.
func (s Schema) Validate(raw map[string]any) (Args, error) {
	out, err := validateObject(s, raw, "")
	if err != nil {
		return nil, err
	}
	return Args(out), nil
}

func validateObject(fields []Field, raw map[string]any, prefix string) (map[string]any, error) {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		path := joinPath(prefix, f.Name)
		v, ok := raw[f.Name]
		if !ok || v == nil {
			if f.Required {
				return nil, &ValidationError{Field: path, Reason: "required field is missing"}
			}
			if f.Default != nil {
				out[f.Name] = cloneValue(f.Default)
			}
			continue
		}
		nv, err := f.check(v, path)
		if err != nil {
			return nil, err
		}
		out[f.Name] = nv
	}
	return out, nil
}

func (f Field) check(v any, path string) (any, error) {
	switch f.Type {
	case String:
		s, ok := v.(string)
		if !ok {
			return nil, typeError(path, f.Type, v)
		}
		return s, f.checkString(s, path)
	case Number, Integer:
		n, ok := toFloat(v)
		if !ok {
			return nil, typeError(path, f.Type, v)
		}
		if f.Type == Integer && n != math.Trunc(n) {
			return nil, &ValidationError{Field: path, Reason: "expected integer, got fractional number"}
		}
		if f.Type == Integer && (n >= 1<<63 || n < -(1<<63)) {
			return nil, &ValidationError{Field: path, Reason: "out of range"}
		}
		if f.Minimum != nil && n < *f.Minimum {
			return nil, &ValidationError{
				Field:  path,
				Reason: fmt.Sprintf("must be greater than or equal to %s", formatNumber(*f.Minimum)),
			}
		}
		if f.Type == Integer {
			return int64(n), nil
		}
		return n, nil
	case Boolean:
		b, ok := v.(bool)
		if !ok {
			return nil, typeError(path, f.Type, v)
		}
		return b, nil
	case StringArray:
		return toStrings(v, path)
	case StringArrayMap:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeError(path, f.Type, v)
		}
		out := make(map[string]any, len(m))
		for k, item := range m {
			ss, err := toStrings(item, joinPath(path, k))
			if err != nil {
				return nil, err
			}
			out[k] = ss
		}
		return out, nil
	case Object:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, typeError(path, f.Type, v)
		}
		return validateObject(f.Fields, m, path)
	case ObjectArray:
		items, ok := v.([]any)
		if !ok {
			return nil, typeError(path, f.Type, v)
		}
		out := make([]any, 0, len(items))
		for i, item := range items {
			ip := path + "[" + strconv.Itoa(i) + "]"
			m, ok := item.(map[string]any)
			if !ok {
				return nil, typeError(ip, Object, item)
			}
			nm, err := validateObject(f.Fields, m, ip)
			if err != nil {
				return nil, err
			}
			out = append(out, nm)
		}
		return out, nil
	}
	return nil, &ValidationError{Field: path, Reason: "unsupported field type"}
}

func (f Field) checkString(s, path string) error {
	if f.Const != "" && s != f.Const {
		return &ValidationError{Field: path, Reason: fmt.Sprintf("must be %q", f.Const)}
	}
	if len(f.Enum) > 0 && !slices.Contains(f.Enum, s) {
		return &ValidationError{
			Field:  path,
			Reason: fmt.Sprintf("must be one of %s, got %q", strings.Join(f.Enum, ", "), s),
		}
	}
	if f.MinLength > 0 && utf8.RuneCountInString(s) < f.MinLength {
		if f.MinLength == 1 {
			return &ValidationError{Field: path, Reason: "must not be empty"}
		}
		return &ValidationError{Field: path, Reason: fmt.Sprintf("must be at least %d characters", f.MinLength)}
	}
	if f.Format == FormatISO8601 && !isISO8601(s) {
		return &ValidationError{Field: path, Reason: fmt.Sprintf("invalid ISO 8601 date-time %q", s)}
	}
	return nil
}

func toStrings(v any, path string) ([]string, error) {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...), nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, typeError(path+"["+strconv.Itoa(i)+"]", String, item)
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, typeError(path, StringArray, v)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// iso8601Layouts are the calendar date and date-time forms accepted for
// FormatISO8601. Fractional seconds are accepted by time.Parse after the
// seconds field without being spelled out.
var iso8601Layouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	time.DateOnly,
}

func isISO8601(s string) bool {
	for _, layout := range iso8601Layouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func typeError(path string, want FieldType, got any) error {
	return &ValidationError{
		Field:  path,
		Reason: fmt.Sprintf("expected %s, got %s", want, describe(got)),
	}
}

func describe(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int32, int64, json.Number:
		return "number"
	case []any, []string:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = cloneValue(item)
		}
		return out
	case int:
		return int64(t)
	}
	return v
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
