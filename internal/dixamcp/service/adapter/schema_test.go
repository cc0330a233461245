package adapter

import (
	"encoding/json"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileSchema(t *testing.T, s Schema) *jsonschema.Schema {
	t.Helper()

	raw, err := s.RawJSONSchema()
	require.NoError(t, err)

	var doc any
	require.NoError(t, json.Unmarshal(raw, &doc))

	c := jsonschema.NewCompiler()
	require.NoError(t, c.AddResource("schema.json", doc))
	compiled, err := c.Compile("schema.json")
	require.NoError(t, err)
	return compiled
}

func decode(t *testing.T, s string) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestJSONSchemaShape(t *testing.T) {
	doc := conversationSearch.JSONSchema()

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, []string{"query"}, doc["required"])

	props := doc["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, props["query"])
	assert.Equal(t, true, props["exactMatch"].(map[string]any)["default"])
	assert.Equal(t, int64(50), props["pageLimit"].(map[string]any)["default"])
	assert.Equal(t, 1.0, props["pageLimit"].(map[string]any)["minimum"])
}

func TestPublishedSchemaAgreesWithValidate(t *testing.T) {
	schema := Schema{
		{Name: "metricId", Type: String, Required: true, MinLength: 1},
		PresetPeriodField("periodFilter", "Period", true),
		RangePeriodField("window", "Window", false),
		AttributeFiltersField("filters", "Filters"),
		FilterMapField("byAttribute", "Filters by attribute"),
		{Name: "aggregations", Type: StringArray},
		PageLimitField(DefaultPageLimit),
	}
	compiled := compileSchema(t, schema)

	const today = `"periodFilter":{"_type":"Preset","value":{"_type":"Today"}}`
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"preset", `{"metricId":"m",` + today + `}`, true},
		{"zoned window", `{"metricId":"m",` + today + `,"window":{"from":"2024-01-01T00:00:00Z","to":"2024-02-01T00:00:00+01:00"}}`, true},
		{"local window", `{"metricId":"m",` + today + `,"window":{"from":"2024-01-01T00:00:00","to":"2024-02-01"}}`, true},
		{"filters", `{"metricId":"m",` + today + `,"filters":[{"attribute":"channel","values":["email"]}],"byAttribute":{"queue":["a","b"]}}`, true},
		{"missing metric", `{` + today + `}`, false},
		{"empty metric", `{"metricId":"",` + today + `}`, false},
		{"range as preset", `{"metricId":"m","periodFilter":{"from":"2024-01-01","to":"2024-02-01"}}`, false},
		{"bad preset", `{"metricId":"m","periodFilter":{"_type":"Preset","value":{"_type":"Someday"}}}`, false},
		{"bad window", `{"metricId":"m",` + today + `,"window":{"from":"yesterday","to":"2024-02-01"}}`, false},
		{"bad limit", `{"metricId":"m",` + today + `,"pageLimit":0}`, false},
		{"bad filters", `{"metricId":"m",` + today + `,"filters":[{"attribute":"x"}]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := decode(t, tt.input)

			_, verr := schema.Validate(input)
			serr := compiled.Validate(input)
			if tt.ok {
				assert.NoError(t, verr)
				assert.NoError(t, serr)
				return
			}
			assert.Error(t, verr)
			assert.Error(t, serr)
		})
	}
}
