package adapter

// PeriodPresets are the named relative periods accepted by the analytics
// period filter.
var PeriodPresets = []string{
	"PreviousQuarter",
	"ThisWeek",
	"PreviousWeek",
	"Yesterday",
	"Today",
	"ThisMonth",
	"PreviousMonth",
	"ThisQuarter",
	"ThisYear",
}

// DefaultPageLimit is applied to paged list tools unless overridden.
const DefaultPageLimit = 50

// Min returns a pointer suitable for Field.Minimum.
func Min(v float64) *float64 { return &v }

// PresetPeriodField is a named relative period:
// {"_type": "Preset", "value": {"_type": <preset>}}.
func PresetPeriodField(name, description string, required bool) Field {
	return Field{
		Name:        name,
		Type:        Object,
		Description: description,
		Required:    required,
		Fields: []Field{
			{Name: "_type", Type: String, Required: true, Const: "Preset"},
			{
				Name:     "value",
				Type:     Object,
				Required: true,
				Fields: []Field{
					{Name: "_type", Type: String, Required: true, Enum: PeriodPresets, Description: "The type of preset period"},
				},
			},
		},
	}
}

// RangePeriodField is an explicit {"from", "to"} interval of ISO 8601 dates
// or date-times.
func RangePeriodField(name, description string, required bool) Field {
	return Field{
		Name:        name,
		Type:        Object,
		Description: description,
		Required:    required,
		Fields: []Field{
			{Name: "from", Type: String, Required: true, Format: FormatISO8601, Description: "Start date in ISO format"},
			{Name: "to", Type: String, Required: true, Format: FormatISO8601, Description: "End date in ISO format"},
		},
	}
}

// AttributeFiltersField is a list of {attribute, values[]} filter entries.
func AttributeFiltersField(name, description string) Field {
	return Field{
		Name:        name,
		Type:        ObjectArray,
		Description: description,
		Fields: []Field{
			{Name: "attribute", Type: String, Required: true, Description: "Filter attribute"},
			{Name: "values", Type: StringArray, Required: true, Description: "Accepted values"},
		},
	}
}

// FilterMapField maps a filter attribute to its accepted values.
func FilterMapField(name, description string) Field {
	return Field{Name: name, Type: StringArrayMap, Description: description}
}

func PageKeyField() Field {
	return Field{
		Name:        "pageKey",
		Type:        String,
		Description: "Opaque cursor returned by the previous page",
	}
}

// PageLimitField is the page size field. A def of zero means no default.
func PageLimitField(def int) Field {
	f := Field{
		Name:        "pageLimit",
		Type:        Integer,
		Description: "Maximum number of results per page",
		Minimum:     Min(1),
	}
	if def > 0 {
		f.Default = int64(def)
	}
	return f
}
