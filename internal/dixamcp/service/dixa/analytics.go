package dixa

import (
	"net/http"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
)

// Analytics data queries are POSTs that only read, so they are safe to retry.
var analyticsQuery = adapter.Hints{ReadOnly: true, Idempotent: true}

func analyticsTools() []*adapter.ToolSpec {
	paged := func(fields ...adapter.Field) adapter.Schema {
		return append(adapter.Schema(fields), adapter.PageKeyField(), adapter.PageLimitField(adapter.DefaultPageLimit))
	}
	timezone := adapter.Field{
		Name:        "timezone",
		Type:        adapter.String,
		Required:    true,
		Description: "The timezone to use for the data (e.g., 'Europe/Copenhagen')",
	}

	return []*adapter.ToolSpec{
		mustTool(
			"listAnalyticsMetrics",
			"List all available analytics metric IDs from Dixa that can be used to fetch data with getAnalyticsMetricsData. "+
				"These metrics represent different types of measurements and analytics that can be queried.",
			paged(),
			readOnly,
			adapter.Endpoint{Action: "fetch analytics metrics", Method: http.MethodGet, Path: "/analytics/metrics", Query: []string{"pageKey", "pageLimit"}},
		),
		mustTool(
			"getAnalyticsMetric",
			"Get detailed information about a specific analytics metric from Dixa. "+
				"This endpoint lists all available properties of a metric that can be used for querying its data.",
			adapter.Schema{id("metricId", "The ID of the metric to fetch information for (e.g., 'csat')")},
			readOnly,
			adapter.Endpoint{Action: "fetch analytics metric", Method: http.MethodGet, Path: "/analytics/metrics/{metricId}"},
		),
		mustTool(
			"getAnalyticsMetricsData",
			"Call listAnalyticsMetrics before calling this endpoint to get the available metrics. "+
				"Get analytics data for a specific metric with filters, period settings, aggregations and timezone.",
			paged(
				id("metricId", "The ID of the metric to fetch data for (e.g., 'closed_conversations')"),
				adapter.PresetPeriodField("periodFilter", "The period filter configuration using preset periods", true),
				adapter.AttributeFiltersField("filters", "Array of filters to apply"),
				adapter.Field{
					Name:        "aggregations",
					Type:        adapter.StringArray,
					Required:    true,
					Description: "Array of aggregations to apply (e.g., ['Count'])",
				},
				timezone,
			),
			analyticsQuery,
			adapter.Endpoint{
				Action: "fetch analytics metrics data",
				Method: http.MethodPost,
				Path:   "/analytics/metrics",
				Query:  []string{"pageKey", "pageLimit"},
				Body: []adapter.BodyField{
					{Field: "metricId", Key: "id"},
					{Field: "periodFilter"},
					{Field: "filters"},
					{Field: "aggregations"},
					{Field: "timezone"},
				},
			},
		),
		mustTool(
			"listAnalyticsRecords",
			"List all available analytics record IDs from Dixa that can be used to fetch data with getAnalyticsRecordsData. "+
				"These records represent different types of data that can be queried.",
			paged(),
			readOnly,
			adapter.Endpoint{Action: "fetch analytics records", Method: http.MethodGet, Path: "/analytics/records", Query: []string{"pageKey", "pageLimit"}},
		),
		mustTool(
			"getAnalyticsRecord",
			"Get detailed information about a specific analytics record from Dixa. "+
				"This endpoint lists all available properties of a record that can be used for querying its data.",
			adapter.Schema{id("recordId", "The ID of the record to fetch information for (e.g., 'conversation')")},
			readOnly,
			adapter.Endpoint{Action: "fetch analytics record", Method: http.MethodGet, Path: "/analytics/records/{recordId}"},
		),
		mustTool(
			"getAnalyticsRecordsData",
			"Get analytics data for a specific record from Dixa.",
			adapter.Schema{
				id("recordId", "The ID of the record to fetch data for"),
				adapter.RangePeriodField("periodFilter", "Time period to fetch data for", true),
				adapter.FilterMapField("filters", "Optional filters to apply, keyed by attribute"),
				timezone,
				adapter.PageKeyField(),
				adapter.PageLimitField(0),
			},
			analyticsQuery,
			adapter.Endpoint{
				Action: "fetch analytics records data",
				Method: http.MethodPost,
				Path:   "/analytics/records/{recordId}/data",
				Query:  []string{"pageKey", "pageLimit"},
				Body: []adapter.BodyField{
					{Field: "periodFilter"},
					{Field: "filters"},
					{Field: "timezone"},
				},
			},
		),
		mustTool(
			"getAnalyticsFilter",
			"Get possible values to be used with a given analytics filter attribute from Dixa. "+
				"Filter attributes are not metric or record specific, so one filter attribute can be used with multiple metrics or records. "+
				"When a filter value is not relevant for a specific metric or record, it is simply ignored.",
			paged(id("filterAttribute", "The filter attribute to get values for (e.g., 'agent_id', 'queue_id', 'channel')")),
			readOnly,
			adapter.Endpoint{
				Action: "fetch analytics filter values",
				Method: http.MethodGet,
				Path:   "/analytics/filter/{filterAttribute}",
				Query:  []string{"pageKey", "pageLimit"},
			},
		),
	}
}
