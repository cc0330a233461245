package dixa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/registry"
)

type captured struct {
	method string
	uri    string
	auth   string
	body   []byte
}

type stub struct {
	srv   *httptest.Server
	calls atomic.Int32
	seen  atomic.Pointer[captured]
}

func newStub(t *testing.T, code int, body string) *stub {
	t.Helper()
	s := &stub{}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.calls.Add(1)
		data, _ := io.ReadAll(r.Body)
		s.seen.Store(&captured{method: r.Method, uri: r.URL.RequestURI(), auth: r.Header.Get("Authorization"), body: data})
		w.WriteHeader(code)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(s.srv.Close)
	return s
}

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	require.NoError(t, Register(r))
	return r
}

func (s *stub) last() captured {
	if c := s.seen.Load(); c != nil {
		return *c
	}
	return captured{}
}

func (s *stub) ec() *adapter.ExecutionContext {
	return &adapter.ExecutionContext{Credential: "test-key", BaseURL: s.srv.URL + "/v1", Client: s.srv.Client()}
}

func TestCatalogNames(t *testing.T) {
	names := make([]string, 0, 20)
	for _, tool := range Tools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{
		"searchConversations",
		"getConversation",
		"getConversationMessages",
		"getConversationNotes",
		"getConversationRatings",
		"getConversationTags",
		"listTags",
		"tagConversation",
		"removeConversationTag",
		"getEndUser",
		"getEndUserConversations",
		"getAgent",
		"listAgents",
		"listAnalyticsMetrics",
		"getAnalyticsMetric",
		"getAnalyticsMetricsData",
		"listAnalyticsRecords",
		"getAnalyticsRecord",
		"getAnalyticsRecordsData",
		"getAnalyticsFilter",
	}, names)
	assert.Equal(t, 20, newRegistry(t).Len())
}

func TestCatalogSchemasCompile(t *testing.T) {
	for _, tool := range Tools() {
		t.Run(tool.Name, func(t *testing.T) {
			raw, err := tool.Params.RawJSONSchema()
			require.NoError(t, err)

			var doc any
			require.NoError(t, json.Unmarshal(raw, &doc))
			c := jsonschema.NewCompiler()
			require.NoError(t, c.AddResource("schema.json", doc))
			_, err = c.Compile("schema.json")
			require.NoError(t, err)

			require.NotNil(t, tool.Endpoint)
			assert.NotEmpty(t, tool.Description)
			if tool.Endpoint.Method == http.MethodGet {
				assert.True(t, tool.Hints.ReadOnly)
			}
		})
	}
}

func TestListAgentsPageLimit(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[{"id":"a1"}]}`)

	res, err := newRegistry(t).Invoke(context.Background(), "listAgents", map[string]any{"pageLimit": 10.0}, s.ec())
	require.NoError(t, err)

	assert.EqualValues(t, 1, s.calls.Load())
	assert.Equal(t, http.MethodGet, s.last().method)
	assert.Equal(t, "/v1/agents?pageLimit=10", s.last().uri)
	assert.Equal(t, "test-key", s.last().auth)
	assert.JSONEq(t, `{"data":[{"id":"a1"}]}`, res.Text)
}

func TestListAgentsDefaultPageLimit(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[]}`)

	_, err := newRegistry(t).Invoke(context.Background(), "listAgents", map[string]any{}, s.ec())
	require.NoError(t, err)
	assert.Equal(t, "/v1/agents?pageLimit=50", s.last().uri)
}

func TestTagConversationNoContent(t *testing.T) {
	s := newStub(t, http.StatusNoContent, "")

	res, err := newRegistry(t).Invoke(context.Background(), "tagConversation", map[string]any{"conversationId": "c1", "tagId": "t1"}, s.ec())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, s.last().method)
	assert.Equal(t, "/v1/conversations/c1/tags/t1", s.last().uri)
	assert.JSONEq(t, `{"success":true,"message":"Tag added successfully"}`, res.Text)
}

func TestRemoveConversationTagNoContent(t *testing.T) {
	s := newStub(t, http.StatusNoContent, "")

	res, err := newRegistry(t).Invoke(context.Background(), "removeConversationTag", map[string]any{"conversationId": "c1", "tagId": "t1"}, s.ec())
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, s.last().method)
	assert.JSONEq(t, `{"success":true,"message":"Tag removed successfully"}`, res.Text)
}

func TestGetConversationNotFound(t *testing.T) {
	s := newStub(t, http.StatusNotFound, `{"error":"not found"}`)

	_, err := newRegistry(t).Invoke(context.Background(), "getConversation", map[string]any{"conversationId": "missing"}, s.ec())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), `{"error":"not found"}`)
	assert.Equal(t, adapter.CategoryRemote, adapter.Category(err))
}

func TestSearchConversationsOmitsPageKey(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[]}`)

	_, err := newRegistry(t).Invoke(context.Background(), "searchConversations", map[string]any{"query": "refund"}, s.ec())
	require.NoError(t, err)
	assert.Equal(t, "/v1/search/conversations?exactMatch=true&pageLimit=50&query=refund", s.last().uri)
}

func TestListTagsDefault(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[]}`)

	_, err := newRegistry(t).Invoke(context.Background(), "listTags", nil, s.ec())
	require.NoError(t, err)
	assert.Equal(t, "/v1/tags?includeDeactivated=false", s.last().uri)
}

func TestMetricsDataRequest(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[]}`)

	_, err := newRegistry(t).Invoke(context.Background(), "getAnalyticsMetricsData", map[string]any{
		"metricId":     "closed_conversations",
		"periodFilter": map[string]any{"_type": "Preset", "value": map[string]any{"_type": "ThisWeek"}},
		"aggregations": []any{"Count"},
		"timezone":     "Europe/Copenhagen",
	}, s.ec())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, s.last().method)
	assert.Equal(t, "/v1/analytics/metrics?pageLimit=50", s.last().uri)
	assert.JSONEq(t, `{
		"id": "closed_conversations",
		"periodFilter": {"_type": "Preset", "value": {"_type": "ThisWeek"}},
		"aggregations": ["Count"],
		"timezone": "Europe/Copenhagen"
	}`, string(s.last().body))
}

func TestRecordsDataRequest(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[]}`)

	_, err := newRegistry(t).Invoke(context.Background(), "getAnalyticsRecordsData", map[string]any{
		"recordId":     "conversation",
		"periodFilter": map[string]any{"from": "2024-01-01", "to": "2024-01-31"},
		"filters":      map[string]any{"channel": []any{"email"}},
		"timezone":     "UTC",
	}, s.ec())
	require.NoError(t, err)

	assert.Equal(t, "/v1/analytics/records/conversation/data", s.last().uri)
	assert.JSONEq(t, `{
		"periodFilter": {"from": "2024-01-01", "to": "2024-01-31"},
		"filters": {"channel": ["email"]},
		"timezone": "UTC"
	}`, string(s.last().body))
}

func TestMissingCredentialMakesNoCall(t *testing.T) {
	s := newStub(t, http.StatusOK, `{}`)
	ec := s.ec()
	ec.Credential = ""

	for _, tool := range Tools() {
		_, err := tool.Invoke(context.Background(), map[string]any{}, ec)
		assert.Equal(t, adapter.CategoryConfiguration, adapter.Category(err), tool.Name)
	}
	assert.Zero(t, s.calls.Load())
}

func TestMissingRequiredMakesNoCall(t *testing.T) {
	s := newStub(t, http.StatusOK, `{}`)

	for _, tool := range Tools() {
		required := false
		for _, f := range tool.Params {
			required = required || f.Required
		}
		if !required {
			continue
		}
		_, err := tool.Invoke(context.Background(), map[string]any{}, s.ec())
		assert.Equal(t, adapter.CategoryValidation, adapter.Category(err), tool.Name)
	}
	assert.Zero(t, s.calls.Load())
}

func TestPeriodFilterShapePerEndpoint(t *testing.T) {
	preset := map[string]any{"_type": "Preset", "value": map[string]any{"_type": "ThisWeek"}}
	interval := map[string]any{"from": "2024-01-01", "to": "2024-01-31"}

	tests := []struct {
		name  string
		tool  string
		args  map[string]any
		field string
	}{
		{
			name:  "metrics data rejects a range",
			tool:  "getAnalyticsMetricsData",
			args:  map[string]any{"metricId": "csat", "periodFilter": interval, "aggregations": []any{"Count"}, "timezone": "UTC"},
			field: "periodFilter._type",
		},
		{
			name:  "records data rejects a preset",
			tool:  "getAnalyticsRecordsData",
			args:  map[string]any{"recordId": "conversation", "periodFilter": preset, "timezone": "UTC"},
			field: "periodFilter.from",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStub(t, http.StatusOK, `{}`)

			_, err := newRegistry(t).Invoke(context.Background(), tt.tool, tt.args, s.ec())
			var ve *adapter.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Zero(t, s.calls.Load())
		})
	}
}

func TestRecordsDataAcceptsLocalDateTime(t *testing.T) {
	s := newStub(t, http.StatusOK, `{"data":[]}`)

	_, err := newRegistry(t).Invoke(context.Background(), "getAnalyticsRecordsData", map[string]any{
		"recordId":     "conversation",
		"periodFilter": map[string]any{"from": "2024-01-01T00:00:00", "to": "2024-01-31T23:59:59"},
		"timezone":     "Europe/Copenhagen",
	}, s.ec())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"periodFilter": {"from": "2024-01-01T00:00:00", "to": "2024-01-31T23:59:59"},
		"timezone": "Europe/Copenhagen"
	}`, string(s.last().body))
}

func TestEmptyIdentifierMakesNoCall(t *testing.T) {
	s := newStub(t, http.StatusOK, `{}`)

	_, err := newRegistry(t).Invoke(context.Background(), "getAgent", map[string]any{"agentId": ""}, s.ec())
	var ve *adapter.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "agentId", ve.Field)
	assert.Equal(t, "must not be empty", ve.Reason)
	assert.Zero(t, s.calls.Load())
}

func TestPageLimitOutOfRangeMakesNoCall(t *testing.T) {
	s := newStub(t, http.StatusOK, `{}`)

	_, err := newRegistry(t).Invoke(context.Background(), "listAgents", map[string]any{"pageLimit": 1e20}, s.ec())
	var ve *adapter.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "pageLimit", ve.Field)
	assert.Equal(t, "out of range", ve.Reason)
	assert.Zero(t, s.calls.Load())
}
