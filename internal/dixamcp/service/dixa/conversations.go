package dixa

import (
	"net/http"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
)

func conversationTools() []*adapter.ToolSpec {
	return []*adapter.ToolSpec{
		mustTool(
			"searchConversations",
			"Search conversations in Dixa",
			adapter.Schema{
				{Name: "query", Type: adapter.String, Required: true, Description: "The search query string"},
				{Name: "exactMatch", Type: adapter.Boolean, Default: true, Description: "Whether to perform exact matching"},
				adapter.PageKeyField(),
				adapter.PageLimitField(adapter.DefaultPageLimit),
			},
			readOnly,
			adapter.Endpoint{
				Action: "search conversations",
				Method: http.MethodGet,
				Path:   "/search/conversations",
				Query:  []string{"query", "exactMatch", "pageKey", "pageLimit"},
			},
		),
		mustTool(
			"getConversation",
			"Get a single conversation by ID from Dixa",
			adapter.Schema{id("conversationId", "The ID of the conversation to fetch")},
			readOnly,
			adapter.Endpoint{Action: "fetch conversation", Method: http.MethodGet, Path: "/conversations/{conversationId}"},
		),
		mustTool(
			"getConversationMessages",
			"Get all messages for a specific conversation from Dixa",
			adapter.Schema{id("conversationId", "The ID of the conversation to fetch messages for")},
			readOnly,
			adapter.Endpoint{Action: "fetch conversation messages", Method: http.MethodGet, Path: "/conversations/{conversationId}/messages"},
		),
		mustTool(
			"getConversationNotes",
			"Get all internal notes for a specific conversation from Dixa",
			adapter.Schema{id("conversationId", "The ID of the conversation to fetch notes for")},
			readOnly,
			adapter.Endpoint{Action: "fetch conversation notes", Method: http.MethodGet, Path: "/conversations/{conversationId}/notes"},
		),
		mustTool(
			"getConversationRatings",
			"Get all ratings for a specific conversation from Dixa",
			adapter.Schema{id("conversationId", "The ID of the conversation to fetch ratings for")},
			readOnly,
			adapter.Endpoint{Action: "fetch conversation ratings", Method: http.MethodGet, Path: "/conversations/{conversationId}/ratings"},
		),
	}
}
