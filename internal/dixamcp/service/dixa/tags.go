package dixa

import (
	"net/http"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
)

func tagTools() []*adapter.ToolSpec {
	tagRef := adapter.Schema{
		id("conversationId", "The ID of the conversation"),
		id("tagId", "The ID of the tag"),
	}

	return []*adapter.ToolSpec{
		mustTool(
			"getConversationTags",
			"Get all tags associated with a specific conversation from Dixa",
			adapter.Schema{id("conversationId", "The ID of the conversation to fetch tags for")},
			readOnly,
			adapter.Endpoint{Action: "fetch conversation tags", Method: http.MethodGet, Path: "/conversations/{conversationId}/tags"},
		),
		mustTool(
			"listTags",
			"List all available tags in Dixa",
			adapter.Schema{
				{Name: "includeDeactivated", Type: adapter.Boolean, Default: false, Description: "Whether to include deactivated tags"},
			},
			readOnly,
			adapter.Endpoint{Action: "fetch tags", Method: http.MethodGet, Path: "/tags", Query: []string{"includeDeactivated"}},
		),
		mustTool(
			"tagConversation",
			"Add a tag to a specific conversation in Dixa",
			tagRef,
			idempotent,
			adapter.Endpoint{
				Action:    "tag conversation",
				Method:    http.MethodPut,
				Path:      "/conversations/{conversationId}/tags/{tagId}",
				NoContent: "Tag added successfully",
			},
		),
		mustTool(
			"removeConversationTag",
			"Remove a tag from a specific conversation in Dixa",
			tagRef,
			destructive,
			adapter.Endpoint{
				Action:    "remove tag from conversation",
				Method:    http.MethodDelete,
				Path:      "/conversations/{conversationId}/tags/{tagId}",
				NoContent: "Tag removed successfully",
			},
		),
	}
}
