package dixa

import (
	"net/http"

	"github.com/kiosk404/dixa-mcp/internal/dixamcp/service/adapter"
)

func userTools() []*adapter.ToolSpec {
	return []*adapter.ToolSpec{
		mustTool(
			"getEndUser",
			"Get information about a specific end user from Dixa",
			adapter.Schema{id("userId", "The ID of the end user to fetch information for")},
			readOnly,
			adapter.Endpoint{Action: "fetch end user information", Method: http.MethodGet, Path: "/endusers/{userId}"},
		),
		mustTool(
			"getEndUserConversations",
			"Get all conversations for a specific end user from Dixa",
			adapter.Schema{
				id("userId", "The ID of the end user to fetch conversations for"),
				adapter.PageKeyField(),
				adapter.PageLimitField(adapter.DefaultPageLimit),
			},
			readOnly,
			adapter.Endpoint{
				Action: "fetch end user conversations",
				Method: http.MethodGet,
				Path:   "/endusers/{userId}/conversations",
				Query:  []string{"pageKey", "pageLimit"},
			},
		),
	}
}

func agentTools() []*adapter.ToolSpec {
	return []*adapter.ToolSpec{
		mustTool(
			"getAgent",
			"Get information about a specific agent from Dixa",
			adapter.Schema{id("agentId", "The ID of the agent to fetch information for")},
			readOnly,
			adapter.Endpoint{Action: "fetch agent information", Method: http.MethodGet, Path: "/agents/{agentId}"},
		),
		mustTool(
			"listAgents",
			"List all agents from Dixa to find the agent ID, with pagination support",
			adapter.Schema{adapter.PageLimitField(adapter.DefaultPageLimit)},
			readOnly,
			adapter.Endpoint{Action: "fetch agents", Method: http.MethodGet, Path: "/agents", Query: []string{"pageLimit"}},
		),
	}
}
