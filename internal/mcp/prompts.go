package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(mcp.NewPrompt("clean_up_directory",
		mcp.WithPromptDescription("Audit the directory for incomplete or duplicate-looking records and fix them"),
	), s.handleCleanUpPrompt)

	s.mcp.AddPrompt(mcp.NewPrompt("call_list",
		mcp.WithPromptDescription("Build a follow-up call list from businesses with a given status"),
		mcp.WithArgument("status",
			mcp.ArgumentDescription("Status to collect: green, yellow, or red"),
			mcp.RequiredArgument(),
		),
	), s.handleCallListPrompt)
}

func (s *Server) handleCleanUpPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Audit and clean up the business directory",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: `Audit the business directory. Follow these steps:

1. Use list_businesses (sorted by name) to page through every record
2. Flag records with an empty name, an empty type, or a name that looks like a near-duplicate of another record
3. For each flagged record, either fix it with update_business or, if it is clearly a duplicate, confirm with me before calling delete_business
4. Set the status of any record missing one using set_business_status so nothing is left unset

Report what you changed at the end.`,
				},
			},
		},
	}, nil
}

func (s *Server) handleCallListPrompt(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	status := req.Params.Arguments["status"]
	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Build a call list of %s-status businesses", status),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: fmt.Sprintf(`Build a follow-up call list. Follow these steps:

1. Use list_businesses (sorted by date-old, so the longest-waiting come first) to page through every record
2. Collect the ones whose status is "%s"
3. Present them as a numbered list: name, phone, and the comment field if present
4. After I confirm a call happened, update that record's status with set_business_status`, status),
				},
			},
		},
	}, nil
}
