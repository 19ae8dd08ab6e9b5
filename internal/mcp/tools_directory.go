package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"bizbook/internal/domain"
	"bizbook/internal/query"
)

func (s *Server) registerDirectoryTools() {
	s.mcp.AddTool(mcp.NewTool("list_businesses",
		mcp.WithDescription("List business contacts with the same filter/sort/paginate pipeline as the table view"),
		mcp.WithString("name", mcp.Description("Name filter, case-insensitive substring")),
		mcp.WithString("phone", mcp.Description("Phone filter, case-sensitive substring")),
		mcp.WithString("sort", mcp.Description("Sort mode: none, name, date-new, date-old")),
		mcp.WithNumber("page", mcp.Description("Page index, 1-based (30 records per page)")),
	), s.handleListBusinesses)

	s.mcp.AddTool(mcp.NewTool("add_business",
		mcp.WithDescription("Create a business contact. Phone is required and must be unique; the id and timestamp are assigned automatically."),
		mcp.WithString("name", mcp.Description("Business name"), mcp.Required()),
		mcp.WithString("phone", mcp.Description("Phone number"), mcp.Required()),
		mcp.WithString("type", mcp.Description("Business type")),
		mcp.WithString("comment", mcp.Description("Free-form notes")),
	), s.handleAddBusiness)

	s.mcp.AddTool(mcp.NewTool("update_business",
		mcp.WithDescription("Replace a business contact with a full record"),
		mcp.WithNumber("id", mcp.Description("Business id"), mcp.Required()),
		mcp.WithString("name", mcp.Description("Business name"), mcp.Required()),
		mcp.WithString("phone", mcp.Description("Phone number"), mcp.Required()),
		mcp.WithString("type", mcp.Description("Business type")),
		mcp.WithString("comment", mcp.Description("Free-form notes")),
		mcp.WithString("status", mcp.Description("Status: green, yellow, red, or empty")),
	), s.handleUpdateBusiness)

	s.mcp.AddTool(mcp.NewTool("delete_business",
		mcp.WithDescription("🛑 DESTRUCTIVE: Delete a business contact."),
		mcp.WithNumber("id", mcp.Description("Business id to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.handleDeleteBusiness)

	s.mcp.AddTool(mcp.NewTool("set_business_status",
		mcp.WithDescription("Change only the status of a business contact"),
		mcp.WithNumber("id", mcp.Description("Business id"), mcp.Required()),
		mcp.WithString("status", mcp.Description("Status: green, yellow, red, or empty to unset"), mcp.Required()),
	), s.handleSetBusinessStatus)
}

func (s *Server) handleListBusinesses(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, _ := args["name"].(string)
	phone, _ := args["phone"].(string)
	sortMode, _ := args["sort"].(string)
	page := 1
	if p, err := intArg(args, "page"); err == nil && p > 0 {
		page = p
	}

	// Tools see the live cache; load it when the UI hasn't yet.
	if len(s.directory.Businesses()) == 0 {
		if err := s.directory.Load(ctx); err != nil {
			return nil, err
		}
	}

	opts := s.directory.Filters()
	opts.Name = name
	opts.Phone = phone
	opts.Page = page
	if sortMode != "" {
		opts.Sort = query.Mode(sortMode)
	}
	return jsonResult(query.Apply(s.directory.Businesses(), opts))
}

func (s *Server) handleAddBusiness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	name, _ := args["name"].(string)
	phone, _ := args["phone"].(string)
	typ, _ := args["type"].(string)
	comment, _ := args["comment"].(string)

	created, err := s.directory.Create(ctx, domain.Business{
		Name:    name,
		Phone:   phone,
		Type:    typ,
		Comment: comment,
	})
	if err != nil {
		return nil, fmt.Errorf("add business: %w", err)
	}
	return jsonResult(created)
}

func (s *Server) handleUpdateBusiness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := intArg(args, "id")
	if err != nil {
		return nil, err
	}
	name, _ := args["name"].(string)
	phone, _ := args["phone"].(string)
	typ, _ := args["type"].(string)
	comment, _ := args["comment"].(string)
	status, _ := args["status"].(string)
	if !domain.Status(status).Valid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	b := domain.Business{
		ID:      id,
		Name:    name,
		Phone:   phone,
		Type:    typ,
		Comment: comment,
		Status:  domain.Status(status),
	}

	// The PUT carries the full record, so the stored creation timestamp
	// must ride along or the server copy loses it.
	if len(s.directory.Businesses()) == 0 {
		if err := s.directory.Load(ctx); err != nil {
			return nil, err
		}
	}
	for _, existing := range s.directory.Businesses() {
		if existing.ID == id {
			b.CreatedAt = existing.CreatedAt
			break
		}
	}

	if err := s.directory.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("update business: %w", err)
	}
	return jsonResult(b)
}

func (s *Server) handleDeleteBusiness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := intArg(req.GetArguments(), "id")
	if err != nil {
		return nil, err
	}
	if err := s.directory.Remove(ctx, id); err != nil {
		return nil, fmt.Errorf("delete business: %w", err)
	}
	return textResult(fmt.Sprintf("Deleted business %d", id)), nil
}

func (s *Server) handleSetBusinessStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, err := intArg(args, "id")
	if err != nil {
		return nil, err
	}
	status, _ := args["status"].(string)

	if err := s.directory.ChangeStatus(ctx, id, domain.Status(status)); err != nil {
		return nil, fmt.Errorf("set status: %w", err)
	}
	return textResult(fmt.Sprintf("Business %d status set to %q", id, status)), nil
}
