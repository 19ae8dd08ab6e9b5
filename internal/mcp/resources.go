package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── bizbook://businesses ───────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"bizbook://businesses",
		"All Businesses",
		mcp.WithMIMEType("application/json"),
	), s.handleBusinessesResource)

	// ── bizbook://business/{id} ────────────────────────
	s.mcp.AddResourceTemplate(
		mcp.NewResourceTemplate(
			"bizbook://business/{id}",
			"A Single Business",
		),
		s.handleBusinessResource,
	)
}

func (s *Server) handleBusinessesResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if len(s.directory.Businesses()) == 0 {
		if err := s.directory.Load(ctx); err != nil {
			return nil, err
		}
	}

	data, _ := json.MarshalIndent(s.directory.Businesses(), "", "  ")
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "bizbook://businesses",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (s *Server) handleBusinessResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	id, err := businessIDFromURI(uri)
	if err != nil {
		return nil, err
	}

	if len(s.directory.Businesses()) == 0 {
		if err := s.directory.Load(ctx); err != nil {
			return nil, err
		}
	}

	for _, b := range s.directory.Businesses() {
		if b.ID != id {
			continue
		}
		data, _ := json.MarshalIndent(b, "", "  ")
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
	return nil, fmt.Errorf("business %d not found", id)
}

// businessIDFromURI extracts the id from "bizbook://business/{id}"
func businessIDFromURI(uri string) (int, error) {
	const prefix = "bizbook://business/"
	rest, ok := strings.CutPrefix(uri, prefix)
	if !ok || rest == "" {
		return 0, fmt.Errorf("could not extract business id from URI: %s", uri)
	}
	id, err := strconv.Atoi(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid business id %q in URI", rest)
	}
	return id, nil
}
