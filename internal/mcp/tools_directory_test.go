package mcpserver

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"bizbook/internal/domain"
	"bizbook/internal/service"
)

// stubAPI is an in-memory stand-in for the remote businesses API.
type stubAPI struct {
	items   []domain.Business
	updated []domain.Business
}

func (s *stubAPI) List(_ context.Context) ([]domain.Business, error) {
	out := make([]domain.Business, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubAPI) Create(_ context.Context, b domain.Business) error {
	s.items = append(s.items, b)
	return nil
}

func (s *stubAPI) Update(_ context.Context, b domain.Business) error {
	s.updated = append(s.updated, b)
	for i := range s.items {
		if s.items[i].ID == b.ID {
			s.items[i] = b
		}
	}
	return nil
}

func (s *stubAPI) Delete(_ context.Context, id int) error {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

func serverOver(api *stubAPI) *Server {
	directory := service.NewDirectoryService(api, &service.MockEmitter{})
	return New(context.Background(), Deps{
		Emitter:   &service.MockEmitter{},
		Directory: directory,
	})
}

func callReq(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestUpdateBusiness_KeepsCreationTimestamp(t *testing.T) {
	api := &stubAPI{items: []domain.Business{
		{ID: 1, Name: "Alpha Bakery", Phone: "100", CreatedAt: "2024-01-01T00:00:00Z"},
	}}
	srv := serverOver(api)

	req := callReq(map[string]any{
		"id":      float64(1),
		"name":    "Alpha Bakery v2",
		"phone":   "100",
		"comment": "renovated",
	})
	if _, err := srv.handleUpdateBusiness(context.Background(), req); err != nil {
		t.Fatalf("handleUpdateBusiness: %v", err)
	}

	if len(api.updated) != 1 {
		t.Fatalf("expected one update request, got %d", len(api.updated))
	}
	sent := api.updated[0]
	if sent.CreatedAt != "2024-01-01T00:00:00Z" {
		t.Errorf("creation timestamp not preserved in PUT body: %q", sent.CreatedAt)
	}
	if sent.Name != "Alpha Bakery v2" || sent.Comment != "renovated" {
		t.Errorf("edits not applied: %+v", sent)
	}
}

func TestUpdateBusiness_RejectsUnknownStatus(t *testing.T) {
	api := &stubAPI{items: []domain.Business{
		{ID: 1, Name: "Alpha", Phone: "100"},
	}}
	srv := serverOver(api)

	req := callReq(map[string]any{
		"id":     float64(1),
		"name":   "Alpha",
		"phone":  "100",
		"status": "purple",
	})
	if _, err := srv.handleUpdateBusiness(context.Background(), req); err == nil {
		t.Fatal("expected unknown status to be rejected")
	}
	if len(api.updated) != 0 {
		t.Error("rejection must not issue a network call")
	}
}
