package service

import (
	"context"
	"fmt"
	"sync"

	"bizbook/internal/domain"
	"bizbook/internal/query"
	"bizbook/internal/store"
)

// ─────────────────────────────────────────────────────────────
// Local Directory Service — in-memory directory view
// ─────────────────────────────────────────────────────────────
//
// Alternate implementation of the directory with no network calls:
// every mutation is a direct, synchronous change to the in-memory
// collection and is immediately reflected. There are no failure
// paths and — deliberately — no phone validation in this variant.

// LocalDirectoryService drives the local in-memory directory view.
type LocalDirectoryService struct {
	store   *store.MemoryStore
	emitter EventEmitter

	mu      sync.Mutex
	opts    query.Options
	editor  EditorState
	confirm ConfirmState
	status  StatusState
}

// NewLocalDirectoryService creates a LocalDirectoryService over the
// given collection.
func NewLocalDirectoryService(st *store.MemoryStore, emitter EventEmitter) *LocalDirectoryService {
	return &LocalDirectoryService{
		store:   st,
		emitter: emitter,
		opts:    query.Options{Sort: query.SortNone, Page: 1, PageSize: query.DefaultPageSize},
	}
}

// SetPageSize overrides the page size (config supplement; default 30).
func (s *LocalDirectoryService) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	s.mu.Lock()
	s.opts.PageSize = size
	s.mu.Unlock()
}

// Businesses returns a copy of the collection.
func (s *LocalDirectoryService) Businesses() []domain.Business {
	return s.store.List()
}

// ── View state ─────────────────────────────────────────────

// View recomputes the filtered, sorted, paged slice of the collection.
func (s *LocalDirectoryService) View() query.Result {
	s.mu.Lock()
	opts := s.opts
	s.mu.Unlock()
	return query.Apply(s.store.List(), opts)
}

// SetFilters replaces the view inputs and resets the page to 1.
func (s *LocalDirectoryService) SetFilters(name, phone string, mode query.Mode) query.Result {
	s.mu.Lock()
	s.opts.Name = name
	s.opts.Phone = phone
	s.opts.Sort = mode
	s.opts.Page = 1
	s.mu.Unlock()
	return s.View()
}

// SetPage moves to the requested page, clamped to the valid range.
func (s *LocalDirectoryService) SetPage(ctx context.Context, page int) query.Result {
	s.mu.Lock()
	s.opts.Page = page
	s.mu.Unlock()

	res := s.View()
	s.mu.Lock()
	s.opts.Page = res.Page
	s.mu.Unlock()
	s.emitter.Emit(ctx, "directory:scroll-top", nil)
	return res
}

// ── Editor dialog ──────────────────────────────────────────

func (s *LocalDirectoryService) OpenAdd() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = EditorState{Open: true, Mode: EditorAdd}
	return s.editor
}

func (s *LocalDirectoryService) OpenEdit(id int) (EditorState, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return s.Editor(), fmt.Errorf("business %d not found", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = EditorState{Open: true, Mode: EditorEdit, Record: &b}
	return s.editor, nil
}

func (s *LocalDirectoryService) CloseEditor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = EditorState{}
	return s.editor
}

func (s *LocalDirectoryService) Editor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor
}

// SaveEditor applies the dialog synchronously: add appends with a
// locally-computed id, edit replaces the record with matching id.
// Records in this variant carry no creation timestamp.
func (s *LocalDirectoryService) SaveEditor(ctx context.Context, input domain.Business) (domain.Business, error) {
	s.mu.Lock()
	if !s.editor.Open {
		s.mu.Unlock()
		return domain.Business{}, fmt.Errorf("editor is not open")
	}
	mode := s.editor.Mode
	s.mu.Unlock()

	input.CreatedAt = ""
	if mode == EditorAdd {
		input.ID = 0
		input = s.store.Add(input)
	} else if !s.store.Replace(input) {
		return domain.Business{}, fmt.Errorf("business %d not found", input.ID)
	}

	s.mu.Lock()
	s.editor = EditorState{}
	s.mu.Unlock()
	s.emitter.Emit(ctx, "directory:changed", map[string]int{"id": input.ID})
	return input, nil
}

// ── Delete-confirmation dialog ─────────────────────────────

func (s *LocalDirectoryService) RequestDelete(id int) ConfirmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirm = ConfirmState{Open: true, TargetID: id}
	return s.confirm
}

func (s *LocalDirectoryService) CancelDelete() ConfirmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirm = ConfirmState{}
	return s.confirm
}

func (s *LocalDirectoryService) Confirm() ConfirmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirm
}

// ConfirmDelete filters the held target id out of the collection.
func (s *LocalDirectoryService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if !s.confirm.Open {
		s.mu.Unlock()
		return fmt.Errorf("no deletion pending")
	}
	id := s.confirm.TargetID
	s.confirm = ConfirmState{}
	s.mu.Unlock()

	s.store.Remove(id)
	s.emitter.Emit(ctx, "directory:changed", map[string]int{"id": id})
	return nil
}

// ── Status dialog ──────────────────────────────────────────

func (s *LocalDirectoryService) OpenStatusDialog(id int) (StatusState, error) {
	b, ok := s.store.Get(id)
	if !ok {
		return s.StatusDialog(), fmt.Errorf("business %d not found", id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusState{Open: true, Record: &b}
	return s.status, nil
}

func (s *LocalDirectoryService) CloseStatusDialog() StatusState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusState{}
	return s.status
}

func (s *LocalDirectoryService) StatusDialog() StatusState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetStatus patches the one matching record and closes the dialog.
func (s *LocalDirectoryService) SetStatus(ctx context.Context, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}

	s.mu.Lock()
	if !s.status.Open || s.status.Record == nil {
		s.mu.Unlock()
		return fmt.Errorf("status dialog is not open")
	}
	id := s.status.Record.ID
	s.status = StatusState{}
	s.mu.Unlock()

	s.store.SetStatus(id, status)
	s.emitter.Emit(ctx, "directory:changed", map[string]int{"id": id})
	return nil
}
