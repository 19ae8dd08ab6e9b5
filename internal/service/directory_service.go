package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"bizbook/internal/domain"
	"bizbook/internal/query"
)

// ─────────────────────────────────────────────────────────────
// Directory Service — remote-backed directory view
// ─────────────────────────────────────────────────────────────
//
// The authoritative collection lives server-side; the slice held here
// is a cache refreshed wholesale after every successful mutation
// (except status changes, which patch in place). Every failure is
// terminal for that attempt and surfaced as a notification; nothing
// is retried automatically.

// DirectoryAPI is the remote businesses API surface the service needs.
// Implemented by api.Client; tests substitute a fake.
type DirectoryAPI interface {
	List(ctx context.Context) ([]domain.Business, error)
	Create(ctx context.Context, b domain.Business) error
	Update(ctx context.Context, b domain.Business) error
	Delete(ctx context.Context, id int) error
}

// EditorMode distinguishes the two ways the editor dialog opens.
type EditorMode string

const (
	EditorAdd  EditorMode = "add"
	EditorEdit EditorMode = "edit"
)

// EditorState is the add/edit dialog state machine:
// closed → open(add) | open(edit, record); open → closed on cancel or
// save success. A failed save keeps it open.
type EditorState struct {
	Open   bool             `json:"open"`
	Mode   EditorMode       `json:"mode,omitempty"`
	Record *domain.Business `json:"record,omitempty"`
	Saving bool             `json:"saving"`
}

// ConfirmState is the delete-confirmation dialog. It holds only the
// target id; Deleting gates the confirm button.
type ConfirmState struct {
	Open     bool `json:"open"`
	TargetID int  `json:"targetId,omitempty"`
	Deleting bool `json:"deleting"`
}

// StatusState is the status-selection dialog.
type StatusState struct {
	Open   bool             `json:"open"`
	Record *domain.Business `json:"record,omitempty"`
}

// DirectoryService drives the remote-backed directory view.
type DirectoryService struct {
	api     DirectoryAPI
	emitter EventEmitter

	mu         sync.Mutex
	businesses []domain.Business
	loading    bool
	opts       query.Options
	editor     EditorState
	confirm    ConfirmState
	status     StatusState
}

// NewDirectoryService creates a DirectoryService.
func NewDirectoryService(api DirectoryAPI, emitter EventEmitter) *DirectoryService {
	return &DirectoryService{
		api:     api,
		emitter: emitter,
		opts:    query.Options{Sort: query.SortNone, Page: 1, PageSize: query.DefaultPageSize},
	}
}

// SetPageSize overrides the page size (config supplement; default 30).
func (s *DirectoryService) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	s.mu.Lock()
	s.opts.PageSize = size
	s.mu.Unlock()
}

func (s *DirectoryService) notify(ctx context.Context, level domain.NotificationLevel, message string) {
	s.emitter.Emit(ctx, "notify", domain.Notification{
		ID:      uuid.New().String(),
		Level:   level,
		Message: message,
	})
}

// ── Load / cache ───────────────────────────────────────────

// Load issues the single initial fetch. On failure the cache stays in
// its initial empty state; the loading flag clears on every path.
func (s *DirectoryService) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	items, err := s.api.List(ctx)
	if err != nil {
		s.notify(ctx, domain.NotifyError, "Could not load businesses")
		return fmt.Errorf("load businesses: %w", err)
	}

	s.mu.Lock()
	s.businesses = items
	s.mu.Unlock()
	s.emitter.Emit(ctx, "directory:loaded", map[string]int{"count": len(items)})
	return nil
}

// refetch replaces the cache wholesale after a successful mutation.
// Mutations never append locally; the server response is the truth.
func (s *DirectoryService) refetch(ctx context.Context) {
	items, err := s.api.List(ctx)
	if err != nil {
		s.notify(ctx, domain.NotifyError, "Could not refresh businesses")
		return
	}
	s.mu.Lock()
	s.businesses = items
	s.mu.Unlock()
	s.emitter.Emit(ctx, "directory:loaded", map[string]int{"count": len(items)})
}

// Loading reports whether the initial fetch is in flight.
func (s *DirectoryService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Businesses returns a copy of the cached collection.
func (s *DirectoryService) Businesses() []domain.Business {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Business, len(s.businesses))
	copy(out, s.businesses)
	return out
}

// ── View state ─────────────────────────────────────────────

// View recomputes the filtered, sorted, paged slice of the cache.
// The cache is copied under the lock: ChangeStatus patches the backing
// array in place, and bindings may run concurrently.
func (s *DirectoryService) View() query.Result {
	s.mu.Lock()
	items := make([]domain.Business, len(s.businesses))
	copy(items, s.businesses)
	opts := s.opts
	s.mu.Unlock()
	return query.Apply(items, opts)
}

// SetFilters replaces the filter and sort inputs. Any change resets
// the page index to 1.
func (s *DirectoryService) SetFilters(name, phone string, mode query.Mode) query.Result {
	s.mu.Lock()
	s.opts.Name = name
	s.opts.Phone = phone
	s.opts.Sort = mode
	s.opts.Page = 1
	s.mu.Unlock()
	return s.View()
}

// SetPage moves to the requested page, clamped to the valid range,
// and asks the frontend to scroll back to the top.
func (s *DirectoryService) SetPage(ctx context.Context, page int) query.Result {
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

// Filters returns the current view inputs.
func (s *DirectoryService) Filters() query.Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// ── Core operations ────────────────────────────────────────

// validatePhoneLocked enforces the save-time rules: phone required,
// and unique across the cache excluding selfID. Raw loads are never
// validated, only the add/edit save step.
func (s *DirectoryService) validatePhoneLocked(phone string, selfID int) error {
	if strings.TrimSpace(phone) == "" {
		return fmt.Errorf("phone number is required")
	}
	for _, b := range s.businesses {
		if b.Phone == phone && b.ID != selfID {
			return fmt.Errorf("phone number %s is already in use", phone)
		}
	}
	return nil
}

func (s *DirectoryService) nextIDLocked() int {
	max := 0
	for _, b := range s.businesses {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

// Create validates and submits a new record, then re-fetches the full
// collection. The id is computed locally as max+1 (single-operator
// assumption) and the creation timestamp is set to now.
func (s *DirectoryService) Create(ctx context.Context, input domain.Business) (*domain.Business, error) {
	s.mu.Lock()
	if err := s.validatePhoneLocked(input.Phone, 0); err != nil {
		s.mu.Unlock()
		s.notify(ctx, domain.NotifyError, err.Error())
		return nil, err
	}
	input.ID = s.nextIDLocked()
	s.mu.Unlock()
	input.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := s.api.Create(ctx, input); err != nil {
		s.notify(ctx, domain.NotifyError, "Could not save business")
		return nil, fmt.Errorf("create business: %w", err)
	}
	s.refetch(ctx)
	return &input, nil
}

// Update validates and submits a full record, then re-fetches.
func (s *DirectoryService) Update(ctx context.Context, b domain.Business) error {
	s.mu.Lock()
	if err := s.validatePhoneLocked(b.Phone, b.ID); err != nil {
		s.mu.Unlock()
		s.notify(ctx, domain.NotifyError, err.Error())
		return err
	}
	s.mu.Unlock()

	if err := s.api.Update(ctx, b); err != nil {
		s.notify(ctx, domain.NotifyError, "Could not save business")
		return fmt.Errorf("update business %d: %w", b.ID, err)
	}
	s.refetch(ctx)
	return nil
}

// Remove deletes the record server-side and re-fetches. No success
// notification is shown for deletions.
func (s *DirectoryService) Remove(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.notify(ctx, domain.NotifyError, "Could not delete business")
		return fmt.Errorf("delete business %d: %w", id, err)
	}
	s.refetch(ctx)
	return nil
}

// ChangeStatus sends the full record with only the status field
// changed. On success the cache is patched in place — no re-fetch.
func (s *DirectoryService) ChangeStatus(ctx context.Context, id int, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown status %q", status)
	}

	s.mu.Lock()
	var updated *domain.Business
	for _, b := range s.businesses {
		if b.ID == id {
			rec := b
			updated = &rec
			break
		}
	}
	s.mu.Unlock()
	if updated == nil {
		return fmt.Errorf("business %d not found", id)
	}
	updated.Status = status

	if err := s.api.Update(ctx, *updated); err != nil {
		s.notify(ctx, domain.NotifyError, "Could not update status")
		return fmt.Errorf("update status of business %d: %w", id, err)
	}

	s.mu.Lock()
	for i := range s.businesses {
		if s.businesses[i].ID == id {
			s.businesses[i].Status = status
			break
		}
	}
	s.mu.Unlock()
	s.emitter.Emit(ctx, "directory:changed", map[string]int{"id": id})
	return nil
}

// ── Editor dialog ──────────────────────────────────────────

// OpenAdd opens the editor dialog in add mode.
func (s *DirectoryService) OpenAdd() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = EditorState{Open: true, Mode: EditorAdd}
	return s.editor
}

// OpenEdit opens the editor dialog pre-filled with the record.
func (s *DirectoryService) OpenEdit(id int) (EditorState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.businesses {
		if b.ID == id {
			rec := b
			s.editor = EditorState{Open: true, Mode: EditorEdit, Record: &rec}
			return s.editor, nil
		}
	}
	return s.editor, fmt.Errorf("business %d not found", id)
}

// CloseEditor cancels the dialog.
func (s *DirectoryService) CloseEditor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor = EditorState{}
	return s.editor
}

// Editor returns the current dialog state.
func (s *DirectoryService) Editor() EditorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor
}

// SaveEditor submits the dialog. Validation rejections happen before
// the saving flag is ever set and issue no network call; a failed
// request leaves the dialog open. The saving flag clears on every
// exit path.
func (s *DirectoryService) SaveEditor(ctx context.Context, input domain.Business) error {
	s.mu.Lock()
	if !s.editor.Open {
		s.mu.Unlock()
		return fmt.Errorf("editor is not open")
	}
	mode := s.editor.Mode
	selfID := 0
	if mode == EditorEdit {
		selfID = input.ID
	}
	if err := s.validatePhoneLocked(input.Phone, selfID); err != nil {
		s.mu.Unlock()
		s.notify(ctx, domain.NotifyError, err.Error())
		return err
	}
	s.editor.Saving = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.editor.Saving = false
		s.mu.Unlock()
	}()

	var err error
	if mode == EditorAdd {
		_, err = s.Create(ctx, input)
	} else {
		err = s.Update(ctx, input)
	}
	if err != nil {
		return err // dialog stays open; notification already emitted
	}

	s.mu.Lock()
	s.editor = EditorState{}
	s.mu.Unlock()
	s.notify(ctx, domain.NotifySuccess, "Business saved")
	return nil
}

// ── Delete-confirmation dialog ─────────────────────────────

// RequestDelete opens the confirmation dialog for one record.
func (s *DirectoryService) RequestDelete(id int) ConfirmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirm = ConfirmState{Open: true, TargetID: id}
	return s.confirm
}

// CancelDelete dismisses the confirmation dialog.
func (s *DirectoryService) CancelDelete() ConfirmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.confirm = ConfirmState{}
	return s.confirm
}

// Confirm returns the current confirmation dialog state.
func (s *DirectoryService) Confirm() ConfirmState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirm
}

// ConfirmDelete issues the delete for the held target id. Cleanup is
// unconditional: the dialog closes and the deleting flag clears
// whether or not the request succeeds.
func (s *DirectoryService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	if !s.confirm.Open {
		s.mu.Unlock()
		return fmt.Errorf("no deletion pending")
	}
	id := s.confirm.TargetID
	s.confirm.Deleting = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.confirm = ConfirmState{}
		s.mu.Unlock()
	}()

	return s.Remove(ctx, id)
}

// ── Status dialog ──────────────────────────────────────────

// OpenStatusDialog opens the status-selection dialog for one record.
func (s *DirectoryService) OpenStatusDialog(id int) (StatusState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.businesses {
		if b.ID == id {
			rec := b
			s.status = StatusState{Open: true, Record: &rec}
			return s.status, nil
		}
	}
	return s.status, fmt.Errorf("business %d not found", id)
}

// CloseStatusDialog dismisses the dialog.
func (s *DirectoryService) CloseStatusDialog() StatusState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusState{}
	return s.status
}

// StatusDialog returns the current status dialog state.
func (s *DirectoryService) StatusDialog() StatusState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetStatus applies the chosen value to the dialog's record. On
// failure the dialog stays open and the cache is untouched.
func (s *DirectoryService) SetStatus(ctx context.Context, status domain.Status) error {
	s.mu.Lock()
	if !s.status.Open || s.status.Record == nil {
		s.mu.Unlock()
		return fmt.Errorf("status dialog is not open")
	}
	id := s.status.Record.ID
	s.mu.Unlock()

	if err := s.ChangeStatus(ctx, id, status); err != nil {
		return err
	}

	s.mu.Lock()
	s.status = StatusState{}
	s.mu.Unlock()
	return nil
}
