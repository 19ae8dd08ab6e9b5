package app

import (
	"bizbook/internal/domain"
	"bizbook/internal/query"
	"bizbook/internal/service"
)

// ── Directory (local variant) ──────────────────────────────
// Same surface as app_directory.go, backed by the in-memory
// collection. No network, no validation, no failure paths.

// LocalDirectoryView returns the current page and dialog states.
func (a *App) LocalDirectoryView() DirectoryView {
	return DirectoryView{
		Result:  a.local.View(),
		Editor:  a.local.Editor(),
		Confirm: a.local.Confirm(),
		Status:  a.local.StatusDialog(),
	}
}

// SetLocalFilters replaces the filter/sort inputs (page resets to 1).
func (a *App) SetLocalFilters(name, phone, sortMode string) query.Result {
	return a.local.SetFilters(name, phone, query.Mode(sortMode))
}

// SetLocalPage navigates to a page (clamped to the valid range).
func (a *App) SetLocalPage(page int) query.Result {
	return a.local.SetPage(a.ctx, page)
}

// OpenLocalAddDialog opens the editor in add mode.
func (a *App) OpenLocalAddDialog() service.EditorState {
	return a.local.OpenAdd()
}

// OpenLocalEditDialog opens the editor pre-filled with a record.
func (a *App) OpenLocalEditDialog(id int) (service.EditorState, error) {
	return a.local.OpenEdit(id)
}

// CloseLocalEditDialog cancels the editor.
func (a *App) CloseLocalEditDialog() service.EditorState {
	return a.local.CloseEditor()
}

// SaveLocalBusiness applies the editor dialog synchronously.
func (a *App) SaveLocalBusiness(input domain.Business) (domain.Business, error) {
	return a.local.SaveEditor(a.ctx, input)
}

// RequestLocalDelete opens the delete confirmation for one record.
func (a *App) RequestLocalDelete(id int) service.ConfirmState {
	return a.local.RequestDelete(id)
}

// CancelLocalDelete dismisses the confirmation dialog.
func (a *App) CancelLocalDelete() service.ConfirmState {
	return a.local.CancelDelete()
}

// ConfirmLocalDelete performs the pending deletion.
func (a *App) ConfirmLocalDelete() error {
	return a.local.ConfirmDelete(a.ctx)
}

// OpenLocalStatusDialog opens the status selection for one record.
func (a *App) OpenLocalStatusDialog(id int) (service.StatusState, error) {
	return a.local.OpenStatusDialog(id)
}

// CloseLocalStatusDialog dismisses the status dialog.
func (a *App) CloseLocalStatusDialog() service.StatusState {
	return a.local.CloseStatusDialog()
}

// SetLocalBusinessStatus applies the chosen status to the dialog's record.
func (a *App) SetLocalBusinessStatus(status string) error {
	return a.local.SetStatus(a.ctx, domain.Status(status))
}
