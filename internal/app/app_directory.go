package app

import (
	"bizbook/internal/domain"
	"bizbook/internal/query"
	"bizbook/internal/service"
)

// ── Directory (remote variant) ─────────────────────────────
// Thin delegates over service.DirectoryService. The frontend calls
// LoadDirectory once on mount and recomputes its table from
// DirectoryView after every event.

// LoadDirectory issues the initial fetch of the full collection.
func (a *App) LoadDirectory() error {
	return a.directory.Load(a.ctx)
}

// DirectoryView returns the current page and all dialog states.
func (a *App) DirectoryView() DirectoryView {
	return DirectoryView{
		Result:  a.directory.View(),
		Filters: a.directory.Filters(),
		Loading: a.directory.Loading(),
		Editor:  a.directory.Editor(),
		Confirm: a.directory.Confirm(),
		Status:  a.directory.StatusDialog(),
	}
}

// SetDirectoryFilters replaces the filter/sort inputs (page resets to 1).
func (a *App) SetDirectoryFilters(name, phone, sortMode string) query.Result {
	return a.directory.SetFilters(name, phone, query.Mode(sortMode))
}

// SetDirectoryPage navigates to a page (clamped to the valid range).
func (a *App) SetDirectoryPage(page int) query.Result {
	return a.directory.SetPage(a.ctx, page)
}

// OpenAddDialog opens the editor in add mode.
func (a *App) OpenAddDialog() service.EditorState {
	return a.directory.OpenAdd()
}

// OpenEditDialog opens the editor pre-filled with a record.
func (a *App) OpenEditDialog(id int) (service.EditorState, error) {
	return a.directory.OpenEdit(id)
}

// CloseEditDialog cancels the editor.
func (a *App) CloseEditDialog() service.EditorState {
	return a.directory.CloseEditor()
}

// SaveBusiness submits the editor dialog.
func (a *App) SaveBusiness(input domain.Business) error {
	return a.directory.SaveEditor(a.ctx, input)
}

// RequestDeleteBusiness opens the delete confirmation for one record.
func (a *App) RequestDeleteBusiness(id int) service.ConfirmState {
	return a.directory.RequestDelete(id)
}

// CancelDeleteBusiness dismisses the confirmation dialog.
func (a *App) CancelDeleteBusiness() service.ConfirmState {
	return a.directory.CancelDelete()
}

// ConfirmDeleteBusiness performs the pending deletion.
func (a *App) ConfirmDeleteBusiness() error {
	return a.directory.ConfirmDelete(a.ctx)
}

// OpenStatusDialog opens the status selection for one record.
func (a *App) OpenStatusDialog(id int) (service.StatusState, error) {
	return a.directory.OpenStatusDialog(id)
}

// CloseStatusDialog dismisses the status dialog.
func (a *App) CloseStatusDialog() service.StatusState {
	return a.directory.CloseStatusDialog()
}

// SetBusinessStatus applies the chosen status to the dialog's record.
func (a *App) SetBusinessStatus(status string) error {
	return a.directory.SetStatus(a.ctx, domain.Status(status))
}
