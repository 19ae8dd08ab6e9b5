package app

import "bizbook/internal/service"

// ── Settings ───────────────────────────────────────────────

// LoadViewPrefs returns the persisted filter/sort inputs.
func (a *App) LoadViewPrefs() service.ViewPrefs {
	return a.settings.LoadViewPrefs()
}

// SaveViewPrefs persists the filter/sort inputs.
func (a *App) SaveViewPrefs(prefs service.ViewPrefs) error {
	return a.settings.SaveViewPrefs(prefs)
}

// APIBaseURL returns the endpoint currently in use.
func (a *App) APIBaseURL() string {
	return a.client.BaseURL()
}
