package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"bizbook/internal/query"
	"bizbook/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Settings persistence
// ─────────────────────────────────────────────────────────────
//
// Saves the main window size and the last-used filter/sort inputs
// between sessions, as key-value rows in app_settings.

// WindowSize holds the saved window dimensions.
type WindowSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ViewPrefs are the directory view inputs restored on startup.
type ViewPrefs struct {
	Name  string     `json:"name"`
	Phone string     `json:"phone"`
	Sort  query.Mode `json:"sort"`
}

// SettingsService persists window size and view preferences.
type SettingsService struct {
	store *storage.SettingsStore
}

// NewSettingsService creates a SettingsService. A nil store is
// allowed; loads then return defaults and saves error.
func NewSettingsService(store *storage.SettingsStore) *SettingsService {
	return &SettingsService{store: store}
}

const (
	settingWindowWidth  = "window_width"
	settingWindowHeight = "window_height"
	settingViewPrefs    = "view_prefs"

	defaultWindowWidth  = 1280
	defaultWindowHeight = 800
)

// LoadWindowSize returns the saved window dimensions, or sensible defaults.
func (s *SettingsService) LoadWindowSize() WindowSize {
	size := WindowSize{Width: defaultWindowWidth, Height: defaultWindowHeight}
	if s.store == nil {
		return size
	}
	if v, err := s.store.Get(settingWindowWidth); err == nil && v != "" {
		if w, err := strconv.Atoi(v); err == nil {
			size.Width = w
		}
	}
	if v, err := s.store.Get(settingWindowHeight); err == nil && v != "" {
		if h, err := strconv.Atoi(v); err == nil {
			size.Height = h
		}
	}
	if size.Width < 800 {
		size.Width = defaultWindowWidth
	}
	if size.Height < 600 {
		size.Height = defaultWindowHeight
	}
	return size
}

// SaveWindowSize persists the current window dimensions.
func (s *SettingsService) SaveWindowSize(width, height int) error {
	if s.store == nil {
		return fmt.Errorf("settings: no store")
	}
	if err := s.store.Set(settingWindowWidth, strconv.Itoa(width)); err != nil {
		return err
	}
	return s.store.Set(settingWindowHeight, strconv.Itoa(height))
}

// LoadViewPrefs returns the last-used filter and sort inputs, or the
// defaults (empty filters, collection order).
func (s *SettingsService) LoadViewPrefs() ViewPrefs {
	prefs := ViewPrefs{Sort: query.SortNone}
	if s.store == nil {
		return prefs
	}
	v, err := s.store.Get(settingViewPrefs)
	if err != nil || v == "" {
		return prefs
	}
	if err := json.Unmarshal([]byte(v), &prefs); err != nil {
		return ViewPrefs{Sort: query.SortNone}
	}
	if prefs.Sort == "" {
		prefs.Sort = query.SortNone
	}
	return prefs
}

// SaveViewPrefs persists the current filter and sort inputs.
func (s *SettingsService) SaveViewPrefs(prefs ViewPrefs) error {
	if s.store == nil {
		return fmt.Errorf("settings: no store")
	}
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode view prefs: %w", err)
	}
	return s.store.Set(settingViewPrefs, string(data))
}
