package app

import (
	"context"
	"path/filepath"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"bizbook/internal/api"
	"bizbook/internal/config"
	"bizbook/internal/service"
	"bizbook/internal/storage"
	"bizbook/internal/store"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	cfg       config.Config
	db        *storage.DB
	client    *api.Client
	directory *service.DirectoryService
	local     *service.LocalDirectoryService
	settings  *service.SettingsService
	cfgWatch  *config.Watcher
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	// Two-pass load: the first pass resolves the data dir, the second
	// picks up the .env file that lives inside it.
	cfg, _ := config.Load("")
	cfg, err := config.Load(config.EnvPath(cfg.DataDir))
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to load config: %v", err)
	}
	a.cfg = cfg

	db, err := storage.New(filepath.Join(cfg.DataDir, "bizbook.db"))
	if err != nil {
		// Settings persistence is best-effort; the directory works without it.
		wailsRuntime.LogErrorf(ctx, "Failed to open settings database: %v", err)
	} else {
		a.db = db
	}

	var settingsStore *storage.SettingsStore
	if a.db != nil {
		settingsStore = storage.NewSettingsStore(a.db)
	}
	a.settings = service.NewSettingsService(settingsStore)

	a.client = api.New(cfg.APIBaseURL)
	a.directory = service.NewDirectoryService(a.client, a)
	a.directory.SetPageSize(cfg.PageSize)
	a.local = service.NewLocalDirectoryService(store.NewMemoryStore(nil), a)
	a.local.SetPageSize(cfg.PageSize)

	// Restore the last-used view inputs and window size.
	prefs := a.settings.LoadViewPrefs()
	a.directory.SetFilters(prefs.Name, prefs.Phone, prefs.Sort)
	size := a.settings.LoadWindowSize()
	wailsRuntime.WindowSetSize(ctx, size.Width, size.Height)

	// Hot-reload the endpoint when the .env file changes.
	watch, err := config.Watch(config.EnvPath(cfg.DataDir), func(next config.Config) {
		a.client.SetBaseURL(next.APIBaseURL)
		wailsRuntime.EventsEmit(a.ctx, "config:changed", map[string]string{
			"apiBaseUrl": next.APIBaseURL,
		})
	})
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to start config watcher: %v", err)
	} else {
		a.cfgWatch = watch
	}
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.cfgWatch != nil {
		a.cfgWatch.Close()
	}
	if a.settings != nil && a.ctx != nil {
		w, h := wailsRuntime.WindowGetSize(a.ctx)
		a.settings.SaveWindowSize(w, h)

		opts := a.directory.Filters()
		a.settings.SaveViewPrefs(service.ViewPrefs{
			Name:  opts.Name,
			Phone: opts.Phone,
			Sort:  opts.Sort,
		})
	}
	if a.db != nil {
		a.db.Close()
	}
}

// Emit implements service.EventEmitter by forwarding to the Wails
// runtime, so services never import wailsRuntime directly.
func (a *App) Emit(_ context.Context, event string, data any) {
	if a.ctx == nil {
		return
	}
	wailsRuntime.EventsEmit(a.ctx, event, data)
}
