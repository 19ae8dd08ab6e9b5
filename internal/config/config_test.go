package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"bizbook/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("BIZBOOK_API_URL", "")
	t.Setenv("BIZBOOK_PAGE_SIZE", "")
	t.Setenv("BIZBOOK_DATA_DIR", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != config.DefaultAPIBaseURL {
		t.Errorf("expected default endpoint, got %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 30 {
		t.Errorf("expected default page size 30, got %d", cfg.PageSize)
	}
	if cfg.DataDir == "" {
		t.Error("expected a data dir default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BIZBOOK_API_URL", "http://example.test/api")
	t.Setenv("BIZBOOK_PAGE_SIZE", "50")
	t.Setenv("BIZBOOK_DATA_DIR", "/tmp/bizbook-test")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://example.test/api" {
		t.Errorf("endpoint override not applied: %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 50 {
		t.Errorf("page size override not applied: %d", cfg.PageSize)
	}
	if cfg.DataDir != "/tmp/bizbook-test" {
		t.Errorf("data dir override not applied: %q", cfg.DataDir)
	}
}

func TestLoad_BadPageSizeFallsBack(t *testing.T) {
	t.Setenv("BIZBOOK_API_URL", "")
	t.Setenv("BIZBOOK_PAGE_SIZE", "not-a-number")
	t.Setenv("BIZBOOK_DATA_DIR", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != 30 {
		t.Errorf("expected fallback page size 30, got %d", cfg.PageSize)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	// godotenv never overrides variables that are already set, so make
	// sure this one is absent (t.Setenv registers the restore).
	t.Setenv("BIZBOOK_API_URL", "")
	os.Unsetenv("BIZBOOK_API_URL")
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("BIZBOOK_API_URL=http://file.test/api\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://file.test/api" {
		t.Errorf("expected value from .env file, got %q", cfg.APIBaseURL)
	}
}

func TestLoad_MissingEnvFileIsFine(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing .env should not error: %v", err)
	}
}

// Once Load has populated the environment, only Reload can pick up an
// edited .env value; a second Load would return the stale endpoint.
func TestReload_PicksUpEditedFile(t *testing.T) {
	t.Setenv("BIZBOOK_API_URL", "")
	os.Unsetenv("BIZBOOK_API_URL")
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("BIZBOOK_API_URL=http://one.test/api\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIBaseURL != "http://one.test/api" {
		t.Fatalf("initial load: got %q", cfg.APIBaseURL)
	}

	if err := os.WriteFile(path, []byte("BIZBOOK_API_URL=http://two.test/api\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err = config.Reload(path)
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if cfg.APIBaseURL != "http://two.test/api" {
		t.Errorf("reload returned stale endpoint %q, want %q", cfg.APIBaseURL, "http://two.test/api")
	}
}

func TestWatch_ReloadsOnEnvChange(t *testing.T) {
	t.Setenv("BIZBOOK_API_URL", "")
	os.Unsetenv("BIZBOOK_API_URL")
	path := filepath.Join(t.TempDir(), ".env")

	changes := make(chan config.Config, 8)
	w, err := config.Watch(path, func(cfg config.Config) { changes <- cfg })
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("BIZBOOK_API_URL=http://one.test/api\n"), 0644); err != nil {
		t.Fatal(err)
	}
	awaitEndpoint(t, changes, "http://one.test/api")

	if err := os.WriteFile(path, []byte("BIZBOOK_API_URL=http://two.test/api\n"), 0644); err != nil {
		t.Fatal(err)
	}
	awaitEndpoint(t, changes, "http://two.test/api")
}

// awaitEndpoint drains reload callbacks until one carries the wanted
// endpoint. A single file write can fire more than one fsnotify event.
func awaitEndpoint(t *testing.T, changes <-chan config.Config, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.APIBaseURL == want {
				return
			}
		case <-deadline:
			t.Fatalf("watcher never reloaded endpoint %q", want)
		}
	}
}
