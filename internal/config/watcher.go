package config

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the configuration when the .env file changes on
// disk, so the API endpoint can be swapped without restarting.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onChange func(Config)
}

// Watch starts watching envPath. onChange receives the freshly loaded
// config after every write.
func Watch(envPath string, onChange func(Config)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	absPath, err := filepath.Abs(envPath)
	if err != nil {
		watcher.Close()
		return nil, err
	}

	w := &Watcher{watcher: watcher, path: absPath, onChange: onChange}

	// Watch the directory (fsnotify watches dirs for file events)
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	go w.watchLoop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			absPath, _ := filepath.Abs(event.Name)
			if absPath != w.path {
				continue
			}
			cfg, err := Reload(w.path)
			if err != nil {
				log.Printf("config watcher: reload %s: %v", w.path, err)
				continue
			}
			if w.onChange != nil {
				w.onChange(cfg)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("config watcher: %v", err)
		}
	}
}
