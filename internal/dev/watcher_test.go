package dev

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func startWatcher(t *testing.T, paths ...string) (*Watcher, <-chan []Change) {
	t.Helper()
	watcher := NewWatcher(WatcherConfig{
		Paths:    paths,
		Interval: 20 * time.Millisecond,
	})

	changes := make(chan []Change, 10)
	watcher.OnChange(func(c []Change) {
		changes <- c
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go watcher.Start(ctx)

	deadline := time.Now().Add(time.Second)
	for !watcher.IsRunning() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	// Let the initial scan finish before touching files.
	time.Sleep(60 * time.Millisecond)
	return watcher, changes
}

func waitChange(t *testing.T, changes <-chan []Change) []Change {
	t.Helper()
	select {
	case c := <-changes:
		return c
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for change")
		return nil
	}
}

func TestWatcher_Modify(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.yaml")
	if err := os.WriteFile(page, []byte("- hi\n"), 0644); err != nil {
		t.Fatal(err)
	}

	watcher, changes := startWatcher(t, dir)
	defer watcher.Stop()

	later := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(page, later, later); err != nil {
		t.Fatal(err)
	}

	got := waitChange(t, changes)
	if len(got) != 1 || got[0].Path != page || got[0].Type != ChangePage || got[0].Removed {
		t.Errorf("changes = %+v", got)
	}
}

func TestWatcher_CreateAndRemove(t *testing.T) {
	dir := t.TempDir()
	watcher, changes := startWatcher(t, dir)
	defer watcher.Stop()

	cfg := filepath.Join(dir, "crel.json")
	if err := os.WriteFile(cfg, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	got := waitChange(t, changes)
	if len(got) != 1 || got[0].Type != ChangeConfig {
		t.Fatalf("create changes = %+v", got)
	}

	if err := os.Remove(cfg); err != nil {
		t.Fatal(err)
	}
	got = waitChange(t, changes)
	if len(got) != 1 || !got[0].Removed {
		t.Errorf("remove changes = %+v", got)
	}
}

func TestWatcher_Ignore(t *testing.T) {
	watcher := NewWatcher(WatcherConfig{
		Ignore: []string{"*.swp", "node_modules", "drafts/old", ".#*"},
	})

	tests := []struct {
		path string
		want bool
	}{
		{"pages/index.yaml", false},
		{"pages/index.yaml.swp", true},
		{"pages/node_modules/x.yaml", true},
		{"pages/drafts/old/a.yaml", true},
		{"pages/drafts/new/a.yaml", false},
		{"pages/.#index.yaml", true},
	}

	for _, tt := range tests {
		if got := watcher.shouldIgnore(tt.path); got != tt.want {
			t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	watcher, _ := startWatcher(t, t.TempDir())
	if !watcher.IsRunning() {
		t.Fatal("watcher should be running")
	}
	watcher.Stop()
	watcher.Stop()
	if watcher.IsRunning() {
		t.Error("watcher should be stopped")
	}
}

func TestClassifyChange(t *testing.T) {
	tests := map[string]ChangeType{
		"pages/index.yaml":  ChangePage,
		"pages/about.yml":   ChangePage,
		"pages/data.json":   ChangePage,
		"crel.json":         ChangeConfig,
		"project/crel.json": ChangeConfig,
		"pages/logo.svg":    ChangeAsset,
		"pages/readme.md":   ChangeAsset,
	}
	for path, want := range tests {
		if got := classifyChange(path); got != want {
			t.Errorf("classifyChange(%q) = %v, want %v", path, got, want)
		}
	}
}
