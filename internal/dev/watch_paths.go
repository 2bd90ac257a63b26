package dev

import (
	"path/filepath"

	"github.com/crel-dev/crel/internal/config"
)

// CollectWatchPaths returns the pages directory and the config file.
func CollectWatchPaths(cfg *config.Config) []string {
	paths := []string{
		cfg.PagesPath(),
		filepath.Join(cfg.Dir(), config.ConfigFileName),
	}

	unique := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		unique = append(unique, clean)
	}
	return unique
}
