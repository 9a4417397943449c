// Package xdg resolves XDG base directories for the Blogify client.
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "blogify"

// ConfigDir returns $XDG_CONFIG_HOME/blogify, falling back to ~/.config/blogify.
func ConfigDir() string {
	return dir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/blogify, falling back to ~/.local/state/blogify.
// The session database lives here.
func StateDir() string {
	return dir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func dir(env, fallback string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), fallback)
	}
	return filepath.Join(base, appName)
}

// EnsureDir creates path and its parents with 0700 permissions.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}
