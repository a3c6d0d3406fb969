// Package repo discovers the project a command runs in.
//
// A project is a directory holding .domainguard/config.yaml. Discovery mirrors
// git: starting from a directory, walk up until a project config is found or
// the filesystem root is reached. The home directory is never a project, as
// ~/.domainguard holds the global config.
package repo

import (
	"errors"
	"os"
	"path/filepath"
)

const (
	// Dir is the directory name holding domainguard files.
	Dir = ".domainguard"
	// ConfigFile is the config filename inside Dir.
	ConfigFile = "config.yaml"
)

// ErrNotFound is returned when no project config exists above start.
var ErrNotFound = errors.New("no project config found")

// Discover walks up from start and returns the path of the nearest project
// config file.
func Discover(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	home, _ := os.UserHomeDir()

	for {
		if dir == home {
			return "", ErrNotFound
		}
		p := filepath.Join(dir, Dir, ConfigFile)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNotFound
		}
		dir = parent
	}
}

// Root returns the project directory containing start, or start itself when
// there is none.
func Root(start string) string {
	p, err := Discover(start)
	if err != nil {
		return start
	}
	return filepath.Dir(filepath.Dir(p))
}
