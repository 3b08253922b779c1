package routing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// MatchPolicy decides how an escape-route entry is compared against a request
// path. Exact entries are for listing roots whose children are still inside
// the edit context; prefix entries are for whole sub-trees that always mean
// the operator has left it.
type MatchPolicy string

const (
	MatchExact  MatchPolicy = "exact"
	MatchPrefix MatchPolicy = "prefix"
)

var ErrEscapeRoutesNotFound = errors.New("escape routes table not found")

type EscapeRoute struct {
	Path  string      `yaml:"path"`
	Match MatchPolicy `yaml:"match"`
}

type escapeRoutesFile struct {
	Version int           `yaml:"version"`
	Routes  []EscapeRoute `yaml:"routes"`
}

func DefaultEscapeRoutesPath() string {
	if p := strings.TrimSpace(os.Getenv("ESCAPE_ROUTES_PATH")); p != "" {
		return p
	}

	const relative = "config/routing/escape_routes.yaml"
	if wd, err := os.Getwd(); err == nil {
		if repoRoot, ok := findGoModRoot(wd); ok {
			abs := filepath.Join(repoRoot, filepath.FromSlash(relative))
			if _, statErr := os.Stat(abs); statErr == nil {
				return abs
			}
		}
	}

	return filepath.FromSlash(relative)
}

func LoadEscapeRoutes(path string) ([]EscapeRoute, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultEscapeRoutesPath()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrEscapeRoutesNotFound, path)
		}
		return nil, err
	}

	var file escapeRoutesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}

	if file.Version != 1 {
		return nil, fmt.Errorf("unsupported escape routes version: %d", file.Version)
	}

	for i := range file.Routes {
		file.Routes[i].Path = strings.TrimSpace(file.Routes[i].Path)
		if file.Routes[i].Path == "" {
			return nil, fmt.Errorf("escape route[%d]: empty path", i)
		}
		if !strings.HasPrefix(file.Routes[i].Path, "/") {
			return nil, fmt.Errorf("escape route[%d]: path must start with '/': %q", i, file.Routes[i].Path)
		}
		switch file.Routes[i].Match {
		case MatchExact, MatchPrefix:
		default:
			return nil, fmt.Errorf("escape route[%d]: unknown match policy: %q", i, file.Routes[i].Match)
		}
	}

	return file.Routes, nil
}

func findGoModRoot(start string) (string, bool) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
