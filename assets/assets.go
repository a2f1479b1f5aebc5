package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/automoto/skyrunner/shared/leveldata"
)

// DefaultLevel is the built-in level used when no level file is given.
const DefaultLevel = "levels/skyrunner.tmx"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS exposes the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadBuiltinLevels loads every embedded level, keyed by name.
func LoadBuiltinLevels() (map[string]*leveldata.LevelData, []string, error) {
	return leveldata.LoadAllLevels(assetFS, "levels")
}

// LoadLevel loads a level from disk, or the built-in level when path is empty.
func LoadLevel(path string) (*leveldata.LevelData, error) {
	if path == "" {
		return leveldata.LoadLevel(assetFS, DefaultLevel)
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	data, err := leveldata.LoadLevel(os.DirFS(dir), name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return data, nil
}

// MustLoadLevel loads the built-in level and panics if it is broken.
func MustLoadLevel() *leveldata.LevelData {
	data, err := LoadLevel("")
	if err != nil {
		panic(err)
	}
	return data
}
