// Package assets embeds the sandbox levels.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/charmove2d/shared/leveldata"
)

// LevelsDir is the directory of TMX files inside LevelFS.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelFS returns the embedded level files.
func LevelFS() fs.FS {
	return assetFS
}

// LoadLevels parses every embedded level.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadLevels(assetFS, LevelsDir)
}
