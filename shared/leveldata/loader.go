package leveldata

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	layerCubes       = "Cubes"
	layerPlayerSpawn = "PlayerSpawn"
	defaultSurface   = "Cube"
)

// LoadLevel parses a TMX file into world geometry. It takes an fs.FS so callers can
// pass embed.FS (built-in levels) or os.DirFS (levels given on the command line).
//
// One map tile is one world unit. Tiled's Y axis points down, so it is flipped to keep
// the top-down layout the same as in the editor. Each box reads its bottom from the
// "z" property and its height from "depth" (default 1).
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	unitX := float64(levelMap.TileWidth)
	unitY := float64(levelMap.TileHeight)

	data := &LevelData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MinX:   math.Inf(1),
		MinY:   math.Inf(1),
		MaxX:   math.Inf(-1),
		MaxY:   math.Inf(-1),
		Height: math.Inf(-1),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case layerCubes:
			for _, o := range og.Objects {
				name := o.Name
				if name == "" {
					name = defaultSurface
				}
				depth := o.Properties.GetFloat("depth")
				if depth == 0 {
					depth = 1
				}
				bottom := o.Properties.GetFloat("z")
				data.addBox(Box{
					Name: name,
					MinX: o.X / unitX,
					MaxX: (o.X + o.Width) / unitX,
					MinY: -(o.Y + o.Height) / unitY,
					MaxY: -o.Y / unitY,
					MinZ: bottom,
					MaxZ: bottom + depth,
				})
			}
		case layerPlayerSpawn:
			if len(og.Objects) == 0 || data.Spawn != nil {
				continue
			}
			o := og.Objects[0]
			data.Spawn = &SpawnPoint{
				X:       o.X / unitX,
				Y:       -o.Y / unitY,
				Z:       o.Properties.GetFloat("z"),
				Heading: o.Properties.GetFloat("heading"),
			}
		}
	}

	if len(data.Boxes) == 0 {
		return nil, fmt.Errorf("load TMX %s: no objects in %q layer", tmxPath, layerCubes)
	}

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

func (d *LevelData) addBox(b Box) {
	d.Boxes = append(d.Boxes, b)
	d.MinX = math.Min(d.MinX, b.MinX)
	d.MinY = math.Min(d.MinY, b.MinY)
	d.MaxX = math.Max(d.MaxX, b.MaxX)
	d.MaxY = math.Max(d.MaxY, b.MaxY)
	d.Height = math.Max(d.Height, b.MaxZ)
}
