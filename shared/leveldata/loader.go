package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// TMX layer and object group names read by the loader.
const (
	SolidLayer      = "solids"
	SpawnGroup      = "PlayerSpawn"
	PlatformGroup   = "Platforms"
	PatrolPathGroup = "PatrolPaths"
	DeadZoneGroup   = "DeadZones"
)

// DefaultPlatformSpeed is used when a platform has no "speed" property.
const DefaultPlatformSpeed = 2.0

var ErrNoSpawn = errors.New("level has no player spawn")

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d",
			tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	c := converter{
		tileSize: float64(levelMap.TileWidth),
		mapH:     float64(levelMap.Height * levelMap.TileHeight),
	}
	level := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    float64(levelMap.Width),
		Height:   float64(levelMap.Height),
		TileSize: c.tileSize,
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != SolidLayer {
			continue
		}
		level.Solids = parseSolids(levelMap, layer)
		break
	}

	paths := make(map[string][]mgl64.Vec2)
	for _, og := range levelMap.ObjectGroups {
		if og.Name != PatrolPathGroup {
			continue
		}
		for _, o := range og.Objects {
			if len(o.PolyLines) == 0 {
				continue
			}
			polyline := o.PolyLines[0]
			if polyline.Points == nil || len(*polyline.Points) < 2 {
				continue
			}
			points := make([]mgl64.Vec2, 0, len(*polyline.Points))
			for _, p := range *polyline.Points {
				points = append(points, mgl64.Vec2{o.X + p.X, o.Y + p.Y})
			}
			paths[o.Name] = points
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case SpawnGroup:
			for _, o := range og.Objects {
				level.Spawns = append(level.Spawns, SpawnPoint{
					X:     o.X / c.tileSize,
					Y:     c.y(o.Y),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case DeadZoneGroup:
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, c.rect(o.X, o.Y, o.Width, o.Height))
			}
		case PlatformGroup:
			for _, o := range og.Objects {
				p, err := c.platform(o, paths)
				if err != nil {
					return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
				}
				level.Platforms = append(level.Platforms, p)
			}
		}
	}

	if len(level.Spawns) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}
	sort.SliceStable(level.Spawns, func(i, j int) bool {
		if level.Spawns[i].Index != level.Spawns[j].Index {
			return level.Spawns[i].Index < level.Spawns[j].Index
		}
		return level.Spawns[i].X < level.Spawns[j].X
	})

	return level, nil
}

// parseSolids merges horizontal runs of plain tiles into one rectangle.
// Ramp tiles are always emitted on their own.
func parseSolids(levelMap *tiled.Map, layer *tiled.Layer) []SolidRect {
	var solids []SolidRect
	rows := float64(levelMap.Height)

	for y := 0; y < levelMap.Height; y++ {
		runStart := -1
		flush := func(end int) {
			if runStart < 0 {
				return
			}
			solids = append(solids, SolidRect{Rect: Rect{
				X: float64(runStart),
				Y: rows - float64(y) - 1,
				W: float64(end - runStart),
				H: 1,
			}})
			runStart = -1
		}

		for x := 0; x < levelMap.Width; x++ {
			tile := layer.Tiles[y*levelMap.Width+x]
			if tile.IsNil() {
				flush(x)
				continue
			}

			var slopeType string
			if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
				slopeType = tilesetTile.Properties.GetString("slope")
			}
			if slopeType == "" {
				if runStart < 0 {
					runStart = x
				}
				continue
			}

			flush(x)
			solids = append(solids, SolidRect{
				Rect:      Rect{X: float64(x), Y: rows - float64(y) - 1, W: 1, H: 1},
				SlopeType: slopeType,
			})
		}
		flush(levelMap.Width)
	}
	return solids
}

// converter maps TMX pixel coordinates (Y down) to world units (Y up).
type converter struct {
	tileSize float64
	mapH     float64
}

func (c converter) y(py float64) float64 {
	return (c.mapH - py) / c.tileSize
}

// rect converts a TMX rectangle given by its top-left corner.
func (c converter) rect(x, y, w, h float64) Rect {
	return Rect{
		X: x / c.tileSize,
		Y: c.y(y + h),
		W: w / c.tileSize,
		H: h / c.tileSize,
	}
}

func (c converter) platform(o *tiled.Object, paths map[string][]mgl64.Vec2) (Platform, error) {
	p := Platform{
		Rect:  c.rect(o.X, o.Y, o.Width, o.Height),
		Name:  o.Name,
		Speed: o.Properties.GetFloat("speed"),
	}
	if p.Speed <= 0 {
		p.Speed = DefaultPlatformSpeed
	}
	p.Waypoints = []mgl64.Vec2{{p.X, p.Y}}

	pathName := o.Properties.GetString("pathName")
	if pathName == "" {
		return p, nil
	}
	path, ok := paths[pathName]
	if !ok {
		return Platform{}, fmt.Errorf("platform %q: unknown patrol path %q", o.Name, pathName)
	}
	// Path points are the platform's top-left corner in map pixels.
	for _, pt := range path {
		wp := mgl64.Vec2{pt.X() / c.tileSize, c.y(pt.Y() + o.Height)}
		if wp.ApproxEqual(p.Waypoints[len(p.Waypoints)-1]) {
			continue
		}
		p.Waypoints = append(p.Waypoints, wp)
	}
	return p, nil
}

// LoadLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
