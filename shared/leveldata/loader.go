package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from arena files
const (
	groupPlatforms       = "Platforms"
	groupMovingPlatforms = "MovingPlatforms"
	groupSpawns          = "PlayerSpawn"
	groupFlags           = "Flags"
)

// LoadArenaData parses a TMX file and returns its arena geometry, spawn points
// and flag bases. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArenaData(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:   levelMap.Properties.GetString("name"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
		Flags:  make(map[string]FlagBase),
	}
	if data.Name == "" {
		data.Name = strings.TrimSuffix(filepath.Base(tmxPath), ".tmx")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case groupPlatforms:
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, PlatformRect{
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					OneWay: o.Properties.GetBool("oneway"),
				})
			}
		case groupMovingPlatforms:
			for _, o := range og.Objects {
				data.Platforms = append(data.Platforms, PlatformRect{
					X:      o.X,
					Y:      o.Y,
					W:      o.Width,
					H:      o.Height,
					OneWay: true,
					MoveX:  o.Properties.GetFloat("moveX"),
					MoveY:  o.Properties.GetFloat("moveY"),
					Speed:  o.Properties.GetFloat("speed"),
				})
			}
		case groupSpawns:
			for _, o := range og.Objects {
				data.Spawns = append(data.Spawns, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case groupFlags:
			for _, o := range og.Objects {
				team := o.Properties.GetString("team")
				if team == "" {
					team = o.Name
				}
				data.Flags[team] = FlagBase{X: o.X, Y: o.Y}
			}
		}
	}

	// Team spawn halves depend on the authored order
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	if len(data.Spawns) == 0 {
		return nil, fmt.Errorf("TMX %s: no %s objects", tmxPath, groupSpawns)
	}

	return data, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each
// arena, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*ArenaData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArenaData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = data
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
