package core

import (
	"fmt"
	"os"

	"github.com/automoto/arenabots/assets"
	"github.com/automoto/arenabots/shared/leveldata"
)

// LoadArenas loads every .tmx arena. An empty assetsDir uses the arenas
// built into the binary, otherwise levels are read from assetsDir/levels.
func LoadArenas(assetsDir string) (map[string]*leveldata.ArenaData, []string, error) {
	fsys := assets.FS()
	if assetsDir != "" {
		fsys = os.DirFS(assetsDir)
	}

	arenas, names, err := leveldata.LoadAllLevels(fsys, assets.LevelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("load arenas: %w", err)
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no arenas in %s", assets.LevelsDir)
	}
	return arenas, names, nil
}
