package assets

import (
	"embed"
	"io/fs"
)

// LevelsDir is the directory inside FS that holds the built-in .tmx arenas.
const LevelsDir = "levels"

//go:embed all:levels
var assetFS embed.FS

// FS returns the embedded asset tree. Arena files live under LevelsDir.
func FS() fs.FS {
	return assetFS
}
