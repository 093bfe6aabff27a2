package village

import "voxel-fireworks/core"

// FireworkPalette is the set of rocket colours the houses pick from.
var FireworkPalette = []string{
	"#ff0000",
	"#00ff00",
	"#0000ff",
	"#ffff00",
	"#ff00ff",
	"#00ffff",
	"#ffffff",
	"#ffaa00",
}

var (
	colorGround     = core.MustParseColor("#1a2b1a")
	colorSnow       = core.MustParseColor("#e0f7fa")
	colorWindowLit  = core.MustParseColor("#ffeb3b")
	colorWindowDark = core.MustParseColor("#3e2723")
	colorDoor       = core.MustParseColor("#3e2723")
	colorWood       = core.MustParseColor("#5d4037")
	colorRoof       = core.MustParseColor("#b71c1c")
	colorLeaves     = core.MustParseColor("#2e7d32")
	colorStone      = core.MustParseColor("#757575")
	colorLamp       = core.MustParseColor("#fffacd")
)

// SkyColor is the clear colour behind the village.
var SkyColor = core.MustParseColor("#050510")
