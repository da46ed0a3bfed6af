package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Asset identifies a logical piece of art.
type Asset int

const (
	AssetShip Asset = iota + 1
	AssetEnemy
	AssetMissile
	AssetBomb
	AssetExplosion
	AssetStarBig
	AssetStarMiddle
	AssetStarSmall
)

// VisualProvider resolves assets to render handles. Unknown assets resolve
// to NoVisual.
type VisualProvider interface {
	Visual(a Asset) Visual
}

// Sprite is how a visual is drawn on a terminal screen.
type Sprite struct {
	Text  string
	Color core.Color
}

// Atlas is the terminal VisualProvider: every registered asset gets a
// handle and a sprite.
type Atlas struct {
	handles map[Asset]Visual
	sprites []Sprite // Indexed by handle-1
}

// NewAtlas creates an atlas with the default art.
func NewAtlas() *Atlas {
	a := &Atlas{handles: make(map[Asset]Visual)}
	a.Register(AssetShip, Sprite{Text: "/A\\", Color: core.ColorGreen})
	a.Register(AssetEnemy, Sprite{Text: "}@{", Color: core.ColorMagenta})
	a.Register(AssetMissile, Sprite{Text: "|", Color: core.ColorBrightYellow})
	a.Register(AssetBomb, Sprite{Text: "!", Color: core.ColorBrightRed})
	a.Register(AssetExplosion, Sprite{Text: "*", Color: core.ColorOrange})
	a.Register(AssetStarBig, Sprite{Text: "+", Color: core.ColorWhite})
	a.Register(AssetStarMiddle, Sprite{Text: "·", Color: core.ColorGray})
	a.Register(AssetStarSmall, Sprite{Text: ".", Color: core.ColorGray})
	return a
}

// Register adds or replaces the sprite of an asset.
func (a *Atlas) Register(asset Asset, s Sprite) Visual {
	if v, ok := a.handles[asset]; ok {
		a.sprites[v-1] = s
		return v
	}
	a.sprites = append(a.sprites, s)
	v := Visual(len(a.sprites))
	a.handles[asset] = v
	return v
}

// Visual implements VisualProvider.
func (a *Atlas) Visual(asset Asset) Visual {
	return a.handles[asset]
}

// Sprite returns the sprite of a handle.
func (a *Atlas) Sprite(v Visual) (Sprite, bool) {
	if v <= NoVisual || int(v) > len(a.sprites) {
		return Sprite{}, false
	}
	return a.sprites[v-1], true
}
