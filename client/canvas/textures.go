package canvas

import (
	"fmt"

	"github.com/cbodonnell/tickwheel/pkg/assets"
	"github.com/cbodonnell/tickwheel/pkg/log"
	"github.com/cbodonnell/tickwheel/pkg/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// Textures implements render.TextureStore with ebiten images. It must only
// be used from the game loop's goroutine.
type Textures struct {
	images []*ebiten.Image
}

func NewTextures() *Textures {
	return &Textures{}
}

func (t *Textures) AddTexture(src render.TextureSource) (render.TextureID, error) {
	img, err := assets.DecodeImage(src.Data)
	if err != nil {
		return 0, fmt.Errorf("failed to load texture %s: %v", src.Name, err)
	}
	t.images = append(t.images, ebiten.NewImageFromImage(img))
	id := render.TextureID(len(t.images) - 1)
	log.Debug("Uploaded texture %s (%dx%d) as %d", src.Name, img.Bounds().Dx(), img.Bounds().Dy(), id)
	return id, nil
}

func (t *Textures) Get(id render.TextureID) (*ebiten.Image, bool) {
	if id < 0 || int(id) >= len(t.images) {
		return nil, false
	}
	return t.images[id], true
}
