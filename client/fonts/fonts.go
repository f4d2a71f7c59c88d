package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

const dpi = 72

// Family selects one of the bundled typefaces.
type Family int

const (
	// Regular is Go Regular, rasterized with freetype.
	Regular Family = iota
	// MPlus is M+ 1p Regular, rasterized with x/image/font/opentype.
	MPlus
)

type faceKey struct {
	family Family
	size   float64
}

var (
	parseOnce sync.Once
	parseErr  error
	goFont    *truetype.Font
	mplusFont *sfnt.Font

	facesMu sync.Mutex
	faces   = map[faceKey]font.Face{}
)

func parseFonts() {
	var err error
	goFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		parseErr = fmt.Errorf("failed to parse font: %v", err)
		return
	}
	mplusFont, err = opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		parseErr = fmt.Errorf("failed to parse font: %v", err)
	}
}

// Face returns a face of the given family and pixel size. Faces are cached,
// so repeated calls with the same arguments are cheap.
func Face(family Family, size float64) (font.Face, error) {
	parseOnce.Do(parseFonts)
	if parseErr != nil {
		return nil, parseErr
	}

	key := faceKey{family: family, size: size}
	facesMu.Lock()
	defer facesMu.Unlock()
	if f, ok := faces[key]; ok {
		return f, nil
	}

	var f font.Face
	switch family {
	case Regular:
		f = truetype.NewFace(goFont, &truetype.Options{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	case MPlus:
		var err error
		f, err = opentype.NewFace(mplusFont, &opentype.FaceOptions{
			Size:    size,
			DPI:     dpi,
			Hinting: font.HintingVertical,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create font face: %v", err)
		}
	default:
		return nil, fmt.Errorf("unknown font family: %d", family)
	}
	faces[key] = f
	return f, nil
}
