package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// DecodeImage decodes PNG or JPEG data.
func DecodeImage(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty %s image", format)
	}
	return img, nil
}
