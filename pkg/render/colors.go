package render

import "image/color"

var (
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
	Red       = color.RGBA{255, 0, 0, 255}
	Green     = color.RGBA{0, 228, 48, 255}
	DarkGreen = color.RGBA{0, 117, 44, 255}
	SkyBlue   = color.RGBA{102, 191, 255, 255}
	Gold      = color.RGBA{255, 203, 0, 255}
	Gray      = color.RGBA{130, 130, 130, 255}
)
