package render

import "image/color"

// Palette
var (
	RgbBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	RgbPlayer     = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	RgbEnemy      = color.RGBA{R: 200, G: 60, B: 60, A: 255}
	RgbProjectile = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RgbText       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	RgbOverlay    = color.RGBA{R: 120, G: 200, B: 120, A: 255}
)
