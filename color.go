package boxcollide

import "image/color"

// Palette used by the demo, same values as the usual raylib color constants
var (
	ColorGreen     = color.RGBA{R: 0, G: 228, B: 48, A: 255}
	ColorLime      = color.RGBA{R: 0, G: 158, B: 47, A: 255}
	ColorRed       = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	ColorOrange    = color.RGBA{R: 255, G: 161, B: 0, A: 255}
	ColorLightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	ColorGray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	ColorDarkGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	ColorRayWhite  = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	ColorGold      = color.RGBA{R: 255, G: 203, B: 0, A: 255}
)
