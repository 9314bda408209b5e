package models

import "fmt"

// Color is an RGB light color.
type Color struct {
	R, G, B uint8
}

var (
	ColorWhite  = Color{255, 255, 255}
	ColorWarm   = Color{255, 214, 170}
	ColorRed    = Color{255, 0, 0}
	ColorGreen  = Color{0, 255, 0}
	ColorBlue   = Color{0, 0, 255}
	ColorYellow = Color{255, 255, 0}
)

// Hex renders the color as a lowercase #rrggbb string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
