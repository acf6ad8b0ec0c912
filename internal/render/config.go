package render

import "image/color"

// Preview configuration for colors and logical sheet geometry.
var (
	// Sheet background and caption color for framebuffer previews.
	Foreground = color.RGBA{R: 0x2C, G: 0x3E, B: 0x50, A: 0xFF} // #2c3e50
	Background = color.RGBA{R: 0xEC, G: 0xF0, B: 0xF1, A: 0xFF} // #ecf0f1

	// Logical preview sheet size; scaled to the framebuffer.
	SheetWidth  = 960
	SheetHeight = 540

	// Square cell each sprite is centered in on the sheet.
	SheetCell    = 140
	SheetPadding = 20
)
