// Package io provides the devices attached to the abcout machine and raw
// image file input and output.
//
// The only device is the screen: a 256x192 one bit display written through
// memory mapped registers. Screen implementations here record pixel writes
// (Recorder), render them to an image (Framebuffer), or draw them on a
// terminal (Terminal).
package io

import (
	"image/color"
)

const (
	COLOR_BACKGROUND = 0 // Palette index of unset pixels.
	COLOR_FOREGROUND = 1 // Palette index of set pixels.
)

// Palette is the screen palette, white background and black foreground.
var Palette = color.Palette{
	color.White,
	color.Black,
}

// Screen receives pixel writes from the machine.
type Screen interface {
	// Plot sets the pixel at x, y to a palette index.
	Plot(x, y uint8, index uint8)
}

// Clearer is implemented by screens that can be reset between runs.
type Clearer interface {
	Clear()
}
