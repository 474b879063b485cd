package io

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"

	"github.com/ezrec/abcout/isa"
)

// Framebuffer renders pixel writes into a paletted image.
type Framebuffer struct {
	*image.Paletted
}

var _ Screen = (*Framebuffer)(nil)

// NewFramebuffer creates a cleared framebuffer of the screen size.
func NewFramebuffer() (fb *Framebuffer) {
	fb = &Framebuffer{
		Paletted: image.NewPaletted(image.Rect(0, 0, isa.SCREEN_WIDTH, isa.SCREEN_HEIGHT), Palette),
	}
	return
}

// Plot sets a pixel. Rows past the bottom of the screen are ignored.
func (fb *Framebuffer) Plot(x, y uint8, index uint8) {
	if int(index) >= len(Palette) {
		index = COLOR_FOREGROUND
	}
	if !(image.Point{int(x), int(y)}.In(fb.Rect)) {
		return
	}
	fb.SetColorIndex(int(x), int(y), index)
}

func (fb *Framebuffer) Clear() {
	clear(fb.Pix)
}

// WritePNG encodes the framebuffer as a PNG.
func (fb *Framebuffer) WritePNG(w io.Writer) (err error) {
	err = png.Encode(w, fb.Paletted)
	if err != nil {
		err = errors.Wrap(err, "png")
	}
	return
}
