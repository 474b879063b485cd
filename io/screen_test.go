package io

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/abcout/isa"
)

func TestRecorder(t *testing.T) {
	assert := assert.New(t)

	rec := &Recorder{}
	rec.Plot(1, 2, 0)
	rec.Plot(255, 191, 1)

	assert.Equal([]Pixel{{1, 2, 0}, {255, 191, 1}}, rec.Pixels)

	rec.Clear()
	assert.Empty(rec.Pixels)
}

func TestFramebuffer(t *testing.T) {
	assert := assert.New(t)

	fb := NewFramebuffer()
	assert.Equal(isa.SCREEN_WIDTH, fb.Bounds().Dx())
	assert.Equal(isa.SCREEN_HEIGHT, fb.Bounds().Dy())

	fb.Plot(10, 20, COLOR_FOREGROUND)
	fb.Plot(11, 20, 7)
	fb.Plot(12, 200, COLOR_FOREGROUND)

	assert.Equal(uint8(COLOR_FOREGROUND), fb.ColorIndexAt(10, 20))
	assert.Equal(uint8(COLOR_FOREGROUND), fb.ColorIndexAt(11, 20))
	assert.Equal(uint8(COLOR_BACKGROUND), fb.ColorIndexAt(12, 191))

	fb.Plot(10, 20, COLOR_BACKGROUND)
	assert.Equal(uint8(COLOR_BACKGROUND), fb.ColorIndexAt(10, 20))

	buf := &bytes.Buffer{}
	assert.NoError(fb.WritePNG(buf))
	img, err := png.Decode(buf)
	assert.NoError(err)
	assert.Equal(fb.Bounds(), img.Bounds())

	fb.Clear()
	assert.Equal(uint8(COLOR_BACKGROUND), fb.ColorIndexAt(11, 20))
}

func TestTerminal(t *testing.T) {
	assert := assert.New(t)

	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminal(sim)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}
	defer term.Close()

	sim.SetSize(40, 10)

	term.Plot(3, 4, COLOR_FOREGROUND)
	term.Plot(39, 9, 5)
	term.Plot(40, 4, COLOR_FOREGROUND)
	term.Show()

	r, _, style, _ := sim.GetContent(3, 4)
	assert.Equal('█', r)
	assert.Equal(terminalStyle[COLOR_FOREGROUND], style)

	_, _, style, _ = sim.GetContent(39, 9)
	assert.Equal(terminalStyle[COLOR_FOREGROUND], style)

	r, _, _, _ = sim.GetContent(5, 5)
	assert.Equal(' ', r)

	term.Clear()
	r, _, _, _ = sim.GetContent(3, 4)
	assert.Equal(' ', r)
}

func TestImage(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	assert.NoError(SaveImage(buf, []byte{1, 2, 3}))

	image, err := LoadImage(buf, &isa.PROFILE_NARROW)
	assert.NoError(err)
	assert.Equal(isa.PROFILE_NARROW.ImageSize, len(image))
	assert.Equal([]byte{1, 2, 3, 0}, image[:4])

	big := strings.NewReader(strings.Repeat("x", isa.PROFILE_NARROW.ImageSize+1))
	_, err = LoadImage(big, &isa.PROFILE_NARROW)
	assert.True(errors.Is(err, ErrImageSize))

	// Exactly full images load.
	full := strings.NewReader(strings.Repeat("x", isa.PROFILE_NARROW.ImageSize))
	image, err = LoadImage(full, &isa.PROFILE_NARROW)
	assert.NoError(err)
	assert.Equal(byte('x'), image[len(image)-1])
}
