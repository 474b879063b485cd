package io

// Pixel is a single pixel write.
type Pixel struct {
	X, Y  uint8
	Color uint8
}

// Recorder keeps every pixel write in order.
type Recorder struct {
	Pixels []Pixel
}

var _ Screen = (*Recorder)(nil)

func (rec *Recorder) Plot(x, y uint8, index uint8) {
	rec.Pixels = append(rec.Pixels, Pixel{X: x, Y: y, Color: index})
}

func (rec *Recorder) Clear() {
	rec.Pixels = rec.Pixels[:0]
}
