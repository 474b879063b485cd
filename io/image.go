package io

import (
	"io"

	"github.com/pkg/errors"

	"github.com/ezrec/abcout/isa"
)

// SaveImage writes a raw memory image.
func SaveImage(w io.Writer, image []byte) (err error) {
	_, err = w.Write(image)
	if err != nil {
		err = errors.Wrap(err, "save image")
	}
	return
}

// LoadImage reads a raw memory image, zero padded to the profile image size.
func LoadImage(r io.Reader, profile *isa.Profile) (image []byte, err error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(profile.ImageSize)+1))
	if err != nil {
		err = errors.Wrap(err, "load image")
		return
	}

	if len(data) > profile.ImageSize {
		err = errors.Wrapf(ErrImageSize, "load image: %v profile holds %d bytes", profile.Name, profile.ImageSize)
		return
	}

	image = make([]byte, profile.ImageSize)
	copy(image, data)
	return
}
