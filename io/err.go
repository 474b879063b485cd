package io

import (
	"errors"

	"github.com/ezrec/abcout/translate"
)

var f = translate.From

var (
	ErrImageSize = errors.New(f("image too large"))
)
