package isa

import (
	"github.com/ezrec/abcout/translate"
)

var f = translate.From

type ErrProfileUnknown string

func (err ErrProfileUnknown) Error() string {
	return f("profile %v unknown", string(err))
}
