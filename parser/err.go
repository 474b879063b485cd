package parser

import (
	"errors"

	"github.com/ezrec/abcout/translate"
)

var f = translate.From

var (
	ErrEquateSyntax      = errors.New(f(".equ syntax"))
	ErrEquateDuplicate   = errors.New(f(".equ duplicated"))
	ErrMacroSyntax       = errors.New(f(".macro syntax"))
	ErrMacroNesting      = errors.New(f(".macro in .macro prohibited"))
	ErrMacroLonely       = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm   = errors.New(f(".endm without .macro"))
	ErrDirectiveInvalid  = errors.New(f("directive invalid"))
	ErrLabelInMacro      = errors.New(f("global label in .macro"))
	ErrLocalLabelOutside = errors.New(f("local label outside .macro"))
	ErrExtraTokens       = errors.New(f("excessive tokens"))
	ErrArgumentInvalid   = errors.New(f("argument invalid"))
	ErrCommandMissing    = errors.New(f("command missing"))
)

type ErrCharacter rune

func (err ErrCharacter) Error() string {
	return f("unexpected character %q", rune(err))
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates a parse error.
type ErrSyntax struct {
	LineNo int
	Token  string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Token, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
