package asm

import (
	"errors"

	"github.com/ezrec/abcout/ast"
	"github.com/ezrec/abcout/translate"
)

var f = translate.From

var (
	ErrInvalidArgument = errors.New(f("argument invalid"))
)

type ErrInvalidTopLevelNode ast.Kind

func (err ErrInvalidTopLevelNode) Error() string {
	return f("found bare %v at top level", ast.Kind(err).String())
}

type ErrInvalidMacroNode ast.Kind

func (err ErrInvalidMacroNode) Error() string {
	return f("%v not allowed in macro body", ast.Kind(err).String())
}

type ErrUndefinedMacro string

func (err ErrUndefinedMacro) Error() string {
	return f("undefined macro %v", string(err))
}

type ErrMacroDuplicate string

func (err ErrMacroDuplicate) Error() string {
	return f("macro %v duplicated", string(err))
}

type ErrMacroRecursion string

func (err ErrMacroRecursion) Error() string {
	return f("macro %v expands itself", string(err))
}

type ErrUndefinedLabel string

func (err ErrUndefinedLabel) Error() string {
	return f("undefined label %v", string(err))
}

type ErrUndefinedLocalLabel string

func (err ErrUndefinedLocalLabel) Error() string {
	return f("undefined local label %v", string(err))
}

type ErrUndefinedParameter int

func (err ErrUndefinedParameter) Error() string {
	return f("could not get macro parameter at index %d", int(err))
}

type ErrMalformedBranchTarget uint32

func (err ErrMalformedBranchTarget) Error() string {
	return f("branch target %#x not instruction aligned", uint32(err))
}

type ErrOperandRange uint32

func (err ErrOperandRange) Error() string {
	return f("value %#x does not fit an operand", uint32(err))
}

type ErrArgumentCount struct {
	Head string
	Min  int
	Max  int
	Got  int
}

func (err ErrArgumentCount) Error() string {
	if err.Min == err.Max {
		return f("%v takes %d arguments, got %d", err.Head, err.Min, err.Got)
	}
	return f("%v takes %d to %d arguments, got %d", err.Head, err.Min, err.Max, err.Got)
}

type ErrImageOverflow struct {
	Size  int
	Limit int
}

func (err ErrImageOverflow) Error() string {
	return f("image size %d exceeds %d bytes", err.Size, err.Limit)
}

// ErrLengthMismatch is an internal consistency failure between the
// measuring pass and the emitting pass.
type ErrLengthMismatch struct {
	Expected uint32
	Actual   uint32
}

func (err ErrLengthMismatch) Error() string {
	return f("emitted length %d, measured %d", err.Actual, err.Expected)
}

// ErrSyntax locates an assembly error at a top-level source line.
type ErrSyntax struct {
	LineNo int
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrMacro locates an assembly error inside a macro expansion.
type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
