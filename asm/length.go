package asm

import (
	"github.com/ezrec/abcout/ast"
)

// Length returns the number of bytes a node occupies in the image.
// Definitions occupy nothing.
func (ctx *Context) Length(node ast.Node) (length uint32, err error) {
	switch n := node.(type) {
	case *ast.Number:
		length = uint32(ctx.Profile.LiteralWidth(n.Value))
	case *ast.Command:
		if n.Head == INSTRUCTION {
			length = uint32(ctx.Profile.InstructionWidth())
			return
		}
		macro, ok := ctx.Macros[n.Head]
		if !ok {
			err = ErrUndefinedMacro(n.Head)
			return
		}
		length, err = ctx.macroLength(macro)
	}

	return
}

// macroLength sums the lengths of a macro body, fully inlining nested macros.
func (ctx *Context) macroLength(macro *Macro) (length uint32, err error) {
	if macro.sized {
		length = macro.Length
		return
	}

	if ctx.sizing[macro.Name] {
		err = ErrMacroRecursion(macro.Name)
		return
	}
	ctx.sizing[macro.Name] = true
	defer delete(ctx.sizing, macro.Name)

	for _, node := range macro.Contents {
		var size uint32
		size, err = ctx.Length(node)
		if err != nil {
			err = &ErrMacro{Macro: macro.Name, Line: ast.LineOf(node), Err: err}
			return
		}
		length += size
	}

	macro.Length = length
	macro.sized = true

	return
}
