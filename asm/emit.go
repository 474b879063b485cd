package asm

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/abcout/ast"
	"github.com/ezrec/abcout/isa"
)

// expansion is the context of one macro invocation.
type expansion struct {
	start  uint32            // Address of the first byte of the expansion.
	labels map[string]uint32 // Absolute local labels, keyed by LocalKey.
	args   []uint32          // Resolved invocation arguments.
	name   string            // Macro name.
	use    int               // Use ordinal of this expansion.
}

// resolve evaluates an argument in the context of an expansion, or of the
// top level if ex is nil.
func (ctx *Context) resolve(arg ast.Arg, ex *expansion) (value uint32, err error) {
	switch a := arg.(type) {
	case ast.NumberArg:
		value = a.Value
	case ast.LabelRef:
		var ok bool
		value, ok = ctx.Labels[a.Name]
		if !ok {
			err = ErrUndefinedLabel(a.Name)
		}
	case ast.MacroLabelRef:
		if ex == nil {
			err = ErrUndefinedLocalLabel(a.Name)
			return
		}
		var ok bool
		value, ok = ex.labels[LocalKey(ex.name, a.Name, ex.use)]
		if !ok {
			err = ErrUndefinedLocalLabel(a.Name)
		}
	case ast.MacroParamRef:
		if ex == nil || a.Index < 0 || a.Index >= len(ex.args) {
			err = ErrUndefinedParameter(a.Index)
			return
		}
		value = ex.args[a.Index]
	default:
		err = ErrInvalidArgument
	}

	return
}

// resolveArgs evaluates an argument list into a fresh value slice.
func (ctx *Context) resolveArgs(args []ast.Arg, ex *expansion) (values []uint32, err error) {
	values = make([]uint32, 0, len(args))
	for _, arg := range args {
		var value uint32
		value, err = ctx.resolve(arg, ex)
		if err != nil {
			return
		}
		values = append(values, value)
	}

	return
}

// put appends data at the cursor, recording it in the source map.
func (ctx *Context) put(op Opcode, data []byte) (err error) {
	if int(ctx.Cursor) != len(ctx.Image) {
		err = ErrLengthMismatch{Expected: ctx.Cursor, Actual: uint32(len(ctx.Image))}
		return
	}

	end := int(ctx.Cursor) + len(data)
	if end > ctx.Profile.ImageSize {
		err = ErrImageOverflow{Size: end, Limit: ctx.Profile.ImageSize}
		return
	}

	op.Addr = ctx.Cursor
	op.Length = len(data)

	if ctx.Verbose {
		log.Printf("asm: %05x: %v", op.Addr, op.Text)
	}

	ctx.Image = append(ctx.Image, data...)
	ctx.Cursor += uint32(len(data))
	ctx.Opcodes = append(ctx.Opcodes, op)

	return
}

// emit generates the bytes of a node. Nodes other than numbers and commands
// emit nothing.
func (ctx *Context) emit(node ast.Node, ex *expansion) (err error) {
	switch n := node.(type) {
	case *ast.Number:
		err = ctx.emitNumber(n, ex)
	case *ast.Command:
		if n.Head == INSTRUCTION {
			err = ctx.emitInstruction(n, ex)
		} else {
			err = ctx.emitMacro(n, ex)
		}
	}

	return
}

func (ctx *Context) emitNumber(n *ast.Number, ex *expansion) (err error) {
	if n.Value > ctx.Profile.MaxOperand() {
		err = ErrOperandRange(n.Value)
		return
	}

	op := Opcode{LineNo: n.Line, Text: fmt.Sprintf("%d", n.Value)}
	if ex != nil {
		op.Macro = ex.name
	}

	width := ctx.Profile.LiteralWidth(n.Value)
	err = ctx.put(op, isa.AppendUint(nil, width, n.Value))
	return
}

func (ctx *Context) emitInstruction(n *ast.Command, ex *expansion) (err error) {
	if len(n.Args) < 2 || len(n.Args) > 3 {
		err = ErrArgumentCount{Head: n.Head, Min: 2, Max: 3, Got: len(n.Args)}
		return
	}

	values, err := ctx.resolveArgs(n.Args, ex)
	if err != nil {
		return
	}

	width := uint32(ctx.Profile.InstructionWidth())
	ins := isa.Instruction{A: values[0], B: values[1], C: ctx.Cursor + width}
	if len(values) == 3 {
		ins.C = values[2]
		if ctx.Profile.AlignBranches && ins.C%width != 0 {
			err = ErrMalformedBranchTarget(ins.C)
			return
		}
	}

	for _, value := range []uint32{ins.A, ins.B, ins.C} {
		if value > ctx.Profile.MaxOperand() {
			err = ErrOperandRange(value)
			return
		}
	}

	op := Opcode{
		LineNo:      n.Line,
		Text:        fmt.Sprintf("%v %d, %d, %d", INSTRUCTION, ins.A, ins.B, ins.C),
		Instruction: true,
	}
	if ex != nil {
		op.Macro = ex.name
	}

	err = ctx.put(op, ctx.Profile.Encode(nil, ins))
	return
}

func (ctx *Context) emitMacro(n *ast.Command, ex *expansion) (err error) {
	macro, ok := ctx.Macros[n.Head]
	if !ok {
		err = ErrUndefinedMacro(n.Head)
		return
	}

	if len(n.Args) != len(macro.Params) {
		err = ErrArgumentCount{Head: n.Head, Min: len(macro.Params), Max: len(macro.Params), Got: len(n.Args)}
		return
	}

	// Arguments are evaluated in the context of the caller.
	args, err := ctx.resolveArgs(n.Args, ex)
	if err != nil {
		return
	}

	macro.Uses++

	inner := &expansion{
		start:  ctx.Cursor,
		labels: make(map[string]uint32, len(macro.Labels)),
		args:   args,
		name:   macro.Name,
		use:    macro.Uses,
	}
	for label, offset := range macro.Labels {
		inner.labels[LocalKey(macro.Name, label, inner.use)] = inner.start + offset
	}

	if ctx.Verbose {
		strs := make([]string, len(args))
		for i, arg := range args {
			strs[i] = fmt.Sprintf("%d", arg)
		}
		log.Printf("asm: %05x: expand %v #%d (%v)", inner.start, macro.Name, inner.use, strings.Join(strs, ", "))
	}

	for _, body := range macro.Contents {
		err = ctx.emit(body, inner)
		if err != nil {
			err = &ErrMacro{Macro: macro.Name, Line: ast.LineOf(body), Err: err}
			return
		}
	}

	if ctx.Cursor-inner.start != macro.Length {
		err = ErrLengthMismatch{Expected: macro.Length, Actual: ctx.Cursor - inner.start}
		return
	}

	return
}
