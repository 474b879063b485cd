// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"slices"

	"github.com/k0kubun/pp/v3"

	"github.com/ezrec/abcout/ast"
	"github.com/ezrec/abcout/isa"
	"github.com/ezrec/abcout/parser"
)

// INSTRUCTION is the command head of the machine's only instruction.
const INSTRUCTION = "abcout"

// Assembler is a two pass macro assembler for the abcout machine.
type Assembler struct {
	Verbose bool         // If set, verbosely logs the assembler actions.
	Profile *isa.Profile // Profile to assemble for; PROFILE_WIDE if nil.

	Context *Context // State of the most recent run.
}

func (asm *Assembler) profile() *isa.Profile {
	if asm.Profile == nil {
		return &isa.PROFILE_WIDE
	}
	return asm.Profile
}

// Parse parses and assembles source text.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	text, err := io.ReadAll(input)
	if err != nil {
		return
	}

	ps := &parser.Parser{Profile: asm.profile()}
	nodes, err := ps.ParseString(string(text))
	if err != nil {
		return
	}

	prog, err = asm.Assemble(nodes)
	return
}

// Assemble assembles a syntax tree into a padded image.
// Every call starts from a fresh Context; no image is produced on error.
func (asm *Assembler) Assemble(nodes []ast.Node) (prog *Program, err error) {
	ctx := NewContext(asm.profile())
	ctx.Verbose = asm.Verbose
	asm.Context = ctx

	for _, node := range nodes {
		switch node.(type) {
		case *ast.Number, *ast.Command, *ast.LabelDefinition, *ast.MacroDefinition:
		default:
			err = &ErrSyntax{LineNo: ast.LineOf(node), Err: ErrInvalidTopLevelNode(ast.KindOf(node))}
			return
		}
	}

	// Pass 1: sizes and addresses.
	err = ctx.buildMacros(nodes)
	if err != nil {
		return
	}

	err = ctx.resolveLabels(nodes)
	if err != nil {
		return
	}

	if asm.Verbose {
		dump := pp.New()
		dump.SetColoringEnabled(false)
		log.Printf("asm: labels %v", dump.Sprint(ctx.Labels))
	}

	// Pass 2: emission.
	for _, node := range nodes {
		err = ctx.emit(node, nil)
		if err != nil {
			err = &ErrSyntax{LineNo: ast.LineOf(node), Err: err}
			return
		}
	}

	used := len(ctx.Image)
	image := make([]byte, ctx.Profile.ImageSize)
	copy(image, ctx.Image)

	prog = &Program{
		Profile: ctx.Profile,
		Image:   image,
		Used:    used,
		Labels:  ctx.Labels,
		Opcodes: slices.Clone(ctx.Opcodes),
	}

	return
}
