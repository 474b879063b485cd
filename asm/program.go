package asm

import (
	"iter"

	"github.com/ezrec/abcout/isa"
)

// Opcode is the source map entry of one emitted instruction or literal.
type Opcode struct {
	LineNo      int    // Source line of the node.
	Addr        uint32 // Address of the first byte.
	Length      int    // Number of bytes emitted.
	Text        string // Resolved text of the node.
	Macro       string // Macro expanded from, if any.
	Instruction bool   // Set for abcout instructions.
}

// Program is an assembled image.
type Program struct {
	Profile *isa.Profile
	Image   []byte            // Image padded to Profile.ImageSize.
	Used    int               // Bytes emitted before padding.
	Labels  map[string]uint32 // Global label addresses.
	Opcodes []Opcode          // Source map, in address order.
}

type Debug struct {
	*Opcode
	Index int
}

// Debug finds the source map entry covering addr.
func (prog *Program) Debug(addr uint32) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Addr && addr < op.Addr+uint32(op.Length) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr - op.Addr),
			}
			break
		}
	}

	return
}

// Codes iterates over the emitted instructions.
func (prog *Program) Codes() iter.Seq2[uint32, isa.Instruction] {
	return func(yield func(addr uint32, ins isa.Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !op.Instruction {
				continue
			}
			if !yield(op.Addr, prog.Profile.Decode(prog.Image, op.Addr)) {
				return
			}
		}
	}
}
