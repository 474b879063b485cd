package asm

import (
	"github.com/ezrec/abcout/isa"
)

// Context is the state of a single assembly run.
type Context struct {
	Profile *isa.Profile      // ISA profile assembled for.
	Image   []byte            // Emitted bytes, unpadded until the run completes.
	Cursor  uint32            // Current write address.
	Labels  map[string]uint32 // Global label addresses.
	Macros  map[string]*Macro // Macro table.
	Opcodes []Opcode          // Source map of emitted nodes.

	Verbose bool // If set, logs the assembler passes.

	order  []string        // Macro names in definition order.
	sizing map[string]bool // Macros being measured.
}

// NewContext creates an empty assembly context.
func NewContext(profile *isa.Profile) (ctx *Context) {
	ctx = &Context{
		Profile: profile,
		Labels:  make(map[string]uint32, 16),
		Macros:  make(map[string]*Macro),
		sizing:  make(map[string]bool),
	}

	return
}
