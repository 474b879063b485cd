// Package ast defines the syntax tree handed from the parser to the assembler.
//
// The node and argument sets are closed: only the types in this package
// implement Node and Arg.
package ast

// Node is a top-level or macro body syntax node.
type Node interface {
	node()
}

// Arg is an instruction or macro invocation argument.
type Arg interface {
	arg()
}

// Number is a bare literal emitted directly into the image.
type Number struct {
	Value uint32
	Line  int
}

// Command is either the abcout instruction or a macro invocation.
type Command struct {
	Head string
	Args []Arg
	Line int
}

// LabelDefinition names the address of the next emitted byte.
type LabelDefinition struct {
	Name string
	Line int
}

// MacroDefinition defines a macro. Params are referenced positionally by
// MacroParamRef arguments in Contents.
type MacroDefinition struct {
	Name     string
	Params   []string
	Contents []Node
	Line     int
}

// MacroLabelDefinition names an address local to one macro expansion.
type MacroLabelDefinition struct {
	Name string
	Line int
}

func (*Number) node()               {}
func (*Command) node()              {}
func (*LabelDefinition) node()      {}
func (*MacroDefinition) node()      {}
func (*MacroLabelDefinition) node() {}

// NumberArg is a literal argument.
type NumberArg struct {
	Value uint32
}

// LabelRef refers to a global label.
type LabelRef struct {
	Name string
}

// MacroLabelRef refers to a label local to the enclosing macro.
type MacroLabelRef struct {
	Name string
}

// MacroParamRef refers to an argument of the enclosing macro invocation.
type MacroParamRef struct {
	Index int
}

func (NumberArg) arg()     {}
func (LabelRef) arg()      {}
func (MacroLabelRef) arg() {}
func (MacroParamRef) arg() {}

// LineOf returns the source line of a node, or 0 if unknown.
func LineOf(node Node) int {
	switch n := node.(type) {
	case *Number:
		return n.Line
	case *Command:
		return n.Line
	case *LabelDefinition:
		return n.Line
	case *MacroDefinition:
		return n.Line
	case *MacroLabelDefinition:
		return n.Line
	}
	return 0
}
