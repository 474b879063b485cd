package ast

// Kind is the type tag of a Node.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_INVALID                = Kind(0) // invalid
	KIND_NUMBER                 = Kind(1) // number
	KIND_COMMAND                = Kind(2) // command
	KIND_LABEL_DEFINITION       = Kind(3) // labelDefinition
	KIND_MACRO_DEFINITION       = Kind(4) // macroDefinition
	KIND_MACRO_LABEL_DEFINITION = Kind(5) // macroLabelDefinition
)

// KindOf returns the type tag of a node.
func KindOf(node Node) Kind {
	switch node.(type) {
	case *Number:
		return KIND_NUMBER
	case *Command:
		return KIND_COMMAND
	case *LabelDefinition:
		return KIND_LABEL_DEFINITION
	case *MacroDefinition:
		return KIND_MACRO_DEFINITION
	case *MacroLabelDefinition:
		return KIND_MACRO_LABEL_DEFINITION
	}
	return KIND_INVALID
}
