package asm

import (
	"fmt"
	"log"

	"github.com/ezrec/abcout/ast"
)

// Macro is an entry of the macro table.
type Macro struct {
	Name     string            // Name of the macro.
	Line     int               // Line number of the definition.
	Params   []string          // Parameter names.
	Contents []ast.Node        // Body nodes.
	Length   uint32            // Total emitted length of one expansion.
	Labels   map[string]uint32 // Local label offsets from the start of an expansion.
	Uses     int               // Expansions emitted so far.

	sized bool
}

// LocalKey returns the unique key of a local label within one expansion.
func LocalKey(macro string, label string, use int) string {
	return fmt.Sprintf("%v.%v.%v", macro, label, use)
}

// buildMacros records every macro definition, then measures each macro and
// the offsets of its local labels.
func (ctx *Context) buildMacros(nodes []ast.Node) (err error) {
	for _, node := range nodes {
		def, ok := node.(*ast.MacroDefinition)
		if !ok {
			continue
		}

		_, ok = ctx.Macros[def.Name]
		if ok {
			err = &ErrSyntax{LineNo: def.Line, Err: ErrMacroDuplicate(def.Name)}
			return
		}

		for _, body := range def.Contents {
			switch body.(type) {
			case *ast.Number, *ast.Command, *ast.MacroLabelDefinition:
			default:
				err = &ErrMacro{Macro: def.Name, Line: ast.LineOf(body), Err: ErrInvalidMacroNode(ast.KindOf(body))}
				err = &ErrSyntax{LineNo: def.Line, Err: err}
				return
			}
		}

		ctx.Macros[def.Name] = &Macro{
			Name:     def.Name,
			Line:     def.Line,
			Params:   def.Params,
			Contents: def.Contents,
			Labels:   map[string]uint32{},
		}
		ctx.order = append(ctx.order, def.Name)
	}

	// All macros are known, so forward references between them resolve.
	for _, name := range ctx.order {
		macro := ctx.Macros[name]
		_, err = ctx.macroLength(macro)
		if err != nil {
			err = &ErrSyntax{LineNo: macro.Line, Err: err}
			return
		}
	}

	for _, name := range ctx.order {
		macro := ctx.Macros[name]
		var offset uint32
		for _, node := range macro.Contents {
			var size uint32
			size, err = ctx.Length(node)
			if err != nil {
				err = &ErrSyntax{LineNo: macro.Line, Err: err}
				return
			}
			offset += size
			label, ok := node.(*ast.MacroLabelDefinition)
			if ok {
				macro.Labels[label.Name] = offset
			}
		}

		if ctx.Verbose {
			log.Printf("asm: macro %v length %d labels %v", name, macro.Length, macro.Labels)
		}
	}

	return
}
