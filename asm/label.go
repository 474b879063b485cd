package asm

import (
	"log"

	"github.com/ezrec/abcout/ast"
)

// resolveLabels assigns every global label the address following it.
func (ctx *Context) resolveLabels(nodes []ast.Node) (err error) {
	var counter uint32

	for _, node := range nodes {
		var size uint32
		size, err = ctx.Length(node)
		if err != nil {
			err = &ErrSyntax{LineNo: ast.LineOf(node), Err: err}
			return
		}
		counter += size

		def, ok := node.(*ast.LabelDefinition)
		if !ok {
			continue
		}

		if ctx.Verbose {
			old, ok := ctx.Labels[def.Name]
			if ok {
				log.Printf("asm: line %d: label %v redefined (was 0x%x)", def.Line, def.Name, old)
			}
		}
		ctx.Labels[def.Name] = counter
	}

	if int(counter) > ctx.Profile.ImageSize {
		err = ErrImageOverflow{Size: int(counter), Limit: ctx.Profile.ImageSize}
		return
	}

	return
}
