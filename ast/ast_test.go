package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		node Node
		kind Kind
		name string
	}){
		{&Number{Value: 1}, KIND_NUMBER, "number"},
		{&Command{Head: "abcout"}, KIND_COMMAND, "command"},
		{&LabelDefinition{Name: "x"}, KIND_LABEL_DEFINITION, "labelDefinition"},
		{&MacroDefinition{Name: "M"}, KIND_MACRO_DEFINITION, "macroDefinition"},
		{&MacroLabelDefinition{Name: "l"}, KIND_MACRO_LABEL_DEFINITION, "macroLabelDefinition"},
		{nil, KIND_INVALID, "invalid"},
	}

	for _, entry := range table {
		kind := KindOf(entry.node)
		assert.Equal(entry.kind, kind, entry.name)
		assert.Equal(entry.name, kind.String())
	}

	assert.Equal("Kind(42)", Kind(42).String())
}

func TestLineOf(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, LineOf(&Command{Head: "abcout", Line: 3}))
	assert.Equal(7, LineOf(&MacroLabelDefinition{Name: "l", Line: 7}))
	assert.Equal(0, LineOf(nil))
}
