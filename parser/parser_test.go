package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/abcout/ast"
	"github.com/ezrec/abcout/isa"
)

func TestClean(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("10", Clean("10\n"))
	assert.Equal("abcout 1, 2\n\nx:", Clean("  abcout 1, 2 ; add\n; only a comment\nx:  \n"))
	assert.Equal("", Clean(""))
}

func TestTokenize(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Tokenize("start: abcout 0x10, 'a', @loop\n@loop: .endm $(1 + 2)")
	assert.NoError(err)

	expected := []Token{
		{TOKEN_LABEL, "start", 0, 1},
		{TOKEN_IDENT, "abcout", 0, 1},
		{TOKEN_NUMBER, "0x10", 0x10, 1},
		{TOKEN_COMMA, ",", 0, 1},
		{TOKEN_NUMBER, "'a'", 'a', 1},
		{TOKEN_COMMA, ",", 0, 1},
		{TOKEN_LOCAL, "loop", 0, 1},
		{TOKEN_NEWLINE, "", 0, 1},
		{TOKEN_LOCAL_LABEL, "loop", 0, 2},
		{TOKEN_DIRECTIVE, ".endm", 0, 2},
		{TOKEN_EXPR, "1 + 2", 0, 2},
	}
	assert.Equal(expected, tokens)

	assert.Equal("local label", TOKEN_LOCAL_LABEL.String())
}

func TestTokenizeCharacters(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text  string
		value uint32
	}){
		{`'\n'`, '\n'},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
		{`' '`, ' '},
		{`0b101`, 5},
		{`0o17`, 15},
		{`1_000`, 1000},
	}

	for _, entry := range table {
		tokens, err := Tokenize(entry.text)
		assert.NoError(err, entry.text)
		if assert.Equal(1, len(tokens), entry.text) {
			assert.Equal(TOKEN_NUMBER, tokens[0].Type, entry.text)
			assert.Equal(entry.value, tokens[0].Value, entry.text)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text string
		line int
	}){
		{"abcout 1, #", 1},
		{"\n0x", 2},
		{"99999999999", 1},
		{"'ab'", 1},
		{"'a", 1},
		{"$(1 + 2", 1},
		{"\n\n@", 3},
		{". macro", 1},
	}

	for _, entry := range table {
		_, err := Tokenize(entry.text)
		var se *ErrSyntax
		if assert.Error(err, entry.text) {
			assert.True(errors.As(err, &se), entry.text)
			assert.Equal(entry.line, se.LineNo, entry.text)
		}
	}
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; plot a dot",
		".equ ONE 1",
		".macro PLOT x, y",
		"abcout SCREEN_X, x",
		"abcout SCREEN_Y, y, @done",
		"@done:",
		".endm",
		"start: PLOT ONE, $(ONE + 1)",
		"abcout 0, one",
		"one: 1",
	}

	ps := &Parser{}
	nodes, err := ps.ParseString(strings.Join(program, "\n"))
	assert.NoError(err)

	expected := []ast.Node{
		&ast.MacroDefinition{
			Name:   "PLOT",
			Params: []string{"x", "y"},
			Contents: []ast.Node{
				&ast.Command{Head: "abcout", Args: []ast.Arg{
					ast.NumberArg{Value: 0x10001}, ast.MacroParamRef{Index: 0}}, Line: 4},
				&ast.Command{Head: "abcout", Args: []ast.Arg{
					ast.NumberArg{Value: 0x10002}, ast.MacroParamRef{Index: 1}, ast.MacroLabelRef{Name: "done"}}, Line: 5},
				&ast.MacroLabelDefinition{Name: "done", Line: 6},
			},
			Line: 3,
		},
		&ast.LabelDefinition{Name: "start", Line: 8},
		&ast.Command{Head: "PLOT", Args: []ast.Arg{ast.NumberArg{Value: 1}, ast.NumberArg{Value: 2}}, Line: 8},
		&ast.Command{Head: "abcout", Args: []ast.Arg{ast.NumberArg{Value: 0}, ast.LabelRef{Name: "one"}}, Line: 9},
		&ast.LabelDefinition{Name: "one", Line: 10},
		&ast.Number{Value: 1, Line: 10},
	}

	assert.Equal(expected, nodes)
	assert.Equal(uint32(1), ps.Equate["ONE"])
}

func TestParseProfile(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{Profile: &isa.PROFILE_NARROW}
	nodes, err := ps.ParseString("$(SCREEN + INSTRUCTION_WIDTH)\n")
	assert.NoError(err)
	assert.Equal([]ast.Node{&ast.Number{Value: 0xFFF8 + 6, Line: 1}}, nodes)
}

func TestParseErrSyntax(t *testing.T) {
	assert := assert.New(t)

	ps := &Parser{}

	table := [](struct {
		prog string
		line int
		err  error
	}){
		{".equ", 1, ErrEquateSyntax},
		{".equ A", 1, ErrEquateSyntax},
		{".equ A 1\n.equ A 2\n", 2, ErrEquateDuplicate},
		{".equ HALT 2", 1, ErrEquateDuplicate},
		{".equ A nothing", 1, ErrParseNumber("nothing")},
		{".macro", 1, ErrMacroSyntax},
		{".macro M a a\n.endm", 1, ErrMacroSyntax},
		{".macro M 1\n.endm", 1, ErrMacroSyntax},
		{".macro A\n.macro B\n.endm\n.endm", 2, ErrMacroNesting},
		{".endm", 1, ErrMacroLonelyEndm},
		{".macro A\n.endm extra", 2, ErrExtraTokens},
		{".macro A\nabcout 1, 2\n", 2, ErrMacroLonely},
		{".macro A\nglobal:\n.endm", 2, ErrLabelInMacro},
		{"@local:", 1, ErrLocalLabelOutside},
		{".org 0", 1, ErrDirectiveInvalid},
		{"10 20", 1, ErrExtraTokens},
		{", abcout", 1, ErrCommandMissing},
		{"abcout x:", 1, ErrArgumentInvalid},
		{"abcout $(\"aaa\")", 1, ErrParseExpression(`"aaa"`)},
		{"abcout $(-1)", 1, ErrParseExpression("-1")},
		{"abcout $(0x100000000)", 1, ErrParseExpression("0x100000000")},
		{"abcout $(undefined)", 1, ErrParseExpression("undefined")},
	}

	for _, entry := range table {
		_, err := ps.ParseString(entry.prog)
		var se *ErrSyntax
		if assert.Error(err, entry.prog) {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
			assert.ErrorIs(err, entry.err, entry.prog)
		}
	}
}
