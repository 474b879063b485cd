// Package parser turns abcout source text into the syntax tree consumed by
// the assembler.
//
//	; comment
//	.equ ONE 1
//	.macro PLOT x y
//	    abcout SCREEN_X, x
//	    abcout SCREEN_Y, y
//	@again:
//	    abcout SCREEN, $(SCREEN_WIDTH - 1), @again
//	.endm
//	start:
//	    PLOT one, one
//	one: 1
package parser

import (
	"github.com/ezrec/abcout/ast"
	"github.com/ezrec/abcout/isa"
)

// Parser is a line oriented parser for abcout source.
type Parser struct {
	Profile *isa.Profile      // Profile providing predefined constants; PROFILE_WIDE if nil.
	Equate  map[string]uint32 // Compile-time constants, rebuilt per Parse.

	macro  *ast.MacroDefinition
	params map[string]int
}

// ParseString cleans, tokenizes and parses source text.
func (ps *Parser) ParseString(text string) (nodes []ast.Node, err error) {
	tokens, err := Tokenize(Clean(text))
	if err != nil {
		return
	}

	nodes, err = ps.Parse(tokens)
	return
}

// Parse parses a token stream into top-level nodes.
func (ps *Parser) Parse(tokens []Token) (nodes []ast.Node, err error) {
	profile := ps.Profile
	if profile == nil {
		profile = &isa.PROFILE_WIDE
	}

	ps.Equate = make(map[string]uint32)
	for key, val := range profile.Defines() {
		ps.Equate[key] = val
	}
	ps.macro = nil
	ps.params = nil

	lineno := 1
	var line []Token

	for n := 0; n <= len(tokens); n++ {
		if n < len(tokens) && tokens[n].Type != TOKEN_NEWLINE {
			if len(line) == 0 {
				lineno = tokens[n].Line
			}
			line = append(line, tokens[n])
			continue
		}

		if len(line) > 0 {
			var parsed []ast.Node
			parsed, err = ps.parseLine(line)
			if err != nil {
				tok := line[0]
				err = &ErrSyntax{LineNo: tok.Line, Token: tok.Text, Err: err}
				return
			}
			nodes = append(nodes, parsed...)
		}
		line = line[:0]
	}

	if ps.macro != nil {
		err = &ErrSyntax{LineNo: lineno, Token: ps.macro.Name, Err: ErrMacroLonely}
		ps.macro = nil
		return
	}

	return
}

// add places a node at the top level, or in the macro being defined.
func (ps *Parser) add(nodes []ast.Node, node ast.Node) []ast.Node {
	if ps.macro != nil {
		ps.macro.Contents = append(ps.macro.Contents, node)
		return nodes
	}
	return append(nodes, node)
}

// parseLine parses the tokens of one line.
func (ps *Parser) parseLine(line []Token) (nodes []ast.Node, err error) {
	// Leading labels.
labels:
	for len(line) > 0 {
		tok := line[0]
		switch tok.Type {
		case TOKEN_LABEL:
			if ps.macro != nil {
				err = ErrLabelInMacro
				return
			}
			nodes = ps.add(nodes, &ast.LabelDefinition{Name: tok.Text, Line: tok.Line})
		case TOKEN_LOCAL_LABEL:
			if ps.macro == nil {
				err = ErrLocalLabelOutside
				return
			}
			nodes = ps.add(nodes, &ast.MacroLabelDefinition{Name: tok.Text, Line: tok.Line})
		default:
			break labels
		}
		line = line[1:]
	}

	if len(line) == 0 {
		return
	}

	head := line[0]
	switch head.Type {
	case TOKEN_DIRECTIVE:
		err = ps.parseDirective(head, line[1:], &nodes)
	case TOKEN_NUMBER, TOKEN_EXPR:
		if len(line) > 1 {
			err = ErrExtraTokens
			return
		}
		var value uint32
		value, err = ps.value(head)
		if err != nil {
			return
		}
		nodes = ps.add(nodes, &ast.Number{Value: value, Line: head.Line})
	case TOKEN_IDENT:
		cmd := &ast.Command{Head: head.Text, Line: head.Line}
		for _, tok := range line[1:] {
			if tok.Type == TOKEN_COMMA {
				continue
			}
			var arg ast.Arg
			arg, err = ps.argument(tok)
			if err != nil {
				return
			}
			cmd.Args = append(cmd.Args, arg)
		}
		nodes = ps.add(nodes, cmd)
	default:
		err = ErrCommandMissing
	}

	return
}

// value evaluates a numeric token.
func (ps *Parser) value(tok Token) (value uint32, err error) {
	switch tok.Type {
	case TOKEN_NUMBER:
		value = tok.Value
	case TOKEN_EXPR:
		value, err = ps.eval(tok.Text)
	case TOKEN_IDENT:
		var ok bool
		value, ok = ps.Equate[tok.Text]
		if !ok {
			err = ErrParseNumber(tok.Text)
		}
	default:
		err = ErrArgumentInvalid
	}
	return
}

// argument converts a token into a command argument.
func (ps *Parser) argument(tok Token) (arg ast.Arg, err error) {
	switch tok.Type {
	case TOKEN_NUMBER, TOKEN_EXPR:
		var value uint32
		value, err = ps.value(tok)
		arg = ast.NumberArg{Value: value}
	case TOKEN_LOCAL:
		arg = ast.MacroLabelRef{Name: tok.Text}
	case TOKEN_IDENT:
		if index, ok := ps.params[tok.Text]; ok && ps.macro != nil {
			arg = ast.MacroParamRef{Index: index}
			return
		}
		if value, ok := ps.Equate[tok.Text]; ok {
			arg = ast.NumberArg{Value: value}
			return
		}
		arg = ast.LabelRef{Name: tok.Text}
	default:
		err = ErrArgumentInvalid
	}
	return
}

// parseDirective handles .macro, .endm and .equ.
func (ps *Parser) parseDirective(head Token, args []Token, nodes *[]ast.Node) (err error) {
	switch head.Text {
	case ".macro":
		if ps.macro != nil {
			err = ErrMacroNesting
			return
		}
		if len(args) == 0 || args[0].Type != TOKEN_IDENT {
			err = ErrMacroSyntax
			return
		}
		def := &ast.MacroDefinition{Name: args[0].Text, Line: head.Line}
		params := map[string]int{}
		for _, tok := range args[1:] {
			if tok.Type == TOKEN_COMMA {
				continue
			}
			if tok.Type != TOKEN_IDENT {
				err = ErrMacroSyntax
				return
			}
			if _, dup := params[tok.Text]; dup {
				err = ErrMacroSyntax
				return
			}
			params[tok.Text] = len(def.Params)
			def.Params = append(def.Params, tok.Text)
		}
		ps.macro = def
		ps.params = params
	case ".endm":
		if ps.macro == nil {
			err = ErrMacroLonelyEndm
			return
		}
		if len(args) != 0 {
			err = ErrExtraTokens
			return
		}
		def := ps.macro
		ps.macro = nil
		ps.params = nil
		*nodes = append(*nodes, def)
	case ".equ":
		if len(args) != 2 || args[0].Type != TOKEN_IDENT {
			err = ErrEquateSyntax
			return
		}
		name := args[0].Text
		if _, ok := ps.Equate[name]; ok {
			err = ErrEquateDuplicate
			return
		}
		var value uint32
		value, err = ps.value(args[1])
		if err != nil {
			return
		}
		ps.Equate[name] = value
	default:
		err = ErrDirectiveInvalid
	}

	return
}
