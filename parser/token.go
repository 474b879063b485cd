package parser

import (
	"strconv"
	"strings"
	"unicode"
)

// TokenType classifies a token.
type TokenType int

const (
	TOKEN_NEWLINE     = TokenType(iota) // end of line
	TOKEN_COMMA                         // ,
	TOKEN_IDENT                         // name
	TOKEN_NUMBER                        // 12, 0x1f, 'a'
	TOKEN_EXPR                          // $(...)
	TOKEN_LABEL                         // name:
	TOKEN_LOCAL                         // @name
	TOKEN_LOCAL_LABEL                   // @name:
	TOKEN_DIRECTIVE                     // .macro
)

var tokenNames = [...]string{
	"newline", "comma", "ident", "number", "expr", "label", "local", "local label", "directive",
}

func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenNames) {
		return "TokenType(" + strconv.Itoa(int(tt)) + ")"
	}
	return tokenNames[tt]
}

// Token is a lexical token. Text holds the name without decoration for
// labels and locals, the inner text for expressions.
type Token struct {
	Type  TokenType
	Text  string
	Value uint32
	Line  int
}

// Clean strips comments and surrounding blanks from every line, and drops a
// trailing blank line.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	for n, line := range lines {
		line, _, _ = strings.Cut(line, ";")
		lines[n] = strings.TrimSpace(line)
	}

	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdent(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

var escapes = map[rune]rune{
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'e':  '\033',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
}

// Tokenize splits cleaned source text into tokens.
func Tokenize(text string) (tokens []Token, err error) {
	src := []rune(text)
	lineno := 1

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Err: err}
		}
	}()

	emit := func(tt TokenType, text string, value uint32) {
		tokens = append(tokens, Token{Type: tt, Text: text, Value: value, Line: lineno})
	}

	word := func(pos int) int {
		for pos < len(src) && isIdent(src[pos]) {
			pos++
		}
		return pos
	}

	for pos := 0; pos < len(src); {
		r := src[pos]
		switch {
		case r == '\n':
			emit(TOKEN_NEWLINE, "", 0)
			lineno++
			pos++
		case unicode.IsSpace(r):
			pos++
		case r == ',':
			emit(TOKEN_COMMA, ",", 0)
			pos++
		case r == '$' && pos+1 < len(src) && src[pos+1] == '(':
			depth := 0
			end := pos + 1
			for ; end < len(src) && src[end] != '\n'; end++ {
				if src[end] == '(' {
					depth++
				} else if src[end] == ')' {
					depth--
					if depth == 0 {
						break
					}
				}
			}
			if end >= len(src) || src[end] != ')' {
				err = ErrParseExpression(string(src[pos+2 : end]))
				return
			}
			emit(TOKEN_EXPR, string(src[pos+2:end]), 0)
			pos = end + 1
		case r == '\'':
			end := pos + 1
			for end < len(src) && src[end] != '\'' && src[end] != '\n' {
				if src[end] == '\\' {
					end++
				}
				end++
			}
			if end >= len(src) || src[end] != '\'' {
				err = ErrParseCharacter(string(src[pos:min(end, len(src))]))
				return
			}
			body := src[pos+1 : end]
			var value rune
			switch {
			case len(body) == 1 && body[0] != '\\':
				value = body[0]
			case len(body) == 2 && body[0] == '\\':
				var ok bool
				value, ok = escapes[body[1]]
				if !ok {
					err = ErrParseCharacter(string(body))
					return
				}
			default:
				err = ErrParseCharacter(string(body))
				return
			}
			emit(TOKEN_NUMBER, string(src[pos:end+1]), uint32(value))
			pos = end + 1
		case unicode.IsDigit(r):
			end := word(pos)
			str := string(src[pos:end])
			var v64 uint64
			v64, err = strconv.ParseUint(str, 0, 32)
			if err != nil {
				err = ErrParseNumber(str)
				return
			}
			emit(TOKEN_NUMBER, str, uint32(v64))
			pos = end
		case r == '@' || r == '.':
			end := word(pos + 1)
			name := string(src[pos+1 : end])
			if len(name) == 0 || !isIdentStart(src[pos+1]) {
				err = ErrCharacter(r)
				return
			}
			if r == '.' {
				emit(TOKEN_DIRECTIVE, "."+name, 0)
			} else if end < len(src) && src[end] == ':' {
				emit(TOKEN_LOCAL_LABEL, name, 0)
				end++
			} else {
				emit(TOKEN_LOCAL, name, 0)
			}
			pos = end
		case isIdentStart(r):
			end := word(pos)
			name := string(src[pos:end])
			if end < len(src) && src[end] == ':' {
				emit(TOKEN_LABEL, name, 0)
				end++
			} else {
				emit(TOKEN_IDENT, name, 0)
			}
			pos = end
		default:
			err = ErrCharacter(r)
			return
		}
	}

	return
}
