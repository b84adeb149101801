package token

import "unicode"

type Type int

const (
	LBrace Type = iota
	RBrace
	LParen
	RParen
	LAngle
	RAngle
	Comma
	Colon
	Equals
	Arrow
	Ident
	Illegal
)

func (t Type) String() string {
	switch t {
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case LParen:
		return "'('"
	case RParen:
		return "')'"
	case LAngle:
		return "'<'"
	case RAngle:
		return "'>'"
	case Comma:
		return "','"
	case Colon:
		return "':'"
	case Equals:
		return "'='"
	case Arrow:
		return "'->'"
	case Ident:
		return "identifier"
	case Illegal:
		return "illegal input"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits interface-description source into tokens. Unexpected
// characters become single-rune Ident tokens so the parser can report them
// with a position.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		// Block comment. An unterminated one yields an Illegal token at the
		// opening position so the parser can report it.
		if r == '/' && i+1 < len(runes) && runes[i+1] == '*' {
			start := line
			i += 2
			closed := false
			for i+1 < len(runes) {
				if runes[i] == '*' && runes[i+1] == '/' {
					closed = true
					break
				}
				if runes[i] == '\n' {
					line++
				}
				i++
			}
			if !closed {
				tokens = append(tokens, Token{"/*", Illegal, start})
				break
			}
			i++
			continue
		}

		switch r {
		case '{':
			tokens = append(tokens, Token{"{", LBrace, line})
			continue
		case '}':
			tokens = append(tokens, Token{"}", RBrace, line})
			continue
		case '(':
			tokens = append(tokens, Token{"(", LParen, line})
			continue
		case ')':
			tokens = append(tokens, Token{")", RParen, line})
			continue
		case '<':
			tokens = append(tokens, Token{"<", LAngle, line})
			continue
		case '>':
			tokens = append(tokens, Token{">", RAngle, line})
			continue
		case ',':
			tokens = append(tokens, Token{",", Comma, line})
			continue
		case ':':
			tokens = append(tokens, Token{":", Colon, line})
			continue
		case '=':
			tokens = append(tokens, Token{"=", Equals, line})
			continue
		}

		if r == '-' && i+1 < len(runes) && runes[i+1] == '>' {
			tokens = append(tokens, Token{"->", Arrow, line})
			i++
			continue
		}

		// Identifier: kebab-case names and numeric field labels
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '%' {
			start := i
			for i < len(runes) {
				c := runes[i]
				if c == '-' && i+1 < len(runes) && runes[i+1] == '>' {
					break
				}
				if unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' || c == '%' {
					i++
				} else {
					break
				}
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line})
			i--
			continue
		}

		tokens = append(tokens, Token{string(r), Ident, line})
	}

	return tokens
}
