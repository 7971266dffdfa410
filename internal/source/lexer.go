package source

import (
	"fmt"
	"strings"
	"text/scanner"

	"confgen/internal/common"
	"confgen/internal/diagnostic"
	"confgen/internal/errors"
)

// TokenKind classifies a token.
type TokenKind int

const (
	TokenPunct TokenKind = iota
	TokenIdent
	TokenInt
	TokenFloat
	TokenString
	TokenChar
)

// String returns a human-readable representation of the TokenKind.
func (k TokenKind) String() string {
	switch k {
	case TokenPunct:
		return "punct"
	case TokenIdent:
		return "ident"
	case TokenInt:
		return "int"
	case TokenFloat:
		return "float"
	case TokenString:
		return "string"
	case TokenChar:
		return "char"
	default:
		return common.UnknownStr
	}
}

// Token is a lexical token with its source span.
type Token struct {
	Kind   TokenKind
	Text   string
	Pos    diagnostic.Position
	Offset int // byte offset of the first character
	End    int // byte offset just past the last character
}

// Is reports whether the token is the punctuation or identifier s.
func (t Token) Is(s string) bool {
	return (t.Kind == TokenPunct || t.Kind == TokenIdent) && t.Text == s
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool {
	return t.Kind == TokenIdent
}

// Tokenize splits src into tokens. Comments and preprocessor lines are
// dropped. Unterminated literals abort with a SYNTAX error.
func Tokenize(filename string, src []byte) ([]Token, error) {
	var (
		s      scanner.Scanner
		tokens []Token
		first  error
	)

	s.Init(strings.NewReader(blankPreprocessor(string(src))))
	s.Filename = filename
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanChars | scanner.ScanComments | scanner.SkipComments
	s.Error = func(s *scanner.Scanner, msg string) {
		if first == nil {
			first = errors.Syntax(position(filename, s.Pos()).String(), msg)
		}
	}

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if first != nil {
			return nil, first
		}

		tokens = append(tokens, Token{
			Kind:   kindOf(tok),
			Text:   s.TokenText(),
			Pos:    position(filename, s.Position),
			Offset: s.Position.Offset,
			End:    s.Pos().Offset,
		})
	}

	if first != nil {
		return nil, first
	}

	return tokens, nil
}

func kindOf(tok rune) TokenKind {
	switch tok {
	case scanner.Ident:
		return TokenIdent
	case scanner.Int:
		return TokenInt
	case scanner.Float:
		return TokenFloat
	case scanner.String, scanner.RawString:
		return TokenString
	case scanner.Char:
		return TokenChar
	default:
		return TokenPunct
	}
}

func position(filename string, p scanner.Position) diagnostic.Position {
	return diagnostic.Position{File: filename, Line: p.Line, Column: p.Column}
}

// blankPreprocessor replaces directive lines, continuations included, with
// spaces so offsets and line numbers stay valid.
func blankPreprocessor(src string) string {
	lines := strings.SplitAfter(src, "\n")
	continued := false

	for i, line := range lines {
		if !continued && !strings.HasPrefix(strings.TrimLeft(line, " \t"), "#") {
			continue
		}

		body := strings.TrimRight(line, "\r\n")
		continued = strings.HasSuffix(body, "\\")
		lines[i] = strings.Repeat(" ", len(body)) + line[len(body):]
	}

	return strings.Join(lines, "")
}

// joinTokens renders tokens as source text, with a single space wherever
// the original had whitespace or a comment between two tokens.
func joinTokens(tokens []Token) string {
	var b strings.Builder

	for i, t := range tokens {
		if i > 0 && tokens[i-1].End < t.Offset {
			b.WriteByte(' ')
		}

		b.WriteString(t.Text)
	}

	return b.String()
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q at %s", t.Kind, t.Text, t.Pos)
}
