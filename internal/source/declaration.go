package source

import (
	"fmt"
	"strings"

	"confgen/internal/common"
	"confgen/internal/diagnostic"
)

// SetterTable is the member holding the legacy setter table. It is never a
// configuration field.
const SetterTable = "_setters"

// OptionalWrapper marks a member as optional: opt<T>.
const OptionalWrapper = "opt"

// Declaration is a member declaration of a declaration file.
type Declaration struct {
	Name     string // with the private marker, e.g. "_host_name"
	Type     string // canonical type text, wrapper removed
	Optional bool
	Pos      diagnostic.Position
}

// Malformed is a candidate declaration whose type could not be parsed.
type Malformed struct {
	Name   string
	Text   string
	Reason string
	Pos    diagnostic.Position
}

// DeclarationFile is the result of parsing a declaration file.
type DeclarationFile struct {
	Path         string
	Declarations []Declaration
	Malformed    []Malformed
}

var excludedKeywords = map[string]bool{
	"static":    true,
	"typedef":   true,
	"using":     true,
	"friend":    true,
	"return":    true,
	"virtual":   true,
	"mutable":   true,
	"const":     true,
	"constexpr": true,
	"inline":    true,
	"class":     true,
	"struct":    true,
	"enum":      true,
	"namespace": true,
	"template":  true,
	"typename":  true,
}

var accessSpecifiers = map[string]bool{
	"public":    true,
	"private":   true,
	"protected": true,
}

var builtinWords = map[string]bool{
	"unsigned": true,
	"signed":   true,
	"short":    true,
	"long":     true,
	"int":      true,
	"char":     true,
	"double":   true,
}

// ParseDeclarations extracts member declarations from a tokenized
// declaration file, in source order.
func ParseDeclarations(path string, tokens []Token) *DeclarationFile {
	file := &DeclarationFile{Path: path}

	for _, stmt := range statements(tokens) {
		stmt = stripAccess(stmt)
		if !isCandidate(stmt) {
			continue
		}

		nameTok := stmt[len(stmt)-1]
		typeToks := stmt[:len(stmt)-1]

		typ, optional, err := parseMemberType(typeToks)
		if err != nil {
			file.Malformed = append(file.Malformed, Malformed{
				Name:   nameTok.Text,
				Text:   joinTokens(stmt),
				Reason: err.Error(),
				Pos:    stmt[0].Pos,
			})

			continue
		}

		file.Declarations = append(file.Declarations, Declaration{
			Name:     nameTok.Text,
			Type:     typ,
			Optional: optional,
			Pos:      stmt[0].Pos,
		})
	}

	return file
}

// statements splits tokens at ';'. Statements interrupted by a brace are
// dropped, so only ';'-terminated statements are returned, terminator
// excluded.
func statements(tokens []Token) [][]Token {
	var (
		out  [][]Token
		curr []Token
	)

	for _, t := range tokens {
		switch {
		case t.Is(";"):
			if len(curr) > 0 {
				out = append(out, curr)
			}

			curr = nil
		case t.Is("{"), t.Is("}"):
			curr = nil
		default:
			curr = append(curr, t)
		}
	}

	return out
}

// stripAccess drops leading "public:" style labels.
func stripAccess(stmt []Token) []Token {
	for len(stmt) >= 2 && stmt[0].IsIdent() && accessSpecifiers[stmt[0].Text] && stmt[1].Is(":") {
		if len(stmt) >= 3 && stmt[2].Is(":") {
			break
		}

		stmt = stmt[2:]
	}

	return stmt
}

func isCandidate(stmt []Token) bool {
	if len(stmt) < 2 {
		return false
	}

	last := stmt[len(stmt)-1]
	if !last.IsIdent() || !strings.HasPrefix(last.Text, common.PrivateMarker) || last.Text == SetterTable {
		return false
	}

	for _, t := range stmt {
		switch {
		case t.IsIdent():
			if excludedKeywords[t.Text] {
				return false
			}
		case t.Is(":"), t.Is("<"), t.Is(">"), t.Is(","):
		default:
			return false
		}
	}

	return true
}

// typeParser is a recursive-descent parser over the type tokens of one
// declaration.
type typeParser struct {
	toks []Token
	pos  int
}

func (p *typeParser) peek() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}

	return p.toks[p.pos], true
}

func (p *typeParser) accept(s string) bool {
	if t, ok := p.peek(); ok && t.Is(s) {
		p.pos++

		return true
	}

	return false
}

func (p *typeParser) ident() (string, error) {
	t, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("unexpected end of type")
	}

	if !t.IsIdent() {
		return "", fmt.Errorf("expected identifier, found %q", t.Text)
	}

	p.pos++

	return t.Text, nil
}

// parseType parses: builtin-word {builtin-word} | qualified ['<' type {',' type} '>'].
func (p *typeParser) parseType() (string, error) {
	t, ok := p.peek()
	if !ok {
		return "", fmt.Errorf("missing type")
	}

	if t.IsIdent() && builtinWords[t.Text] {
		var words []string
		for {
			t, ok := p.peek()
			if !ok || !t.IsIdent() || !builtinWords[t.Text] {
				break
			}

			words = append(words, t.Text)
			p.pos++
		}

		return strings.Join(words, " "), nil
	}

	name, err := p.qualified()
	if err != nil {
		return "", err
	}

	if !p.accept("<") {
		return name, nil
	}

	var args []string
	for {
		arg, err := p.parseType()
		if err != nil {
			return "", err
		}

		args = append(args, arg)

		if p.accept(",") {
			continue
		}

		if p.accept(">") {
			break
		}

		return "", fmt.Errorf("unterminated template argument list of %s", name)
	}

	return name + "<" + strings.Join(args, ", ") + ">", nil
}

func (p *typeParser) qualified() (string, error) {
	first, err := p.ident()
	if err != nil {
		return "", err
	}

	parts := []string{first}
	for p.accept(":") {
		if !p.accept(":") {
			return "", fmt.Errorf("single ':' in qualified name %s", strings.Join(parts, "::"))
		}

		next, err := p.ident()
		if err != nil {
			return "", err
		}

		parts = append(parts, next)
	}

	return strings.Join(parts, "::"), nil
}

// parseMemberType parses the full type of a declaration and unwraps the
// optional wrapper.
func parseMemberType(toks []Token) (string, bool, error) {
	p := &typeParser{toks: toks}
	optional := false

	if len(toks) > 1 && toks[0].Is(OptionalWrapper) && toks[1].Is("<") {
		optional = true
		p.pos = 2
	}

	typ, err := p.parseType()
	if err != nil {
		return "", false, err
	}

	if optional && !p.accept(">") {
		return "", false, fmt.Errorf("%s takes a single type argument", OptionalWrapper)
	}

	if t, ok := p.peek(); ok {
		return "", false, fmt.Errorf("unexpected %q after type %s", t.Text, typ)
	}

	return typ, optional, nil
}
