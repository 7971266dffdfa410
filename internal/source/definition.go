package source

import (
	"strconv"
	"strings"

	"confgen/internal/common"
	"confgen/internal/diagnostic"
)

// FactoryPrefix starts every default factory symbol.
const FactoryPrefix = "default_"

// Factory is a default-value declaration: [static] type [const] default_x (expr);
type Factory struct {
	Symbol string // e.g. "default_max_check_attempts"
	Type   string // declared type, qualifiers removed
	Expr   string // initializer expression, whitespace collapsed
	Pos    diagnostic.Position
}

// MemberInit binds a member to a factory in a constructor initializer
// list: _member(default_symbol).
type MemberInit struct {
	Member string
	Symbol string
	Pos    diagnostic.Position
}

// Alias is a setter-table entry: {"legacy_key", SETTER(type, _set_x)}.
type Alias struct {
	Legacy string
	Setter string
	Pos    diagnostic.Position
}

// DefinitionFile is the result of parsing a definition file.
type DefinitionFile struct {
	Path      string
	Factories []Factory
	Inits     []MemberInit
	Aliases   []Alias
}

var typeQualifiers = map[string]bool{
	"static":    true,
	"const":     true,
	"constexpr": true,
	"inline":    true,
}

// ParseDefinitions extracts factories, member initializers and aliases from
// a tokenized definition file, each in source order.
func ParseDefinitions(path string, tokens []Token) *DefinitionFile {
	file := &DefinitionFile{Path: path}

	for i := 0; i < len(tokens); i++ {
		if f, next, ok := factoryAt(tokens, i); ok {
			file.Factories = append(file.Factories, f)
			i = next - 1

			continue
		}

		if m, ok := memberInitAt(tokens, i); ok {
			file.Inits = append(file.Inits, m)

			continue
		}

		if a, ok := aliasAt(tokens, i); ok {
			file.Aliases = append(file.Aliases, a)
		}
	}

	return file
}

func isBoundary(t Token) bool {
	return t.Is(";") || t.Is("{") || t.Is("}")
}

func isTypeToken(t Token) bool {
	return t.IsIdent() || t.Is(":") || t.Is("<") || t.Is(">") || t.Is(",")
}

// factoryAt recognizes a factory whose symbol is tokens[i]. It returns the
// index following the terminating ';'.
func factoryAt(tokens []Token, i int) (Factory, int, bool) {
	sym := tokens[i]
	if !sym.IsIdent() || !strings.HasPrefix(sym.Text, FactoryPrefix) || i+1 >= len(tokens) {
		return Factory{}, 0, false
	}

	start := i
	for start > 0 && !isBoundary(tokens[start-1]) {
		if !isTypeToken(tokens[start-1]) {
			return Factory{}, 0, false
		}

		start--
	}

	var typ []Token
	for _, t := range tokens[start:i] {
		if !(t.IsIdent() && typeQualifiers[t.Text]) {
			typ = append(typ, t)
		}
	}

	if len(typ) == 0 {
		return Factory{}, 0, false
	}

	var (
		expr []Token
		end  int
	)

	switch open := tokens[i+1]; {
	case open.Is("("), open.Is("{"):
		closing := matching(tokens, i+1)
		if closing < 0 {
			return Factory{}, 0, false
		}

		expr, end = tokens[i+2:closing], closing+1
	case open.Is("="):
		end = i + 2
		for depth := 0; end < len(tokens); end++ {
			t := tokens[end]
			if depth == 0 && t.Is(";") {
				break
			}

			depth += nesting(t)
			if depth < 0 {
				break
			}
		}

		expr = tokens[i+2 : end]
	default:
		return Factory{}, 0, false
	}

	if end >= len(tokens) || !tokens[end].Is(";") {
		return Factory{}, 0, false
	}

	return Factory{
		Symbol: sym.Text,
		Type:   joinTokens(typ),
		Expr:   joinTokens(expr),
		Pos:    tokens[start].Pos,
	}, end + 1, true
}

func nesting(t Token) int {
	switch {
	case t.Is("("), t.Is("{"), t.Is("["):
		return 1
	case t.Is(")"), t.Is("}"), t.Is("]"):
		return -1
	default:
		return 0
	}
}

// matching returns the index of the bracket closing tokens[open], or -1.
func matching(tokens []Token, open int) int {
	depth := 0
	for j := open; j < len(tokens); j++ {
		depth += nesting(tokens[j])
		if depth == 0 {
			return j
		}
	}

	return -1
}

func memberInitAt(tokens []Token, i int) (MemberInit, bool) {
	if i == 0 || i+3 >= len(tokens) {
		return MemberInit{}, false
	}

	member, open, sym, closing := tokens[i], tokens[i+1], tokens[i+2], tokens[i+3]
	if !member.IsIdent() || !strings.HasPrefix(member.Text, common.PrivateMarker) {
		return MemberInit{}, false
	}

	if prev := tokens[i-1]; !prev.Is(":") && !prev.Is(",") {
		return MemberInit{}, false
	}

	if !sym.IsIdent() || !strings.HasPrefix(sym.Text, FactoryPrefix) {
		return MemberInit{}, false
	}

	if !(open.Is("(") && closing.Is(")")) && !(open.Is("{") && closing.Is("}")) {
		return MemberInit{}, false
	}

	return MemberInit{Member: member.Text, Symbol: sym.Text, Pos: member.Pos}, true
}

func aliasAt(tokens []Token, i int) (Alias, bool) {
	if i+2 >= len(tokens) || !tokens[i].Is("{") || tokens[i+1].Kind != TokenString || !tokens[i+2].Is(",") {
		return Alias{}, false
	}

	closing := matching(tokens, i)
	if closing < 0 {
		return Alias{}, false
	}

	var setter string
	for _, t := range tokens[i+3 : closing] {
		if t.IsIdent() {
			setter = t.Text
		}
	}

	if !strings.HasPrefix(setter, "_set_") && !strings.HasPrefix(setter, "set_") {
		return Alias{}, false
	}

	return Alias{Legacy: unquote(tokens[i+1].Text), Setter: setter, Pos: tokens[i+1].Pos}, true
}

func unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}

	return strings.Trim(lit, `"`)
}
