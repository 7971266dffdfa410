package gen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/emicklei/proto"

	"confgen/internal/errors"
)

// Verify checks a rendered artifact by file type: schemas are parsed back,
// C++ files are checked for balanced delimiters.
func Verify(name string, content []byte) error {
	switch filepath.Ext(name) {
	case ".proto":
		return VerifySchema(name, content)
	case ".hh", ".cc", ".h", ".cpp":
		return VerifyCpp(name, content)
	default:
		return nil
	}
}

// VerifySchema parses a protobuf schema and checks that every message
// numbers its fields 1..n without gaps and never reuses a field name, and
// that no enum value name is declared twice in one scope. Enum values live
// in the scope enclosing their enum, the package for top-level enums.
func VerifySchema(name string, content []byte) error {
	def, err := proto.NewParser(bytes.NewReader(content)).Parse()
	if err != nil {
		return errors.VerifyFailed(name, err.Error())
	}

	var problems []string

	proto.Walk(def, proto.WithMessage(func(m *proto.Message) {
		var numbers []int

		names := make(map[string]bool)

		for _, e := range m.Elements {
			f, ok := e.(*proto.NormalField)
			if !ok {
				continue
			}

			if names[f.Name] {
				problems = append(problems, fmt.Sprintf("message %s: duplicate field name %s", m.Name, f.Name))
			}

			names[f.Name] = true
			numbers = append(numbers, f.Sequence)
		}

		sort.Ints(numbers)

		for i, n := range numbers {
			if n != i+1 {
				problems = append(problems, fmt.Sprintf("message %s: field numbers are not contiguous from 1 (found %d at position %d)", m.Name, n, i+1))

				break
			}
		}
	}))

	problems = append(problems, enumValueClashes(def)...)

	if len(problems) > 0 {
		return errors.VerifyFailed(name, problems[0]).WithDetail("problems", problems)
	}

	return nil
}

// VerifyCpp checks that braces and parentheses balance outside of string
// and character literals and comments.
func VerifyCpp(name string, content []byte) error {
	var stack []byte

	line := 1
	closer := map[byte]byte{')': '(', '}': '{', ']': '['}

	for i := 0; i < len(content); i++ {
		c := content[i]

		switch {
		case c == '\n':
			line++
		case c == '/' && i+1 < len(content) && content[i+1] == '/':
			for i < len(content) && content[i] != '\n' {
				i++
			}

			line++
		case c == '/' && i+1 < len(content) && content[i+1] == '*':
			i += 2
			for i+1 < len(content) && !(content[i] == '*' && content[i+1] == '/') {
				if content[i] == '\n' {
					line++
				}

				i++
			}

			i++
		case c == '"' || c == '\'':
			i++
			for i < len(content) && content[i] != c {
				if content[i] == '\\' {
					i++
				}

				if i < len(content) && content[i] == '\n' {
					return errors.VerifyFailed(name, fmt.Sprintf("line %d: unterminated literal", line))
				}

				i++
			}
		case c == '(' || c == '{' || c == '[':
			stack = append(stack, c)
		case c == ')' || c == '}' || c == ']':
			if len(stack) == 0 || stack[len(stack)-1] != closer[c] {
				return errors.VerifyFailed(name, fmt.Sprintf("line %d: unbalanced %q", line, c))
			}

			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return errors.VerifyFailed(name, fmt.Sprintf("%d unclosed delimiter(s)", len(stack)))
	}

	return nil
}

func enumValueClashes(def *proto.Proto) []string {
	var problems []string

	owners := make(map[proto.Visitee]map[string]string)

	proto.Walk(def, proto.WithEnum(func(e *proto.Enum) {
		scope := owners[e.Parent]
		if scope == nil {
			scope = make(map[string]string)
			owners[e.Parent] = scope
		}

		for _, el := range e.Elements {
			v, ok := el.(*proto.EnumField)
			if !ok {
				continue
			}

			if prev, seen := scope[v.Name]; seen {
				problems = append(problems, fmt.Sprintf("enum %s: value %s already declared by enum %s", e.Name, v.Name, prev))

				continue
			}

			scope[v.Name] = e.Name
		}
	}))

	return problems
}
