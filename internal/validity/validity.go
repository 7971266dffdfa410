// Package validity holds the object-level predicates checked by a generated
// helper's check_validity. Rules only apply to registered objects.
package validity

import (
	"errors"
	"fmt"
	"strings"

	"confgen/internal/common"
	"confgen/internal/hook"
	"confgen/internal/schema"
)

// Kind identifies a predicate shape.
type Kind int

const (
	KindRequired Kind = iota
	KindAnyOf
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindRequired:
		return "required"
	case KindAnyOf:
		return "any_of"
	default:
		return common.UnknownStr
	}
}

// Rule is a single validity predicate over schema field names.
type Rule struct {
	Kind   Kind
	Fields []string
}

// Required asserts that field is set and non-empty.
func Required(field string) Rule {
	return Rule{Kind: KindRequired, Fields: []string{field}}
}

// AnyOf asserts that at least one of fields is set and non-empty.
func AnyOf(fields ...string) Rule {
	return Rule{Kind: KindAnyOf, Fields: fields}
}

// Message returns the error raised when the rule fails for class.
func (r Rule) Message(class string) string {
	if field, ok := common.First(r.Fields); ok && r.Kind == KindRequired {
		return fmt.Sprintf("%s has no %s (property '%s')", class, strings.ReplaceAll(field, "_", " "), field)
	}

	return fmt.Sprintf("%s must define at least one of %s", class, strings.Join(r.Fields, ", "))
}

// emptyExpr returns the C++ predicate testing that field is unset.
func emptyExpr(field string, t schema.Type) string {
	get := fmt.Sprintf("o->%s()", field)

	switch {
	case t.Repeated:
		return get + ".empty()"
	case t.IsGroup():
		return get + ".data().empty()"
	case t.Name == schema.TypeKeyType:
		return get + ".id() == 0"
	case t.IsString():
		return get + ".empty()"
	case t.Kind == schema.TypeKindScalar && t.Name == "bool":
		return "!" + get
	case t.Kind == schema.TypeKindScalar:
		return get + " == 0"
	default:
		return fmt.Sprintf("!o->has_%s()", field)
	}
}

// Body renders the statements of check_validity for class. It returns nil
// when there are no rules. types maps schema field names to their types.
func Body(class string, rules []Rule, types map[string]schema.Type) []string {
	if len(rules) == 0 {
		return nil
	}

	lines := []string{
		fmt.Sprintf("const %s* o = static_cast<const %s*>(obj());", class, class),
		"",
		"if (o->obj().register_()) {",
	}

	for _, r := range rules {
		conds := make([]string, 0, len(r.Fields))
		for _, f := range r.Fields {
			conds = append(conds, emptyExpr(f, types[f]))
		}

		lines = append(lines,
			"  if ("+strings.Join(conds, " && ")+")",
			fmt.Sprintf("    throw msg_fmt(%q);", r.Message(class)),
		)
	}

	return append(lines, "}")
}

// Check evaluates rules against a dry-run state and returns the message of
// the first failing rule.
func Check(class string, rules []Rule, st hook.State) error {
	for _, r := range rules {
		failed := true
		for _, f := range r.Fields {
			if !isEmpty(st[f]) {
				failed = false

				break
			}
		}

		if failed {
			return errors.New(r.Message(class))
		}
	}

	return nil
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case bool:
		return !x
	case uint32:
		return x == 0
	case uint64:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case []string:
		return len(x) == 0
	case hook.GroupValue:
		return len(x.Data) == 0
	case hook.PairGroupValue:
		return len(x.Data) == 0
	case hook.KeyValue:
		return x.ID == 0
	case hook.DaysValue:
		return len(x) == 0
	case []hook.TagRef:
		return len(x) == 0
	default:
		return false
	}
}
