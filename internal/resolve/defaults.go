package resolve

import (
	"fmt"
	"regexp"
	"strings"

	"confgen/internal/diagnostic"
	"confgen/internal/match"
	"confgen/internal/model"
	"confgen/internal/schema"
	"confgen/internal/source"
)

var enumConstant = regexp.MustCompile(
	`\b(?:(?:com::centreon::)?engine::)?(?:configuration::)?(` +
		strings.Join(schema.LegacyQualifiers(), "|") +
		`)::([A-Za-z_][A-Za-z0-9_]*)\b`)

func (r *Resolver) defaults(obj *model.ConfigObject, file *source.DefinitionFile, diags *diagnostic.Diagnostics) {
	factories := make(map[string]source.Factory, len(file.Factories))
	symbols := make([]string, 0, len(file.Factories))

	for _, f := range file.Factories {
		if prev, dup := factories[f.Symbol]; dup {
			diags.AddWarning(diagnostic.CodeDuplicateDefault,
				fmt.Sprintf("%s is defined again, keeping the definition at %s", f.Symbol, prev.Pos),
				obj.ClassName, f.Symbol, f.Pos)

			continue
		}

		factories[f.Symbol] = f
		symbols = append(symbols, f.Symbol)
	}

	bound := make(map[string]string)

	for _, init := range file.Inits {
		field, ok := fieldByMember(obj, init.Member)
		if !ok {
			diags.AddWarning(diagnostic.CodeUnknownMember,
				fmt.Sprintf("%s initializes a member that is not declared", init.Member),
				obj.ClassName, init.Member, init.Pos)

			continue
		}

		if prev, done := bound[init.Member]; done {
			if prev != init.Symbol {
				diags.AddWarning(diagnostic.CodeDuplicateDefault,
					fmt.Sprintf("%s is initialized with %s and %s, keeping %s", init.Member, prev, init.Symbol, prev),
					obj.ClassName, init.Member, init.Pos)
			}

			continue
		}

		f, ok := factories[init.Symbol]
		if !ok {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnresolvedDefault,
				Message:     fmt.Sprintf("default %s is not defined", init.Symbol),
				Entity:      obj.ClassName,
				Field:       init.Member,
				Pos:         init.Pos,
				Suggestions: match.Suggest(init.Symbol, symbols, match.DefaultMinScore, match.DefaultMaxSuggestions),
			})

			continue
		}

		bound[init.Member] = init.Symbol
		field.Default = convertDefault(obj, field, f, diags)
	}
}

func fieldByMember(obj *model.ConfigObject, member string) (*model.ConfigField, bool) {
	for _, f := range obj.Fields {
		if f.Name == member {
			return f, true
		}
	}

	return nil, false
}

func convertDefault(obj *model.ConfigObject, field *model.ConfigField, f source.Factory, diags *diagnostic.Diagnostics) *model.Default {
	t := field.SchemaType

	switch {
	case !t.IsValid():
		return nil
	case t.Name == schema.TypePoint2d || t.Name == schema.TypePoint3d:
		want := 2
		if t.Name == schema.TypePoint3d {
			want = 3
		}

		parts := pointComponents(f.Expr)
		if len(parts) != want {
			diags.AddWarning(diagnostic.CodeUnsupportedDefault,
				fmt.Sprintf("%s default %q is not a %d-component point", t.Name, f.Expr, want),
				obj.ClassName, field.Name, f.Pos)

			return nil
		}

		return &model.Default{Expr: f.Expr, Components: parts, Pos: f.Pos}
	case !t.IsScalar():
		diags.AddWarning(diagnostic.CodeUnsupportedDefault,
			fmt.Sprintf("composite default %q for %s is not supported", f.Expr, t.Name),
			obj.ClassName, field.Name, f.Pos)

		return nil
	case strings.TrimSpace(f.Expr) == "":
		diags.AddWarning(diagnostic.CodeUnsupportedDefault,
			fmt.Sprintf("%s has an empty initializer", f.Symbol),
			obj.ClassName, field.Name, f.Pos)

		return nil
	}

	return &model.Default{Expr: rewriteEnums(obj, field, f, diags), Pos: f.Pos}
}

// rewriteEnums spells qualified legacy constants the way the schema does:
// engine::configuration::host::down -> action_hst_down.
func rewriteEnums(obj *model.ConfigObject, field *model.ConfigField, f source.Factory, diags *diagnostic.Diagnostics) string {
	return enumConstant.ReplaceAllStringFunc(f.Expr, func(m string) string {
		sub := enumConstant.FindStringSubmatch(m)

		family, ok := schema.FamilyByLegacy(sub[1])
		if !ok {
			return m
		}

		if !family.Has(sub[2]) {
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticWarning,
				Code:        diagnostic.CodeUnknownEnumConstant,
				Message:     fmt.Sprintf("%s is not a value of %s", m, family.Name),
				Entity:      obj.ClassName,
				Field:       field.Name,
				Pos:         f.Pos,
				Suggestions: match.Suggest(sub[2], family.ValueNames(), match.DefaultMinScore, match.DefaultMaxSuggestions),
			})

			return m
		}

		return family.Constant(sub[2])
	})
}

// pointComponents accepts "point_2d(x, y)", "{x, y}" and "x, y".
func pointComponents(expr string) []string {
	expr = strings.TrimSpace(expr)

	if open := strings.IndexAny(expr, "({"); open >= 0 && (strings.HasSuffix(expr, ")") || strings.HasSuffix(expr, "}")) {
		expr = expr[open+1 : len(expr)-1]
	}

	var out []string
	for _, p := range strings.Split(expr, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil
		}

		out = append(out, p)
	}

	return out
}
