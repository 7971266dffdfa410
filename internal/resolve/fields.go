package resolve

import (
	"fmt"

	"confgen/internal/common"
	"confgen/internal/diagnostic"
	"confgen/internal/match"
	"confgen/internal/model"
	"confgen/internal/schema"
	"confgen/internal/source"
)

func (r *Resolver) fields(obj *model.ConfigObject, file *source.DeclarationFile, diags *diagnostic.Diagnostics) []*model.ConfigField {
	for _, m := range file.Malformed {
		diags.AddError(diagnostic.CodeMalformedDeclaration,
			fmt.Sprintf("cannot parse declaration %q: %s", m.Text, m.Reason),
			obj.ClassName, m.Name, m.Pos)
	}

	var (
		out  []*model.ConfigField
		seen = make(map[string]bool)
	)

	for _, d := range file.Declarations {
		name := common.SchemaName(d.Name)
		if name == model.HeaderField || seen[name] {
			diags.AddError(diagnostic.CodeDuplicateField,
				fmt.Sprintf("field %q is already defined", name),
				obj.ClassName, d.Name, d.Pos)

			continue
		}

		seen[name] = true

		f := &model.ConfigField{
			Name:         d.Name,
			DeclaredType: d.Type,
			Optional:     d.Optional,
			SchemaName:   name,
			Ordinal:      len(out),
			Pos:          d.Pos,
		}

		t, ok := r.dict.Lookup(d.Type)
		if !ok {
			t = schema.Invalid
			diags.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.DiagnosticError,
				Code:        diagnostic.CodeUnmappedType,
				Message:     fmt.Sprintf("type %q has no schema equivalent", d.Type),
				Entity:      obj.ClassName,
				Field:       d.Name,
				Pos:         d.Pos,
				Suggestions: match.Suggest(d.Type, r.dict.Names(), match.DefaultMinScore, match.DefaultMaxSuggestions),
			})
		}

		if f.Optional && t.Repeated {
			diags.AddWarning(diagnostic.CodeOptionalRepeated,
				fmt.Sprintf("%s is repeated and cannot be optional", t.Name),
				obj.ClassName, d.Name, d.Pos)

			f.Optional = false
		}

		f.SchemaType = t
		out = append(out, f)
	}

	return out
}
