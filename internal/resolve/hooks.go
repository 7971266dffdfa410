package resolve

import (
	"fmt"

	"confgen/internal/diagnostic"
	"confgen/internal/entity"
	"confgen/internal/hook"
	"confgen/internal/model"
	"confgen/internal/schema"
	"confgen/internal/validity"
)

// hooks builds the chain in declaration order: pass-through fields, bitmask
// registrations, then type shapes. Tag-list keys come last.
func hooks(obj *model.ConfigObject, h *entity.Handler, diags *diagnostic.Diagnostics) *hook.Chain {
	chain := hook.NewChain()

	add := func(r hook.Rule, pos diagnostic.Position) {
		for _, k := range chain.Add(r) {
			diags.AddWarning(diagnostic.CodeDuplicateHookKey,
				fmt.Sprintf("key %q is already handled, ignoring the %s rule of %s", k, r.Kind(), r.Field()),
				obj.ClassName, k, pos)
		}
	}

	for _, f := range obj.Fields {
		if r := fieldRule(obj, f, h, diags); r != nil {
			add(r, f.Pos)
		}
	}

	for _, r := range h.TagListRules() {
		if _, ok := obj.Field(r.Field()); ok {
			add(r, diagnostic.Position{File: obj.Declaration})
		}
	}

	return chain
}

func fieldRule(obj *model.ConfigObject, f *model.ConfigField, h *entity.Handler, diags *diagnostic.Diagnostics) hook.Rule {
	if h.IsPassThrough(f.SchemaName) {
		return nil
	}

	t := f.SchemaType

	if d, ok := h.Bitmasks[f.SchemaName]; ok && t.IsScalar() {
		return hook.NewBitmask(f.SchemaName, d)
	}

	if t.Repeated {
		return nil
	}

	switch t.Name {
	case schema.TypeStringList:
		return hook.NewGroup(f.SchemaName, false)
	case schema.TypeStringSet:
		return hook.NewGroup(f.SchemaName, true)
	case schema.TypePairStringSet:
		return hook.NewPairGroup(f.SchemaName)
	case schema.TypeDaysArray:
		return hook.NewTimeRange(f.SchemaName)
	case schema.TypeKeyType:
		ke := h.KeyEnum
		if ke == nil {
			diags.AddWarning(diagnostic.CodeMissingEnumTable,
				fmt.Sprintf("%s has no enum table for its key type", obj.ClassName),
				obj.ClassName, f.Name, f.Pos)

			return nil
		}

		family, ok := schema.FamilyByName(ke.Family)
		if !ok {
			diags.AddWarning(diagnostic.CodeMissingEnumTable,
				fmt.Sprintf("enum family %s does not exist", ke.Family),
				obj.ClassName, f.Name, f.Pos)

			return nil
		}

		return hook.NewKeyEnum(f.SchemaName, ke.IDKeys, ke.TypeKeys, family, ke.Table)
	}

	return nil
}

func validityRules(obj *model.ConfigObject, h *entity.Handler, diags *diagnostic.Diagnostics) []validity.Rule {
	var out []validity.Rule

	for _, r := range h.Validity {
		ok := true

		for _, name := range r.Fields {
			if _, found := obj.Field(name); !found {
				diags.AddError(diagnostic.CodeValidityUnknownField,
					fmt.Sprintf("%s rule references unknown field %q", r.Kind, name),
					obj.ClassName, name, diagnostic.Position{File: obj.Declaration})

				ok = false
			}
		}

		if ok {
			out = append(out, r)
		}
	}

	return out
}
