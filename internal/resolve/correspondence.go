package resolve

import (
	"fmt"
	"strings"

	"confgen/internal/common"
	"confgen/internal/diagnostic"
	"confgen/internal/model"
	"confgen/internal/source"
)

// canonicalKey derives the field key from a setter name:
// "_set_check_interval" -> "check_interval".
func canonicalKey(setter string) string {
	return strings.TrimPrefix(strings.TrimPrefix(setter, common.PrivateMarker), "set_")
}

// correspondence keeps the legacy keys that differ from their canonical
// key. Aliases are scoped to their entity.
func correspondence(obj *model.ConfigObject, aliases []source.Alias, diags *diagnostic.Diagnostics) []model.Alias {
	var (
		out    []model.Alias
		target = make(map[string]string)
	)

	for _, a := range aliases {
		legacy := strings.TrimSpace(a.Legacy)
		canonical := strings.TrimSpace(canonicalKey(a.Setter))

		if legacy == canonical {
			continue
		}

		if prev, ok := target[legacy]; ok {
			if prev != canonical {
				diags.AddError(diagnostic.CodeAliasConflict,
					fmt.Sprintf("%q already maps to %q, cannot also map to %q", legacy, prev, canonical),
					obj.ClassName, legacy, a.Pos)
			}

			continue
		}

		if _, shadows := obj.Field(legacy); shadows {
			diags.AddWarning(diagnostic.CodeAliasShadowsField,
				fmt.Sprintf("%q is a field of %s and cannot alias %q", legacy, obj.ClassName, canonical),
				obj.ClassName, legacy, a.Pos)

			continue
		}

		target[legacy] = canonical
		out = append(out, model.Alias{Legacy: legacy, Canonical: canonical, Pos: a.Pos})
	}

	return out
}
