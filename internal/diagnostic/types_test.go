package diagnostic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_AddBySeverity(t *testing.T) {
	var d Diagnostics

	d.AddError(CodeUnmappedType, "type not mapped", "Host", "_x", Position{File: "host.hh", Line: 3, Column: 2})
	d.AddWarning(CodeUnknownMember, "no such member", "Host", "_y", Position{})
	d.AddInfo("note", "fyi", "", "", Position{})

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())
	require.Error(t, d.Error())
	assert.Contains(t, d.Error().Error(), "host.hh:3:2 [Host] _x: [unmapped_type] type not mapped")
}

func TestDiagnostics_NoErrors(t *testing.T) {
	var d Diagnostics

	d.AddWarning(CodeDuplicateDefault, "dup", "Host", "", Position{})

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())
}

func TestDiagnostics_AllIsOrdered(t *testing.T) {
	var d Diagnostics

	d.AddError("b", "second", "", "", Position{File: "a.hh", Line: 9})
	d.AddError("a", "first", "", "", Position{File: "a.hh", Line: 2})
	d.AddWarning("c", "third", "", "", Position{File: "a.hh", Line: 1})

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Code)
	assert.Equal(t, "b", all[1].Code)
	assert.Equal(t, "c", all[2].Code)
}

func TestDiagnostics_ByCodeAndMerge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeAliasConflict, "x", "", "", Position{})
	b.AddError(CodeAliasConflict, "y", "", "", Position{})
	b.AddWarning(CodeAliasShadowsField, "z", "", "", Position{})

	a.Merge(b)

	assert.Len(t, a.ByCode(CodeAliasConflict), 2)
	assert.Len(t, a.ByCode(CodeAliasShadowsField), 1)
}

func TestDiagnostic_StringWithSuggestions(t *testing.T) {
	diag := Diagnostic{
		Code:        CodeUnresolvedDefault,
		Message:     "default_foo is not defined",
		Entity:      "Host",
		Suggestions: []string{"default_food"},
	}

	assert.Equal(t, "[Host]: [unresolved_default] default_foo is not defined (did you mean default_food?)", diag.String())
}

func TestReport(t *testing.T) {
	var d Diagnostics

	d.AddError(CodeUnmappedType, "bad type", "Host", "_x", Position{File: "host.hh", Line: 1})

	var buf bytes.Buffer
	require.NoError(t, Report(&buf, &d))

	out := buf.String()
	assert.Contains(t, out, "bad type")
	assert.Contains(t, out, "1 error(s), 0 warning(s), 0 info")
}

func TestReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, &Diagnostics{}))
	assert.Empty(t, buf.String())
}
