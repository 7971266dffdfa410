package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"confgen/internal/common"
)

// Diagnostics holds all diagnostic information collected during a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Position is a location in a legacy source file.
type Position struct {
	File   string
	Line   int
	Column int
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String returns "file:line:col", omitting the parts that are unknown.
func (p Position) String() string {
	if !p.IsValid() {
		return p.File
	}

	if p.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}

	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Entity is the class name of the entity this relates to (if any).
	Entity string
	// Field is the member or key this relates to (if any).
	Field string
	// Pos is where the problem was found in the legacy sources.
	Pos Position
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// Diagnostic codes emitted by the pipeline.
const (
	CodeUnmappedType         = "unmapped_type"
	CodeMalformedDeclaration = "malformed_declaration"
	CodeUnresolvedDefault    = "unresolved_default"
	CodeUnknownMember        = "unknown_member"
	CodeDuplicateDefault     = "duplicate_default"
	CodeUnknownEnumConstant  = "unknown_enum_constant"
	CodeUnsupportedDefault   = "unsupported_default"
	CodeOptionalRepeated     = "optional_repeated"
	CodeDuplicateField       = "duplicate_field"
	CodeAliasConflict        = "alias_conflict"
	CodeAliasShadowsField    = "alias_shadows_field"
	CodeDuplicateHookKey     = "duplicate_hook_key"
	CodeMissingEnumTable     = "missing_enum_table"
	CodeValidityUnknownField = "validity_unknown_field"
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends a diagnostic to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case DiagnosticError:
		d.Errors = append(d.Errors, diag)
	case DiagnosticWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, entity, field string, pos Position) {
	d.Add(Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Field:    field,
		Pos:      pos,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, entity, field string, pos Position) {
	d.Add(Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Field:    field,
		Pos:      pos,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, entity, field string, pos Position) {
	d.Add(Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Entity:   entity,
		Field:    field,
		Pos:      pos,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Len returns the total number of diagnostics of any severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ByCode returns every diagnostic carrying the given code, in severity order.
func (d *Diagnostics) ByCode(code string) []Diagnostic {
	var res []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			res = append(res, diag)
		}
	}

	return res
}

// All returns every diagnostic, errors first, each group ordered by source
// position so that reports are stable across runs.
func (d *Diagnostics) All() []Diagnostic {
	res := make([]Diagnostic, 0, d.Len())

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		sorted := append([]Diagnostic(nil), group...)
		sort.SliceStable(sorted, func(i, j int) bool {
			a, b := sorted[i].Pos, sorted[j].Pos
			if a.File != b.File {
				return a.File < b.File
			}

			if a.Line != b.Line {
				return a.Line < b.Line
			}

			return a.Column < b.Column
		})
		res = append(res, sorted...)
	}

	return res
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos.File != "" {
		prefix = append(prefix, d.Pos.String())
	}

	if d.Entity != "" {
		prefix = append(prefix, "["+d.Entity+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
