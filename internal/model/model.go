// Package model is the immutable intermediate representation shared by the
// resolver and the emitters.
package model

import (
	"confgen/internal/diagnostic"
	"confgen/internal/entity"
	"confgen/internal/hook"
	"confgen/internal/schema"
	"confgen/internal/validity"
)

// HeaderField is the name of field 1 of every entity message.
const HeaderField = "obj"

// FirstFieldNumber is the wire number of the first declared member.
const FirstFieldNumber = 2

// Default is a resolved default value.
type Default struct {
	// Expr is the rewritten initializer expression.
	Expr string
	// Components holds x, y[, z] for point defaults.
	Components []string
	Pos        diagnostic.Position
}

// IsPoint reports whether the default initializes a point message.
func (d *Default) IsPoint() bool {
	return d != nil && len(d.Components) > 0
}

// ConfigField is one declared member.
type ConfigField struct {
	Name         string
	DeclaredType string
	Optional     bool
	SchemaType   schema.Type
	SchemaName   string
	Default      *Default
	Ordinal      int
	Pos          diagnostic.Position
}

// Number returns the wire field number.
func (f *ConfigField) Number() int {
	return f.Ordinal + FirstFieldNumber
}

// Alias maps a legacy key to a canonical field key.
type Alias struct {
	Legacy    string
	Canonical string
	Pos       diagnostic.Position
}

// ConfigObject is one entity.
type ConfigObject struct {
	ClassName      string
	EntityKey      string
	Kind           entity.Kind
	Declaration    string
	Definition     string
	Fields         []*ConfigField
	Correspondence []Alias
	Hooks          *hook.Chain
	Validity       []validity.Rule
}

// Field returns the field with the given schema name.
func (o *ConfigObject) Field(schemaName string) (*ConfigField, bool) {
	for _, f := range o.Fields {
		if f.SchemaName == schemaName {
			return f, true
		}
	}

	return nil, false
}

// FieldTypes maps schema names to schema types.
func (o *ConfigObject) FieldTypes() map[string]schema.Type {
	out := make(map[string]schema.Type, len(o.Fields))
	for _, f := range o.Fields {
		out[f.SchemaName] = f.SchemaType
	}

	return out
}

// Defaulted returns the fields carrying a default, in declaration order.
func (o *ConfigObject) Defaulted() []*ConfigField {
	var out []*ConfigField
	for _, f := range o.Fields {
		if f.Default != nil {
			out = append(out, f)
		}
	}

	return out
}

// Canonical maps a key through the correspondence table.
func (o *ConfigObject) Canonical(key string) string {
	for _, a := range o.Correspondence {
		if a.Legacy == key {
			return a.Canonical
		}
	}

	return key
}

// SchemaDocument is the whole IR: the prelude plus every entity in input
// order.
type SchemaDocument struct {
	Prelude  []schema.MessageDef
	Families []*schema.Family
	Objects  []*ConfigObject
}

// NewSchemaDocument returns a document carrying the fixed prelude.
func NewSchemaDocument(objects []*ConfigObject) *SchemaDocument {
	return &SchemaDocument{
		Prelude:  schema.Prelude(),
		Families: schema.Families(),
		Objects:  objects,
	}
}

// Object returns the entity with the given key.
func (d *SchemaDocument) Object(key string) (*ConfigObject, bool) {
	for _, o := range d.Objects {
		if o.EntityKey == key {
			return o, true
		}
	}

	return nil, false
}
