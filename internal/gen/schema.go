package gen

import (
	"fmt"
	"strings"
	"text/template"

	"confgen/internal/model"
	"confgen/internal/schema"
)

var schemaTemplate = template.Must(template.New("schema").Parse(`{{.Header}}

syntax = "proto3";

package {{.Package}};
{{range .Blocks}}
{{.}}{{end}}`))

type schemaData struct {
	Header  string
	Package string
	Blocks  []string
}

func (g *Generator) renderSchema(doc *model.SchemaDocument) (string, error) {
	data := schemaData{
		Header:  GeneratedHeader,
		Package: g.config.ProtoPackage,
	}

	for _, m := range doc.Prelude {
		data.Blocks = append(data.Blocks, renderMessageDef(m, ""))
	}

	for _, f := range doc.Families {
		data.Blocks = append(data.Blocks, renderFamily(f))
	}

	for _, obj := range doc.Objects {
		data.Blocks = append(data.Blocks, renderObjectMessage(obj))
	}

	return execute(schemaTemplate, data)
}

func renderEnum(name string, values []schema.EnumValue, pad string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%senum %s {\n", pad, name)

	for _, v := range values {
		fmt.Fprintf(&b, "%s  %s = %d;\n", pad, v.Name, v.Number)
	}

	fmt.Fprintf(&b, "%s}\n", pad)

	return b.String()
}

// renderFamily writes a top-level enum. Its values share the package scope
// with every other family, so they carry the family prefix.
func renderFamily(f *schema.Family) string {
	values := make([]schema.EnumValue, len(f.Values))
	for i, v := range f.Values {
		values[i] = schema.EnumValue{Name: f.Constant(v.Name), Number: v.Number}
	}

	return renderEnum(f.Name, values, "")
}

func renderMessageDef(m schema.MessageDef, pad string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%smessage %s {\n", pad, m.Name)

	for _, e := range m.Enums {
		b.WriteString(renderEnum(e.Name, e.Values, pad+"  "))
		b.WriteByte('\n')
	}

	for _, n := range m.Nested {
		b.WriteString(renderMessageDef(n, pad+"  "))
		b.WriteByte('\n')
	}

	for _, f := range m.Fields {
		label := ""
		if f.Repeated {
			label = "repeated "
		}

		fmt.Fprintf(&b, "%s  %s%s %s = %d;\n", pad, label, f.Type, f.Name, f.Number)
	}

	fmt.Fprintf(&b, "%s}\n", pad)

	return b.String()
}

func renderObjectMessage(obj *model.ConfigObject) string {
	var b strings.Builder

	fmt.Fprintf(&b, "message %s {\n", obj.ClassName)
	fmt.Fprintf(&b, "  %s %s = 1;\n", schema.HeaderMessage, model.HeaderField)

	for _, f := range obj.Fields {
		b.WriteString("  " + fieldLine(f) + "\n")
	}

	b.WriteString("}\n")

	return b.String()
}

// fieldLine renders "[optional |repeated ]type name = n;" and its comment.
func fieldLine(f *model.ConfigField) string {
	label := ""

	switch {
	case f.SchemaType.Repeated:
		label = "repeated "
	case f.Optional:
		label = "optional "
	}

	line := fmt.Sprintf("%s%s %s = %d;", label, f.SchemaType.Name, f.SchemaName, f.Number())

	var notes []string
	if f.Optional {
		notes = append(notes, "optional")
	}

	if f.Default != nil {
		notes = append(notes, "default: "+f.Default.Expr)
	}

	if !f.SchemaType.IsValid() {
		notes = append(notes, "unmapped: "+f.DeclaredType)
	}

	if len(notes) == 0 {
		return line
	}

	return line + "  // " + strings.Join(notes, ", ")
}
