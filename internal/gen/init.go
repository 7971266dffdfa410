package gen

import (
	"fmt"
	"text/template"

	"confgen/internal/model"
)

var initHeaderTemplate = template.Must(template.New("init_header").Parse(`{{.Header}}

#ifndef {{.Guard}}
#define {{.Guard}}

#include "{{.SchemaInclude}}"

namespace {{.Namespace}} {
{{range .Classes}}
void init_{{.}}({{.}}* obj);{{end}}

}  // namespace {{.Namespace}}

#endif  // {{.Guard}}
`))

var initSourceTemplate = template.Must(template.New("init_source").Parse(`{{.Header}}

#include "{{.HeaderInclude}}"

namespace {{.Namespace}} {
{{range .Functions}}
{{.}}{{end}}
}  // namespace {{.Namespace}}
`))

type initData struct {
	Header        string
	Guard         string
	Namespace     string
	SchemaInclude string
	HeaderInclude string
	Classes       []string
	Functions     []string
}

func (g *Generator) initData(doc *model.SchemaDocument) initData {
	data := initData{
		Header:        GeneratedHeader,
		Guard:         guard(g.config.InitBasename + "_HH"),
		Namespace:     g.config.Namespace,
		SchemaInclude: g.config.include(g.config.schemaHeader()),
		HeaderInclude: g.config.include(g.config.InitBasename + ".hh"),
	}

	for _, obj := range doc.Objects {
		data.Classes = append(data.Classes, obj.ClassName)
	}

	return data
}

func (g *Generator) renderInitHeader(doc *model.SchemaDocument) (string, error) {
	return execute(initHeaderTemplate, g.initData(doc))
}

func (g *Generator) renderInitSource(doc *model.SchemaDocument) (string, error) {
	data := g.initData(doc)

	for _, obj := range doc.Objects {
		data.Functions = append(data.Functions, initFunction(obj))
	}

	return execute(initSourceTemplate, data)
}

var pointAxes = []string{"x", "y", "z"}

// initFunction renders init_<Class>, setting every defaulted field.
func initFunction(obj *model.ConfigObject) string {
	sig := fmt.Sprintf("void init_%s(%s* obj)", obj.ClassName, obj.ClassName)

	fields := obj.Defaulted()
	if len(fields) == 0 {
		return sig + " {}\n"
	}

	var lines []string

	for _, f := range fields {
		if f.Default.IsPoint() {
			for i, c := range f.Default.Components {
				lines = append(lines, fmt.Sprintf("obj->mutable_%s()->set_%s(%s);", f.SchemaName, pointAxes[i], c))
			}

			continue
		}

		lines = append(lines, fmt.Sprintf("obj->set_%s(%s);", f.SchemaName, f.Default.Expr))
	}

	return sig + " {\n" + indent("  ", lines) + "}\n"
}
