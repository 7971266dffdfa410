package gen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"

	"confgen/internal/errors"
	"confgen/internal/model"
)

// GeneratedHeader starts every generated file.
const GeneratedHeader = "// Code generated by confgen. DO NOT EDIT."

// GeneratedFile represents a generated artifact.
type GeneratedFile struct {
	// Filename is the name of the file relative to the output directory.
	Filename string
	// Content is the rendered source.
	Content []byte
}

// Generator renders schema documents.
type Generator struct {
	config Config
	log    *logrus.Entry
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config, log *logrus.Entry) *Generator {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}

	return &Generator{config: config, log: log}
}

// Generate renders every artifact of doc: the schema, the initializer
// header and source, then a header and source per entity. Every file is
// verified; the first failure aborts the generation.
func (g *Generator) Generate(doc *model.SchemaDocument) ([]GeneratedFile, error) {
	type render struct {
		name string
		fn   func() (string, error)
	}

	renders := []render{
		{g.config.SchemaFile, func() (string, error) { return g.renderSchema(doc) }},
		{g.config.InitBasename + ".hh", func() (string, error) { return g.renderInitHeader(doc) }},
		{g.config.InitBasename + ".cc", func() (string, error) { return g.renderInitSource(doc) }},
	}

	for _, obj := range doc.Objects {
		obj := obj
		renders = append(renders,
			render{helperFile(obj, ".hh"), func() (string, error) { return g.renderHelperHeader(obj) }},
			render{helperFile(obj, ".cc"), func() (string, error) { return g.renderHelperSource(obj) }},
		)
	}

	files := make([]GeneratedFile, 0, len(renders))

	for _, r := range renders {
		content, err := r.fn()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeInternal, fmt.Sprintf("rendering %s", r.name))
		}

		if err := Verify(r.name, []byte(content)); err != nil {
			if g.config.OutputDir != "" {
				_ = writeRejected(g.config.OutputDir, r.name, []byte(content))
			}

			return nil, err
		}

		g.log.WithField("file", r.name).WithField("bytes", len(content)).Debug("rendered")

		files = append(files, GeneratedFile{Filename: r.name, Content: []byte(content)})
	}

	return files, nil
}

func helperFile(obj *model.ConfigObject, ext string) string {
	return obj.EntityKey + "_helper" + ext
}

func execute(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", t.Name(), err)
	}

	return buf.String(), nil
}

// indent prefixes every non-empty line of lines with prefix.
func indent(prefix string, lines []string) string {
	var b strings.Builder

	for _, l := range lines {
		if l != "" {
			b.WriteString(prefix)
			b.WriteString(l)
		}

		b.WriteByte('\n')
	}

	return b.String()
}
