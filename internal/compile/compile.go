// Package compile runs the confgen pipeline: it reads every entity source,
// resolves the model, renders the artifacts and writes them.
package compile

import (
	"github.com/sirupsen/logrus"

	"confgen/internal/common"
	"confgen/internal/diagnostic"
	"confgen/internal/errors"
	"confgen/internal/gen"
	"confgen/internal/model"
	"confgen/internal/resolve"
	"confgen/internal/schema"
	"confgen/internal/source"
)

// Pair names the sources of one entity. Definition may be empty; Key and
// Class default to the ones derived from the declaration path.
type Pair struct {
	Class       string
	Key         string
	Declaration string
	Definition  string
}

// Inputs returns the files read for p.
func (p Pair) Inputs() []string {
	if p.Definition == "" {
		return []string{p.Declaration}
	}

	return []string{p.Declaration, p.Definition}
}

// Options configures a pipeline run.
type Options struct {
	Generator gen.Config
	OutputDir string
	// Strict fails the run when error diagnostics were reported. Outputs are
	// written either way.
	Strict bool
	Log    *logrus.Entry
}

// Result is the outcome of a run.
type Result struct {
	Document    *model.SchemaDocument
	Diagnostics diagnostic.Diagnostics
	Files       []gen.GeneratedFile
}

// Compile reads and resolves every pair, in order. Read and tokenizer
// failures abort; everything else is reported as a diagnostic.
func Compile(pairs []Pair, log *logrus.Entry) (*Result, error) {
	log = orDiscard(log)

	if len(pairs) == 0 {
		return nil, errors.InvalidInput("no entities to compile")
	}

	inputs, err := read(pairs)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	r := resolve.New(schema.DefaultDictionary(), log)
	objects := make([]*model.ConfigObject, 0, len(inputs))

	for _, in := range inputs {
		objects = append(objects, r.Object(in, &res.Diagnostics))
	}

	res.Document = model.NewSchemaDocument(objects)

	return res, nil
}

// Run compiles pairs, renders the artifacts and writes them to the output
// directory. Nothing is written when rendering or verification fails.
func Run(pairs []Pair, opts Options) (*Result, error) {
	log := orDiscard(opts.Log)

	res, err := Compile(pairs, log)
	if err != nil {
		return nil, err
	}

	config := opts.Generator
	if config.OutputDir == "" {
		config.OutputDir = opts.OutputDir
	}

	files, err := gen.NewGenerator(config, log).Generate(res.Document)
	if err != nil {
		return res, err
	}

	if err := gen.WriteFiles(files, opts.OutputDir); err != nil {
		return res, err
	}

	res.Files = files

	log.WithFields(logrus.Fields{
		"entities": len(res.Document.Objects),
		"files":    len(files),
		"errors":   len(res.Diagnostics.Errors),
		"warnings": len(res.Diagnostics.Warnings),
		"output":   opts.OutputDir,
	}).Info("generation complete")

	if opts.Strict && res.Diagnostics.HasErrors() {
		return res, errors.DiagnosticsFailed(len(res.Diagnostics.Errors))
	}

	return res, nil
}

func read(pairs []Pair) ([]resolve.Input, error) {
	inputs := make([]resolve.Input, 0, len(pairs))

	for _, p := range pairs {
		in := resolve.Input{Class: p.Class, Key: p.Key}
		if in.Key == "" {
			in.Key = common.EntityKey(p.Declaration)
		}

		if in.Class == "" {
			in.Class = common.ClassName(in.Key)
		}

		decls, err := source.ReadDeclarations(p.Declaration)
		if err != nil {
			return nil, err
		}

		in.Declarations = decls

		if p.Definition != "" {
			defs, err := source.ReadDefinitions(p.Definition)
			if err != nil {
				return nil, err
			}

			in.Definitions = defs
		}

		inputs = append(inputs, in)
	}

	return inputs, nil
}

func orDiscard(log *logrus.Entry) *logrus.Entry {
	if log != nil {
		return log
	}

	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return logrus.NewEntry(l)
}
