package resolve

import (
	"github.com/sirupsen/logrus"

	"confgen/internal/diagnostic"
	"confgen/internal/entity"
	"confgen/internal/model"
	"confgen/internal/schema"
	"confgen/internal/source"
)

// Input is one entity's parsed sources.
type Input struct {
	Class        string
	Key          string
	Declarations *source.DeclarationFile
	Definitions  *source.DefinitionFile
}

// Resolver builds model objects.
type Resolver struct {
	dict schema.Dictionary
	log  *logrus.Entry
}

// New returns a resolver over dict. A nil log discards output.
func New(dict schema.Dictionary, log *logrus.Entry) *Resolver {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = logrus.NewEntry(l)
	}

	return &Resolver{dict: dict, log: log}
}

// Object resolves one entity, reporting problems to diags.
func (r *Resolver) Object(in Input, diags *diagnostic.Diagnostics) *model.ConfigObject {
	obj := &model.ConfigObject{
		ClassName: in.Class,
		EntityKey: in.Key,
		Kind:      entity.Lookup(in.Key),
	}

	if in.Declarations != nil {
		obj.Declaration = in.Declarations.Path
		obj.Fields = r.fields(obj, in.Declarations, diags)
	}

	if in.Definitions != nil {
		obj.Definition = in.Definitions.Path
		r.defaults(obj, in.Definitions, diags)
		obj.Correspondence = correspondence(obj, in.Definitions.Aliases, diags)
	}

	handler := entity.HandlerFor(obj.Kind)
	obj.Hooks = hooks(obj, handler, diags)
	obj.Validity = validityRules(obj, handler, diags)

	r.log.WithFields(logrus.Fields{
		"entity":  obj.ClassName,
		"kind":    obj.Kind.String(),
		"fields":  len(obj.Fields),
		"aliases": len(obj.Correspondence),
		"hooks":   obj.Hooks.Len(),
	}).Debug("resolved entity")

	return obj
}
