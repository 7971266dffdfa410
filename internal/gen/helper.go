package gen

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"confgen/internal/hook"
	"confgen/internal/model"
	"confgen/internal/validity"
)

var helperHeaderTemplate = template.Must(template.New("helper_header").Parse(`{{.Header}}

#ifndef {{.Guard}}
#define {{.Guard}}

#include "{{.MessageHelperInclude}}"
#include "{{.SchemaInclude}}"

namespace {{.Namespace}} {

class {{.Class}}_helper : public message_helper {
 public:
  {{.Class}}_helper({{.Class}}* obj);
  ~{{.Class}}_helper() noexcept = default;
  void check_validity() const override;

  bool hook(std::string_view key, std::string_view value) override;
};

}  // namespace {{.Namespace}}

#endif  // {{.Guard}}
`))

var helperSourceTemplate = template.Must(template.New("helper_source").Parse(`{{.Header}}

#include "{{.HelperInclude}}"{{if .SystemIncludes}}
{{range .SystemIncludes}}
#include <{{.}}>{{end}}{{end}}

#include "com/centreon/exceptions/msg_fmt.hh"
#include "{{.InitInclude}}"

using com::centreon::exceptions::msg_fmt;

namespace {{.Namespace}} {

/**
 * @brief Constructor from a {{.Class}} object.
 *
 * @param obj The {{.Class}} object on which this helper works. The helper is
 * not the owner of this object.
 */
{{.Constructor}}
/**
 * @brief For several keys, the parser of {{.Class}} objects has a particular
 *        behavior. These behaviors are handled here.
 * @param key The key to parse.
 * @param value The value corresponding to the key
 */
{{.Hook}}
/**
 * @brief Check the validity of the {{.Class}} object.
 */
{{.CheckValidity}}
}  // namespace {{.Namespace}}
`))

type helperData struct {
	Header               string
	Guard                string
	Namespace            string
	Class                string
	MessageHelperInclude string
	SchemaInclude        string
	HelperInclude        string
	InitInclude          string
	SystemIncludes       []string
	Constructor          string
	Hook                 string
	CheckValidity        string
}

func (g *Generator) helperData(obj *model.ConfigObject) helperData {
	return helperData{
		Header:               GeneratedHeader,
		Guard:                guard(obj.EntityKey + "_helper_HH"),
		Namespace:            g.config.Namespace,
		Class:                obj.ClassName,
		MessageHelperInclude: g.config.include("message_helper.hh"),
		SchemaInclude:        g.config.include(g.config.schemaHeader()),
		HelperInclude:        g.config.include(helperFile(obj, ".hh")),
		InitInclude:          g.config.include(g.config.InitBasename + ".hh"),
	}
}

func (g *Generator) renderHelperHeader(obj *model.ConfigObject) (string, error) {
	return execute(helperHeaderTemplate, g.helperData(obj))
}

func (g *Generator) renderHelperSource(obj *model.ConfigObject) (string, error) {
	data := g.helperData(obj)
	data.SystemIncludes = systemIncludes(obj.Hooks)
	data.Constructor = constructor(obj)
	data.Hook = hookFunction(obj)
	data.CheckValidity = checkValidityFunction(obj)

	return execute(helperSourceTemplate, data)
}

func systemIncludes(chain *hook.Chain) []string {
	needsSplit, needsAtoi := false, false

	for _, r := range chain.Rules() {
		switch r.Kind() {
		case hook.KindBitmask:
			needsSplit = true
		case hook.KindKeyEnum:
			needsAtoi = true
		case hook.KindTagList:
			needsSplit, needsAtoi = true, true
		}
	}

	var out []string
	if needsSplit {
		out = append(out, "absl/strings/ascii.h")
	}

	if needsAtoi {
		out = append(out, "absl/strings/numbers.h")
	}

	if needsSplit {
		out = append(out, "absl/strings/str_split.h")
	}

	return out
}

func constructor(obj *model.ConfigObject) string {
	c := obj.ClassName

	var table string
	if len(obj.Correspondence) == 0 {
		table = "{},\n"
	} else {
		var b strings.Builder

		b.WriteString("{\n")

		for _, a := range obj.Correspondence {
			fmt.Fprintf(&b, "                         {%s, %s},\n", strconv.Quote(a.Legacy), strconv.Quote(a.Canonical))
		}

		b.WriteString("                     },\n")
		table = b.String()
	}

	return fmt.Sprintf("%s_helper::%s_helper(%s* obj)\n"+
		"    : message_helper(object_type::%s,\n"+
		"                     obj,\n"+
		"                     %s"+
		"                     %s::descriptor()->field_count()) {\n"+
		"  init_%s(obj);\n"+
		"}\n", c, c, c, obj.EntityKey, table, c, c)
}

func hookFunction(obj *model.ConfigObject) string {
	c := obj.ClassName
	sig := fmt.Sprintf("bool %s_helper::hook(std::string_view key, std::string_view value) {\n", c)

	branches := obj.Hooks.Branches()
	if len(branches) == 0 {
		return sig + "  (void)key;\n  (void)value;\n  return false;\n}\n"
	}

	var b strings.Builder

	b.WriteString(sig)
	fmt.Fprintf(&b, "  %s* obj = static_cast<%s*>(mut_obj());\n", c, c)
	b.WriteString("  key = validate_key(key);\n\n")

	for i, br := range branches {
		conds := make([]string, 0, len(br.Keys))
		for _, k := range br.Keys {
			conds = append(conds, "key == "+strconv.Quote(k))
		}

		if i == 0 {
			b.WriteString("  if (")
		} else {
			b.WriteString("  } else if (")
		}

		b.WriteString(strings.Join(conds, " || ") + ") {\n")
		b.WriteString(indent("    ", br.Body))
	}

	b.WriteString("  }\n  return false;\n}\n")

	return b.String()
}

func checkValidityFunction(obj *model.ConfigObject) string {
	sig := fmt.Sprintf("void %s_helper::check_validity() const", obj.ClassName)

	body := validity.Body(obj.ClassName, obj.Validity, obj.FieldTypes())
	if len(body) == 0 {
		return sig + " {}\n"
	}

	return sig + " {\n" + indent("  ", body) + "}\n"
}
