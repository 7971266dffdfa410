package hook

import (
	"fmt"
	"strconv"
	"strings"

	"confgen/internal/schema"
)

// Reserved bitmask tokens.
const (
	TokenNone = "none"
	TokenAll  = "all"
)

// FlagToken is one accepted spelling of a bitmask flag.
type FlagToken struct {
	Short    string
	Long     string
	Constant string // schema constant, e.g. "action_hst_up"
	Flag     int
}

func (t FlagToken) matches(s string) bool {
	return s == t.Long || (t.Short != "" && s == t.Short)
}

// Domain is the token table of a bitmask option field.
type Domain struct {
	Name   string
	Family *schema.Family
	Tokens []FlagToken
}

// All returns the OR of every flag of the table.
func (d *Domain) All() int {
	all := 0
	for _, t := range d.Tokens {
		all |= t.Flag
	}

	return all
}

// Parse computes the bitmask of value. Unknown tokens reject the whole value.
func (d *Domain) Parse(value string) (int, bool) {
	mask := 0

	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)

		switch {
		case tok == "":
			continue
		case tok == TokenNone || tok == "n":
			mask = 0
		case tok == TokenAll || tok == "a":
			mask = d.All()
		default:
			t, ok := d.lookup(tok)
			if !ok {
				return 0, false
			}

			mask |= t.Flag
		}
	}

	return mask, true
}

func (d *Domain) lookup(s string) (FlagToken, bool) {
	for _, t := range d.Tokens {
		if t.matches(s) {
			return t, true
		}
	}

	return FlagToken{}, false
}

func (d *Domain) none() string {
	if d.Family == nil {
		return "0"
	}

	return d.Family.Constant(TokenNone)
}

func (d *Domain) constant(t FlagToken) string {
	if t.Constant != "" {
		return t.Constant
	}

	return strconv.Itoa(t.Flag)
}

func (d *Domain) allExpr() string {
	parts := make([]string, 0, len(d.Tokens))
	seen := make(map[string]bool)

	for _, t := range d.Tokens {
		c := d.constant(t)
		if !seen[c] {
			seen[c] = true
			parts = append(parts, c)
		}
	}

	if len(parts) == 0 {
		return d.none()
	}

	return strings.Join(parts, " | ")
}

// NewDomain builds a domain over family. Each token is "short/long" or
// "short/long=value" where value names the family constant; without it the
// constant is the long token itself.
func NewDomain(name string, family *schema.Family, tokens ...string) *Domain {
	d := &Domain{Name: name, Family: family}

	for _, tok := range tokens {
		spelling, value, _ := strings.Cut(tok, "=")
		short, long, _ := strings.Cut(spelling, "/")

		if value == "" {
			value = long
		}

		n, _ := family.Number(value)
		d.Tokens = append(d.Tokens, FlagToken{
			Short:    short,
			Long:     long,
			Constant: family.Constant(value),
			Flag:     n,
		})
	}

	return d
}

func mustFamily(name string) *schema.Family {
	f, ok := schema.FamilyByName(name)
	if !ok {
		panic("hook: unknown enum family " + name)
	}

	return f
}

// Bitmask token tables.
var (
	HostNotification = NewDomain("host notification", mustFamily(schema.FamilyActionHostOn),
		"d/down", "u/unreachable", "r/recovery=up", "f/flapping", "s/downtime")
	HostState = NewDomain("host state", mustFamily(schema.FamilyActionHostOn),
		"o/up", "d/down", "u/unreachable")
	ServiceNotification = NewDomain("service notification", mustFamily(schema.FamilyActionServiceOn),
		"u/unknown", "w/warning", "c/critical", "r/recovery=ok", "f/flapping", "s/downtime")
	ServiceState = NewDomain("service state", mustFamily(schema.FamilyActionServiceOn),
		"o/ok", "w/warning", "u/unknown", "c/critical")
	HostDependency = NewDomain("host dependency", mustFamily(schema.FamilyActionHostdependencyOn),
		"o/up", "d/down", "u/unreachable", "p/pending")
	ServiceDependency = NewDomain("service dependency", mustFamily(schema.FamilyActionServicedependencyOn),
		"o/ok", "w/warning", "u/unknown", "c/critical", "p/pending")
	HostEscalation = NewDomain("host escalation", mustFamily(schema.FamilyActionHostescalationOn),
		"d/down", "u/unreachable", "r/recovery")
	ServiceEscalation = NewDomain("service escalation", mustFamily(schema.FamilyActionServiceescalationOn),
		"w/warning", "u/unknown", "c/critical", "r/recovery")
)

// Domains returns every built-in token table.
func Domains() []*Domain {
	return []*Domain{
		HostNotification, HostState, ServiceNotification, ServiceState,
		HostDependency, ServiceDependency, HostEscalation, ServiceEscalation,
	}
}

// Bitmask parses a comma separated option list into a flag field.
type Bitmask struct {
	field  string
	domain *Domain
}

// NewBitmask returns a bitmask rule writing field.
func NewBitmask(field string, domain *Domain) *Bitmask {
	return &Bitmask{field: field, domain: domain}
}

func (b *Bitmask) Kind() Kind      { return KindBitmask }
func (b *Bitmask) Field() string   { return b.field }
func (b *Bitmask) Domain() *Domain { return b.domain }

func (b *Bitmask) Branches() []Branch {
	d := b.domain
	body := []string{
		"uint32_t options = " + d.none() + ";",
		"auto arr = absl::StrSplit(value, ',');",
		"for (auto& v : arr) {",
		"  std::string_view vv = absl::StripAsciiWhitespace(v);",
		"  if (vv.empty())",
		"    continue;",
		`  if (vv == "n" || vv == "none")`,
		"    options = " + d.none() + ";",
		`  else if (vv == "a" || vv == "all")`,
		"    options = " + d.allExpr() + ";",
	}

	for _, t := range d.Tokens {
		cond := fmt.Sprintf("vv == %q", t.Long)
		if t.Short != "" {
			cond = fmt.Sprintf("vv == %q || %s", t.Short, cond)
		}

		body = append(body,
			"  else if ("+cond+")",
			"    options |= "+d.constant(t)+";",
		)
	}

	body = append(body,
		"  else",
		"    return false;",
		"}",
		fmt.Sprintf("obj->set_%s(options);", b.field),
		"return true;",
	)

	return []Branch{{Keys: []string{b.field}, Body: body}}
}

func (b *Bitmask) Apply(st State, _, value string) bool {
	mask, ok := b.domain.Parse(value)
	if !ok {
		return false
	}

	st[b.field] = uint32(mask)

	return true
}
