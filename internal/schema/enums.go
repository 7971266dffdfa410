package schema

import "sort"

// EnumValue is a single constant of an enumeration family.
type EnumValue struct {
	Name   string // unprefixed name, e.g. "down"
	Number int
}

// Family is a shared enumeration. Legacy code spells its constants
// "<Legacy>::<value>"; the schema spells them "<Prefix><value>".
type Family struct {
	Name    string
	Legacy  string
	Prefix  string
	Bitmask bool
	Values  []EnumValue
}

// Constant returns the schema spelling of a value.
func (f *Family) Constant(value string) string {
	return f.Prefix + value
}

// Has reports whether value belongs to the family.
func (f *Family) Has(value string) bool {
	_, ok := f.Number(value)

	return ok
}

// Number returns the numeric value of a constant.
func (f *Family) Number(value string) (int, bool) {
	for _, v := range f.Values {
		if v.Name == value {
			return v.Number, true
		}
	}

	return 0, false
}

// ValueNames returns the unprefixed constant names in declaration order.
func (f *Family) ValueNames() []string {
	names := make([]string, 0, len(f.Values))
	for _, v := range f.Values {
		names = append(names, v.Name)
	}

	return names
}

// Flags returns the OR of every non-zero value of a bitmask family.
func (f *Family) Flags() int {
	all := 0
	for _, v := range f.Values {
		all |= v.Number
	}

	return all
}

func values(names ...string) []EnumValue {
	out := make([]EnumValue, len(names))
	for i, n := range names {
		out[i] = EnumValue{Name: n, Number: i}
	}

	return out
}

func flags(names ...string) []EnumValue {
	out := make([]EnumValue, len(names))
	for i, n := range names {
		num := 0
		if i > 0 {
			num = 1 << (i - 1)
		}

		out[i] = EnumValue{Name: n, Number: num}
	}

	return out
}

// Family names.
const (
	FamilyActionHostOn              = "ActionHostOn"
	FamilyActionServiceOn           = "ActionServiceOn"
	FamilyActionHostdependencyOn    = "ActionHostdependencyOn"
	FamilyActionServicedependencyOn = "ActionServicedependencyOn"
	FamilyActionHostescalationOn    = "ActionHostescalationOn"
	FamilyActionServiceescalationOn = "ActionServiceescalationOn"
	FamilyTagType                   = "TagType"
	FamilySeverityType              = "SeverityType"
)

var families = []*Family{
	{
		Name: FamilyActionHostOn, Legacy: "host", Prefix: "action_hst_", Bitmask: true,
		Values: flags("none", "up", "down", "unreachable", "flapping", "downtime"),
	},
	{
		Name: FamilyActionServiceOn, Legacy: "service", Prefix: "action_svc_", Bitmask: true,
		Values: flags("none", "ok", "warning", "unknown", "critical", "flapping", "downtime"),
	},
	{
		Name: FamilyActionHostdependencyOn, Legacy: "hostdependency", Prefix: "action_hd_", Bitmask: true,
		Values: flags("none", "up", "down", "unreachable", "pending"),
	},
	{
		Name: FamilyActionServicedependencyOn, Legacy: "servicedependency", Prefix: "action_sd_", Bitmask: true,
		Values: flags("none", "ok", "unknown", "warning", "critical", "pending"),
	},
	{
		Name: FamilyActionHostescalationOn, Legacy: "hostescalation", Prefix: "action_he_", Bitmask: true,
		Values: flags("none", "down", "unreachable", "recovery"),
	},
	{
		Name: FamilyActionServiceescalationOn, Legacy: "serviceescalation", Prefix: "action_se_", Bitmask: true,
		Values: flags("none", "warning", "unknown", "critical", "recovery"),
	},
	{
		Name: FamilyTagType, Legacy: "tag", Prefix: "tag_",
		Values: values("servicegroup", "hostgroup", "servicecategory", "hostcategory"),
	},
	{
		Name: FamilySeverityType, Legacy: "severity", Prefix: "severity_",
		Values: values("service", "host"),
	},
}

// Families returns every enumeration family in prelude order.
func Families() []*Family {
	return families
}

// FamilyByName returns the family with the given schema name.
func FamilyByName(name string) (*Family, bool) {
	for _, f := range families {
		if f.Name == name {
			return f, true
		}
	}

	return nil, false
}

// FamilyByLegacy returns the family spelled by legacy qualifier, e.g. "host".
func FamilyByLegacy(legacy string) (*Family, bool) {
	for _, f := range families {
		if f.Legacy == legacy {
			return f, true
		}
	}

	return nil, false
}

// LegacyQualifiers returns every legacy family qualifier, longest first so
// that alternations prefer "hostdependency" over "host".
func LegacyQualifiers() []string {
	out := make([]string, 0, len(families))
	for _, f := range families {
		out = append(out, f.Legacy)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}

		return out[i] < out[j]
	})

	return out
}
