package hook

import "confgen/internal/common"

// Kind identifies the shape of a hook rule.
type Kind int

const (
	KindGroup Kind = iota
	KindPairGroup
	KindTimeRange
	KindBitmask
	KindKeyEnum
	KindTagList
)

// String returns a human-readable representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindPairGroup:
		return "pair_group"
	case KindTimeRange:
		return "time_range"
	case KindBitmask:
		return "bitmask"
	case KindKeyEnum:
		return "key_enum"
	case KindTagList:
		return "tag_list"
	default:
		return common.UnknownStr
	}
}

// Branch is one arm of the hook chain: the keys it matches and the C++
// statements executed when one of them matches. Body lines are relative
// to the branch indentation.
type Branch struct {
	Keys []string
	Body []string
}

// State is the Go model of a schema object, keyed by schema field name.
type State map[string]any

// Rule is a single hook specialization.
type Rule interface {
	Kind() Kind
	// Field is the schema field the rule writes.
	Field() string
	Branches() []Branch
	// Apply runs the rule for one of its keys. It returns false and leaves
	// st untouched when the value is rejected.
	Apply(st State, key, value string) bool
}

// Keys returns every key claimed by r, in branch order.
func Keys(r Rule) []string {
	var keys []string
	for _, b := range r.Branches() {
		keys = append(keys, b.Keys...)
	}

	return keys
}
