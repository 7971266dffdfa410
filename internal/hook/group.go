package hook

import (
	"fmt"
	"strings"

	"confgen/internal/common"
)

// GroupValue is the model of StringList and StringSet fields.
type GroupValue struct {
	Additive bool
	Data     []string
}

// Pair is an element of a PairStringSet.
type Pair struct {
	First  string
	Second string
}

// PairGroupValue is the model of PairStringSet fields.
type PairGroupValue struct {
	Additive bool
	Data     []Pair
}

// splitList splits a comma separated value. A leading '+' marks the value
// additive. Items are trimmed and empty items dropped.
func splitList(value string) (bool, []string) {
	value = strings.TrimSpace(value)
	additive := strings.HasPrefix(value, "+")

	if additive {
		value = value[1:]
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return additive, items
}

// Group fills a StringList or StringSet from a comma separated value.
type Group struct {
	field string
	set   bool
}

// NewGroup returns a group rule. Set groups drop repeated items.
func NewGroup(field string, set bool) *Group {
	return &Group{field: field, set: set}
}

func (g *Group) Kind() Kind    { return KindGroup }
func (g *Group) Field() string { return g.field }

func (g *Group) Branches() []Branch {
	return []Branch{{
		Keys: []string{g.field},
		Body: []string{
			fmt.Sprintf("fill_string_group(obj->mutable_%s(), value);", g.field),
			"return true;",
		},
	}}
}

func (g *Group) Apply(st State, _, value string) bool {
	additive, items := splitList(value)

	if g.set {
		items = common.Unique(items)
	}

	st[g.field] = GroupValue{Additive: additive, Data: items}

	return true
}

// PairGroup fills a PairStringSet from "a,b,c,d" as (a,b), (c,d).
type PairGroup struct {
	field string
}

// NewPairGroup returns a pair-group rule.
func NewPairGroup(field string) *PairGroup {
	return &PairGroup{field: field}
}

func (g *PairGroup) Kind() Kind    { return KindPairGroup }
func (g *PairGroup) Field() string { return g.field }

func (g *PairGroup) Branches() []Branch {
	return []Branch{{
		Keys: []string{g.field},
		Body: []string{
			fmt.Sprintf("return fill_pair_string_group(obj->mutable_%s(), value);", g.field),
		},
	}}
}

func (g *PairGroup) Apply(st State, _, value string) bool {
	additive, items := splitList(value)
	if len(items)%2 != 0 {
		return false
	}

	pairs := make([]Pair, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		pairs = append(pairs, Pair{First: items[i], Second: items[i+1]})
	}

	st[g.field] = PairGroupValue{Additive: additive, Data: common.Unique(pairs)}

	return true
}
