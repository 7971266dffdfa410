package hook

import (
	"fmt"
	"strconv"
	"strings"
)

// TagRef is an element of a repeated PairUint64_32 tag field.
type TagRef struct {
	ID   uint64
	Type uint32
}

// TagList replaces the tags of one type with a comma separated id list.
type TagList struct {
	key      string
	field    string
	constant string
	tagType  uint32
}

// NewTagList returns a rule appending ids read from key to field, typed
// with the given tag constant.
func NewTagList(key, field, constant string, tagType int) *TagList {
	return &TagList{key: key, field: field, constant: constant, tagType: uint32(tagType)}
}

func (r *TagList) Kind() Kind    { return KindTagList }
func (r *TagList) Field() string { return r.field }

func (r *TagList) Branches() []Branch {
	f := r.field

	return []Branch{{
		Keys: []string{r.key},
		Body: []string{
			"std::vector<uint64_t> ids;",
			"for (auto& tag : absl::StrSplit(value, ',')) {",
			"  std::string_view t = absl::StripAsciiWhitespace(tag);",
			"  if (t.empty())",
			"    continue;",
			"  uint64_t id;",
			"  if (!absl::SimpleAtoi(t, &id))",
			"    return false;",
			"  ids.push_back(id);",
			"}",
			fmt.Sprintf("for (auto it = obj->%s().begin(); it != obj->%s().end();) {", f, f),
			fmt.Sprintf("  if (it->second() == %s)", r.constant),
			fmt.Sprintf("    it = obj->mutable_%s()->erase(it);", f),
			"  else",
			"    ++it;",
			"}",
			"for (uint64_t id : ids) {",
			fmt.Sprintf("  auto t = obj->add_%s();", f),
			"  t->set_first(id);",
			fmt.Sprintf("  t->set_second(%s);", r.constant),
			"}",
			"return true;",
		},
	}}
}

func (r *TagList) Apply(st State, _, value string) bool {
	var ids []uint64

	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		id, err := strconv.ParseUint(item, 10, 64)
		if err != nil {
			return false
		}

		ids = append(ids, id)
	}

	existing, _ := st[r.field].([]TagRef)

	kept := make([]TagRef, 0, len(existing)+len(ids))
	for _, t := range existing {
		if t.Type != r.tagType {
			kept = append(kept, t)
		}
	}

	for _, id := range ids {
		kept = append(kept, TagRef{ID: id, Type: r.tagType})
	}

	st[r.field] = kept

	return true
}
