package hook

import (
	"fmt"
	"strconv"
	"strings"

	"confgen/internal/schema"
)

// KeyValue is the model of a KeyType field.
type KeyValue struct {
	ID   uint64
	Type uint32
}

// EnumEntry maps a textual value to a family constant.
type EnumEntry struct {
	Text  string
	Value string // unprefixed constant name
}

// KeyEnum fills a KeyType field from an id key and a type key.
type KeyEnum struct {
	field    string
	idKeys   []string
	typeKeys []string
	family   *schema.Family
	table    []EnumEntry
}

// NewKeyEnum returns a key/enum rule. The type branch accepts the entries
// of table and stores the matching family constant.
func NewKeyEnum(field string, idKeys, typeKeys []string, family *schema.Family, table []EnumEntry) *KeyEnum {
	return &KeyEnum{field: field, idKeys: idKeys, typeKeys: typeKeys, family: family, table: table}
}

func (r *KeyEnum) Kind() Kind    { return KindKeyEnum }
func (r *KeyEnum) Field() string { return r.field }

func (r *KeyEnum) Branches() []Branch {
	id := Branch{
		Keys: r.idKeys,
		Body: []string{
			"uint64_t id;",
			"if (absl::SimpleAtoi(value, &id)) {",
			fmt.Sprintf("  obj->mutable_%s()->set_id(id);", r.field),
			"  return true;",
			"}",
			"return false;",
		},
	}

	var body []string
	for i, e := range r.table {
		kw := "} else if"
		if i == 0 {
			kw = "if"
		}

		body = append(body,
			fmt.Sprintf("%s (value == %q) {", kw, e.Text),
			fmt.Sprintf("  obj->mutable_%s()->set_type(%s);", r.field, r.family.Constant(e.Value)),
			"  return true;",
		)
	}

	if len(body) > 0 {
		body = append(body, "}")
	}

	body = append(body, "return false;")

	return []Branch{id, {Keys: r.typeKeys, Body: body}}
}

func (r *KeyEnum) Apply(st State, key, value string) bool {
	kv, _ := st[r.field].(KeyValue)
	value = strings.TrimSpace(value)

	if contains(r.idKeys, key) {
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return false
		}

		kv.ID = id
		st[r.field] = kv

		return true
	}

	for _, e := range r.table {
		if e.Text != value {
			continue
		}

		n, ok := r.family.Number(e.Value)
		if !ok {
			return false
		}

		kv.Type = uint32(n)
		st[r.field] = kv

		return true
	}

	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
