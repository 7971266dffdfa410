package validity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/hook"
	"confgen/internal/schema"
)

func TestBody(t *testing.T) {
	types := map[string]schema.Type{
		"service_description": {Name: "string", Kind: schema.TypeKindScalar},
		"hosts":               {Name: schema.TypeStringSet, Kind: schema.TypeKindMessage},
		"hostgroups":          {Name: schema.TypeStringSet, Kind: schema.TypeKindMessage},
	}

	body := Body("Service", []Rule{
		Required("service_description"),
		AnyOf("hosts", "hostgroups"),
	}, types)

	assert.Equal(t, []string{
		"const Service* o = static_cast<const Service*>(obj());",
		"",
		"if (o->obj().register_()) {",
		"  if (o->service_description().empty())",
		`    throw msg_fmt("Service has no service description (property 'service_description')");`,
		"  if (o->hosts().data().empty() && o->hostgroups().data().empty())",
		`    throw msg_fmt("Service must define at least one of hosts, hostgroups");`,
		"}",
	}, body)

	assert.Nil(t, Body("Foo", nil, nil))
}

func TestEmptyExpr(t *testing.T) {
	tests := []struct {
		typ  schema.Type
		want string
	}{
		{schema.Type{Name: "uint64", Kind: schema.TypeKindScalar}, "o->f() == 0"},
		{schema.Type{Name: "bool", Kind: schema.TypeKindScalar}, "!o->f()"},
		{schema.Type{Name: schema.TypeKeyType, Kind: schema.TypeKindMessage}, "o->f().id() == 0"},
		{schema.Type{Name: "CustomVariable", Kind: schema.TypeKindMessage, Repeated: true}, "o->f().empty()"},
		{schema.Type{Name: schema.TypeDaysArray, Kind: schema.TypeKindMessage}, "!o->has_f()"},
	}

	for _, tt := range tests {
		t.Run(tt.typ.Name, func(t *testing.T) {
			assert.Equal(t, tt.want, emptyExpr("f", tt.typ))
		})
	}
}

func TestCheck(t *testing.T) {
	rules := []Rule{Required("command_name"), AnyOf("hosts", "hostgroups")}

	err := Check("Command", rules, hook.State{})
	require.Error(t, err)
	assert.Equal(t, "Command has no command name (property 'command_name')", err.Error())

	err = Check("Command", rules, hook.State{"command_name": "ping"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of hosts, hostgroups")

	st := hook.State{
		"command_name": "ping",
		"hostgroups":   hook.GroupValue{Data: []string{"linux"}},
	}
	assert.NoError(t, Check("Command", rules, st))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "any_of", KindAnyOf.String())
	assert.Equal(t, "unknown", Kind(7).String())
}
