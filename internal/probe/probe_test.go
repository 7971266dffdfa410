package probe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/hook"
	"confgen/internal/model"
	"confgen/internal/schema"
	"confgen/internal/validity"
)

func scalar(name string) schema.Type {
	return schema.Type{Name: name, Kind: schema.TypeKindScalar}
}

func hostObject() *model.ConfigObject {
	chain := hook.NewChain()
	chain.Add(hook.NewGroup("hostgroups", true))
	chain.Add(hook.NewBitmask("notification_options", hook.HostNotification))

	return &model.ConfigObject{
		ClassName: "Host",
		EntityKey: "host",
		Fields: []*model.ConfigField{
			{Name: "_host_name", SchemaName: "host_name", SchemaType: scalar("string"), Ordinal: 0},
			{Name: "_address", SchemaName: "address", SchemaType: scalar("string"), Ordinal: 1},
			{
				Name: "_check_interval", SchemaName: "check_interval", SchemaType: scalar("uint32"), Ordinal: 2,
				Default: &model.Default{Expr: "5"},
			},
			{Name: "_hostgroups", SchemaName: "hostgroups", SchemaType: schema.Type{Name: schema.TypeStringSet, Kind: schema.TypeKindMessage}, Ordinal: 3},
			{Name: "_notification_options", SchemaName: "notification_options", SchemaType: scalar("uint32"), Ordinal: 4},
			{Name: "_coords_2d", SchemaName: "coords_2d", SchemaType: schema.Type{Name: schema.TypePoint2d, Kind: schema.TypeKindMessage}, Ordinal: 5},
			{Name: "_active", SchemaName: "active", SchemaType: scalar("bool"), Ordinal: 6},
		},
		Correspondence: []model.Alias{
			{Legacy: "normal_check_interval", Canonical: "check_interval"},
			{Legacy: "hostgroup", Canonical: "hostgroups"},
		},
		Hooks: chain,
		Validity: []validity.Rule{
			validity.Required("host_name"),
			validity.Required("address"),
		},
	}
}

func TestSetOutcomes(t *testing.T) {
	tests := []struct {
		key       string
		value     string
		canonical string
		want      Outcome
	}{
		{"host_name", "srv1", "host_name", OutcomeGeneric},
		{"normal_check_interval", "10", "check_interval", OutcomeGeneric},
		{"check_interval", "-1", "check_interval", OutcomeRejected},
		{"hostgroup", "+a,b", "hostgroups", OutcomeHooked},
		{"notification_options", "d,u", "notification_options", OutcomeHooked},
		{"notification_options", "d,bogus", "notification_options", OutcomeRejected},
		{"coords_2d", "1,2", "coords_2d", OutcomeRejected},
		{"active", "maybe", "active", OutcomeRejected},
		{"name", "tpl", "name", OutcomeHeader},
		{"register", "2", "register", OutcomeRejected},
		{"no_such_key", "1", "no_such_key", OutcomeUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			res := New(hostObject()).Set(tt.key, tt.value)

			assert.Equal(t, tt.canonical, res.Canonical)
			assert.Equal(t, tt.want, res.Outcome, res.Outcome.String())
			assert.Equal(t, tt.want <= OutcomeHeader, res.OK())
		})
	}
}

func TestSetStoresModelValues(t *testing.T) {
	s := New(hostObject())

	assert.Equal(t, uint32(5), s.State()["check_interval"])

	s.Set("normal_check_interval", "10")
	s.Set("hostgroups", "+a,b,a")
	s.Set("notification_options", "d,u")
	s.Set("active", "1")

	st := s.State()
	assert.Equal(t, uint32(10), st["check_interval"])
	assert.Equal(t, hook.GroupValue{Additive: true, Data: []string{"a", "b"}}, st["hostgroups"])
	assert.Equal(t, true, st["active"])

	flags, ok := st["notification_options"].(uint32)
	require.True(t, ok)
	assert.NotZero(t, flags)
}

func TestHeader(t *testing.T) {
	s := New(hostObject())
	assert.True(t, s.Header().Register)

	s.Set("name", "generic-host")
	s.Set("use", "base, linux ,")
	s.Set("register", "0")

	assert.Equal(t, Header{Name: "generic-host", Register: false, Use: []string{"base", "linux"}}, s.Header())
}

func TestCheckValidity(t *testing.T) {
	s := New(hostObject())

	err := s.CheckValidity()
	require.Error(t, err)
	assert.Equal(t, "Host has no host name (property 'host_name')", err.Error())

	s.Set("host_name", "srv1")
	err = s.CheckValidity()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property 'address'")

	s.Set("address", "10.0.0.1")
	assert.NoError(t, s.CheckValidity())
}

func TestCheckValiditySkipsTemplates(t *testing.T) {
	s := New(hostObject())
	s.Set("register", "0")

	assert.NoError(t, s.CheckValidity())
}

func TestNoHooks(t *testing.T) {
	obj := &model.ConfigObject{
		ClassName: "Foo",
		EntityKey: "foo",
		Fields: []*model.ConfigField{
			{Name: "_a", SchemaName: "a", SchemaType: scalar("int32"), Ordinal: 0},
		},
	}

	s := New(obj)
	assert.Equal(t, OutcomeGeneric, s.Set("a", "-3").Outcome)
	assert.Equal(t, int64(-3), s.State()["a"])
	assert.Equal(t, OutcomeRejected, s.Set("a", "99999999999").Outcome)
	assert.NoError(t, s.CheckValidity())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "a=1: generic", Describe(Result{Key: "a", Canonical: "a", Value: "1", Outcome: OutcomeGeneric}))
	assert.Equal(t, "hostgroup (hostgroups)=x: hooked",
		Describe(Result{Key: "hostgroup", Canonical: "hostgroups", Value: "x", Outcome: OutcomeHooked}))
	assert.Equal(t, "unknown", Outcome(42).String())
}
