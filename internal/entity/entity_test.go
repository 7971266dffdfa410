package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confgen/internal/hook"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, KindHost, Lookup("host"))
	assert.Equal(t, KindServicedependency, Lookup("servicedependency"))
	assert.Equal(t, KindGeneric, Lookup("foo"))
	assert.Equal(t, KindGeneric, Lookup("generic"))
	assert.Equal(t, "timeperiod", KindTimeperiod.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKnown(t *testing.T) {
	known := Known()
	require.Len(t, known, 16)
	assert.Equal(t, "anomalydetection", known[0])
	assert.Equal(t, "timeperiod", known[15])

	for _, k := range known {
		assert.NotSame(t, generic, HandlerFor(Lookup(k)), k)
	}
}

func TestHandlerFor(t *testing.T) {
	g := HandlerFor(KindGeneric)
	assert.Empty(t, g.Bitmasks)
	assert.Empty(t, g.Validity)
	assert.Nil(t, g.KeyEnum)

	h := HandlerFor(KindHost)
	assert.Same(t, hook.HostNotification, h.Bitmasks["notification_options"])
	assert.True(t, h.IsPassThrough("customvariables"))
	assert.False(t, h.IsPassThrough("parents"))
}

func TestTagListRules(t *testing.T) {
	rules := HandlerFor(KindService).TagListRules()
	require.Len(t, rules, 2)

	st := hook.State{}
	require.True(t, rules[0].Apply(st, "category_tags", "7"))
	assert.Equal(t, []hook.TagRef{{ID: 7, Type: 2}}, st["tags"])

	require.True(t, rules[1].Apply(st, "group_tags", "8"))
	assert.Equal(t, []hook.TagRef{{ID: 7, Type: 2}, {ID: 8, Type: 0}}, st["tags"])

	assert.Empty(t, HandlerFor(KindCommand).TagListRules())
}
