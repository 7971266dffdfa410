package hook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainFirstClaimWins(t *testing.T) {
	c := NewChain()

	assert.Empty(t, c.Add(NewGroup("members", true)))
	assert.Empty(t, c.Add(NewTimeRange("timeranges")))

	conflicts := c.Add(NewGroup("members", false))
	assert.Equal(t, []string{"members"}, conflicts)
	assert.Equal(t, 2, c.Len())

	r, ok := c.Lookup("members")
	require.True(t, ok)
	assert.Equal(t, KindGroup, r.Kind())

	_, ok = c.Lookup("host_name")
	assert.False(t, ok)
}

func TestChainPartialConflict(t *testing.T) {
	c := NewChain()
	c.Add(NewGroup("monday", false))

	conflicts := c.Add(NewTimeRange("timeranges"))
	assert.Equal(t, []string{"monday"}, conflicts)
	require.Equal(t, 2, c.Len())

	var keys []string
	for _, b := range c.Branches() {
		keys = append(keys, b.Keys...)
	}

	assert.Equal(t, []string{"monday", "sunday", "tuesday", "wednesday", "thursday", "friday", "saturday"}, keys)

	r, _ := c.Lookup("monday")
	assert.Equal(t, KindGroup, r.Kind())
}

func TestChainApply(t *testing.T) {
	c := NewChain()
	c.Add(NewGroup("contacts", true))

	st := State{}

	handled, ok := c.Apply(st, "contacts", "+a,b,a")
	assert.True(t, handled)
	assert.True(t, ok)
	assert.Equal(t, GroupValue{Additive: true, Data: []string{"a", "b"}}, st["contacts"])

	handled, _ = c.Apply(st, "address", "x")
	assert.False(t, handled)
}

func TestNilChain(t *testing.T) {
	var c *Chain

	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.Branches())
	assert.Nil(t, c.Rules())
}
