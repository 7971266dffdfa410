package hook

// Chain is the ordered hook chain of one entity.
type Chain struct {
	rules []Rule
	owner map[string]int
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{owner: make(map[string]int)}
}

// Add appends r. Keys already claimed by an earlier rule stay with it and
// are returned as conflicts. A rule left without keys is not added.
func (c *Chain) Add(r Rule) []string {
	var (
		conflicts []string
		free      []string
	)

	for _, k := range Keys(r) {
		if _, taken := c.owner[k]; taken {
			conflicts = append(conflicts, k)

			continue
		}

		free = append(free, k)
	}

	if len(free) == 0 {
		return conflicts
	}

	idx := len(c.rules)
	c.rules = append(c.rules, r)

	for _, k := range free {
		c.owner[k] = idx
	}

	return conflicts
}

// Len returns the number of rules.
func (c *Chain) Len() int {
	if c == nil {
		return 0
	}

	return len(c.rules)
}

// IsEmpty reports whether the chain has no rules.
func (c *Chain) IsEmpty() bool {
	return c.Len() == 0
}

// Rules returns the rules in chain order.
func (c *Chain) Rules() []Rule {
	if c == nil {
		return nil
	}

	return c.rules
}

// Lookup returns the rule owning key.
func (c *Chain) Lookup(key string) (Rule, bool) {
	if c == nil {
		return nil, false
	}

	idx, ok := c.owner[key]
	if !ok {
		return nil, false
	}

	return c.rules[idx], true
}

// Branches returns every branch in chain order, restricted to the keys
// each rule owns.
func (c *Chain) Branches() []Branch {
	if c == nil {
		return nil
	}

	var out []Branch

	for idx, r := range c.rules {
		for _, b := range r.Branches() {
			var keys []string
			for _, k := range b.Keys {
				if c.owner[k] == idx {
					keys = append(keys, k)
				}
			}

			if len(keys) == 0 {
				continue
			}

			out = append(out, Branch{Keys: keys, Body: b.Body})
		}
	}

	return out
}

// Apply dispatches key to its owner. handled is false when no rule claims
// the key; ok reports whether the owner accepted the value.
func (c *Chain) Apply(st State, key, value string) (handled, ok bool) {
	r, found := c.Lookup(key)
	if !found {
		return false, false
	}

	return true, r.Apply(st, key, value)
}
