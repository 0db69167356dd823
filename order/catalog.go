package order

import (
	"errors"
	"math/rand"
	"sort"
)

// ErrNoStarterRecipes is returned when no recipe is defined at difficulty 0
var ErrNoStarterRecipes = errors.New("no orders were defined at difficulty 0")

// Catalog holds the ready pool and the recipes still locked behind difficulty tiers
type Catalog struct {
	tiers map[int][]*Recipe
	ready []*Recipe
}

// NewCatalog groups recipes by difficulty and drains tier 0 into the ready pool
func NewCatalog(recipes []*Recipe) (*Catalog, error) {
	c := &Catalog{tiers: make(map[int][]*Recipe)}
	for _, r := range recipes {
		c.tiers[r.Difficulty] = append(c.tiers[r.Difficulty], r)
	}

	starters, err := c.starterOrders()
	if err != nil {
		return nil, err
	}
	c.ready = starters
	return c, nil
}

func (c *Catalog) starterOrders() ([]*Recipe, error) {
	starters, ok := c.tiers[0]
	if !ok || len(starters) == 0 {
		return nil, ErrNoStarterRecipes
	}
	delete(c.tiers, 0)
	return starters, nil
}

// LowestDifficultyOrder removes one recipe from the numerically smallest tier
// Emptied tiers are removed from the map
func (c *Catalog) LowestDifficultyOrder() (*Recipe, bool) {
	if len(c.tiers) == 0 {
		return nil, false
	}

	lowest := 0
	first := true
	for k := range c.tiers {
		if first || k < lowest {
			lowest = k
			first = false
		}
	}

	tier := c.tiers[lowest]
	var r *Recipe
	if len(tier) > 0 {
		r = tier[len(tier)-1]
		tier = tier[:len(tier)-1]
		c.tiers[lowest] = tier
	}

	for k, v := range c.tiers {
		if len(v) == 0 {
			delete(c.tiers, k)
		}
	}
	return r, r != nil
}

// Promote moves the next lowest-difficulty recipe into the ready pool
func (c *Catalog) Promote() (*Recipe, bool) {
	r, ok := c.LowestDifficultyOrder()
	if ok {
		c.ready = append(c.ready, r)
	}
	return r, ok
}

// Pick returns a uniformly random recipe from the ready pool
func (c *Catalog) Pick(rng *rand.Rand) (*Recipe, bool) {
	if len(c.ready) == 0 {
		return nil, false
	}
	return c.ready[rng.Intn(len(c.ready))], true
}

// Ready returns the recipes currently eligible for spawning
func (c *Catalog) Ready() []*Recipe {
	return c.ready
}

// LockedTiers returns remaining difficulty keys in ascending order
func (c *Catalog) LockedTiers() []int {
	keys := make([]int, 0, len(c.tiers))
	for k := range c.tiers {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
