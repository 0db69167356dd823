package order

import (
	"errors"
	"math/rand"
	"testing"
)

func recipe(name string, difficulty int) *Recipe {
	return &Recipe{Name: name, Difficulty: difficulty, Sections: []Section{{Color: red, Size: 1}}}
}

func TestNewCatalogRequiresTierZero(t *testing.T) {
	_, err := NewCatalog([]*Recipe{recipe("A", 1)})
	if !errors.Is(err, ErrNoStarterRecipes) {
		t.Errorf("expected ErrNoStarterRecipes, got %v", err)
	}
}

func TestLowestDifficultyOrder(t *testing.T) {
	c, err := NewCatalog([]*Recipe{
		recipe("S1", 0),
		recipe("S2", 0),
		recipe("A", 2),
		recipe("B", 5),
		recipe("C", 5),
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Ready()) != 2 {
		t.Fatalf("tier 0 should seed the ready pool, got %d", len(c.Ready()))
	}
	if tiers := c.LockedTiers(); len(tiers) != 2 || tiers[0] != 2 || tiers[1] != 5 {
		t.Fatalf("unexpected locked tiers %v", tiers)
	}

	want := []string{"A", "C", "B"}
	for i, name := range want {
		r, ok := c.LowestDifficultyOrder()
		if !ok {
			t.Fatalf("call %d returned nothing", i)
		}
		if r.Name != name {
			t.Errorf("call %d: got %s, want %s", i, r.Name, name)
		}
	}

	if tiers := c.LockedTiers(); len(tiers) != 0 {
		t.Errorf("emptied tiers should be removed, got %v", tiers)
	}
	if _, ok := c.LowestDifficultyOrder(); ok {
		t.Error("exhausted catalog should return nothing")
	}
}

func TestPromoteAndPick(t *testing.T) {
	c, err := NewCatalog([]*Recipe{recipe("S", 0), recipe("X", 3)})
	if err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Promote(); !ok {
		t.Fatal("promotion should succeed")
	}
	if len(c.Ready()) != 2 {
		t.Errorf("ready pool should grow, got %d", len(c.Ready()))
	}
	if _, ok := c.Promote(); ok {
		t.Error("nothing left to promote")
	}

	rng := rand.New(rand.NewSource(1))
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		r, ok := c.Pick(rng)
		if !ok {
			t.Fatal("pick from non-empty pool failed")
		}
		seen[r.Name] = true
	}
	if !seen["S"] || !seen["X"] {
		t.Errorf("uniform pick should reach every recipe, saw %v", seen)
	}
}
