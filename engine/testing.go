package engine

import (
	"github.com/lixenwraith/plug-n-chug/asset"
	"github.com/lixenwraith/plug-n-chug/order"
)

// NewTestGame creates a game from the built-in documents with a fixed seed and no systems
// Panics on document errors, the built-in documents are expected to be valid
func NewTestGame() *Game {
	recipes, err := order.ParseRecipes([]byte(asset.DefaultOrders), order.FormatTOML)
	if err != nil {
		panic(err)
	}
	return NewTestGameWith(recipes)
}

// NewTestGameWith creates a test game over a custom recipe list
func NewTestGameWith(recipes []*order.Recipe) *Game {
	cups, err := order.ParseCupConfig([]byte(asset.DefaultCupConfig))
	if err != nil {
		panic(err)
	}
	g, err := NewGame(Config{Recipes: recipes, Cups: cups, Seed: 1})
	if err != nil {
		panic(err)
	}
	return g
}
