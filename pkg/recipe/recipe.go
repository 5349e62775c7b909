// Package recipe describes crafting and smelting recipes in the engine's
// data-pack form and matches them against crafting grids.
package recipe

import (
	"encoding/json"

	"github.com/mosbergapi/modkit/pkg/id"
)

// Recipe kinds understood by the engine.
var (
	KindShaped    = id.MustParse("minecraft:crafting_shaped")
	KindShapeless = id.MustParse("minecraft:crafting_shapeless")
	KindSmelting  = id.MustParse("minecraft:smelting")
)

// Recipe is any registrable recipe. Concrete kinds marshal to the engine's
// JSON form with a "type" discriminator.
type Recipe interface {
	Kind() id.ID
}

// ResultProvider is the optional capability of recipes that declare a fixed
// crafting result. Dynamic recipes (Special) do not implement it.
type ResultProvider interface {
	Recipe
	RecipeResult() Result
}

// ResultOf returns the declared result of r, reporting whether r declares
// one. A false report is an ordinary outcome for dynamic recipes, not an
// error.
func ResultOf(r Recipe) (Result, bool) {
	p, ok := r.(ResultProvider)
	if !ok {
		return Result{}, false
	}
	return p.RecipeResult(), true
}

// Result is a produced item stack.
type Result struct {
	Item  id.ID `json:"item"`
	Count int   `json:"count,omitempty"`
}

// Ingredient is one required input.
type Ingredient struct {
	Item id.ID `json:"item"`
}

// Shaped is a pattern recipe. Pattern rows use one character per grid cell;
// a space is an empty cell and every other character must appear in Key.
type Shaped struct {
	Pattern []string              `json:"pattern"`
	Key     map[string]Ingredient `json:"key"`
	Result  Result                `json:"result"`
}

func (s *Shaped) Kind() id.ID          { return KindShaped }
func (s *Shaped) RecipeResult() Result { return s.Result }

func (s *Shaped) MarshalJSON() ([]byte, error) {
	type alias Shaped
	return json.Marshal(struct {
		Type id.ID `json:"type"`
		*alias
	}{s.Kind(), (*alias)(s)})
}

// Shapeless matches its ingredients in any grid arrangement.
type Shapeless struct {
	Ingredients []Ingredient `json:"ingredients"`
	Result      Result       `json:"result"`
}

func (s *Shapeless) Kind() id.ID          { return KindShapeless }
func (s *Shapeless) RecipeResult() Result { return s.Result }

func (s *Shapeless) MarshalJSON() ([]byte, error) {
	type alias Shapeless
	return json.Marshal(struct {
		Type id.ID `json:"type"`
		*alias
	}{s.Kind(), (*alias)(s)})
}

// Smelting is a furnace recipe. CookingTime is in ticks; zero means the
// engine default.
type Smelting struct {
	Ingredient  Ingredient `json:"ingredient"`
	Result      id.ID      `json:"result"`
	Experience  float64    `json:"experience,omitempty"`
	CookingTime int        `json:"cookingtime,omitempty"`
}

func (s *Smelting) Kind() id.ID          { return KindSmelting }
func (s *Smelting) RecipeResult() Result { return Result{Item: s.Result, Count: 1} }

func (s *Smelting) MarshalJSON() ([]byte, error) {
	type alias Smelting
	return json.Marshal(struct {
		Type id.ID `json:"type"`
		*alias
	}{s.Kind(), (*alias)(s)})
}

// Special is a dynamic recipe handled entirely by engine code (banner
// duplication, map cloning). It declares no fixed result.
type Special struct {
	Serializer id.ID `json:"-"`
}

func (s *Special) Kind() id.ID { return s.Serializer }

func (s *Special) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type id.ID `json:"type"`
	}{s.Serializer})
}
