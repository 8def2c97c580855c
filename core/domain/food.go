// ABOUTME: Food domain model represents a normalized FoodData Central record
// ABOUTME: Provides validation logic to ensure entry data integrity

package domain

import "errors"

// Macronutrients holds per-100g macronutrient amounts in grams
type Macronutrients struct {
	Fat     float64 `json:"fat"`
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
}

// Serving describes one labeled serving of a food
type Serving struct {
	// Value is the serving size in the given unit
	Value float64 `json:"value"`

	// Unit is the lowercased serving unit (e.g. "g", "ml")
	Unit string `json:"unit"`
}

// ServingNutrition holds nutrition facts for one labeled serving
type ServingNutrition struct {
	Calories float64 `json:"calories"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
}

// FoodEntry is a normalized food record: identity, calories, macronutrients,
// serving size and nutrition per serving. Entries are immutable once
// constructed; the only invariant is that FoodID matches the source record.
type FoodEntry struct {
	// FoodID is the FoodData Central identifier of the source record
	FoodID int64 `json:"food_id"`

	// Name is the lowercased food description
	Name string `json:"name"`

	// Calories is the energy amount per 100g, truncated to an integer
	Calories int `json:"calories"`

	// Macronutrients holds fat, carbs and protein in grams per 100g
	Macronutrients Macronutrients `json:"macronutrients"`

	// Serving is the labeled serving size
	Serving Serving `json:"serving"`

	// NutritionPerServing holds the label nutrition facts for one serving
	NutritionPerServing ServingNutrition `json:"nutrition_per_serving"`
}

// Validate checks the entry for structural sanity
func (e *FoodEntry) Validate() error {
	if e.FoodID <= 0 {
		return errors.New("food ID must be positive")
	}

	if e.Name == "" {
		return errors.New("name cannot be empty")
	}

	if e.Calories < 0 {
		return errors.New("calories cannot be negative")
	}

	return nil
}
