package domain

import "testing"

func validEntry() FoodEntry {
	return FoodEntry{
		FoodID:   173944,
		Name:     "butter, salted",
		Calories: 717,
		Macronutrients: Macronutrients{
			Fat:     81.1,
			Carbs:   0.06,
			Protein: 0.85,
		},
		Serving: Serving{Value: 14.2, Unit: "g"},
		NutritionPerServing: ServingNutrition{
			Calories: 102,
			Fat:      11.5,
			Carbs:    0,
			Protein:  0.12,
		},
	}
}

func TestFoodEntry_Validate_Valid(t *testing.T) {
	entry := validEntry()

	if err := entry.Validate(); err != nil {
		t.Errorf("Validate returned error for valid entry: %v", err)
	}
}

func TestFoodEntry_Validate_ZeroID(t *testing.T) {
	entry := validEntry()
	entry.FoodID = 0

	if err := entry.Validate(); err == nil {
		t.Error("Validate should return error for zero food ID")
	}
}

func TestFoodEntry_Validate_NegativeID(t *testing.T) {
	entry := validEntry()
	entry.FoodID = -1

	if err := entry.Validate(); err == nil {
		t.Error("Validate should return error for negative food ID")
	}
}

func TestFoodEntry_Validate_EmptyName(t *testing.T) {
	entry := validEntry()
	entry.Name = ""

	if err := entry.Validate(); err == nil {
		t.Error("Validate should return error for empty name")
	}
}

func TestFoodEntry_Validate_NegativeCalories(t *testing.T) {
	entry := validEntry()
	entry.Calories = -5

	if err := entry.Validate(); err == nil {
		t.Error("Validate should return error for negative calories")
	}
}
