package fdc

import (
	"encoding/json"
	"testing"

	coreerrors "fooddata-api-client/core/errors"
)

const appleRecord = `{
	"fdcId": 123,
	"description": "Apple",
	"foodNutrients": [
		{"nutrient": {"name": "Energy"}, "amount": 52},
		{"nutrient": {"name": "Total lipid (fat)"}, "amount": 0.2},
		{"nutrient": {"name": "Carbohydrate, by difference"}, "amount": 14},
		{"nutrient": {"name": "Protein"}, "amount": 0.3}
	],
	"servingSize": 100,
	"servingSizeUnit": "G",
	"labelNutrients": {
		"calories": {"value": 52},
		"fat": {"value": 0.2},
		"carbohydrates": {"value": 14},
		"protein": {"value": 0.3}
	}
}`

func decodeRaw(t *testing.T, data string) RawFood {
	t.Helper()
	var raw RawFood
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		t.Fatalf("failed to decode raw record: %v", err)
	}
	return raw
}

func TestNormalize_AppleRecord(t *testing.T) {
	entry, err := Normalize(decodeRaw(t, appleRecord))

	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if entry.FoodID != 123 {
		t.Errorf("FoodID = %d, want 123", entry.FoodID)
	}
	if entry.Name != "apple" {
		t.Errorf("Name = %s, want apple", entry.Name)
	}
	if entry.Calories != 52 {
		t.Errorf("Calories = %d, want 52", entry.Calories)
	}
	if entry.Macronutrients.Fat != 0.2 {
		t.Errorf("Macronutrients.Fat = %v, want 0.2", entry.Macronutrients.Fat)
	}
	if entry.Macronutrients.Carbs != 14 {
		t.Errorf("Macronutrients.Carbs = %v, want 14", entry.Macronutrients.Carbs)
	}
	if entry.Macronutrients.Protein != 0.3 {
		t.Errorf("Macronutrients.Protein = %v, want 0.3", entry.Macronutrients.Protein)
	}
	if entry.Serving.Value != 100 {
		t.Errorf("Serving.Value = %v, want 100", entry.Serving.Value)
	}
	if entry.Serving.Unit != "g" {
		t.Errorf("Serving.Unit = %s, want g", entry.Serving.Unit)
	}
	if entry.NutritionPerServing.Calories != 52 {
		t.Errorf("NutritionPerServing.Calories = %v, want 52", entry.NutritionPerServing.Calories)
	}
	if entry.NutritionPerServing.Carbs != 14 {
		t.Errorf("NutritionPerServing.Carbs = %v, want 14", entry.NutritionPerServing.Carbs)
	}
}

func TestNormalize_TruncatesCalories(t *testing.T) {
	raw := decodeRaw(t, appleRecord)
	for i, n := range raw.FoodNutrients {
		if n.Nutrient.Name == "Energy" {
			raw.FoodNutrients[i].Amount = 52.9
		}
	}

	entry, err := Normalize(raw)

	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if entry.Calories != 52 {
		t.Errorf("Calories = %d, want truncated 52", entry.Calories)
	}
}

func TestNormalize_MissingTopLevelFields(t *testing.T) {
	tests := []struct {
		name  string
		strip func(*RawFood)
		field string
	}{
		{"fdcId", func(r *RawFood) { r.FdcID = nil }, "fdcId"},
		{"description", func(r *RawFood) { r.Description = nil }, "description"},
		{"foodNutrients", func(r *RawFood) { r.FoodNutrients = nil }, "foodNutrients"},
		{"servingSize", func(r *RawFood) { r.ServingSize = nil }, "servingSize"},
		{"servingSizeUnit", func(r *RawFood) { r.ServingSizeUnit = nil }, "servingSizeUnit"},
		{"labelNutrients", func(r *RawFood) { r.LabelNutrients = nil }, "labelNutrients"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := decodeRaw(t, appleRecord)
			tt.strip(&raw)

			_, err := Normalize(raw)

			if err == nil {
				t.Fatal("Normalize should fail for missing field")
			}
			if !coreerrors.IsMissingField(err) {
				t.Errorf("error should be MissingFieldError, got %T", err)
			}
		})
	}
}

func TestNormalize_MissingRequiredNutrients(t *testing.T) {
	required := []string{"Energy", "Total lipid (fat)", "Carbohydrate, by difference", "Protein"}

	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			raw := decodeRaw(t, appleRecord)
			kept := raw.FoodNutrients[:0]
			for _, n := range raw.FoodNutrients {
				if n.Nutrient.Name != name {
					kept = append(kept, n)
				}
			}
			raw.FoodNutrients = kept

			_, err := Normalize(raw)

			if !coreerrors.IsMissingField(err) {
				t.Errorf("Normalize without %s should fail with MissingFieldError, got %v", name, err)
			}
		})
	}
}

func TestNormalize_MissingLabelNutrients(t *testing.T) {
	for _, key := range []string{"calories", "fat", "carbohydrates", "protein"} {
		t.Run(key, func(t *testing.T) {
			raw := decodeRaw(t, appleRecord)
			delete(raw.LabelNutrients, key)

			_, err := Normalize(raw)

			if !coreerrors.IsMissingField(err) {
				t.Errorf("Normalize without labelNutrients.%s should fail with MissingFieldError, got %v", key, err)
			}
		})
	}
}

func TestNormalize_LabelValueWithoutNumber(t *testing.T) {
	raw := decodeRaw(t, appleRecord)
	raw.LabelNutrients["fat"] = RawLabelValue{}

	_, err := Normalize(raw)

	if !coreerrors.IsMissingField(err) {
		t.Errorf("Normalize should fail with MissingFieldError for label entry without value, got %v", err)
	}
}

func TestNormalize_LowercasesNutrientNames(t *testing.T) {
	raw := decodeRaw(t, appleRecord)
	for i := range raw.FoodNutrients {
		raw.FoodNutrients[i].Nutrient.Name = "ENERGY"
		break
	}

	entry, err := Normalize(raw)

	if err != nil {
		t.Fatalf("Normalize should match nutrient names case-insensitively: %v", err)
	}
	if entry.Calories != 52 {
		t.Errorf("Calories = %d, want 52", entry.Calories)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	raw := decodeRaw(t, appleRecord)

	first, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	second, err := Normalize(raw)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}

	if *first != *second {
		t.Error("Normalize should be deterministic for fixed input")
	}
}
