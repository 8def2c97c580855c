// ABOUTME: Response normalizer projects one raw FoodData Central record into a FoodEntry
// ABOUTME: Pure reshaping with missing-field detection, no I/O

package fdc

import (
	"strings"

	"fooddata-api-client/core/domain"
	coreerrors "fooddata-api-client/core/errors"
)

// Nutrient names required in a raw record's foodNutrients list, lowercased
const (
	nutrientEnergy  = "energy"
	nutrientFat     = "total lipid (fat)"
	nutrientCarbs   = "carbohydrate, by difference"
	nutrientProtein = "protein"
)

// RawNutrient is one entry of a raw record's foodNutrients list
type RawNutrient struct {
	Nutrient struct {
		Name string `json:"name"`
	} `json:"nutrient"`
	Amount float64 `json:"amount"`
}

// RawLabelValue is one entry of a raw record's labelNutrients mapping
type RawLabelValue struct {
	Value *float64 `json:"value"`
}

// RawFood is the wire shape of one FoodData Central food record.
// Pointer fields distinguish absent keys from zero values so normalization
// can report which required field is missing.
type RawFood struct {
	FdcID           *int64                   `json:"fdcId"`
	Description     *string                  `json:"description"`
	FoodNutrients   []RawNutrient            `json:"foodNutrients"`
	ServingSize     *float64                 `json:"servingSize"`
	ServingSizeUnit *string                  `json:"servingSizeUnit"`
	LabelNutrients  map[string]RawLabelValue `json:"labelNutrients"`
}

// Normalize projects one raw food record into a FoodEntry. It discards
// everything but identity, calories, macronutrients, serving size and the
// label nutrition facts. Deterministic, no side effects. A record lacking
// any required field fails with a MissingFieldError.
func Normalize(raw RawFood) (*domain.FoodEntry, error) {
	if raw.FdcID == nil {
		return nil, &coreerrors.MissingFieldError{Field: "fdcId"}
	}
	if raw.Description == nil {
		return nil, &coreerrors.MissingFieldError{Field: "description"}
	}
	if raw.FoodNutrients == nil {
		return nil, &coreerrors.MissingFieldError{Field: "foodNutrients"}
	}
	if raw.ServingSize == nil {
		return nil, &coreerrors.MissingFieldError{Field: "servingSize"}
	}
	if raw.ServingSizeUnit == nil {
		return nil, &coreerrors.MissingFieldError{Field: "servingSizeUnit"}
	}
	if raw.LabelNutrients == nil {
		return nil, &coreerrors.MissingFieldError{Field: "labelNutrients"}
	}

	// Nutrient-name -> amount mapping, names lowercased
	amounts := make(map[string]float64, len(raw.FoodNutrients))
	for _, n := range raw.FoodNutrients {
		amounts[strings.ToLower(n.Nutrient.Name)] = n.Amount
	}

	required := []string{nutrientEnergy, nutrientFat, nutrientCarbs, nutrientProtein}
	for _, name := range required {
		if _, ok := amounts[name]; !ok {
			return nil, &coreerrors.MissingFieldError{Field: name}
		}
	}

	label := make(map[string]float64, 4)
	for _, key := range []string{"calories", "fat", "carbohydrates", "protein"} {
		entry, ok := raw.LabelNutrients[key]
		if !ok || entry.Value == nil {
			return nil, &coreerrors.MissingFieldError{Field: "labelNutrients." + key}
		}
		label[key] = *entry.Value
	}

	return &domain.FoodEntry{
		FoodID: *raw.FdcID,
		Name:   strings.ToLower(*raw.Description),
		// Truncated, matching the source API's integer energy contract
		Calories: int(amounts[nutrientEnergy]),
		Macronutrients: domain.Macronutrients{
			Fat:     amounts[nutrientFat],
			Carbs:   amounts[nutrientCarbs],
			Protein: amounts[nutrientProtein],
		},
		Serving: domain.Serving{
			Value: *raw.ServingSize,
			Unit:  strings.ToLower(*raw.ServingSizeUnit),
		},
		NutritionPerServing: domain.ServingNutrition{
			Calories: label["calories"],
			Fat:      label["fat"],
			Carbs:    label["carbohydrates"],
			Protein:  label["protein"],
		},
	}, nil
}
