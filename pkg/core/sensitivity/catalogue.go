package sensitivity

import "loopbox_model/pkg/core/assumption"

// Scenario is a named entry in the fixed what-if catalogue.
type Scenario struct {
	Name         string       `json:"name"`
	Label        string       `json:"label"`
	Perturbation Perturbation `json:"perturbation"`
}

// Catalogue returns the standard what-if scenarios. The collection-rate
// drop never goes below 0.50: below that the reuse model itself is broken
// and the comparison stops being informative.
func Catalogue() []Scenario {
	return []Scenario{
		{
			Name:  "collection_rate_drop",
			Label: "Collection Rate -10%",
			Perturbation: Perturbation{
				FieldPath: "volume.collection_rate",
				Kind:      Absolute,
				Amount:    -0.10,
				Floor:     0.50,
			},
		},
		{
			Name:  "wash_cost_increase",
			Label: "Wash Cost +20%",
			Perturbation: Perturbation{
				FieldPath: "cogs.wash_cost",
				Kind:      Relative,
				Amount:    1.20,
			},
		},
		{
			Name:  "per_use_fee_increase",
			Label: "Per-Use Fee +₹0.50",
			Perturbation: Perturbation{
				FieldPath: "pricing.per_use_fee",
				Kind:      Absolute,
				Amount:    0.50,
			},
		},
		{
			Name:  "orders_per_day_drop",
			Label: "Orders/Day = 40",
			Perturbation: Perturbation{
				FieldPath: "volume.orders_per_day",
				Kind:      SetTo,
				Amount:    40,
			},
		},
	}
}

// ScenarioResult pairs a catalogue entry with its computed result.
type ScenarioResult struct {
	Scenario Scenario `json:"scenario"`
	Result   Result   `json:"result"`
}

// RunCatalogue evaluates every standard scenario against the baseline.
func RunCatalogue(baseline assumption.Set) ([]ScenarioResult, error) {
	scenarios := Catalogue()
	results := make([]ScenarioResult, 0, len(scenarios))
	for _, sc := range scenarios {
		res, err := Run(baseline, sc.Perturbation)
		if err != nil {
			return nil, err
		}
		results = append(results, ScenarioResult{Scenario: sc, Result: res})
	}
	return results, nil
}
