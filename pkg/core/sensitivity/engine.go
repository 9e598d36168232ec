// Package sensitivity perturbs a single assumption field, recomputes the
// model, and reports the delta against the unmodified baseline. Runs are
// pure functions of independent copies of the baseline, so independent
// scenarios can be computed in parallel.
package sensitivity

import (
	"fmt"
	"math"

	"loopbox_model/pkg/core/assumption"
	"loopbox_model/pkg/core/calc"
)

// Kind selects how the perturbation amount is applied to the field.
type Kind string

const (
	// Absolute adds Amount to the field value.
	Absolute Kind = "absolute"
	// Relative multiplies the field value by Amount.
	Relative Kind = "relative"
	// SetTo replaces the field value with Amount.
	SetTo Kind = "set"
)

// Perturbation names one field and one adjustment to it.
type Perturbation struct {
	FieldPath string  `json:"field_path"`
	Kind      Kind    `json:"kind"`
	Amount    float64 `json:"amount"`
	Floor     float64 `json:"floor,omitempty"` // applied when > 0
}

// Result is one perturbation's impact on net income, with the perturbed
// break-even alongside for scenario comparison tables.
type Result struct {
	Variable           string  `json:"variable"`
	BaselineValue      float64 `json:"baseline_value"`
	PerturbedValue     float64 `json:"perturbed_value"`
	BaselineNetIncome  float64 `json:"baseline_net_income"`
	PerturbedNetIncome float64 `json:"perturbed_net_income"`
	DeltaAbsolute      float64 `json:"delta_absolute"`
	DeltaPct           float64 `json:"delta_pct"`

	BaselineBreakEven  calc.BreakEvenResult `json:"baseline_breakeven"`
	PerturbedBreakEven calc.BreakEvenResult `json:"perturbed_breakeven"`
}

// Run applies one perturbation to a copy of the baseline and recomputes the
// full statement. The baseline set is passed by value and never mutated:
// running twice with the same inputs yields identical results.
func Run(baseline assumption.Set, p Perturbation) (Result, error) {
	oldValue, err := assumption.Get(baseline, p.FieldPath)
	if err != nil {
		return Result{}, err
	}

	var newValue float64
	switch p.Kind {
	case Absolute:
		newValue = oldValue + p.Amount
	case Relative:
		newValue = oldValue * p.Amount
	case SetTo:
		newValue = p.Amount
	default:
		return Result{}, fmt.Errorf("unknown perturbation kind '%s'", p.Kind)
	}
	if p.Floor > 0 {
		newValue = math.Max(p.Floor, newValue)
	}

	perturbed, err := assumption.Apply(baseline, p.FieldPath, newValue)
	if err != nil {
		return Result{}, err
	}

	baseStmt, err := calc.ComputeIncomeStatement(baseline)
	if err != nil {
		return Result{}, fmt.Errorf("baseline computation failed: %w", err)
	}
	perStmt, err := calc.ComputeIncomeStatement(perturbed)
	if err != nil {
		return Result{}, fmt.Errorf("perturbed computation failed: %w", err)
	}

	delta := perStmt.NetIncome - baseStmt.NetIncome
	deltaPct := 0.0
	if baseStmt.NetIncome != 0 {
		deltaPct = delta / math.Abs(baseStmt.NetIncome) * 100
	}

	return Result{
		Variable:           p.FieldPath,
		BaselineValue:      oldValue,
		PerturbedValue:     newValue,
		BaselineNetIncome:  baseStmt.NetIncome,
		PerturbedNetIncome: perStmt.NetIncome,
		DeltaAbsolute:      delta,
		DeltaPct:           deltaPct,
		BaselineBreakEven:  calc.ComputeBreakEven(baseStmt, baseline),
		PerturbedBreakEven: calc.ComputeBreakEven(perStmt, perturbed),
	}, nil
}
