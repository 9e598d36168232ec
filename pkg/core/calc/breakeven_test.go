package calc

import (
	"math"
	"testing"

	"loopbox_model/pkg/core/assumption"
)

// breakEvenFixture is built for hand-checkable arithmetic: ₹5 per order in,
// ₹3 per order out, ₹5M of fixed opex.
func breakEvenFixture() assumption.Set {
	return assumption.Set{
		Pricing: assumption.Pricing{PerUseFee: 5},
		Volume: assumption.Volume{
			RestaurantCount: 100, OrdersPerRestaurantDay: 10,
			OperatingDays: 300, CollectionRate: 1.0,
		},
		Cogs: assumption.Cogs{
			ContainerUnitCost: 100, ContainerLifespanUses: 100,
			WashCostPerOrder: 1.0, CollectionCostPerOrder: 1.0,
		},
		Opex: assumption.Opex{TechnologySpend: 5000000},
	}
}

func TestBreakEvenDecomposition(t *testing.T) {
	a := breakEvenFixture()
	stmt := mustCompute(t, a)
	be := ComputeBreakEven(stmt, a)

	// Fixed = 5,000,000 opex + (-2,500,000) depreciation
	if math.Abs(be.FixedCostsAnnual-2500000) > tol {
		t.Errorf("fixed costs: expected 2500000, got %f", be.FixedCostsAnnual)
	}
	// Variable = 1 amortization + 1×1.0 wash + 1 collection
	if math.Abs(be.VariableCostPerOrder-3) > tol {
		t.Errorf("variable cost per order: expected 3, got %f", be.VariableCostPerOrder)
	}
	if math.Abs(be.RevenuePerOrder-5) > tol {
		t.Errorf("revenue per order: expected 5, got %f", be.RevenuePerOrder)
	}
	if math.Abs(be.ContributionMarginPerOrder-2) > tol {
		t.Errorf("contribution margin: expected 2, got %f", be.ContributionMarginPerOrder)
	}
}

func TestBreakEvenPoint(t *testing.T) {
	a := breakEvenFixture()
	stmt := mustCompute(t, a)
	be := ComputeBreakEven(stmt, a)

	// 2,500,000 / 2 = 1,250,000 orders
	if !be.Orders.Defined {
		t.Fatal("orders should be defined with positive contribution margin")
	}
	if math.Abs(be.Orders.Value-1250000) > tol {
		t.Errorf("break-even orders: expected 1250000, got %f", be.Orders.Value)
	}

	// 1,250,000 / (10 × 300) = 416.67 restaurants
	if !be.Restaurants.Defined {
		t.Fatal("restaurants should be defined")
	}
	if math.Abs(be.Restaurants.Value-1250000.0/3000.0) > tol {
		t.Errorf("break-even restaurants: expected %f, got %f", 1250000.0/3000.0, be.Restaurants.Value)
	}

	// Ramp: (300,000/300)/30 = 33.33 orders/day growth → 1250 months
	if !be.MonthsToBreakEven.Defined {
		t.Fatal("months should be defined")
	}
	if math.Abs(be.MonthsToBreakEven.Value-1250) > tol {
		t.Errorf("months to break even: expected 1250, got %f", be.MonthsToBreakEven.Value)
	}
}

func TestBreakEvenUndefinedWhenMarginNonPositive(t *testing.T) {
	a := breakEvenFixture()
	a.Pricing.PerUseFee = 2 // ₹2 in, ₹3 out per order

	stmt := mustCompute(t, a)
	be := ComputeBreakEven(stmt, a)

	if be.ContributionMarginPerOrder >= 0 {
		t.Fatalf("fixture error: expected negative contribution, got %f", be.ContributionMarginPerOrder)
	}
	if be.Orders.Defined || be.Restaurants.Defined || be.MonthsToBreakEven.Defined {
		t.Error("break-even targets must be undefined when contribution margin is non-positive")
	}
	// Decomposition stays reported even without a crossing point.
	if math.Abs(be.VariableCostPerOrder-3) > tol {
		t.Errorf("variable cost: expected 3, got %f", be.VariableCostPerOrder)
	}
}

func TestBreakEvenChartData(t *testing.T) {
	a := breakEvenFixture()
	stmt := mustCompute(t, a)
	be := ComputeBreakEven(stmt, a)

	chart := BreakEvenChartData(be, 1000000)

	if len(chart.OrdersRange) != 21 || len(chart.RevenueLine) != 21 || len(chart.CostLine) != 21 {
		t.Fatalf("expected 21 samples per series, got %d/%d/%d",
			len(chart.OrdersRange), len(chart.RevenueLine), len(chart.CostLine))
	}
	if chart.OrdersRange[0] != 0 {
		t.Errorf("range must start at zero, got %f", chart.OrdersRange[0])
	}
	if math.Abs(chart.OrdersRange[20]-1500000) > tol {
		t.Errorf("range must end at 150%% of target, got %f", chart.OrdersRange[20])
	}

	// Cost line intercepts fixed costs; revenue line starts at zero.
	if math.Abs(chart.CostLine[0]-be.FixedCostsAnnual) > tol {
		t.Errorf("cost line intercept: expected %f, got %f", be.FixedCostsAnnual, chart.CostLine[0])
	}
	if chart.RevenueLine[0] != 0 {
		t.Errorf("revenue line must start at zero, got %f", chart.RevenueLine[0])
	}

	// At 1,500,000 orders (past break-even) revenue exceeds cost.
	if chart.RevenueLine[20] <= chart.CostLine[20] {
		t.Error("revenue should exceed cost past the break-even point")
	}
	if !chart.BreakEvenPoint.Defined {
		t.Error("chart should carry the break-even point")
	}
}
