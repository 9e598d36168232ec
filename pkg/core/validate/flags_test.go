package validate

import (
	"testing"

	"loopbox_model/pkg/core/assumption"
	"loopbox_model/pkg/core/calc"
)

func yearOne() assumption.Set {
	return assumption.Set{
		Pricing: assumption.Pricing{
			ContainerPrice: 150, MonthlyFee: 5000, SetupFee: 10000,
			PerUseFee: 1.0, Deposit: 15, CustomerIncentive: 5,
		},
		Volume: assumption.Volume{
			RestaurantCount: 300, NewRestaurantCount: 300,
			OrdersPerRestaurantDay: 50, OperatingDays: 270,
			CollectionRate: 0.92, ShrinkageRate: 0.10,
		},
		Cogs: assumption.Cogs{
			ContainerUnitCost: 150, ContainerLifespanUses: 100,
			WashCostPerOrder: 3.0, CollectionCostPerOrder: 2.5,
			QCCostPerBatch: 10000, BatchesPerMonth: 4,
		},
		Opex: assumption.Opex{
			TechnologySpend: 8000000, MarketingSpend: 5000000,
			SalesHeadcount: 10, AvgSalesSalary: 600000, GASpend: 4000000,
			HubCount: 3, RentPerHubPerMonth: 100000, UtilitiesPerHubPerMonth: 25000,
			WorkersPerHub: 8, WorkerSalaryPerMonth: 18000,
		},
	}
}

func evaluate(t *testing.T, years [3]assumption.Set, be calc.BreakEvenResult) Report {
	t.Helper()
	var statements [3]calc.IncomeStatement
	for i, a := range years {
		stmt, err := calc.ComputeIncomeStatement(a)
		if err != nil {
			t.Fatalf("year %d computation failed: %v", i+1, err)
		}
		statements[i] = stmt
	}
	return Evaluate(statements, years, be)
}

func rules(r Report) map[string][]Flag {
	byRule := map[string][]Flag{}
	for _, f := range r.Flags {
		byRule[f.Rule] = append(byRule[f.Rule], f)
	}
	return byRule
}

func TestEvaluateReportsEveryTriggeredRule(t *testing.T) {
	years := [3]assumption.Set{yearOne(), yearOne(), yearOne()}
	be := calc.BreakEvenResult{
		ContributionMarginPerOrder: -0.5,
		Orders:                     calc.Undefined(),
		Restaurants:                calc.Undefined(),
		MonthsToBreakEven:          calc.Undefined(),
	}

	report := evaluate(t, years, be)
	byRule := rules(report)

	// Negative gross margin, inverted order economics and OpEx above revenue
	// all fire independently, once per year.
	for _, rule := range []string{"gross_margin_negative", "order_economics_inverted", "opex_exceeds_revenue"} {
		if len(byRule[rule]) != 3 {
			t.Errorf("%s: expected 3 flags (one per year), got %d", rule, len(byRule[rule]))
		}
	}
	// 0.92 collection sits between the 0.75 floor and the 0.90 target.
	if len(byRule["collection_rate_ok"]) != 3 {
		t.Errorf("collection_rate_ok: expected 3 green flags, got %d", len(byRule["collection_rate_ok"]))
	}
	if len(byRule["breakeven_unreachable"]) != 1 {
		t.Errorf("breakeven_unreachable: expected 1 flag, got %d", len(byRule["breakeven_unreachable"]))
	}
	if len(byRule["ltv_cac_underwater"]) != 1 {
		t.Errorf("ltv_cac_underwater: expected 1 flag, got %d", len(byRule["ltv_cac_underwater"]))
	}
	// 100 lifespan × 0.92 collection = 92 effective uses, above the minimum.
	if len(byRule["container_underutilized"]) != 0 {
		t.Error("container_underutilized should not fire at 92 effective uses")
	}

	if got := report.Count(Red); got < 5 {
		t.Errorf("expected at least 5 red flags in the loss-making fixture, got %d", got)
	}
}

func TestCollectionRateGrades(t *testing.T) {
	cases := []struct {
		rate float64
		rule string
		sev  Severity
	}{
		{0.60, "collection_rate_low", Red},
		{0.85, "collection_rate_watch", Yellow},
		{0.95, "collection_rate_ok", Green},
	}
	for _, tc := range cases {
		a := yearOne()
		a.Volume.CollectionRate = tc.rate
		report := evaluate(t, [3]assumption.Set{a, a, a}, calc.BreakEvenResult{MonthsToBreakEven: calc.Defined(12)})
		byRule := rules(report)
		flags := byRule[tc.rule]
		if len(flags) != 3 {
			t.Errorf("rate %.2f: expected 3 %s flags, got %d", tc.rate, tc.rule, len(flags))
			continue
		}
		if flags[0].Severity != tc.sev {
			t.Errorf("rate %.2f: expected severity %s, got %s", tc.rate, tc.sev, flags[0].Severity)
		}
	}
}

func TestBreakEvenMonthsGrades(t *testing.T) {
	cases := []struct {
		months float64
		rule   string
	}{
		{48, "breakeven_too_far"},
		{30, "breakeven_slow"},
		{12, "breakeven_on_track"},
	}
	years := [3]assumption.Set{yearOne(), yearOne(), yearOne()}
	for _, tc := range cases {
		report := evaluate(t, years, calc.BreakEvenResult{MonthsToBreakEven: calc.Defined(tc.months)})
		if len(rules(report)[tc.rule]) != 1 {
			t.Errorf("months %.0f: expected rule %s to fire once", tc.months, tc.rule)
		}
	}
	// 20 months sits between target and watch: no months flag either way.
	report := evaluate(t, years, calc.BreakEvenResult{MonthsToBreakEven: calc.Defined(20)})
	byRule := rules(report)
	for _, rule := range []string{"breakeven_too_far", "breakeven_slow", "breakeven_on_track"} {
		if len(byRule[rule]) != 0 {
			t.Errorf("months 20: rule %s should not fire", rule)
		}
	}
}

func TestContainerUnderutilized(t *testing.T) {
	a := yearOne()
	a.Volume.CollectionRate = 0.50 // 100 × 0.50 = 50 effective uses
	report := evaluate(t, [3]assumption.Set{a, a, a}, calc.BreakEvenResult{MonthsToBreakEven: calc.Defined(12)})
	if len(rules(report)["container_underutilized"]) != 3 {
		t.Error("expected container_underutilized for every year at 50 effective uses")
	}
}

func TestAggregatorZeroFlag(t *testing.T) {
	y3 := yearOne()
	y3.Pricing.GreenFee = 2.0
	y3.Pricing.RevenueSharePct = 0.5
	// Aggregator volume left at zero: configured stream, no revenue.

	years := [3]assumption.Set{yearOne(), yearOne(), y3}
	report := evaluate(t, years, calc.BreakEvenResult{MonthsToBreakEven: calc.Defined(12)})

	flags := rules(report)["aggregator_zero"]
	if len(flags) != 1 {
		t.Fatalf("expected 1 aggregator_zero flag, got %d", len(flags))
	}
	if flags[0].Severity != Red || flags[0].Year != 3 {
		t.Errorf("expected red Year-3 flag, got %s year %d", flags[0].Severity, flags[0].Year)
	}

	// Stream not configured at all: silence, not a flag.
	years[2] = yearOne()
	report = evaluate(t, years, calc.BreakEvenResult{MonthsToBreakEven: calc.Defined(12)})
	if len(rules(report)["aggregator_zero"]) != 0 {
		t.Error("aggregator_zero must not fire when the stream is not configured")
	}
}
