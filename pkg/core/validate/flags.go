// Package validate evaluates the fixed red/yellow/green business-rule set
// against computed model results. Rules are independent: the report carries
// every triggered flag, not just the first.
package validate

import (
	"fmt"

	"loopbox_model/pkg/core/assumption"
	"loopbox_model/pkg/core/calc"
)

// Severity grades a triggered flag.
type Severity string

const (
	Red    Severity = "red"
	Yellow Severity = "yellow"
	Green  Severity = "green"
)

// Flag is one triggered rule with the metric that tripped it.
type Flag struct {
	Severity  Severity `json:"severity"`
	Rule      string   `json:"rule"`
	Message   string   `json:"message"`
	Metric    string   `json:"metric"`
	Observed  float64  `json:"observed"`
	Threshold float64  `json:"threshold"`
	Year      int      `json:"year"` // 1..3, or 0 for cross-year rules
}

// Report is the set of all triggered flags.
type Report struct {
	Flags []Flag `json:"flags"`
}

// Count returns the number of flags at the given severity.
func (r *Report) Count(sev Severity) int {
	n := 0
	for _, f := range r.Flags {
		if f.Severity == sev {
			n++
		}
	}
	return n
}

func (r *Report) add(f Flag) { r.Flags = append(r.Flags, f) }

// Rule thresholds. Margins are percentages (0..100), rates are fractions.
const (
	grossMarginThinPct    = 20.0
	grossMarginHealthyPct = 40.0

	collectionRateFloor  = 0.75
	collectionRateTarget = 0.90

	breakEvenMonthsCeiling = 36.0
	breakEvenMonthsWatch   = 24.0
	breakEvenMonthsTarget  = 18.0

	containerEffectiveUsesMin = 60.0

	opexToRevenueCeiling = 1.00
	opexToRevenueWatch   = 0.50

	ltvCacFloor  = 1.0
	ltvCacTarget = 3.0

	restaurantLifetimeYears = 3.0
)

// Evaluate runs every rule against the three computed years. The break-even
// argument is the Year-3 analysis, the horizon the business plans against.
func Evaluate(statements [3]calc.IncomeStatement, assumptions [3]assumption.Set, breakEven calc.BreakEvenResult) Report {
	var report Report

	for i := range statements {
		year := i + 1
		stmt := statements[i]
		a := assumptions[i]
		unit := calc.ComputeUnitEconomics(stmt, a)

		checkGrossMargin(&report, year, stmt)
		checkCollectionRate(&report, year, a)
		checkOrderEconomics(&report, year, unit)
		checkContainerUtilization(&report, year, a)
		checkOpexRatio(&report, year, stmt)
	}

	checkBreakEvenMonths(&report, breakEven)
	checkLTVCAC(&report, statements[2], assumptions[2])
	checkAggregatorStream(&report, statements[2], assumptions[2])

	return report
}

func checkGrossMargin(r *Report, year int, stmt calc.IncomeStatement) {
	gm := stmt.GrossMarginPct
	switch {
	case gm < 0:
		r.add(Flag{Red, "gross_margin_negative",
			fmt.Sprintf("Year %d gross margin is negative", year),
			"gross_margin", gm, 0, year})
	case gm < grossMarginThinPct:
		r.add(Flag{Yellow, "gross_margin_thin",
			fmt.Sprintf("Year %d gross margin is below %.0f%%", year, grossMarginThinPct),
			"gross_margin", gm, grossMarginThinPct, year})
	case gm >= grossMarginHealthyPct:
		r.add(Flag{Green, "gross_margin_healthy",
			fmt.Sprintf("Year %d gross margin is at or above %.0f%%", year, grossMarginHealthyPct),
			"gross_margin", gm, grossMarginHealthyPct, year})
	}
}

func checkCollectionRate(r *Report, year int, a assumption.Set) {
	rate := a.Volume.CollectionRate
	switch {
	case rate < collectionRateFloor:
		r.add(Flag{Red, "collection_rate_low",
			fmt.Sprintf("Year %d collection rate below the %.0f%% reuse floor", year, collectionRateFloor*100),
			"collection_rate", rate, collectionRateFloor, year})
	case rate < collectionRateTarget:
		r.add(Flag{Yellow, "collection_rate_watch",
			fmt.Sprintf("Year %d collection rate below the %.0f%% target", year, collectionRateTarget*100),
			"collection_rate", rate, collectionRateTarget, year})
	default:
		r.add(Flag{Green, "collection_rate_ok",
			fmt.Sprintf("Year %d collection rate supports reuse economics", year),
			"collection_rate", rate, collectionRateTarget, year})
	}
}

func checkOrderEconomics(r *Report, year int, unit calc.UnitEconomics) {
	if unit.RevenuePerOrder <= unit.CogsPerOrder {
		r.add(Flag{Red, "order_economics_inverted",
			fmt.Sprintf("Year %d loses money on every order before OpEx", year),
			"revenue_per_order", unit.RevenuePerOrder, unit.CogsPerOrder, year})
	}
}

func checkContainerUtilization(r *Report, year int, a assumption.Set) {
	// Effective uses a container actually delivers before going missing.
	effectiveUses := a.Cogs.ContainerLifespanUses * a.Volume.CollectionRate
	if effectiveUses < containerEffectiveUsesMin {
		r.add(Flag{Yellow, "container_underutilized",
			fmt.Sprintf("Year %d containers average %.0f uses, under the %.0f needed to amortize", year, effectiveUses, containerEffectiveUsesMin),
			"container_effective_uses", effectiveUses, containerEffectiveUsesMin, year})
	}
}

func checkOpexRatio(r *Report, year int, stmt calc.IncomeStatement) {
	if stmt.Revenue.Total == 0 {
		return
	}
	opexRatio := stmt.Opex.Total / stmt.Revenue.Total
	switch {
	case opexRatio > opexToRevenueCeiling:
		r.add(Flag{Red, "opex_exceeds_revenue",
			fmt.Sprintf("Year %d OpEx exceeds total revenue", year),
			"opex_to_revenue", opexRatio, opexToRevenueCeiling, year})
	case opexRatio > opexToRevenueWatch:
		r.add(Flag{Yellow, "opex_ratio_high",
			fmt.Sprintf("Year %d OpEx consumes over %.0f%% of revenue", year, opexToRevenueWatch*100),
			"opex_to_revenue", opexRatio, opexToRevenueWatch, year})
	}
}

func checkBreakEvenMonths(r *Report, be calc.BreakEvenResult) {
	if !be.MonthsToBreakEven.Defined {
		r.add(Flag{Red, "breakeven_unreachable",
			"No break-even point at the current contribution margin",
			"contribution_margin_per_order", be.ContributionMarginPerOrder, 0, 0})
		return
	}
	months := be.MonthsToBreakEven.Value
	switch {
	case months > breakEvenMonthsCeiling:
		r.add(Flag{Red, "breakeven_too_far",
			fmt.Sprintf("Break-even beyond %.0f months", breakEvenMonthsCeiling),
			"months_to_breakeven", months, breakEvenMonthsCeiling, 0})
	case months > breakEvenMonthsWatch:
		r.add(Flag{Yellow, "breakeven_slow",
			fmt.Sprintf("Break-even beyond %.0f months", breakEvenMonthsWatch),
			"months_to_breakeven", months, breakEvenMonthsWatch, 0})
	case months <= breakEvenMonthsTarget:
		r.add(Flag{Green, "breakeven_on_track",
			fmt.Sprintf("Break-even within %.0f months", breakEvenMonthsTarget),
			"months_to_breakeven", months, breakEvenMonthsTarget, 0})
	}
}

func checkLTVCAC(r *Report, stmt calc.IncomeStatement, a assumption.Set) {
	if a.Volume.NewRestaurantCount == 0 || a.Volume.RestaurantCount == 0 {
		return
	}
	cac := a.Opex.MarketingSpend / a.Volume.NewRestaurantCount
	if cac == 0 {
		return
	}
	ltv := stmt.GrossProfit / a.Volume.RestaurantCount * restaurantLifetimeYears
	ratio := ltv / cac
	switch {
	case ratio < ltvCacFloor:
		r.add(Flag{Red, "ltv_cac_underwater",
			"Restaurant lifetime value does not recover acquisition cost",
			"ltv_cac", ratio, ltvCacFloor, 3})
	case ratio < ltvCacTarget:
		r.add(Flag{Yellow, "ltv_cac_thin",
			fmt.Sprintf("LTV:CAC below the %.0fx target", ltvCacTarget),
			"ltv_cac", ratio, ltvCacTarget, 3})
	default:
		r.add(Flag{Green, "ltv_cac_healthy",
			fmt.Sprintf("LTV:CAC at or above %.0fx", ltvCacTarget),
			"ltv_cac", ratio, ltvCacTarget, 3})
	}
}

// checkAggregatorStream fires when the aggregator stream is configured in
// the base model (green fee and revenue share present) but produces zero
// revenue. Absent fields default to zero, which makes "not modeled" and
// "modeled as zero" look identical; this flag surfaces the second case.
func checkAggregatorStream(r *Report, stmt calc.IncomeStatement, a assumption.Set) {
	configured := a.Pricing.GreenFee > 0 && a.Pricing.RevenueSharePct > 0
	if configured && stmt.Revenue.Aggregator == 0 {
		r.add(Flag{Red, "aggregator_zero",
			"Aggregator revenue is zero but the stream is in the base model",
			"aggregator_revenue", 0, 0, 3})
	}
}
