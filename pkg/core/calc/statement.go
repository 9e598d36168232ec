package calc

import "loopbox_model/pkg/core/assumption"

// ComputeIncomeStatement maps one year's assumptions to a full income
// statement. It validates the assumption set first and returns an
// assumption.InvalidAssumptionError when a field is out of range; it never
// divides by zero silently.
func ComputeIncomeStatement(a assumption.Set) (IncomeStatement, error) {
	if err := a.Validate(); err != nil {
		return IncomeStatement{}, err
	}

	rev := computeRevenue(a)
	cogs := computeCogs(a, rev.TotalOrders)
	opex := computeOpex(a)

	grossProfit := rev.Total - cogs.Total
	ebitda := grossProfit - opex.Total
	depreciation := evalTiers(depreciationTiers, a)
	interest := evalTiers(interestTiers, a)
	netIncome := ebitda + depreciation + interest

	return IncomeStatement{
		Revenue:         rev,
		Cogs:            cogs,
		GrossProfit:     grossProfit,
		GrossMarginPct:  ratio(grossProfit, rev.Total),
		Opex:            opex,
		EBITDA:          ebitda,
		EBITDAMarginPct: ratio(ebitda, rev.Total),
		Depreciation:    depreciation,
		InterestIncome:  interest,
		NetIncome:       netIncome,
		NetMarginPct:    ratio(netIncome, rev.Total),
	}, nil
}

func computeRevenue(a assumption.Set) RevenueBreakdown {
	totalOrders := a.TotalOrders()

	usage := totalOrders * a.Pricing.PerUseFee
	subscription := a.Volume.RestaurantCount * a.Pricing.MonthlyFee * a.MonthsOperating()
	setup := a.Volume.NewRestaurantCount * a.Pricing.SetupFee
	shrinkage := totalOrders * a.Pricing.Deposit * a.Volume.ShrinkageRate

	// Aggregator (Zomato/Swiggy) is an optional stream: absent fields are
	// zero, which zeroes the product rather than erroring.
	aggregator := a.Volume.AggregatorOrdersPerDay * a.Volume.AggregatorOperatingDays *
		a.Pricing.GreenFee * a.Pricing.RevenueSharePct

	return RevenueBreakdown{
		TotalOrders:  totalOrders,
		Usage:        usage,
		Subscription: subscription,
		Setup:        setup,
		Shrinkage:    shrinkage,
		Aggregator:   aggregator,
		Total:        usage + subscription + setup + shrinkage + aggregator,
	}
}

func computeCogs(a assumption.Set, totalOrders float64) CogsBreakdown {
	// Lifespan > 0 is guaranteed by Validate.
	amortPerOrder := a.Cogs.ContainerUnitCost / a.Cogs.ContainerLifespanUses

	amortization := totalOrders * amortPerOrder
	// Only collected containers get washed.
	washing := totalOrders * a.Volume.CollectionRate * a.Cogs.WashCostPerOrder
	collection := totalOrders * a.Cogs.CollectionCostPerOrder
	qc := a.Cogs.QCCostPerBatch * a.Cogs.BatchesPerMonth * a.MonthsOperating()

	return CogsBreakdown{
		AmortizationPerOrder: amortPerOrder,
		Amortization:         amortization,
		Washing:              washing,
		Collection:           collection,
		QC:                   qc,
		Total:                amortization + washing + collection + qc,
	}
}

func computeOpex(a assumption.Set) OpexBreakdown {
	salesSalaries := a.Opex.SalesHeadcount * a.Opex.AvgSalesSalary

	monthly := a.Opex.RentPerHubPerMonth + a.Opex.UtilitiesPerHubPerMonth +
		a.Opex.WorkersPerHub*a.Opex.WorkerSalaryPerMonth
	facility := a.Opex.HubCount * a.MonthsOperating() * monthly

	return OpexBreakdown{
		Technology:    a.Opex.TechnologySpend,
		Marketing:     a.Opex.MarketingSpend,
		SalesSalaries: salesSalaries,
		GA:            a.Opex.GASpend,
		Facility:      facility,
		Total:         a.Opex.TechnologySpend + a.Opex.MarketingSpend + salesSalaries + a.Opex.GASpend + facility,
	}
}

// =============================================================================
// BELOW-THE-LINE TIER POLICY
// =============================================================================

// Depreciation and interest income are deliberately coarse step functions of
// operating duration and restaurant scale: an ordered list of
// (predicate, value) pairs evaluated top-down, first match wins.

type tier struct {
	applies func(a assumption.Set) bool
	value   float64
}

var depreciationTiers = []tier{
	{func(a assumption.Set) bool { return a.Volume.OperatingDays < 365 }, -2_500_000},
	{func(a assumption.Set) bool { return a.Volume.RestaurantCount < 2000 }, -6_000_000},
	{func(a assumption.Set) bool { return true }, -14_500_000},
}

var interestTiers = []tier{
	{func(a assumption.Set) bool { return a.Volume.OperatingDays < 365 }, 250_000},
	{func(a assumption.Set) bool { return a.Volume.RestaurantCount < 2000 }, 500_000},
	{func(a assumption.Set) bool { return true }, 1_500_000},
}

func evalTiers(tiers []tier, a assumption.Set) float64 {
	for _, t := range tiers {
		if t.applies(a) {
			return t.value
		}
	}
	return 0
}
