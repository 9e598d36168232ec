package calc

import "loopbox_model/pkg/core/assumption"

// ComputeBreakEven decomposes the year into fixed and variable costs and
// locates the break-even point. QC is semi-variable and treated as fixed.
//
// The months-to-break-even figure assumes a linear ramp from zero to this
// year's order volume over its operating days. The same ramp is applied
// whichever year's assumptions are passed in, so for Years 2 and 3 it is a
// known approximation, not a multi-year schedule.
func ComputeBreakEven(stmt IncomeStatement, a assumption.Set) BreakEvenResult {
	// Depreciation is negative and kept signed, so it reduces fixed costs.
	fixed := stmt.Opex.Total + stmt.Depreciation

	variable := stmt.Cogs.AmortizationPerOrder +
		a.Cogs.WashCostPerOrder*a.Volume.CollectionRate +
		a.Cogs.CollectionCostPerOrder

	revenuePerOrder := safeDiv(stmt.Revenue.Total, stmt.Revenue.TotalOrders)
	contribution := revenuePerOrder - variable

	result := BreakEvenResult{
		FixedCostsAnnual:           fixed,
		VariableCostPerOrder:       variable,
		RevenuePerOrder:            revenuePerOrder,
		ContributionMarginPerOrder: contribution,
		Orders:                     Undefined(),
		Restaurants:                Undefined(),
		MonthsToBreakEven:          Undefined(),
	}

	if contribution <= 0 {
		return result
	}

	orders := fixed / contribution
	result.Orders = Defined(orders)

	annualOrdersPerRestaurant := a.Volume.OrdersPerRestaurantDay * a.Volume.OperatingDays
	if annualOrdersPerRestaurant > 0 {
		result.Restaurants = Defined(orders / annualOrdersPerRestaurant)
	}

	// Linear ramp: average daily volume spread over 30-day months.
	monthlyOrderGrowth := (stmt.Revenue.TotalOrders / a.Volume.OperatingDays) / 30
	if monthlyOrderGrowth > 0 {
		result.MonthsToBreakEven = Defined(orders / monthlyOrderGrowth / 30)
	}

	return result
}
