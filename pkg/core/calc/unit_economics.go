package calc

import "loopbox_model/pkg/core/assumption"

// ComputeUnitEconomics derives per-order and per-restaurant metrics from a
// computed statement and the assumptions that produced it. Zero orders or
// zero restaurants resolve every dependent metric to 0 rather than erroring.
func ComputeUnitEconomics(stmt IncomeStatement, a assumption.Set) UnitEconomics {
	orders := stmt.Revenue.TotalOrders
	restaurants := a.Volume.RestaurantCount

	revenuePerOrder := safeDiv(stmt.Revenue.Total, orders)
	cogsPerOrder := safeDiv(stmt.Cogs.Total, orders)
	annualRevenue := safeDiv(stmt.Revenue.Total, restaurants)

	return UnitEconomics{
		RevenuePerOrder:     revenuePerOrder,
		CogsPerOrder:        cogsPerOrder,
		GrossProfitPerOrder: revenuePerOrder - cogsPerOrder,
		OpexPerOrder:        safeDiv(stmt.Opex.Total, orders),

		AnnualRevenuePerRestaurant:  annualRevenue,
		MonthlyRevenuePerRestaurant: annualRevenue / 12,
		AnnualOrdersPerRestaurant:   a.Volume.OrdersPerRestaurantDay * a.Volume.OperatingDays,
	}
}
