// Package calc provides the deterministic financial calculations of the
// Loop Box model: the yearly income statement, unit economics and break-even
// analysis. Every function is a pure function of its inputs and safe to call
// concurrently with different arguments.
package calc

// =============================================================================
// INCOME STATEMENT
// =============================================================================

// RevenueBreakdown holds the five revenue streams plus their sum.
type RevenueBreakdown struct {
	TotalOrders  float64 `json:"total_orders"`
	Usage        float64 `json:"usage_revenue"`        // per-use fees
	Subscription float64 `json:"subscription_revenue"` // monthly platform fees
	Setup        float64 `json:"setup_revenue"`        // onboarding fees
	Shrinkage    float64 `json:"shrinkage_revenue"`    // retained deposits
	Aggregator   float64 `json:"aggregator_revenue"`   // Zomato/Swiggy green fees
	Total        float64 `json:"total_revenue"`
}

// CogsBreakdown holds the four cost-of-goods lines plus their sum.
type CogsBreakdown struct {
	AmortizationPerOrder float64 `json:"amortization_per_order"`
	Amortization         float64 `json:"amortization"`
	Washing              float64 `json:"washing"`
	Collection           float64 `json:"collection"`
	QC                   float64 `json:"qc"`
	Total                float64 `json:"total_cogs"`
}

// OpexBreakdown holds the operating expense lines plus their sum.
type OpexBreakdown struct {
	Technology    float64 `json:"technology"`
	Marketing     float64 `json:"marketing"`
	SalesSalaries float64 `json:"sales_salaries"`
	GA            float64 `json:"ga"`
	Facility      float64 `json:"facility_costs"` // micro-hub rent, utilities, labor
	Total         float64 `json:"total_opex"`
}

// IncomeStatement is the consolidated result for one fiscal year. It is
// created fresh on every recomputation and never mutated in place, so
// history and comparisons stay correct. Margin percentages are 0..100 and
// resolve to 0 when total revenue is 0.
type IncomeStatement struct {
	Revenue RevenueBreakdown `json:"revenue"`
	Cogs    CogsBreakdown    `json:"cogs"`

	GrossProfit    float64 `json:"gross_profit"`
	GrossMarginPct float64 `json:"gross_margin"`

	Opex OpexBreakdown `json:"opex"`

	EBITDA          float64 `json:"ebitda"`
	EBITDAMarginPct float64 `json:"ebitda_margin"`

	Depreciation   float64 `json:"depreciation"` // negative
	InterestIncome float64 `json:"interest"`

	NetIncome    float64 `json:"net_income"`
	NetMarginPct float64 `json:"net_margin"`
}

// =============================================================================
// DERIVED RESULT TYPES
// =============================================================================

// UnitEconomics holds per-order and per-restaurant metrics. All of them are
// 0 when the relevant denominator (orders, restaurants) is 0.
type UnitEconomics struct {
	RevenuePerOrder     float64 `json:"revenue_per_order"`
	CogsPerOrder        float64 `json:"cogs_per_order"`
	GrossProfitPerOrder float64 `json:"gross_profit_per_order"`
	OpexPerOrder        float64 `json:"opex_per_order"`

	AnnualRevenuePerRestaurant  float64 `json:"annual_revenue_per_restaurant"`
	MonthlyRevenuePerRestaurant float64 `json:"monthly_revenue_per_restaurant"`
	AnnualOrdersPerRestaurant   float64 `json:"annual_orders_per_restaurant"`
}

// MetricValue is a metric that may be undefined (a break-even point that is
// never reached). Undefined values carry Defined=false instead of NaN or
// ±Inf, so nothing degenerate leaks into display or serialization.
type MetricValue struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// Defined wraps a concrete metric value.
func Defined(v float64) MetricValue { return MetricValue{Value: v, Defined: true} }

// Undefined is the tagged "no break-even" value.
func Undefined() MetricValue { return MetricValue{} }

// BreakEvenResult holds the fixed/variable cost decomposition and the
// break-even point expressed in orders, restaurants and months.
type BreakEvenResult struct {
	FixedCostsAnnual           float64 `json:"fixed_costs_annual"`
	VariableCostPerOrder       float64 `json:"variable_cost_per_order"`
	RevenuePerOrder            float64 `json:"revenue_per_order"`
	ContributionMarginPerOrder float64 `json:"contribution_margin_per_order"`

	Orders            MetricValue `json:"breakeven_orders"`
	Restaurants       MetricValue `json:"breakeven_restaurants"`
	MonthsToBreakEven MetricValue `json:"months_to_breakeven"`
}

// ratio returns num/den ×100, or 0 when den is 0. Zero revenue is a valid
// (if bad) business outcome, not an error.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

// safeDiv returns num/den, or 0 when den is 0.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
