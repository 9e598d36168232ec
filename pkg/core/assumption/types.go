// Package assumption defines the per-year input parameters for the Loop Box
// financial model and the validation applied to them before calculation.
// Sets are plain value types: copying one is a deep copy, so callers can
// perturb a copy without touching the original.
package assumption

// =============================================================================
// ASSUMPTION SET (One Per Fiscal Year)
// =============================================================================

// Pricing holds the revenue-side levers.
type Pricing struct {
	ContainerPrice    float64 `json:"container_price"`    // ₹ per container sold to restaurant
	MonthlyFee        float64 `json:"monthly_fee"`        // ₹ per restaurant per month
	SetupFee          float64 `json:"setup_fee"`          // ₹ per new restaurant
	PerUseFee         float64 `json:"per_use_fee"`        // ₹ per order
	Deposit           float64 `json:"deposit"`            // ₹ customer deposit per container
	CustomerIncentive float64 `json:"customer_incentive"` // ₹ return incentive
	GreenFee          float64 `json:"green_fee"`          // ₹ per aggregator order (0 when not modeled)
	RevenueSharePct   float64 `json:"revenue_share_pct"`  // share of green fee retained, 0..1
}

// Volume holds the demand-side drivers.
type Volume struct {
	RestaurantCount         float64 `json:"restaurants"`
	NewRestaurantCount      float64 `json:"new_restaurants"`
	OrdersPerRestaurantDay  float64 `json:"orders_per_day"`
	OperatingDays           float64 `json:"operating_days"`
	CollectionRate          float64 `json:"collection_rate"` // fraction of containers retrieved, 0..1
	ShrinkageRate           float64 `json:"shrinkage"`       // fraction of deposits retained, 0..1
	AggregatorOrdersPerDay  float64 `json:"zomato_orders_per_day"`
	AggregatorOperatingDays float64 `json:"zomato_operating_days"`
}

// Cogs holds the per-order and per-batch cost drivers.
type Cogs struct {
	ContainerUnitCost      float64 `json:"container_cost"`
	ContainerLifespanUses  float64 `json:"container_lifespan"`
	WashCostPerOrder       float64 `json:"wash_cost"`
	CollectionCostPerOrder float64 `json:"collection_cost"`
	QCCostPerBatch         float64 `json:"qc_batch_cost"`
	BatchesPerMonth        float64 `json:"batches_per_month"`
}

// Opex holds the operating expense drivers.
type Opex struct {
	TechnologySpend         float64 `json:"technology"`
	MarketingSpend          float64 `json:"marketing"`
	SalesHeadcount          float64 `json:"num_sales_people"`
	AvgSalesSalary          float64 `json:"avg_salary"`
	GASpend                 float64 `json:"ga"`
	HubCount                float64 `json:"num_hubs"`
	RentPerHubPerMonth      float64 `json:"rent_per_hub"`
	EquipmentCostPerHub     float64 `json:"equipment_per_hub"`
	UtilitiesPerHubPerMonth float64 `json:"utilities_per_hub"`
	WorkersPerHub           float64 `json:"workers_per_hub"`
	WorkerSalaryPerMonth    float64 `json:"worker_salary"`
}

// Set is the full assumption set for one fiscal year.
type Set struct {
	Pricing Pricing `json:"pricing"`
	Volume  Volume  `json:"volume"`
	Cogs    Cogs    `json:"cogs"`
	Opex    Opex    `json:"opex"`
}

// YearSet bundles the three modeled fiscal years.
type YearSet struct {
	Year1 Set `json:"year1"`
	Year2 Set `json:"year2"`
	Year3 Set `json:"year3"`
}

// Years returns the three sets in order, for code that iterates.
func (y *YearSet) Years() [3]Set {
	return [3]Set{y.Year1, y.Year2, y.Year3}
}

// TotalOrders is the base order volume for the year:
// restaurants × orders/restaurant/day × operating days.
func (s Set) TotalOrders() float64 {
	return s.Volume.RestaurantCount * s.Volume.OrdersPerRestaurantDay * s.Volume.OperatingDays
}

// MonthsOperating converts operating days into 30-day month equivalents.
func (s Set) MonthsOperating() float64 {
	return s.Volume.OperatingDays / 30.0
}
