package assumption

import (
	"fmt"
	"sort"
)

// =============================================================================
// FIELD PATH REGISTRY
// =============================================================================

// Fields are addressed by dotted path ("volume.collection_rate"). The
// sensitivity engine and the change history both work in terms of these
// paths, and scenario files use the same names as JSON keys.

type fieldAccessor struct {
	get func(*Set) float64
	set func(*Set, float64)
}

var fieldRegistry = map[string]fieldAccessor{
	"pricing.container_price":    {func(s *Set) float64 { return s.Pricing.ContainerPrice }, func(s *Set, v float64) { s.Pricing.ContainerPrice = v }},
	"pricing.monthly_fee":        {func(s *Set) float64 { return s.Pricing.MonthlyFee }, func(s *Set, v float64) { s.Pricing.MonthlyFee = v }},
	"pricing.setup_fee":          {func(s *Set) float64 { return s.Pricing.SetupFee }, func(s *Set, v float64) { s.Pricing.SetupFee = v }},
	"pricing.per_use_fee":        {func(s *Set) float64 { return s.Pricing.PerUseFee }, func(s *Set, v float64) { s.Pricing.PerUseFee = v }},
	"pricing.deposit":            {func(s *Set) float64 { return s.Pricing.Deposit }, func(s *Set, v float64) { s.Pricing.Deposit = v }},
	"pricing.customer_incentive": {func(s *Set) float64 { return s.Pricing.CustomerIncentive }, func(s *Set, v float64) { s.Pricing.CustomerIncentive = v }},
	"pricing.green_fee":          {func(s *Set) float64 { return s.Pricing.GreenFee }, func(s *Set, v float64) { s.Pricing.GreenFee = v }},
	"pricing.revenue_share_pct":  {func(s *Set) float64 { return s.Pricing.RevenueSharePct }, func(s *Set, v float64) { s.Pricing.RevenueSharePct = v }},

	"volume.restaurants":           {func(s *Set) float64 { return s.Volume.RestaurantCount }, func(s *Set, v float64) { s.Volume.RestaurantCount = v }},
	"volume.new_restaurants":       {func(s *Set) float64 { return s.Volume.NewRestaurantCount }, func(s *Set, v float64) { s.Volume.NewRestaurantCount = v }},
	"volume.orders_per_day":        {func(s *Set) float64 { return s.Volume.OrdersPerRestaurantDay }, func(s *Set, v float64) { s.Volume.OrdersPerRestaurantDay = v }},
	"volume.operating_days":        {func(s *Set) float64 { return s.Volume.OperatingDays }, func(s *Set, v float64) { s.Volume.OperatingDays = v }},
	"volume.collection_rate":       {func(s *Set) float64 { return s.Volume.CollectionRate }, func(s *Set, v float64) { s.Volume.CollectionRate = v }},
	"volume.shrinkage":             {func(s *Set) float64 { return s.Volume.ShrinkageRate }, func(s *Set, v float64) { s.Volume.ShrinkageRate = v }},
	"volume.zomato_orders_per_day": {func(s *Set) float64 { return s.Volume.AggregatorOrdersPerDay }, func(s *Set, v float64) { s.Volume.AggregatorOrdersPerDay = v }},
	"volume.zomato_operating_days": {func(s *Set) float64 { return s.Volume.AggregatorOperatingDays }, func(s *Set, v float64) { s.Volume.AggregatorOperatingDays = v }},

	"cogs.container_cost":     {func(s *Set) float64 { return s.Cogs.ContainerUnitCost }, func(s *Set, v float64) { s.Cogs.ContainerUnitCost = v }},
	"cogs.container_lifespan": {func(s *Set) float64 { return s.Cogs.ContainerLifespanUses }, func(s *Set, v float64) { s.Cogs.ContainerLifespanUses = v }},
	"cogs.wash_cost":          {func(s *Set) float64 { return s.Cogs.WashCostPerOrder }, func(s *Set, v float64) { s.Cogs.WashCostPerOrder = v }},
	"cogs.collection_cost":    {func(s *Set) float64 { return s.Cogs.CollectionCostPerOrder }, func(s *Set, v float64) { s.Cogs.CollectionCostPerOrder = v }},
	"cogs.qc_batch_cost":      {func(s *Set) float64 { return s.Cogs.QCCostPerBatch }, func(s *Set, v float64) { s.Cogs.QCCostPerBatch = v }},
	"cogs.batches_per_month":  {func(s *Set) float64 { return s.Cogs.BatchesPerMonth }, func(s *Set, v float64) { s.Cogs.BatchesPerMonth = v }},

	"opex.technology":        {func(s *Set) float64 { return s.Opex.TechnologySpend }, func(s *Set, v float64) { s.Opex.TechnologySpend = v }},
	"opex.marketing":         {func(s *Set) float64 { return s.Opex.MarketingSpend }, func(s *Set, v float64) { s.Opex.MarketingSpend = v }},
	"opex.num_sales_people":  {func(s *Set) float64 { return s.Opex.SalesHeadcount }, func(s *Set, v float64) { s.Opex.SalesHeadcount = v }},
	"opex.avg_salary":        {func(s *Set) float64 { return s.Opex.AvgSalesSalary }, func(s *Set, v float64) { s.Opex.AvgSalesSalary = v }},
	"opex.ga":                {func(s *Set) float64 { return s.Opex.GASpend }, func(s *Set, v float64) { s.Opex.GASpend = v }},
	"opex.num_hubs":          {func(s *Set) float64 { return s.Opex.HubCount }, func(s *Set, v float64) { s.Opex.HubCount = v }},
	"opex.rent_per_hub":      {func(s *Set) float64 { return s.Opex.RentPerHubPerMonth }, func(s *Set, v float64) { s.Opex.RentPerHubPerMonth = v }},
	"opex.equipment_per_hub": {func(s *Set) float64 { return s.Opex.EquipmentCostPerHub }, func(s *Set, v float64) { s.Opex.EquipmentCostPerHub = v }},
	"opex.utilities_per_hub": {func(s *Set) float64 { return s.Opex.UtilitiesPerHubPerMonth }, func(s *Set, v float64) { s.Opex.UtilitiesPerHubPerMonth = v }},
	"opex.workers_per_hub":   {func(s *Set) float64 { return s.Opex.WorkersPerHub }, func(s *Set, v float64) { s.Opex.WorkersPerHub = v }},
	"opex.worker_salary":     {func(s *Set) float64 { return s.Opex.WorkerSalaryPerMonth }, func(s *Set, v float64) { s.Opex.WorkerSalaryPerMonth = v }},
}

// FieldPaths returns every known dotted field path in stable order.
func FieldPaths() []string {
	paths := make([]string, 0, len(fieldRegistry))
	for p := range fieldRegistry {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Get reads one field by dotted path.
func Get(s Set, path string) (float64, error) {
	acc, ok := fieldRegistry[path]
	if !ok {
		return 0, fmt.Errorf("unknown assumption field '%s'", path)
	}
	return acc.get(&s), nil
}

// Apply returns a copy of s with one field replaced. The receiver set is
// never modified.
func Apply(s Set, path string, value float64) (Set, error) {
	acc, ok := fieldRegistry[path]
	if !ok {
		return s, fmt.Errorf("unknown assumption field '%s'", path)
	}
	out := s
	acc.set(&out, value)
	return out, nil
}

// Flatten returns the set as a flat path -> value map, the serializable
// key-value form scenario files and exports work with.
func Flatten(s Set) map[string]float64 {
	flat := make(map[string]float64, len(fieldRegistry))
	for path, acc := range fieldRegistry {
		flat[path] = acc.get(&s)
	}
	return flat
}
