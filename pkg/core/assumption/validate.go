package assumption

import "fmt"

// InvalidAssumptionError reports a field whose value is outside its
// documented range. It is fatal to the single computation that observed it,
// never to the session: the caller fixes the input and recomputes.
type InvalidAssumptionError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidAssumptionError) Error() string {
	return fmt.Sprintf("invalid assumption %s=%g: %s", e.Field, e.Value, e.Reason)
}

func invalid(field string, value float64, reason string) error {
	return &InvalidAssumptionError{Field: field, Value: value, Reason: reason}
}

// Validate checks the documented ranges of every field. It is called at
// computation time rather than at input time, so the calculators stay pure
// functions of whatever set they are handed.
func (s Set) Validate() error {
	// Rates live in [0,1].
	if s.Volume.CollectionRate < 0 || s.Volume.CollectionRate > 1 {
		return invalid("volume.collection_rate", s.Volume.CollectionRate, "must be within [0,1]")
	}
	if s.Volume.ShrinkageRate < 0 || s.Volume.ShrinkageRate > 1 {
		return invalid("volume.shrinkage", s.Volume.ShrinkageRate, "must be within [0,1]")
	}
	if s.Pricing.RevenueSharePct < 0 || s.Pricing.RevenueSharePct > 1 {
		return invalid("pricing.revenue_share_pct", s.Pricing.RevenueSharePct, "must be within [0,1]")
	}

	// Divisors must be strictly positive.
	if s.Cogs.ContainerLifespanUses <= 0 {
		return invalid("cogs.container_lifespan", s.Cogs.ContainerLifespanUses, "must be > 0")
	}
	if s.Volume.OperatingDays <= 0 {
		return invalid("volume.operating_days", s.Volume.OperatingDays, "must be > 0")
	}
	if s.Volume.OrdersPerRestaurantDay <= 0 {
		return invalid("volume.orders_per_day", s.Volume.OrdersPerRestaurantDay, "must be > 0")
	}

	// Every monetary and count field must be non-negative.
	for _, path := range FieldPaths() {
		v, _ := Get(s, path)
		if v < 0 {
			return invalid(path, v, "must be >= 0")
		}
	}
	return nil
}
