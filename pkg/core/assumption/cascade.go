package assumption

import "math"

// Cascade propagates Year-1 pricing and COGS into Years 2 and 3 with the
// standard scale adjustments: container price drops 3% a year, the Year-3
// monthly fee rises 10%, wash and collection costs fall as hub operations
// mature. Volume and OpEx are NOT cascaded; each year has its own scale and
// is set independently in the defaults file.
func Cascade(years *YearSet) {
	y1, y2, y3 := &years.Year1, &years.Year2, &years.Year3

	// Pricing. Whole-rupee fields are truncated the way the sidebar inputs are.
	y2.Pricing.ContainerPrice = math.Trunc(y1.Pricing.ContainerPrice * 0.97)
	y3.Pricing.ContainerPrice = math.Trunc(y2.Pricing.ContainerPrice * 0.97)

	y2.Pricing.MonthlyFee = y1.Pricing.MonthlyFee
	y3.Pricing.MonthlyFee = math.Trunc(y1.Pricing.MonthlyFee * 1.10)

	y2.Pricing.PerUseFee = y1.Pricing.PerUseFee
	y3.Pricing.PerUseFee = y1.Pricing.PerUseFee

	y2.Pricing.Deposit = y1.Pricing.Deposit
	y3.Pricing.Deposit = y1.Pricing.Deposit

	y2.Pricing.CustomerIncentive = y1.Pricing.CustomerIncentive
	y3.Pricing.CustomerIncentive = y1.Pricing.CustomerIncentive

	// COGS, with year-over-year efficiency gains on wash and collection.
	y2.Cogs.WashCostPerOrder = y1.Cogs.WashCostPerOrder * 0.92
	y3.Cogs.WashCostPerOrder = y2.Cogs.WashCostPerOrder * 0.91

	y2.Cogs.CollectionCostPerOrder = y1.Cogs.CollectionCostPerOrder * 0.90
	y3.Cogs.CollectionCostPerOrder = y2.Cogs.CollectionCostPerOrder * 0.89

	y2.Cogs.ContainerUnitCost = y1.Cogs.ContainerUnitCost
	y3.Cogs.ContainerUnitCost = y1.Cogs.ContainerUnitCost

	y2.Cogs.ContainerLifespanUses = y1.Cogs.ContainerLifespanUses
	y3.Cogs.ContainerLifespanUses = y1.Cogs.ContainerLifespanUses

	y2.Cogs.QCCostPerBatch = y1.Cogs.QCCostPerBatch
	y3.Cogs.QCCostPerBatch = y1.Cogs.QCCostPerBatch

	y2.Cogs.BatchesPerMonth = y1.Cogs.BatchesPerMonth
	y3.Cogs.BatchesPerMonth = y1.Cogs.BatchesPerMonth
}
