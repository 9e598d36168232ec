package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"loopbox_model/pkg/core/calc"
	"loopbox_model/pkg/core/history"
	"loopbox_model/pkg/core/sensitivity"
)

// Table is a rendered row/column structure. The presentation layer shows it
// as-is or writes it out with WriteCSV.
type Table struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// WriteCSV writes the table (headers first) as comma-delimited rows.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// metric renders a possibly-undefined metric; the undefined case displays
// as ∞ the way the dashboard always has.
func metric(mv calc.MetricValue, format string) string {
	if !mv.Defined {
		return "∞"
	}
	return fmt.Sprintf(format, mv.Value)
}

// IncomeStatementTable lays out the three years side by side in the
// standard statement order.
func IncomeStatementTable(stmts [3]calc.IncomeStatement, yearLabels [3]string) Table {
	t := Table{
		Title:   "Income Statement (3-Year View)",
		Headers: []string{"Line Item", yearLabels[0], yearLabels[1], yearLabels[2]},
	}

	row := func(label string, pick func(calc.IncomeStatement) string) {
		t.Rows = append(t.Rows, []string{label, pick(stmts[0]), pick(stmts[1]), pick(stmts[2])})
	}
	lakhs := func(get func(calc.IncomeStatement) float64) func(calc.IncomeStatement) string {
		return func(s calc.IncomeStatement) string { return FormatINRLakhs(get(s)) }
	}
	pct := func(get func(calc.IncomeStatement) float64) func(calc.IncomeStatement) string {
		return func(s calc.IncomeStatement) string { return FormatPercent(get(s)) }
	}

	row("Container Usage Fees", lakhs(func(s calc.IncomeStatement) float64 { return s.Revenue.Usage }))
	row("Platform Subscriptions", lakhs(func(s calc.IncomeStatement) float64 { return s.Revenue.Subscription }))
	row("Setup Fees", lakhs(func(s calc.IncomeStatement) float64 { return s.Revenue.Setup }))
	row("Aggregator Revenue", lakhs(func(s calc.IncomeStatement) float64 { return s.Revenue.Aggregator }))
	row("Deposit Shrinkage", lakhs(func(s calc.IncomeStatement) float64 { return s.Revenue.Shrinkage }))
	row("TOTAL REVENUE", lakhs(func(s calc.IncomeStatement) float64 { return s.Revenue.Total }))
	row("Container Amortization", lakhs(func(s calc.IncomeStatement) float64 { return s.Cogs.Amortization }))
	row("Washing & Sanitation", lakhs(func(s calc.IncomeStatement) float64 { return s.Cogs.Washing }))
	row("Collection & Logistics", lakhs(func(s calc.IncomeStatement) float64 { return s.Cogs.Collection }))
	row("Quality Control Testing", lakhs(func(s calc.IncomeStatement) float64 { return s.Cogs.QC }))
	row("TOTAL COGS", lakhs(func(s calc.IncomeStatement) float64 { return s.Cogs.Total }))
	row("GROSS PROFIT", lakhs(func(s calc.IncomeStatement) float64 { return s.GrossProfit }))
	row("Gross Margin %", pct(func(s calc.IncomeStatement) float64 { return s.GrossMarginPct }))
	row("Technology & Platform", lakhs(func(s calc.IncomeStatement) float64 { return s.Opex.Technology }))
	row("Sales & Marketing", lakhs(func(s calc.IncomeStatement) float64 { return s.Opex.Marketing + s.Opex.SalesSalaries }))
	row("General & Administrative", lakhs(func(s calc.IncomeStatement) float64 { return s.Opex.GA }))
	row("Facility Costs (Micro-hubs)", lakhs(func(s calc.IncomeStatement) float64 { return s.Opex.Facility }))
	row("TOTAL OPEX", lakhs(func(s calc.IncomeStatement) float64 { return s.Opex.Total }))
	row("EBITDA", lakhs(func(s calc.IncomeStatement) float64 { return s.EBITDA }))
	row("EBITDA Margin %", pct(func(s calc.IncomeStatement) float64 { return s.EBITDAMarginPct }))
	row("Depreciation & Amortization", lakhs(func(s calc.IncomeStatement) float64 { return s.Depreciation }))
	row("Interest Income", lakhs(func(s calc.IncomeStatement) float64 { return s.InterestIncome }))
	row("NET INCOME", lakhs(func(s calc.IncomeStatement) float64 { return s.NetIncome }))
	row("Net Margin %", pct(func(s calc.IncomeStatement) float64 { return s.NetMarginPct }))

	return t
}

// UnitEconomicsTable lays out per-order and per-restaurant metrics by year.
func UnitEconomicsTable(units [3]calc.UnitEconomics, yearLabels [3]string) Table {
	t := Table{
		Title:   "Unit Economics",
		Headers: []string{"Metric", yearLabels[0], yearLabels[1], yearLabels[2]},
	}
	row := func(label string, pick func(calc.UnitEconomics) string) {
		t.Rows = append(t.Rows, []string{label, pick(units[0]), pick(units[1]), pick(units[2])})
	}

	row("Revenue/Order", func(u calc.UnitEconomics) string { return FormatRupees(u.RevenuePerOrder) })
	row("COGS/Order", func(u calc.UnitEconomics) string { return FormatRupees(u.CogsPerOrder) })
	row("Gross Profit/Order", func(u calc.UnitEconomics) string { return FormatRupees(u.GrossProfitPerOrder) })
	row("OpEx/Order", func(u calc.UnitEconomics) string { return FormatRupees(u.OpexPerOrder) })
	row("Annual Revenue/Restaurant", func(u calc.UnitEconomics) string { return FormatINRLakhs(u.AnnualRevenuePerRestaurant) })
	row("Monthly Revenue/Restaurant", func(u calc.UnitEconomics) string { return FormatINRLakhs(u.MonthlyRevenuePerRestaurant) })
	row("Annual Orders/Restaurant", func(u calc.UnitEconomics) string { return fmt.Sprintf("%.0f", u.AnnualOrdersPerRestaurant) })

	return t
}

// BreakEvenTable lays out the break-even decomposition as metric/value rows.
func BreakEvenTable(be calc.BreakEvenResult) Table {
	return Table{
		Title:   "Break-Even Analysis",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Fixed Costs (Annual)", FormatINRLakhs(be.FixedCostsAnnual)},
			{"Variable Cost/Order", FormatRupees(be.VariableCostPerOrder)},
			{"Revenue/Order", FormatRupees(be.RevenuePerOrder)},
			{"Contribution Margin/Order", FormatRupees(be.ContributionMarginPerOrder)},
			{"Break-Even Orders", metric(be.Orders, "%.0f")},
			{"Break-Even Restaurants", metric(be.Restaurants, "%.0f")},
			{"Months to Break-Even", metric(be.MonthsToBreakEven, "%.1f")},
		},
	}
}

// SensitivityTable compares the base case against every catalogue scenario.
func SensitivityTable(base calc.BreakEvenResult, results []sensitivity.ScenarioResult) Table {
	t := Table{
		Title:   "Sensitivity Analysis - Break-Even Impact",
		Headers: []string{"Scenario", "Break-Even Orders", "Break-Even Restaurants", "Months to Break-Even", "Net Income Impact"},
	}

	t.Rows = append(t.Rows, []string{
		"Base Case",
		metric(base.Orders, "%.0f"),
		metric(base.Restaurants, "%.0f"),
		metric(base.MonthsToBreakEven, "%.1f"),
		"-",
	})
	for _, sr := range results {
		be := sr.Result.PerturbedBreakEven
		t.Rows = append(t.Rows, []string{
			sr.Scenario.Label,
			metric(be.Orders, "%.0f"),
			metric(be.Restaurants, "%.0f"),
			metric(be.MonthsToBreakEven, "%.1f"),
			fmt.Sprintf("%s (%+.1f%%)", FormatINRLakhs(sr.Result.DeltaAbsolute), sr.Result.DeltaPct),
		})
	}
	return t
}

// HistoryTable lays out the change log the way the dashboard shows it.
func HistoryTable(records []history.Record) Table {
	t := Table{
		Title:   "Change History",
		Headers: []string{"Timestamp", "Year", "Variable", "Old Value", "New Value", "Impact on Year 3 Net Income"},
	}
	for _, rec := range records {
		sign := ""
		if rec.ImpactPct >= 0 {
			sign = "+"
		}
		t.Rows = append(t.Rows, []string{
			rec.Timestamp.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("Year %d", rec.Year),
			rec.Variable,
			fmt.Sprintf("%g", rec.OldValue),
			fmt.Sprintf("%g", rec.NewValue),
			fmt.Sprintf("%s (%s%.1f%%)", FormatINRLakhs(rec.ImpactAbsolute), sign, rec.ImpactPct),
		})
	}
	return t
}
