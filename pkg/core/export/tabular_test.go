package export

import (
	"strings"
	"testing"
	"time"

	"loopbox_model/pkg/core/calc"
	"loopbox_model/pkg/core/history"
)

func TestBreakEvenTableRendersUndefinedAsInfinity(t *testing.T) {
	be := calc.BreakEvenResult{
		FixedCostsAnnual:           2500000,
		VariableCostPerOrder:       3,
		RevenuePerOrder:            2,
		ContributionMarginPerOrder: -1,
		Orders:                     calc.Undefined(),
		Restaurants:                calc.Undefined(),
		MonthsToBreakEven:          calc.Undefined(),
	}

	table := BreakEvenTable(be)
	if len(table.Rows) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(table.Rows))
	}

	byMetric := map[string]string{}
	for _, row := range table.Rows {
		byMetric[row[0]] = row[1]
	}
	if byMetric["Fixed Costs (Annual)"] != "₹25.0L" {
		t.Errorf("fixed costs: got %q", byMetric["Fixed Costs (Annual)"])
	}
	if byMetric["Contribution Margin/Order"] != "₹-1.00" {
		t.Errorf("contribution margin: got %q", byMetric["Contribution Margin/Order"])
	}
	for _, metric := range []string{"Break-Even Orders", "Break-Even Restaurants", "Months to Break-Even"} {
		if byMetric[metric] != "∞" {
			t.Errorf("%s: expected ∞, got %q", metric, byMetric[metric])
		}
	}
}

func TestBreakEvenTableDefinedValues(t *testing.T) {
	be := calc.BreakEvenResult{
		FixedCostsAnnual:           2500000,
		VariableCostPerOrder:       3,
		RevenuePerOrder:            5,
		ContributionMarginPerOrder: 2,
		Orders:                     calc.Defined(1250000),
		Restaurants:                calc.Defined(416.67),
		MonthsToBreakEven:          calc.Defined(12.5),
	}

	table := BreakEvenTable(be)
	byMetric := map[string]string{}
	for _, row := range table.Rows {
		byMetric[row[0]] = row[1]
	}
	if byMetric["Break-Even Orders"] != "1250000" {
		t.Errorf("orders: got %q", byMetric["Break-Even Orders"])
	}
	if byMetric["Break-Even Restaurants"] != "417" {
		t.Errorf("restaurants: got %q", byMetric["Break-Even Restaurants"])
	}
	if byMetric["Months to Break-Even"] != "12.5" {
		t.Errorf("months: got %q", byMetric["Months to Break-Even"])
	}
}

func TestIncomeStatementTableLayout(t *testing.T) {
	var stmts [3]calc.IncomeStatement
	stmts[0].Revenue.Total = 26625000
	stmts[0].NetIncome = -33626000
	stmts[0].NetMarginPct = -126.3

	table := IncomeStatementTable(stmts, [3]string{"Year 1", "Year 2", "Year 3"})

	if len(table.Headers) != 4 || table.Headers[1] != "Year 1" {
		t.Fatalf("unexpected headers: %v", table.Headers)
	}
	if len(table.Rows) != 24 {
		t.Errorf("expected 24 line items, got %d", len(table.Rows))
	}

	var total, net []string
	for _, row := range table.Rows {
		switch row[0] {
		case "TOTAL REVENUE":
			total = row
		case "NET INCOME":
			net = row
		}
	}
	if total == nil || total[1] != "₹266.2L" {
		t.Errorf("total revenue row: %v", total)
	}
	if net == nil || net[1] != "₹-336.3L" {
		t.Errorf("net income row: %v", net)
	}
}

func TestWriteCSV(t *testing.T) {
	table := Table{
		Title:   "Break-Even Analysis",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Fixed Costs (Annual)", "₹25.0L"},
			{"Break-Even Orders", "∞"},
		},
	}

	var buf strings.Builder
	if err := table.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 csv lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Metric,Value" {
		t.Errorf("header line: %q", lines[0])
	}
	if lines[2] != "Break-Even Orders,∞" {
		t.Errorf("row line: %q", lines[2])
	}
}

func TestHistoryTable(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	records := []history.Record{{
		Timestamp:      ts,
		Variable:       "pricing.per_use_fee",
		Year:           1,
		OldValue:       1.0,
		NewValue:       1.5,
		ImpactAbsolute: 2025000,
		ImpactPct:      6.0,
	}}

	table := HistoryTable(records)
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	row := table.Rows[0]
	if row[0] != "2026-03-14 09:30:00" {
		t.Errorf("timestamp: %q", row[0])
	}
	if row[1] != "Year 1" || row[2] != "pricing.per_use_fee" {
		t.Errorf("year/variable: %q %q", row[1], row[2])
	}
	if row[3] != "1" || row[4] != "1.5" {
		t.Errorf("values: %q %q", row[3], row[4])
	}
	if row[5] != "₹20.2L (+6.0%)" {
		t.Errorf("impact: %q", row[5])
	}
}
