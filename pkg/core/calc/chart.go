package calc

// ChartData is the break-even visualization series: revenue and total cost
// over a range of order volumes, plus the crossing point when it exists.
type ChartData struct {
	OrdersRange    []float64   `json:"orders_range"`
	RevenueLine    []float64   `json:"revenue_line"`
	CostLine       []float64   `json:"cost_line"`
	BreakEvenPoint MetricValue `json:"breakeven_point"`
}

const chartSteps = 20

// BreakEvenChartData samples revenue and cost lines from zero up to 150% of
// targetOrders in 20 steps. Revenue is per-order revenue × orders; cost is
// fixed costs plus per-order variable cost × orders.
func BreakEvenChartData(be BreakEvenResult, targetOrders float64) ChartData {
	maxOrders := targetOrders * 1.5
	stepSize := maxOrders / chartSteps

	data := ChartData{
		OrdersRange:    make([]float64, 0, chartSteps+1),
		RevenueLine:    make([]float64, 0, chartSteps+1),
		CostLine:       make([]float64, 0, chartSteps+1),
		BreakEvenPoint: be.Orders,
	}

	for i := 0; i <= chartSteps; i++ {
		orders := float64(i) * stepSize
		data.OrdersRange = append(data.OrdersRange, orders)
		data.RevenueLine = append(data.RevenueLine, orders*be.RevenuePerOrder)
		data.CostLine = append(data.CostLine, be.FixedCostsAnnual+orders*be.VariableCostPerOrder)
	}
	return data
}
