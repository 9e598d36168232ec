// Package model exposes the calculation engine over HTTP for the dashboard
// frontend.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"loopbox_model/pkg/core/assumption"
	"loopbox_model/pkg/core/calc"
	"loopbox_model/pkg/core/report"
	"loopbox_model/pkg/core/sensitivity"
	"loopbox_model/pkg/core/validate"
)

var defaultYears *assumption.YearSet

// InitHandler stores the loaded default assumptions for the defaults
// endpoint.
func InitHandler(defaults *assumption.YearSet) {
	defaultYears = defaults
}

func cors(w http.ResponseWriter, r *http.Request) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// statusFor maps engine errors onto HTTP statuses: invalid assumptions are
// the client's to fix.
func statusFor(err error) int {
	var invalidErr *assumption.InvalidAssumptionError
	if errors.As(err, &invalidErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// ComputeRequest carries the three years' assumptions.
type ComputeRequest struct {
	Years   assumption.YearSet `json:"year_data"`
	Cascade bool               `json:"cascade"`
}

// ComputeResponse is the full recomputed model state.
type ComputeResponse struct {
	Years      assumption.YearSet         `json:"year_data"` // after cascade, if requested
	Statements [3]calc.IncomeStatement    `json:"statements"`
	Units      [3]calc.UnitEconomics      `json:"unit_economics"`
	BreakEven  calc.BreakEvenResult       `json:"breakeven"` // Year 3
	Chart      calc.ChartData             `json:"breakeven_chart"`
	Flags      validate.Report            `json:"validation"`
}

func computeAll(years assumption.YearSet) (*ComputeResponse, error) {
	sets := years.Years()

	var resp ComputeResponse
	resp.Years = years
	for i, a := range sets {
		stmt, err := calc.ComputeIncomeStatement(a)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", i+1, err)
		}
		resp.Statements[i] = stmt
		resp.Units[i] = calc.ComputeUnitEconomics(stmt, a)
	}

	resp.BreakEven = calc.ComputeBreakEven(resp.Statements[2], sets[2])
	resp.Chart = calc.BreakEvenChartData(resp.BreakEven, resp.Statements[2].Revenue.TotalOrders)
	resp.Flags = validate.Evaluate(resp.Statements, sets, resp.BreakEven)
	return &resp, nil
}

// HandleCompute recomputes the full model for a posted set of assumptions.
func HandleCompute(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Cascade {
		assumption.Cascade(&req.Years)
	}

	resp, err := computeAll(req.Years)
	if err != nil {
		fmt.Printf("[MODEL] Compute failed: %v\n", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, resp)
}

// SensitivityRequest runs either one ad-hoc perturbation or the full
// catalogue against a baseline year.
type SensitivityRequest struct {
	Baseline     assumption.Set            `json:"baseline"`
	Perturbation *sensitivity.Perturbation `json:"perturbation,omitempty"`
	Catalogue    bool                      `json:"catalogue,omitempty"`
}

// SensitivityResponse carries whichever of the two run modes was requested.
type SensitivityResponse struct {
	Result    *sensitivity.Result          `json:"result,omitempty"`
	Catalogue []sensitivity.ScenarioResult `json:"catalogue,omitempty"`
}

// HandleSensitivity runs sensitivity analysis against a posted baseline.
func HandleSensitivity(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	var req SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp SensitivityResponse
	if req.Catalogue {
		results, err := sensitivity.RunCatalogue(req.Baseline)
		if err != nil {
			fmt.Printf("[SENSITIVITY] Catalogue run failed: %v\n", err)
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		resp.Catalogue = results
	} else {
		if req.Perturbation == nil {
			http.Error(w, "perturbation is required unless catalogue is set", http.StatusBadRequest)
			return
		}
		result, err := sensitivity.Run(req.Baseline, *req.Perturbation)
		if err != nil {
			fmt.Printf("[SENSITIVITY] Run failed: %v\n", err)
			http.Error(w, err.Error(), statusFor(err))
			return
		}
		resp.Result = &result
	}
	writeJSON(w, resp)
}

// ReportResponse carries the rendered summary in both formats.
type ReportResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// HandleReport computes the model and returns the rendered 3-year summary.
func HandleReport(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := computeAll(req.Years)
	if err != nil {
		fmt.Printf("[REPORT] Compute failed: %v\n", err)
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	md := report.BuildMarkdown(report.Summary{
		YearLabels: [3]string{"Year 1", "Year 2", "Year 3"},
		Statements: resp.Statements,
		Units:      resp.Units,
		BreakEven:  resp.BreakEven,
		Flags:      resp.Flags,
	})
	html, err := report.RenderHTML(md)
	if err != nil {
		fmt.Printf("[REPORT] Render failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, ReportResponse{Markdown: md, HTML: html})
}

// HandleDefaults returns the default assumptions loaded at startup.
func HandleDefaults(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}
	if defaultYears == nil {
		http.Error(w, "defaults not loaded", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, defaultYears)
}
