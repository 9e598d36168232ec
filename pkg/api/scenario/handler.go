// Package scenario exposes saved-scenario persistence over HTTP.
package scenario

import (
	"encoding/json"
	"fmt"
	"net/http"

	"loopbox_model/pkg/core/assumption"
	"loopbox_model/pkg/core/history"
	"loopbox_model/pkg/core/store"
)

var (
	repo        *store.ScenarioRepo
	historyRepo *store.HistoryRepo
)

// InitHandler wires the scenario and history repositories.
func InitHandler(r *store.ScenarioRepo, h *store.HistoryRepo) {
	repo = r
	historyRepo = h
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

// SaveRequest names a snapshot of the three years.
type SaveRequest struct {
	Name  string             `json:"name"`
	Years assumption.YearSet `json:"year_data"`
}

// HandleSave persists a named scenario.
func HandleSave(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "scenario name is required", http.StatusBadRequest)
		return
	}

	id, err := repo.Save(r.Context(), req.Name, req.Years)
	if err != nil {
		fmt.Printf("[SCENARIO] Save failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	fmt.Printf("[SCENARIO] Saved '%s' as %s\n", req.Name, id)
	writeJSON(w, map[string]string{"id": id})
}

// HandleLoad retrieves one scenario by id (?id= query parameter).
func HandleLoad(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id query parameter is required", http.StatusBadRequest)
		return
	}

	sc, err := repo.Load(r.Context(), id)
	if err != nil {
		fmt.Printf("[SCENARIO] Load failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, sc)
}

// HandleList returns all saved scenarios, newest first.
func HandleList(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	scenarios, err := repo.List(r.Context())
	if err != nil {
		fmt.Printf("[SCENARIO] List failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, scenarios)
}

// HistoryRequest carries one session's change log for persistence.
type HistoryRequest struct {
	Records []history.Record `json:"records"`
}

// HandleSaveHistory persists the posted change records. Re-posting the same
// records is harmless; inserts are id-deduplicated.
func HandleSaveHistory(w http.ResponseWriter, r *http.Request) {
	if cors(w, r) {
		return
	}

	var req HistoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := historyRepo.SaveAll(r.Context(), req.Records); err != nil {
		fmt.Printf("[SCENARIO] History save failed: %v\n", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]int{"saved": len(req.Records)})
}
