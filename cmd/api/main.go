package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"loopbox_model/pkg/api/model"
	"loopbox_model/pkg/api/scenario"
	"loopbox_model/pkg/core/assumption"
	"loopbox_model/pkg/core/store"
)

// ServerConfig is the config/server.yaml structure.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	DefaultsPath string `yaml:"defaults_path"`
}

func main() {
	// Load environment variables
	godotenv.Load()

	cfg := ServerConfig{Port: 8080, DefaultsPath: "data/defaults.hjson"}
	if configData, err := os.ReadFile("config/server.yaml"); err == nil {
		if err := yaml.Unmarshal(configData, &cfg); err != nil {
			fmt.Printf("[FATAL] Invalid config/server.yaml: %v\n", err)
			os.Exit(1)
		}
	}

	// Default assumptions
	defaults, err := assumption.LoadDefaults(cfg.DefaultsPath)
	if err != nil {
		fmt.Printf("[FATAL] Failed to load defaults: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[DEFAULTS] Loaded 3-year defaults from %s\n", cfg.DefaultsPath)

	// Model endpoints
	model.InitHandler(defaults)
	http.HandleFunc("/api/model/defaults", model.HandleDefaults)
	http.HandleFunc("/api/model/compute", model.HandleCompute)
	http.HandleFunc("/api/model/sensitivity", model.HandleSensitivity)
	http.HandleFunc("/api/model/report", model.HandleReport)

	// Scenario persistence is optional: without DATABASE_URL the model
	// endpoints still work, only save/load is unavailable.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			fmt.Printf("[WARNING] Database init failed: %v\n", err)
		} else {
			scenario.InitHandler(store.NewScenarioRepo(), store.NewHistoryRepo())
			http.HandleFunc("/api/scenario/save", scenario.HandleSave)
			http.HandleFunc("/api/scenario/load", scenario.HandleLoad)
			http.HandleFunc("/api/scenario/list", scenario.HandleList)
			http.HandleFunc("/api/scenario/history", scenario.HandleSaveHistory)
			fmt.Println("Scenario Endpoints Registered.")
		}
	} else {
		fmt.Println("[WARNING] DATABASE_URL not set; scenario persistence disabled")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("API server starting on %s...\n", addr)
	fmt.Println("  - GET  /api/model/defaults")
	fmt.Println("  - POST /api/model/compute")
	fmt.Println("  - POST /api/model/sensitivity")
	fmt.Println("  - POST /api/model/report")

	if err := http.ListenAndServe(addr, nil); err != nil {
		fmt.Printf("[FATAL] Server failed to start: %v\n", err)
		os.Exit(1)
	}
}
