// main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/config"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/handlers"
	"github.com/Ankit-kantar/Kantar-Cloudthat-Capstone-project/services"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting Property Investment Insights backend...")

	// .env is optional; env vars override config.yaml either way.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, listings: %s, demographics: %s",
		config.AppConfig.Server.Port,
		config.AppConfig.Sources.Listings.Path,
		config.AppConfig.Sources.Demographics.Path)

	// Both source tables are required; nothing can be served without them.
	dataset, err := services.LoadDataset(config.AppConfig.Sources)
	if err != nil {
		log.Fatalf("Error loading source data: %v", err)
	}

	h := handlers.NewDashboardHandler(dataset)

	http.HandleFunc("/api/health", h.GetHealth)
	http.HandleFunc("/api/dashboard", h.GetDashboard)
	http.HandleFunc("/api/filters", h.GetFilterOptions)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, nil); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
