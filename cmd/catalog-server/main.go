package main

import (
	"flag"
	"log"

	"github.com/ttoweb/techportal/api"
	"github.com/ttoweb/techportal/internal/config"
	"github.com/ttoweb/techportal/internal/server"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Starting catalog server version %s (built at %s)", version, buildTime)

	if err := server.Run("catalog", cfg.CatalogAddr, version, buildTime, cfg, api.SetupCatalogRoutes); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
