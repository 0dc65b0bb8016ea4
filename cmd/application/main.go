package main

import (
	"flag"
	"log"
	"os"

	"gostorefront_api/config"
	"gostorefront_api/internal/storefront/app"
)

func main() {
	configPath := flag.String("config", "", "path to the yaml config file")
	flag.Parse()

	log.Printf("\nStarted app\n")

	var appConfig *config.AppConfig
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		appConfig = loaded
	} else {
		appConfig = config.DefaultConfig()
	}

	server := app.NewStorefrontServer(appConfig, os.Stdout)
	server.Run()
}
