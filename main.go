package main

import (
	"flag"
	"log"

	"storefront/cmd"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	app, err := cmd.NewApp(*configPath)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	if err := app.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
