package main

import (
	"flag"
	"log"
	"os"

	"github.com/lotworks/lotview/server"
)

func main() {
	dataset := flag.String("dataset", "", "Path to the vehicle dataset JSON file")
	flag.Parse()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	path := *dataset
	if path == "" {
		path = os.Getenv("LOTVIEW_DATASET")
	}
	if path == "" {
		path = "vehicles.json"
	}

	srv, err := server.New(path)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	log.Printf("LotView catalog server starting on :%s (dataset %s)", port, path)
	if err := srv.Start(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
