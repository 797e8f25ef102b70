package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"lg/lifestyle-tracker-api/internal/config"
	"lg/lifestyle-tracker-api/internal/store"
)

func main() {
	// Set properties of the predefined Logger, including the log entry prefix
	// and a flag to disable printing the time, source file, and line number.
	log.SetPrefix("lg/lifestyle-tracker-api: ")
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	s, err := store.Open(context.Background(), cfg.DBURL)
	if err != nil {
		log.Fatalf("Unable to open store: %v", err)
	}
	defer s.Close()

	h := newHandler(s, cfg)

	fmt.Println("Starting gin app...")

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	if err := router.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
