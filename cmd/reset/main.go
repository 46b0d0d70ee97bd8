package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/osse101/fragrewards/internal/bootstrap"
	"github.com/osse101/fragrewards/internal/config"
	"github.com/osse101/fragrewards/internal/persistence"
)

// reset deletes persisted player records so the players start over from
// defaults on their next event. The service should be stopped first, or it
// will write the record back on its next checkpoint.
func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s PLAYER_ID [PLAYER_ID...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.StorageBackend == config.StorageMemory {
		log.Fatalf("STORAGE_BACKEND=memory has nothing to reset")
	}
	// Reads go straight to the backend
	cfg.CacheSize = 0

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	storage, err := bootstrap.InitializeStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	if storage.DB != nil {
		defer storage.DB.Close()
	}
	store := persistence.NewStore(storage.Backend)

	failed := false
	for _, id := range flag.Args() {
		if err := store.Delete(ctx, id); err != nil {
			log.Printf("Failed to reset %s: %v", id, err)
			failed = true
			continue
		}
		log.Printf("Reset %s", id)
	}
	if failed {
		os.Exit(1)
	}
}
