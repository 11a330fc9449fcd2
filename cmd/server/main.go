/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the award pay calculation server. Handles
  configuration, dependency injection, and graceful shutdown.

STARTUP SEQUENCE:
  1. Parse command-line flags
  2. Load award configuration (YAML directory or built-in default)
  3. Open the SQLite history store (optional)
  4. Create API handler with dependencies
  5. Configure HTTP router
  6. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port    HTTP server port (default: 8080)
  -config  Award configuration directory (default: built-in MA000018)
  -db      SQLite history database path (default: awards.db)
           Use ":memory:" for in-memory, "" to disable history

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close database connection
  4. Exit

EXAMPLES:
  # Run with the built-in award configuration
  ./server

  # Run with a configuration directory and file database
  ./server -config=./config/ma000018 -db=./data/awards.db

  # Run without calculation history
  ./server -db=""

SEE ALSO:
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
  - config: YAML configuration loading
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warp/award-engine/api"
	"github.com/warp/award-engine/config"
	"github.com/warp/award-engine/engine"
	"github.com/warp/award-engine/store/sqlite"
)

func main() {
	// Flags
	port := flag.Int("port", 8080, "HTTP server port")
	configDir := flag.String("config", "", "award configuration directory (empty: built-in MA000018)")
	dbPath := flag.String("db", "awards.db", "SQLite history database path (empty: disable history)")
	flag.Parse()

	// Load award configuration
	cfg := config.Default()
	if *configDir != "" {
		loaded, err := config.Load(*configDir)
		if err != nil {
			log.Fatalf("Failed to load award configuration: %v", err)
		}
		cfg = loaded
	}
	log.Printf("Loaded award %s (%s), %d classifications",
		cfg.Award.Code, cfg.Award.Name, len(cfg.Classifications))

	// Initialize history store
	var store *sqlite.Store
	if *dbPath != "" {
		s, err := sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer s.Close()
		store = s
	} else {
		log.Println("Calculation history disabled")
	}

	// Initialize handler and router
	handler := api.NewHandler(engine.NewCalculator(cfg), store)
	router := api.NewRouter(handler)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		log.Printf("API available at http://localhost:%d/api", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
