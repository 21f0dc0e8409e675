package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jakemex/TuneWorksApp/internal/catalog"
	"github.com/Jakemex/TuneWorksApp/internal/db"
	"github.com/Jakemex/TuneWorksApp/internal/handlers"
)

func serveCmd() *cobra.Command {
	var port, dbPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the catalog and estimation API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runServe(port, dbPath)
		},
	}
	cmd.Flags().StringVar(&port, "port", envOr("PORT", "8080"), "listen port")
	cmd.Flags().StringVar(&dbPath, "db", envOr("TUNEWORKS_DB_PATH", "fitment.db"), "fitment sqlite path")
	return cmd
}

func runServe(port, dbPath string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	fitment, gen, source := loadFitment(dbPath)
	cat := catalog.New(fitment)
	log.Printf("catalog ready: %d variants, fitment %s (%s)", len(cat.Variants()), gen.ID, source)

	catalogHandler := &handlers.CatalogHandler{Cat: cat, Generation: gen, Source: source}
	sessionHandler := handlers.NewSessionHandler(cat)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("GET /api/makes", catalogHandler.Makes)
	mux.HandleFunc("GET /api/models", catalogHandler.Models)
	mux.HandleFunc("GET /api/variants", catalogHandler.Variants)
	mux.HandleFunc("GET /api/variants/{key}", catalogHandler.VariantByKey)
	mux.HandleFunc("GET /api/fitment/meta", catalogHandler.FitmentMeta)

	mux.HandleFunc("POST /api/sessions", sessionHandler.Create)
	mux.HandleFunc("GET /api/sessions/{id}", sessionHandler.Get)
	mux.HandleFunc("PATCH /api/sessions/{id}", sessionHandler.Patch)
	mux.HandleFunc("GET /api/sessions/{id}/estimate", sessionHandler.Estimate)

	mux.HandleFunc("POST /api/estimate", sessionHandler.EstimateOnce)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: corsMiddleware(mux),
	}

	go func() {
		log.Printf("tuneworks server listening on :%s", port)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return srv.Shutdown(shutdownCtx)
}

// loadFitment prefers the scraped sqlite table and falls back to the
// embedded snapshot when the file is missing or unreadable.
func loadFitment(path string) (catalog.Table, db.Generation, string) {
	sqlDB, err := db.ConnectSQLite(path)
	if err != nil {
		log.Printf("WARN: fitment db %s unavailable (%v), using embedded table", path, err)
		return catalog.DefaultFitment, db.Generation{ID: "embedded"}, "embedded"
	}
	defer sqlDB.Close()

	tbl, gen, err := db.LoadFitment(sqlDB)
	if err != nil {
		log.Printf("WARN: fitment db %s unreadable (%v), using embedded table", path, err)
		return catalog.DefaultFitment, db.Generation{ID: "embedded"}, "embedded"
	}
	return tbl, gen, "sqlite"
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		allowed := origin == "https://tuneworks.app" ||
			origin == "http://localhost:5173" ||
			origin == "http://localhost:8080"
		if allowed && origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
