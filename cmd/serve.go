package cmd

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"photo-organiser/handlers"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start a read-mostly HTTP API over the photo store: library
statistics, filtered photo listings, per-photo faces and person
management.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "Port to listen on (defaults to SERVE_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	db, cfg, err := openDatabase()
	if err != nil {
		return err
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.ServePort
	}

	router := handlers.NewRouter(db)
	addr := fmt.Sprintf(":%d", port)
	log.Printf("Server listening on %s", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return server.ListenAndServe()
}
