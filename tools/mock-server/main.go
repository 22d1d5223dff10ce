// Package main runs a fake eBay upstream for local development. Point the
// vinyl-backend eBay URLs at it to exercise the service without real
// credentials:
//
//	ebay:
//	  token_url: http://localhost:8089/identity/v1/oauth2/token
//	  browse_url: http://localhost:8089/buy/browse/v1
//	  finding_url: http://localhost:8089/services/search/FindingService/v1
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/clareta27/vinyl-backend/internal/ebay/ebaytest"
	"github.com/clareta27/vinyl-backend/pkg/logger"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	level := flag.String("log-level", "debug", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(*level, "text")

	srv, err := newServer(log, fmt.Sprintf(":%d", *port))
	if err != nil {
		log.Error("failed to build mock server", "error", err)
		os.Exit(1)
	}

	log.Info("starting mock eBay server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newServer(log *slog.Logger, addr string) (*http.Server, error) {
	h, err := ebaytest.NewHandler(log)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}, nil
}
