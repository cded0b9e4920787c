package main

import (
	_ "embed"
	"flag"
	"os"
	"strings"

	"github.com/avin-dsouza/Digital-Library/pkg/auth"
	"github.com/avin-dsouza/Digital-Library/pkg/blob"
	"github.com/avin-dsouza/Digital-Library/pkg/catalog"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
	"github.com/avin-dsouza/Digital-Library/pkg/server"
)

const uploadDirPerm = 0o750

//go:embed VERSION
var Version string

func main() {
	// Initialize logger first
	_ = log.Logger

	addr := flag.String("addr", ":8080", "Listen address")
	uploadDir := flag.String("uploads", "uploads", "Upload storage directory path")
	dbPath := flag.String("db", "library.db", "SQLite database path")
	publicDownloads := flag.Bool("public-downloads", true, "Serve /uploads without authentication")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if *debug {
		log.SetDebugMode()
	}

	if err := os.MkdirAll(*uploadDir, uploadDirPerm); err != nil {
		log.Fatal().Err(err).Str("upload_dir", *uploadDir).Msg("Failed to create upload directory")
	}

	catalogStore, err := catalog.NewStore(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", *dbPath).Msg("Failed to open catalog database")
	}
	defer func() {
		if err := catalogStore.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close catalog database")
		}
	}()

	blobStore := blob.New(*uploadDir)
	sessions := auth.NewSessions()

	library := server.NewLibraryServer(catalogStore, blobStore, sessions, *publicDownloads, strings.TrimSpace(Version))

	if err := library.Start(*addr); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}

	os.Exit(0)
}
