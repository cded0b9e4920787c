package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/avin-dsouza/Digital-Library/pkg/auth"
	"github.com/avin-dsouza/Digital-Library/pkg/blob"
	"github.com/avin-dsouza/Digital-Library/pkg/catalog"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
)

const (
	shutdownTimeout = 10

	// maxUploadSize caps the request body for uploads.
	maxUploadSize = "16M"
)

// LibraryServer serves the note catalog over HTTP.
type LibraryServer struct {
	echo            *echo.Echo
	catalog         *catalog.Store
	blobs           *blob.Store
	sessions        *auth.Sessions
	publicDownloads bool
	version         string
}

// NewLibraryServer wires the catalog, blob store and session manager into
// an HTTP server. With publicDownloads set, /uploads/:filename is served
// without authentication.
func NewLibraryServer(cat *catalog.Store, blobs *blob.Store, sessions *auth.Sessions, publicDownloads bool, version string) *LibraryServer {
	return &LibraryServer{
		echo:            echo.New(),
		catalog:         cat,
		blobs:           blobs,
		sessions:        sessions,
		publicDownloads: publicDownloads,
		version:         version,
	}
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (lib *LibraryServer) Start(addr string) error {
	lib.setupRoutes()

	// Start server in a goroutine
	go func() {
		log.Info().
			Str("addr", addr).
			Str("storage_dir", lib.blobs.Dir()).
			Str("version", lib.version).
			Bool("public_downloads", lib.publicDownloads).
			Msg("Starting library server")

		if err := lib.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server startup failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return lib.Shutdown()
}

// Shutdown stops the server gracefully.
func (lib *LibraryServer) Shutdown() error {
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout*time.Second)
	defer cancel()

	if err := lib.echo.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
		return err
	}

	log.Info().Msg("Server gracefully stopped")
	return nil
}

func (lib *LibraryServer) setupRoutes() {
	// Echo configuration
	lib.echo.HideBanner = true
	lib.echo.HidePort = true
	lib.echo.Renderer = newRenderer()

	// Setup middleware with custom logger
	lib.echo.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} ${status} ${method} ${uri} (${latency_human})\n",
	}))
	lib.echo.Use(middleware.Recover())
	lib.echo.Use(middleware.BodyLimit(maxUploadSize))

	// Authentication flows
	lib.echo.GET("/login", lib.loginForm)
	lib.echo.POST("/login", lib.login)
	lib.echo.GET("/register", lib.registerForm)
	lib.echo.POST("/register", lib.register)
	lib.echo.GET("/logout", lib.logout)

	// Catalog operations, gated
	lib.echo.GET("/", lib.listNotes, lib.requireAuth)
	lib.echo.GET("/upload", lib.uploadForm, lib.requireAuth)
	lib.echo.POST("/upload", lib.uploadNote, lib.requireAuth)
	lib.echo.POST("/delete/:id", lib.deleteNote, lib.requireAuth)

	// Downloads are open by default; the final word on whether shared
	// links should work without a session is the deployment's.
	if lib.publicDownloads {
		lib.echo.GET("/uploads/:filename", lib.downloadNote)
	} else {
		lib.echo.GET("/uploads/:filename", lib.downloadNote, lib.requireAuth)
	}
}
