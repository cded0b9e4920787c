package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/avin-dsouza/Digital-Library/pkg/blob"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
)

// downloadNote streams a stored blob by its exact stored filename.
func (lib *LibraryServer) downloadNote(ctx echo.Context) error {
	filename := ctx.Param("filename")
	log.Debug().Str("filename", filename).Msg("Download request")

	path, err := lib.blobs.Path(filename)
	if err != nil {
		var notFoundErr blob.NotFoundError
		var invalidErr blob.InvalidNameError
		if errors.As(err, &notFoundErr) {
			return ctx.String(http.StatusNotFound, "file not found")
		}
		if errors.As(err, &invalidErr) {
			return ctx.String(http.StatusBadRequest, "invalid filename")
		}
		log.Error().Err(err).Str("filename", filename).Msg("Failed to resolve blob")
		return ctx.String(http.StatusInternalServerError, "failed to read file")
	}

	return ctx.File(path)
}
