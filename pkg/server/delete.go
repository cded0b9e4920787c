package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/avin-dsouza/Digital-Library/pkg/catalog"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
)

// deleteNote removes a note's blob and record. Blob-removal failures are
// reported but do not keep the record alive; there is no transaction
// across the two stores.
func (lib *LibraryServer) deleteNote(ctx echo.Context) error {
	noteID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return ctx.String(http.StatusNotFound, "note not found")
	}

	note, err := lib.catalog.GetNote(noteID)
	if err != nil {
		if errors.Is(err, catalog.ErrNoteNotFound) {
			return ctx.String(http.StatusNotFound, "note not found")
		}
		log.Error().Err(err).Int64("note_id", noteID).Msg("Failed to look up note")
		return ctx.String(http.StatusInternalServerError, "failed to delete note")
	}

	// A blob that is already gone is tolerated; the store treats absence
	// as success.
	if err := lib.blobs.Delete(note.Filename); err != nil {
		log.Error().Err(err).Str("filename", note.Filename).Msg("Failed to remove blob")
		setFlash(ctx, "The note's file could not be removed.")
	}

	if err := lib.catalog.DeleteNote(noteID); err != nil {
		log.Error().Err(err).Int64("note_id", noteID).Msg("Failed to delete note record")
		setFlash(ctx, "The note could not be deleted.")
		return ctx.Redirect(http.StatusFound, "/")
	}

	log.Info().Int64("note_id", noteID).Str("filename", note.Filename).Msg("Note deleted")
	return ctx.Redirect(http.StatusFound, "/")
}
