package server

import (
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/labstack/echo/v4"

	"github.com/avin-dsouza/Digital-Library/pkg/catalog"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
	"github.com/avin-dsouza/Digital-Library/pkg/models"
)

// noteView decorates a note with display-ready fields.
type noteView struct {
	models.Note
	DisplaySize string
}

// listNotes renders the catalog, filtered and sorted per query parameters.
func (lib *LibraryServer) listNotes(ctx echo.Context) error {
	filter := &catalog.NoteFilter{
		Subject:  ctx.QueryParam("subject"),
		Category: ctx.QueryParam("category"),
		FileType: ctx.QueryParam("file_type"),
		SortBy:   ctx.QueryParam("sort_by"),
	}

	notes, err := lib.catalog.ListNotes(filter)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list notes")
		return ctx.String(http.StatusInternalServerError, "failed to list notes")
	}

	views := make([]noteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, noteView{
			Note:        note,
			DisplaySize: humanize.Bytes(uint64(note.FileSize)),
		})
	}

	identity, _ := currentIdentity(ctx)

	return ctx.Render(http.StatusOK, "index.html", map[string]interface{}{
		"Notes":    views,
		"Username": identity.Username,
		"Subject":  filter.Subject,
		"Category": filter.Category,
		"FileType": filter.FileType,
		"SortBy":   filter.SortBy,
		"Flash":    takeFlash(ctx),
	})
}
