package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/avin-dsouza/Digital-Library/pkg/blob"
	"github.com/avin-dsouza/Digital-Library/pkg/log"
)

// allowedExtensions is the upload file-type allowlist.
var allowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"ppt":  {},
	"pptx": {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
}

// uploadForm renders the upload page.
func (lib *LibraryServer) uploadForm(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, "upload.html", map[string]interface{}{
		"Flash": takeFlash(ctx),
	})
}

// uploadNote validates a submission, stores the blob and records the note.
func (lib *LibraryServer) uploadNote(ctx echo.Context) error {
	title := strings.TrimSpace(ctx.FormValue("title"))
	subject := strings.TrimSpace(ctx.FormValue("subject"))
	category := strings.TrimSpace(ctx.FormValue("category"))

	if title == "" || subject == "" || category == "" {
		setFlash(ctx, "Title, subject and category are required.")
		return ctx.Redirect(http.StatusFound, "/upload")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		setFlash(ctx, "A file is required.")
		return ctx.Redirect(http.StatusFound, "/upload")
	}

	if _, ok := allowedExtensions[blob.Extension(file.Filename)]; !ok {
		setFlash(ctx, "File type not allowed. Only PDF, DOC/DOCX, PPT/PPTX, JPG/PNG are accepted.")
		return ctx.Redirect(http.StatusFound, "/upload")
	}

	filename := blob.SanitizeFilename(file.Filename)
	if filename == "" {
		setFlash(ctx, "A file is required.")
		return ctx.Redirect(http.StatusFound, "/upload")
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("Failed to open uploaded file")
		return ctx.String(http.StatusInternalServerError, "failed to read upload")
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close source file")
		}
	}()

	// An upload that sanitizes to an existing name overwrites the stored
	// blob. That matches the catalog's historical behavior; the filename
	// is the storage key.
	if _, err := lib.blobs.Save(filename, src); err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Failed to store blob")
		return ctx.String(http.StatusInternalServerError, "failed to store file")
	}

	fileSize, err := lib.blobs.Size(filename)
	if err != nil {
		log.Error().Err(err).Str("filename", filename).Msg("Failed to stat stored blob")
		return ctx.String(http.StatusInternalServerError, "failed to store file")
	}

	note, err := lib.catalog.CreateNote(title, subject, category, filename, blob.Extension(filename), fileSize)
	if err != nil {
		// Keep the stores consistent: a blob without a record is useless.
		if removeErr := lib.blobs.Delete(filename); removeErr != nil {
			log.Error().Err(removeErr).Str("filename", filename).Msg("Failed to remove blob after record failure")
		}
		log.Error().Err(err).Str("filename", filename).Msg("Failed to record note")
		return ctx.String(http.StatusInternalServerError, "failed to record note")
	}

	log.Info().
		Int64("note_id", note.ID).
		Str("filename", filename).
		Int64("size", fileSize).
		Str("file_type", note.FileType).
		Msg("Note uploaded")

	return ctx.Redirect(http.StatusFound, "/")
}
