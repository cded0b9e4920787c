package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avin-dsouza/Digital-Library/pkg/models"
)

// NoteFilter narrows and orders a listing query. Zero-value fields skip
// their predicate; filters are conjunctive.
type NoteFilter struct {
	Subject  string // substring, case-insensitive
	Category string // substring, case-insensitive
	FileType string // exact match
	SortBy   string // one of the sortClauses keys, anything else keeps insertion order
}

// sortClauses maps the accepted sort_by values to ORDER BY fragments.
// An id tie-break is always appended so equal keys list in a stable,
// reproducible order.
var sortClauses = map[string]string{
	"title_asc":  "title ASC",
	"title_desc": "title DESC",
	"size_asc":   "file_size ASC",
	"size_desc":  "file_size DESC",
	"date_asc":   "uploaded_at ASC",
	"date_desc":  "uploaded_at DESC",
}

// CreateNote records a new note. All descriptive fields must be non-empty.
func (s *Store) CreateNote(title, subject, category, filename, fileType string, fileSize int64) (*models.Note, error) {
	if title == "" || subject == "" || category == "" || filename == "" {
		return nil, ErrMissingField
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	result, err := s.db.ExecContext(context.Background(),
		`INSERT INTO notes (title, subject, category, filename, file_size, file_type, uploaded_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		title, subject, category, filename, fileSize, fileType, now,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}

	noteID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}

	return &models.Note{
		ID:         noteID,
		Title:      title,
		Subject:    subject,
		Category:   category,
		Filename:   filename,
		FileSize:   fileSize,
		FileType:   fileType,
		UploadedAt: now,
	}, nil
}

// GetNote retrieves a note by its identifier.
func (s *Store) GetNote(noteID int64) (*models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	noteRecord := &models.Note{}
	err := s.db.QueryRowContext(context.Background(),
		`SELECT id, title, subject, category, filename, file_size, file_type, uploaded_at FROM notes WHERE id = ?`,
		noteID,
	).Scan(&noteRecord.ID, &noteRecord.Title, &noteRecord.Subject, &noteRecord.Category,
		&noteRecord.Filename, &noteRecord.FileSize, &noteRecord.FileType, &noteRecord.UploadedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}

	return noteRecord, nil
}

// DeleteNote removes a note record.
func (s *Store) DeleteNote(noteID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.db.ExecContext(context.Background(), `DELETE FROM notes WHERE id = ?`, noteID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}

	if rowsAffected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// ListNotes returns all notes matching the filter, ordered per its SortBy.
// The full matching set is returned in one batch.
func (s *Store) ListNotes(filter *NoteFilter) ([]models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, title, subject, category, filename, file_size, file_type, uploaded_at FROM notes`

	var (
		predicates []string
		args       []interface{}
	)

	if filter != nil && filter.Subject != "" {
		predicates = append(predicates, `LOWER(subject) LIKE ?`)
		args = append(args, "%"+strings.ToLower(filter.Subject)+"%")
	}
	if filter != nil && filter.Category != "" {
		predicates = append(predicates, `LOWER(category) LIKE ?`)
		args = append(args, "%"+strings.ToLower(filter.Category)+"%")
	}
	if filter != nil && filter.FileType != "" {
		predicates = append(predicates, `file_type = ?`)
		args = append(args, filter.FileType)
	}

	if len(predicates) > 0 {
		query += ` WHERE ` + strings.Join(predicates, ` AND `)
	}

	orderBy := `id ASC`
	if filter != nil {
		if clause, ok := sortClauses[filter.SortBy]; ok {
			orderBy = clause + `, id ASC`
		}
	}
	query += ` ORDER BY ` + orderBy

	rows, err := s.db.QueryContext(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}
	defer func() { _ = rows.Close() }()

	var notes []models.Note
	for rows.Next() {
		var noteRecord models.Note
		scanErr := rows.Scan(&noteRecord.ID, &noteRecord.Title, &noteRecord.Subject, &noteRecord.Category,
			&noteRecord.Filename, &noteRecord.FileSize, &noteRecord.FileType, &noteRecord.UploadedAt)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrDatabaseError, scanErr)
		}
		notes = append(notes, noteRecord)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseError, err)
	}

	return notes, nil
}
