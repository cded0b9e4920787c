package catalog

// Note CRUD and listing tests, run as part of StoreTestSuite.

// createNote is a helper that inserts a note and fails the test on error.
func (s *StoreTestSuite) createNote(title, subject, category, filename, fileType string, fileSize int64) int64 {
	note, err := s.store.CreateNote(title, subject, category, filename, fileType, fileSize)
	s.Require().NoError(err)
	return note.ID
}

// TestCreateNote tests note creation.
func (s *StoreTestSuite) TestCreateNote() {
	note, err := s.store.CreateNote("Calculus I", "Math", "Lecture", "calc1.pdf", "pdf", 2048)
	s.Require().NoError(err)
	s.NotZero(note.ID)
	s.Equal("Calculus I", note.Title)
	s.Equal("Math", note.Subject)
	s.Equal("Lecture", note.Category)
	s.Equal("calc1.pdf", note.Filename)
	s.Equal(int64(2048), note.FileSize)
	s.Equal("pdf", note.FileType)
	s.False(note.UploadedAt.IsZero())
}

// TestCreateNoteMissingField tests that empty required fields are rejected.
func (s *StoreTestSuite) TestCreateNoteMissingField() {
	_, err := s.store.CreateNote("", "Math", "Lecture", "calc1.pdf", "pdf", 2048)
	s.ErrorIs(err, ErrMissingField)

	_, err = s.store.CreateNote("Calculus I", "", "Lecture", "calc1.pdf", "pdf", 2048)
	s.ErrorIs(err, ErrMissingField)

	_, err = s.store.CreateNote("Calculus I", "Math", "", "calc1.pdf", "pdf", 2048)
	s.ErrorIs(err, ErrMissingField)

	_, err = s.store.CreateNote("Calculus I", "Math", "Lecture", "", "pdf", 2048)
	s.ErrorIs(err, ErrMissingField)
}

// TestGetNote tests note lookup by id.
func (s *StoreTestSuite) TestGetNote() {
	noteID := s.createNote("Algebra", "Math", "Summary", "algebra.pdf", "pdf", 512)

	note, err := s.store.GetNote(noteID)
	s.Require().NoError(err)
	s.Equal(noteID, note.ID)
	s.Equal("Algebra", note.Title)
	s.Equal("algebra.pdf", note.Filename)
}

// TestGetNoteNotFound tests lookup of a missing id.
func (s *StoreTestSuite) TestGetNoteNotFound() {
	_, err := s.store.GetNote(99999)
	s.ErrorIs(err, ErrNoteNotFound)
}

// TestDeleteNote tests note deletion.
func (s *StoreTestSuite) TestDeleteNote() {
	noteID := s.createNote("Algebra", "Math", "Summary", "algebra.pdf", "pdf", 512)

	err := s.store.DeleteNote(noteID)
	s.Require().NoError(err)

	_, err = s.store.GetNote(noteID)
	s.ErrorIs(err, ErrNoteNotFound)
}

// TestDeleteNoteNotFound tests deleting a missing id.
func (s *StoreTestSuite) TestDeleteNoteNotFound() {
	err := s.store.DeleteNote(99999)
	s.ErrorIs(err, ErrNoteNotFound)
}

// TestListNotesAll tests unfiltered listing in insertion order.
func (s *StoreTestSuite) TestListNotesAll() {
	first := s.createNote("Banana", "Biology", "Lecture", "banana.pdf", "pdf", 300)
	second := s.createNote("Apple", "Biology", "Lecture", "apple.pdf", "pdf", 100)

	notes, err := s.store.ListNotes(nil)
	s.Require().NoError(err)
	s.Require().Len(notes, 2)
	s.Equal(first, notes[0].ID)
	s.Equal(second, notes[1].ID)
}

// TestListNotesFilterConjunction tests that active filters are combined with AND.
func (s *StoreTestSuite) TestListNotesFilterConjunction() {
	mathPDF := s.createNote("Calculus", "Math", "Lecture", "calc.pdf", "pdf", 100)
	s.createNote("Graphs", "Math", "Lecture", "graphs.jpg", "jpg", 200)
	s.createNote("Sketching", "Art", "Lecture", "sketch.pdf", "pdf", 300)

	notes, err := s.store.ListNotes(&NoteFilter{Subject: "Math", FileType: "pdf"})
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Equal(mathPDF, notes[0].ID)
}

// TestListNotesSubjectCaseInsensitive tests that the subject filter
// matches substrings regardless of case.
func (s *StoreTestSuite) TestListNotesSubjectCaseInsensitive() {
	noteID := s.createNote("Calculus", "Mathematics", "Lecture", "calc.pdf", "pdf", 100)

	notes, err := s.store.ListNotes(&NoteFilter{Subject: "math"})
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Equal(noteID, notes[0].ID)

	notes, err = s.store.ListNotes(&NoteFilter{Subject: "MATHEM"})
	s.Require().NoError(err)
	s.Len(notes, 1)
}

// TestListNotesFileTypeExact tests that file_type is an exact match,
// not a substring.
func (s *StoreTestSuite) TestListNotesFileTypeExact() {
	s.createNote("Photo", "Art", "Reference", "photo.jpeg", "jpeg", 100)
	jpgID := s.createNote("Scan", "Art", "Reference", "scan.jpg", "jpg", 200)

	notes, err := s.store.ListNotes(&NoteFilter{FileType: "jpg"})
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Equal(jpgID, notes[0].ID)
}

// TestListNotesSortByTitle tests ascending title order.
func (s *StoreTestSuite) TestListNotesSortByTitle() {
	s.createNote("Banana", "Biology", "Lecture", "b.pdf", "pdf", 100)
	s.createNote("Apple", "Biology", "Lecture", "a.pdf", "pdf", 200)
	s.createNote("Cherry", "Biology", "Lecture", "c.pdf", "pdf", 300)

	notes, err := s.store.ListNotes(&NoteFilter{SortBy: "title_asc"})
	s.Require().NoError(err)
	s.Require().Len(notes, 3)
	s.Equal("Apple", notes[0].Title)
	s.Equal("Banana", notes[1].Title)
	s.Equal("Cherry", notes[2].Title)
}

// TestListNotesSortBySizeDesc tests descending size order.
func (s *StoreTestSuite) TestListNotesSortBySizeDesc() {
	s.createNote("Small", "Math", "Lecture", "s.pdf", "pdf", 100)
	s.createNote("Large", "Math", "Lecture", "l.pdf", "pdf", 900)
	s.createNote("Medium", "Math", "Lecture", "m.pdf", "pdf", 500)

	notes, err := s.store.ListNotes(&NoteFilter{SortBy: "size_desc"})
	s.Require().NoError(err)
	s.Require().Len(notes, 3)
	s.Equal("Large", notes[0].Title)
	s.Equal("Medium", notes[1].Title)
	s.Equal("Small", notes[2].Title)
}

// TestListNotesSortTieBreak tests that equal sort keys fall back to
// insertion order.
func (s *StoreTestSuite) TestListNotesSortTieBreak() {
	first := s.createNote("Same", "Math", "Lecture", "one.pdf", "pdf", 100)
	second := s.createNote("Same", "Math", "Lecture", "two.pdf", "pdf", 100)

	notes, err := s.store.ListNotes(&NoteFilter{SortBy: "title_asc"})
	s.Require().NoError(err)
	s.Require().Len(notes, 2)
	s.Equal(first, notes[0].ID)
	s.Equal(second, notes[1].ID)
}

// TestListNotesUnknownSortKey tests that an unrecognized sort_by value
// keeps insertion order.
func (s *StoreTestSuite) TestListNotesUnknownSortKey() {
	first := s.createNote("Zebra", "Biology", "Lecture", "z.pdf", "pdf", 100)
	second := s.createNote("Ant", "Biology", "Lecture", "a.pdf", "pdf", 200)

	notes, err := s.store.ListNotes(&NoteFilter{SortBy: "bogus"})
	s.Require().NoError(err)
	s.Require().Len(notes, 2)
	s.Equal(first, notes[0].ID)
	s.Equal(second, notes[1].ID)
}

// TestListNotesEmpty tests listing an empty catalog.
func (s *StoreTestSuite) TestListNotesEmpty() {
	notes, err := s.store.ListNotes(nil)
	s.Require().NoError(err)
	s.Empty(notes)
}
