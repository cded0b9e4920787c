package models

import "time"

// Note represents one catalogued study document and its storage location.
type Note struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Category   string    `json:"category"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}
