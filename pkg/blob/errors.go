package blob

// NotFoundError is returned when trying to access a blob that doesn't exist.
type NotFoundError struct {
	Name string
}

func (e NotFoundError) Error() string {
	return "blob not found"
}

// InvalidNameError is returned when a filename would escape the storage
// directory or is empty after sanitization.
type InvalidNameError struct {
	Name string
}

func (e InvalidNameError) Error() string {
	return "invalid blob name"
}
