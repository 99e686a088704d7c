package importer

import (
	"errors"
)

var (
	// ErrNoFile is returned when the caller supplied no payload.
	ErrNoFile = errors.New("no file was provided for the import")

	// ErrWorkbook is returned when the payload is not text and the
	// spreadsheet container cannot be opened.
	ErrWorkbook = errors.New("the file could not be read as a spreadsheet")
)
