package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrMissingFile         = errors.New("no document supplied")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document is empty")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrModelNotConfigured  = errors.New("model service credential is not configured")
	ErrReceiptNotFound     = errors.New("receipt not found")
)
