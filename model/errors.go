package model

import "errors"

var (
	// ErrFileNotFound is returned when the file does not exist
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied is returned when the file exists but cannot be read
	ErrPermissionDenied = errors.New("permission denied")

	// ErrEmptyFile is returned when the file has no content at all
	ErrEmptyFile = errors.New("file is empty")

	// ErrNotParquet is returned when the file cannot be parsed as parquet
	ErrNotParquet = errors.New("not a readable parquet file")
)
