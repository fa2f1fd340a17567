package domain

import "errors"

// Sentinel errors shared by the catalog, renderers and commands.
//
//	return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested course is not in the catalog.
	ErrNotFound = errors.New("course not found")

	// ErrNotLoaded indicates a query was attempted before any catalog load.
	ErrNotLoaded = errors.New("catalog not loaded")

	// ErrEmptyFilename indicates a load was requested without a file name.
	ErrEmptyFilename = errors.New("filename cannot be empty")
)
