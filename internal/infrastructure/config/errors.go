package config

import "errors"

// Sentinel errors for configuration lookups.
//
// These errors can be checked using errors.Is() for specific handling:
//
//	if errors.Is(err, config.ErrKeyNotFound) {
//	    // fall back to a caller-side default
//	}
var (
	// ErrSectionNotFound is returned when a requested section is absent.
	ErrSectionNotFound = errors.New("config: section not found")

	// ErrKeyNotFound is returned when a requested key is absent from its section.
	ErrKeyNotFound = errors.New("config: key not found")

	// ErrInvalidValue is returned when a typed accessor cannot parse a value.
	ErrInvalidValue = errors.New("config: invalid value")
)
