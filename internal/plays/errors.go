package plays

import "errors"

// Domain errors for the plays package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, plays.ErrPlayExists) {
//	    // already recorded, skip
//	}
var (
	// ErrPlayNotFound is returned when a play id does not exist.
	ErrPlayNotFound = errors.New("plays: not found")

	// ErrPlayExists is returned when inserting a play id that already exists.
	ErrPlayExists = errors.New("plays: already exists")

	// ErrInvalidFlag is returned when a workflow flag name is not recognised.
	ErrInvalidFlag = errors.New("plays: invalid flag")

	// ErrAmbiguousUpdate is returned when a by-id statement touches more than
	// one row. play_id is the primary key, so this indicates a corrupt table.
	ErrAmbiguousUpdate = errors.New("plays: statement affected more than one row")
)
