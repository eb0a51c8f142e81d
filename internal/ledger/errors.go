package ledger

import "errors"

// Rejection errors surfaced to the caller. The action that produced one
// of these has not mutated any state.
var (
	// ErrInvalidAmount marks a non-numeric amount, or a non-positive one
	// where a positive amount is required.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCategory marks a category add or edit with a missing name
	// or color.
	ErrInvalidCategory = errors.New("category needs a name and a color")

	// ErrDuplicateID marks a category add whose id is already taken.
	ErrDuplicateID = errors.New("category id already exists")

	// ErrProtectedCategory marks an attempt to delete or re-identify the
	// fallback category.
	ErrProtectedCategory = errors.New("the default category cannot be removed")

	// ErrNotFound marks an operation referencing an unknown record or
	// category id. Deletes absorb it silently; other operations surface it.
	ErrNotFound = errors.New("not found")
)
