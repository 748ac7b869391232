package srs

import "errors"

// ErrInvalidRating indicates a rating outside the 1-5 range. Rejected
// before any state mutation.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// ErrMissingField indicates a study item is missing a required field.
var ErrMissingField = errors.New("missing required field")
