package utils

import "errors"

var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrInterestsRequired   = errors.New("at least one interest is required")
	ErrInvalidDate         = errors.New("dates must be in YYYY-MM-DD format")
	ErrInvalidDateRange    = errors.New("end date must not be before start date")
	ErrNegativeValue       = errors.New("headcounts and budgets must not be negative")
	ErrEmptyGroup          = errors.New("the group needs at least one member")
	ErrInvalidAmount       = errors.New("budgets must be finite numbers")
	ErrGroupTooLarge       = errors.New("each traveller category is limited to 1000 people")

	ErrMissingCredential = errors.New("missing API credential")
	ErrUnknownProvider   = errors.New("unsupported text generation provider")
	ErrEmptyCompletion   = errors.New("text generation returned no content")
	ErrItineraryNotFound = errors.New("no itinerary generated yet")
)

// IsValidationError reports whether err comes from trip input validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrDestinationRequired) ||
		errors.Is(err, ErrInterestsRequired) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidDateRange) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrEmptyGroup) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrGroupTooLarge)
}
