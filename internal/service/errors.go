package service

import (
	"errors"

	"lifepath/internal/simulation"
)

var (
	ErrNotEnoughPaths     = errors.New("at least 2 paths are required")
	ErrMissingUserProfile = errors.New("userProfile is required")
	ErrMissingUserInputs  = errors.New("userInputs is required")
	ErrNoPathsSelected    = errors.New("selectedPathIds must not be empty")
	ErrHorizonTooLarge    = errors.New("horizonYears exceeds the allowed maximum")
)

// IsValidationError reports whether err was caused by the caller's input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNotEnoughPaths) ||
		errors.Is(err, ErrMissingUserProfile) ||
		errors.Is(err, ErrMissingUserInputs) ||
		errors.Is(err, ErrNoPathsSelected) ||
		errors.Is(err, ErrHorizonTooLarge) ||
		errors.Is(err, simulation.ErrInvalidHorizon)
}

// uniqueIDs drops blank and repeated ids, keeping first occurrences in order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
