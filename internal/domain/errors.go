package domain

import "errors"

var (
	// ErrInvalidScore is returned when a score submission fails validation.
	ErrInvalidScore = errors.New("invalid score data")
	// ErrStoreUnavailable wraps backing store failures on reads.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrPlayerNotFound indicates a catalog lookup missed.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrScoreNotFound indicates a score record lookup missed.
	ErrScoreNotFound = errors.New("score not found")
	// ErrSaveFailed is reported when a finished game could not be submitted.
	ErrSaveFailed = errors.New("save failed")
	// ErrNameRequired blocks submission until the player enters a name.
	ErrNameRequired = errors.New("player name required")
	// ErrSaveInFlight rejects a duplicate submission while one is pending.
	ErrSaveInFlight = errors.New("score submission already in flight")
	// ErrNotComplete is returned when saving a game that has not finished.
	ErrNotComplete = errors.New("game not complete")
	// ErrInvalidTransition is returned for actions the current state does not accept.
	ErrInvalidTransition = errors.New("invalid game transition")
	// ErrEmptyCatalog is returned when no players are available to build questions.
	ErrEmptyCatalog = errors.New("catalog is empty")
)
