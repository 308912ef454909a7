package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrNameRequired   = errors.New("player name is required")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrWinnerRequired  = errors.New("a winner is required")
	ErrInvalidGameType = errors.New("unknown game type")
	ErrInvalidMood     = errors.New("unknown mood")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime     = errors.New("time must be HH:MM")
	ErrUnknownBadge    = errors.New("unknown badge")
)
