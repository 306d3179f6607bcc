package model

import "errors"

// Common errors used across the application
var (
	// Engine usage errors
	ErrGameNotStarted = errors.New("no game has been started")
	ErrGameOver       = errors.New("game is over")
	ErrRollPending    = errors.New("a roll is still being resolved")
	ErrNothingAtRisk  = errors.New("no points at risk to hold")

	// Animated roll errors
	ErrRollResolved = errors.New("roll has already been resolved")
	ErrStaleRoll    = errors.New("roll belongs to a game that has been restarted")

	// Value errors
	ErrInvalidDie  = errors.New("invalid die face")
	ErrInvalidSeat = errors.New("invalid seat")
)
