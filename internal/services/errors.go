package services

import "errors"

var (
	// ErrGameExists reports that a chat already has an open game.
	// Creators racing on the partial unique index land here.
	ErrGameExists = errors.New("open game already exists for chat")

	// ErrAlreadyJoined reports that the user already holds a state
	// record for the game.
	ErrAlreadyJoined = errors.New("user already joined game")

	ErrGameNotFound  = errors.New("game not found")
	ErrThemeNotFound = errors.New("theme not found")
)
