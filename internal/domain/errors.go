package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Game state errors
	ErrMsgGameStateNotFound = "game state not found"

	// Fragment errors
	ErrMsgFragmentNotFound = "fragment not found"

	// Economy errors
	ErrMsgInsufficientFlux = "insufficient flux"

	// Device errors
	ErrMsgUnknownUpgradeTrack = "unknown upgrade track"

	// Mutation errors
	ErrMsgBaseNotBaseItem   = "mutation base must be a base item"
	ErrMsgInvalidComponent  = "mutation components must be components or modifiers"
	ErrMsgNoComponents      = "mutation requires at least one component"
	ErrMsgTooManyComponents = "too many mutation components"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Game state errors
	ErrGameStateNotFound = errors.New(ErrMsgGameStateNotFound)

	// Fragment errors
	ErrFragmentNotFound = errors.New(ErrMsgFragmentNotFound)

	// Economy errors
	ErrInsufficientFlux = errors.New(ErrMsgInsufficientFlux)

	// Device errors
	ErrUnknownUpgradeTrack = errors.New(ErrMsgUnknownUpgradeTrack)

	// Mutation errors
	ErrBaseNotBaseItem   = errors.New(ErrMsgBaseNotBaseItem)
	ErrInvalidComponent  = errors.New(ErrMsgInvalidComponent)
	ErrNoComponents      = errors.New(ErrMsgNoComponents)
	ErrTooManyComponents = errors.New(ErrMsgTooManyComponents)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
