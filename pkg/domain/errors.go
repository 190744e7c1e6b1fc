package domain

import "errors"

// ErrUnknownAction is returned when a dispatch names an action outside the catalog.
var ErrUnknownAction = errors.New("unknown action")

// ErrInvalidConfig is returned when the engine configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrInvalidCatalog is returned when an action catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")
