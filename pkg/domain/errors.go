package domain

import "errors"

// ErrMissingResolver is returned when a controller is built without a RowKeyResolver.
var ErrMissingResolver = errors.New("row key resolver is required")

// ErrMissingStore is returned when a controller is built without a view-state store.
var ErrMissingStore = errors.New("view state store is required")

// ErrMissingColumns is returned when a detail row builder has no column manager.
var ErrMissingColumns = errors.New("column manager is required")

// ErrRowNotFound is returned when no visible row resolves to the requested key.
var ErrRowNotFound = errors.New("row not found")

// ErrInvalidTable is returned when a table definition cannot be decoded.
var ErrInvalidTable = errors.New("invalid table definition")
