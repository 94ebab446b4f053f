package engine

import "errors"

var (
	// ErrUnknownItem is returned when an operation names an item id the
	// engine was not built with.
	ErrUnknownItem = errors.New("unknown item")

	// ErrUnknownTarget is returned for drop target ids the board does not
	// contain.
	ErrUnknownTarget = errors.New("unknown drop target")

	// ErrUnknownOption is returned when selecting an option that is not part
	// of the choice set.
	ErrUnknownOption = errors.New("unknown option")
)
