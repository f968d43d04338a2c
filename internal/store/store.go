// Package store is the data-access layer: one store per entity, each built
// around an injected *gorm.DB handle constructed once at process start.
package store

import "errors"

// defaultLimit caps list and search pages
const defaultLimit = 10

var (
	// ErrNotFound reports that no row matched the given id
	ErrNotFound = errors.New("record not found")

	// ErrOccupationNotActive reports a check-out attempt on an occupation
	// that is not in the active state
	ErrOccupationNotActive = errors.New("occupation is not active")

	// ErrRoomOccupied reports an attempt to open a second active occupation
	// for the same room
	ErrRoomOccupied = errors.New("room already has an active occupation")
)

func limitOrDefault(n int) int {
	if n <= 0 {
		return defaultLimit
	}
	return n
}
