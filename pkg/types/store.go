package types

import "errors"

// Store records tallies. Callers attach to a backend, save and query
// tallies, and detach when done.
type Store interface {
	// Attach connects the Store to the backend described by config and
	// creates the DataDir if needed. Returns ErrAlreadyAttached if called
	// while attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent. After Detach, other
	// operations return ErrStoreDetached.
	Detach() error

	// Save creates or replaces a tally and returns its ID. An empty TallyID
	// gets a new UUID v7; a non-empty one must be a valid UUID.
	Save(tally *Tally) (string, error)

	// Get returns the tally with the given ID, or ErrNotFound.
	Get(id string) (*Tally, error)

	// List returns tallies ordered by creation time. An empty consumer
	// returns every tally.
	List(consumer string) ([]*Tally, error)

	// Delete removes the tally with the given ID, or returns ErrNotFound.
	Delete(id string) error
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Store operation errors.
var (
	ErrNotFound    = errors.New("tally not found")
	ErrInvalidID   = errors.New("invalid tally ID")
	ErrInvalidData = errors.New("invalid tally data")
)
