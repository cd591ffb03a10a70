package usecase

import "github.com/oklog/ulid/v2"

// newID returns a lexically sortable, time-ordered identifier.
func newID() string {
	return ulid.Make().String()
}
