package locale

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone resolution must not depend on a host database
)

// LoadTimeZone resolves an explicit IANA zone id. The empty id and "Local"
// are rejected: both name ambient host state, which no operation in this
// package may read.
func LoadTimeZone(id string) (*time.Location, error) {
	switch id {
	case "":
		return nil, fmt.Errorf("%w: empty zone id", ErrUnknownTimeZone)
	case "Local":
		return nil, fmt.Errorf("%w: %q names host state", ErrUnknownTimeZone, id)
	}

	loc, err := time.LoadLocation(id)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnknownTimeZone, id)
	}
	return loc, nil
}
