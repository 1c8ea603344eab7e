package payload

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidUserID = errors.New("invalid user id")

// ParseUserID reads an optional user id from a query or form value; an
// empty value yields zero.
func ParseUserID(raw string) (uint, error) {
	if raw == "" {
		return 0, nil
	}

	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUserID, raw)
	}

	return uint(id), nil
}

// ParseNoteID reads the note id path parameter.
func ParseNoteID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid note id %q", raw)
	}

	return uint(id), nil
}
