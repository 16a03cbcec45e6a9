package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a positive database identity taken from a URL segment.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", value, err)
	}
	if id < 1 {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
