package util

import (
	"strconv"
)

// ParseUintParam converts a path parameter to an id. The bool reports whether
// the input looked like an id at all; 0 is never a valid id.
func ParseUintParam(s string) (uint, bool) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
