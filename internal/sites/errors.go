package sites

import "errors"

var (
	ErrNotFound = errors.New("not found")
)
