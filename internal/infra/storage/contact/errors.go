package contact

import "errors"

var (
	ErrBuildQuery = errors.New("contact.repository: failed to build query")
	ErrExecQuery  = errors.New("contact.repository: failed to execute query")
)
