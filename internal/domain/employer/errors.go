package employer

import "errors"

var (
	ErrEmployerNotFound = errors.New("employer not found")
)
