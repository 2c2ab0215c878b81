package ports

import (
	"errors"
	"fmt"
)

// ServerError is a non-2xx response carrying a structured error body. Any
// remote failure that is not a ServerError is a transport failure (no
// connectivity, timeout, unparseable response). The fallback policy treats
// both the same way; callers that care can tell them apart with errors.As.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.StatusCode, e.Message)
}

// IsServerError reports whether err is a server-reported error rather than a
// transport failure.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}
