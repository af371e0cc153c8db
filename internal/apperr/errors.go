package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm" // GORM error sentinels
)

// Error taxonomy for the API. Storage-layer errors are translated into these
// at the boundary; raw driver errors never reach a response body.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")     // Login: unknown name or wrong password, merged
	ErrUnauthenticated    = errors.New("token not found")         // Missing, malformed, unknown or expired token, merged
	ErrForbidden          = errors.New("insufficient privileges") // Authenticated but not owner and not admin
	ErrConflict           = errors.New("item already exists")     // Uniqueness violation on user name or advertisement title
	ErrNotFound           = errors.New("item not found")          // Referenced resource absent
	ErrOwnerNotFound      = errors.New("token owner not found")   // Integrity fault: token issued against a missing user
)

// Translate maps storage-layer errors onto the taxonomy. Errors it does not
// recognize pass through unchanged and are treated as server faults upstream.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrOwnerNotFound
	default:
		return err
	}
}

// Status maps a taxonomy error to its HTTP status code. Anything outside the
// taxonomy (including ErrOwnerNotFound, a server-side integrity fault) is a 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the user-facing message for a taxonomy error. Server faults
// get a generic message so internals never leak.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, ErrUnauthenticated):
		return "Token not found"
	case errors.Is(err, ErrForbidden):
		return "Insufficient privileges"
	case errors.Is(err, ErrConflict):
		return "Item already exists"
	case errors.Is(err, ErrNotFound):
		return "Item not found"
	default:
		return "Internal server error"
	}
}
