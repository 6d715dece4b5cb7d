package portal

import "errors"

// Rejections the Directory hands back are distinct from transport trouble:
// a rejection means the upstream answered and said no, while
// ErrDirectoryUnavailable means it never answered usefully at all.
var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrDirectoryRejected    = errors.New("directory rejected request")
	ErrDirectoryUnavailable = errors.New("directory service unavailable")
	ErrNoSession            = errors.New("no active session")
	ErrMissingField         = errors.New("required field missing")
	ErrForbidden            = errors.New("operation not permitted for role")
)

// IsRejection reports whether the Directory answered and said no, as opposed
// to being unreachable.
func IsRejection(err error) bool {
	return errors.Is(err, ErrDirectoryRejected)
}
