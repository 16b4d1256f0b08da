// file: internals/features/newsfeed/errs/errors.go
package errs

import "errors"

// Typed errors raised by the newsfeed services. Controllers translate them to
// HTTP codes at the request boundary; nothing below the boundary formats
// responses.
var (
	// ErrNotFound: publication/violation missing or soft-deleted. Also covers
	// moderation-pending content requested by anyone but the author or an
	// admin ("never existed" from the outside).
	ErrNotFound = errors.New("resource not found")

	// ErrPolicyRejected: interaction attempted across a block or discreet-mode
	// boundary. Surfaced explicitly (403), never silently dropped.
	ErrPolicyRejected = errors.New("action not allowed by relationship policy")

	// ErrAlreadyDecided: moderation decisions are terminal; a second decide on
	// the same violation is rejected.
	ErrAlreadyDecided = errors.New("violation already decided")

	// ErrStoreUnavailable: transient infrastructure failure on a write path.
	// Feed reads degrade to an empty page instead of raising this.
	ErrStoreUnavailable = errors.New("store unavailable")
)
