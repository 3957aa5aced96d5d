package ports

import (
	"time"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// TokenIssuer mints a signed, time-bounded bearer token for a user. Pure:
// the result depends only on the user, the clock and the signing secret.
type TokenIssuer interface {
	Issue(user *domain.User, now time.Time) (string, error)
}

// TokenVerifier parses and verifies a raw bearer token (without the
// "Bearer " prefix) and extracts the caller's identity. Claims are read only
// after the signature verifies. Failures are one of
// domain.ErrMalformedToken, domain.ErrInvalidSignature or
// domain.ErrTokenExpired.
type TokenVerifier interface {
	Verify(raw string, now time.Time) (*domain.Principal, error)
}
