package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/api/metrics"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

// principalKey is the echo context key the gate stores the verified
// Principal under.
const principalKey = "principal"

// bearerPrefix must match verbatim; the prefix is case-sensitive.
const bearerPrefix = "Bearer "

// AuthSpec declares an endpoint's access policy. The zero value requires a
// valid token but accepts any role; endpoints are never anonymous unless
// explicitly marked so.
type AuthSpec struct {
	Anonymous bool
	Roles     []domain.Role
}

// AllowAnonymous marks an endpoint as exempt from the gate entirely. Used
// only by login, client self-registration and the operational probes.
func AllowAnonymous() AuthSpec { return AuthSpec{Anonymous: true} }

// RequireAuthenticated requires a valid token but accepts any role.
func RequireAuthenticated() AuthSpec { return AuthSpec{} }

// RequireRoles requires a valid token whose role is one of roles.
func RequireRoles(roles ...domain.Role) AuthSpec { return AuthSpec{Roles: roles} }

// Guard is the single interception point for authentication and
// authorization. Every route is wrapped in Require with its declared
// AuthSpec; the decision pipeline lives in authorize and nowhere else.
type Guard struct {
	tokens ports.TokenVerifier
	audit  ports.AuditSink
	log    zerolog.Logger
}

func NewGuard(tokens ports.TokenVerifier, audit ports.AuditSink, log zerolog.Logger) *Guard {
	return &Guard{tokens: tokens, audit: audit, log: log}
}

// Require wraps a handler with the gate. On success the Principal is
// attached to the request context; on any denial the handler never runs.
func (g *Guard) Require(spec AuthSpec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now().UTC()
			principal, err := g.decide(c.Request().Header.Get(echo.HeaderAuthorization), now, spec)
			if err != nil {
				reason := denialReason(err)
				metrics.AuthDenialsTotal.WithLabelValues(reason).Inc()
				ev := ports.AuditEvent{
					Action:  "authorize",
					Outcome: ports.AuditOutcomeDenied,
					Reason:  reason,
					Path:    c.Request().URL.Path,
					At:      now,
				}
				if principal != nil {
					ev.SubjectID = principal.SubjectID
					ev.Role = principal.Role
				}
				g.audit.Enqueue(ev)
				return err
			}
			if principal != nil {
				c.Set(principalKey, principal)
			}
			return next(c)
		}
	}
}

// decide runs authorize behind a recover so an unexpected failure inside
// verification rejects the request instead of crashing the process.
func (g *Guard) decide(header string, now time.Time, spec AuthSpec) (principal *domain.Principal, err error) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error().Interface("panic", r).Msg("authorization gate panic")
			principal, err = nil, echo.NewHTTPError(http.StatusUnauthorized, "access denied")
		}
	}()
	return g.authorize(header, now, spec)
}

// authorize is the gate's decision pipeline, evaluated in fixed order:
// missing header → malformed prefix → signature/expiry via the verifier →
// role membership. The returned principal is non-nil alongside
// ErrRoleDenied so audit logging can name the rejected caller.
func (g *Guard) authorize(header string, now time.Time, spec AuthSpec) (*domain.Principal, error) {
	if spec.Anonymous {
		return nil, nil
	}

	if header == "" {
		return nil, domain.ErrMissingToken
	}
	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || raw == "" {
		return nil, domain.ErrMalformedToken
	}

	principal, err := g.tokens.Verify(raw, now)
	if err != nil {
		return nil, err
	}

	// An empty role set means any authenticated role is acceptable.
	if len(spec.Roles) > 0 && !principal.Role.In(spec.Roles) {
		return principal, domain.ErrRoleDenied
	}
	return principal, nil
}

// denialReason converts a gate error into the label used by metrics and the
// audit trail.
func denialReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingToken):
		return "missing_token"
	case errors.Is(err, domain.ErrMalformedToken):
		return "malformed_token"
	case errors.Is(err, domain.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, domain.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, domain.ErrRoleDenied):
		return "role_denied"
	default:
		return "internal"
	}
}

// PrincipalFrom extracts the Principal the gate attached to the request
// context. ok is false on anonymous endpoints, where no principal exists.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	principal, ok := c.Get(principalKey).(*domain.Principal)
	return principal, ok
}
