package domain

import "errors"

// Auth error taxonomy. All are terminal, user-visible client errors: the
// gate never retries verification and never degrades to an unauthenticated
// mode.
var (
	// ErrMissingToken: the Authorization header was absent or empty.
	ErrMissingToken = errors.New("missing authorization header")
	// ErrMalformedToken: header present but not a parseable bearer token.
	ErrMalformedToken = errors.New("malformed token")
	// ErrInvalidSignature: token parsed but the signature does not verify.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired: signature valid but the token is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrRoleDenied: valid token, but the role is not in the endpoint's
	// allowed set.
	ErrRoleDenied = errors.New("role not allowed")

	// ErrInvalidCredentials covers both "no such user" and "wrong password"
	// so a login failure never reveals which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUnknownRole = errors.New("unknown role")
)

// Resource errors shared by the CRUD services.
var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrPolicyNotFound    = errors.New("policy not found")
	ErrInvalidTransition = errors.New("invalid policy status transition")
	ErrCoverageNotFound  = errors.New("coverage not found")
	ErrCategoryNotFound  = errors.New("vehicle category not found")
	ErrDiseaseNotFound   = errors.New("disease not found")
	ErrTeamNotFound      = errors.New("team not found")

	ErrForbidden    = errors.New("access forbidden")
	ErrInvalidInput = errors.New("invalid input")
)
