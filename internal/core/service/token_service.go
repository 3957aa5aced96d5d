package service

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
)

// tokenClaims is the signed claim set carried by every bearer token.
type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 bearer tokens. It is stateless with
// respect to requests: the signing secret and token lifetime are fixed at
// construction and never mutated, so the service is safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for user, valid from now until now plus the configured
// lifetime. Pure function of its inputs, the secret and the TTL.
func (s *TokenService) Issue(user *domain.User, now time.Time) (string, error) {
	claims := tokenClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses raw, verifies signature and expiry against now, and only
// then extracts the principal. No claim is trusted before the signature
// checks out.
func (s *TokenService) Verify(raw string, now time.Time) (*domain.Principal, error) {
	claims := &tokenClaims{}
	parser := jwt.NewParser(
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithExpirationRequired(),
	)
	tkn, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !tkn.Valid {
		return nil, domain.ErrInvalidSignature
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domain.ErrMalformedToken
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrMalformedToken
	}

	return &domain.Principal{SubjectID: subjectID, Role: role}, nil
}

// classifyTokenError maps golang-jwt parse failures onto the auth error
// taxonomy. Anything unrecognised collapses to ErrMalformedToken so the
// gate fails closed instead of leaking library internals.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return domain.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return domain.ErrMalformedToken
	default:
		return domain.ErrMalformedToken
	}
}
