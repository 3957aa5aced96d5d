package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/domain"
	"github.com/MabsIPCA/manalynxAPI-sub001/internal/core/ports"
)

type stubVerifier struct {
	principal *domain.Principal
	err       error
}

func (s *stubVerifier) Verify(_ string, _ time.Time) (*domain.Principal, error) {
	return s.principal, s.err
}

type panicVerifier struct{}

func (panicVerifier) Verify(_ string, _ time.Time) (*domain.Principal, error) {
	panic("boom")
}

type captureSink struct {
	events []ports.AuditEvent
}

func (s *captureSink) Enqueue(ev ports.AuditEvent) {
	s.events = append(s.events, ev)
}

func runGuard(t *testing.T, verifier ports.TokenVerifier, spec AuthSpec, header string) (echo.Context, *captureSink, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/policies", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	sink := &captureSink{}
	guard := NewGuard(verifier, sink, zerolog.Nop())

	handler := guard.Require(spec)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, sink, handler(c)
}

func TestGuard_MissingHeader(t *testing.T) {
	_, sink, err := runGuard(t, &stubVerifier{}, RequireAuthenticated(), "")
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if len(sink.events) != 1 || sink.events[0].Reason != "missing_token" {
		t.Fatalf("unexpected audit events: %+v", sink.events)
	}
}

func TestGuard_WrongPrefix(t *testing.T) {
	for _, header := range []string{"Token abc", "bearer abc", "BEARER abc", "Bearer"} {
		_, _, err := runGuard(t, &stubVerifier{}, RequireAuthenticated(), header)
		if !errors.Is(err, domain.ErrMalformedToken) {
			t.Fatalf("header %q: expected ErrMalformedToken, got %v", header, err)
		}
	}
}

func TestGuard_EmptyBearerValue(t *testing.T) {
	_, _, err := runGuard(t, &stubVerifier{}, RequireAuthenticated(), "Bearer ")
	if !errors.Is(err, domain.ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestGuard_VerifierErrorsPropagate(t *testing.T) {
	cases := []struct {
		err    error
		reason string
	}{
		{domain.ErrInvalidSignature, "invalid_signature"},
		{domain.ErrTokenExpired, "token_expired"},
		{domain.ErrMalformedToken, "malformed_token"},
	}
	for _, tc := range cases {
		_, sink, err := runGuard(t, &stubVerifier{err: tc.err}, RequireAuthenticated(), "Bearer tok")
		if !errors.Is(err, tc.err) {
			t.Fatalf("expected %v, got %v", tc.err, err)
		}
		if len(sink.events) != 1 || sink.events[0].Reason != tc.reason {
			t.Fatalf("expected audit reason %q, got %+v", tc.reason, sink.events)
		}
	}
}

func TestGuard_RoleDenied(t *testing.T) {
	verifier := &stubVerifier{principal: &domain.Principal{SubjectID: 7, Role: domain.RoleCliente}}

	_, sink, err := runGuard(t, verifier, RequireRoles(domain.RoleAdmin, domain.RoleGestor), "Bearer tok")
	if !errors.Is(err, domain.ErrRoleDenied) {
		t.Fatalf("expected ErrRoleDenied, got %v", err)
	}
	if len(sink.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(sink.events))
	}
	// A role denial happens after verification, so the audit names the caller.
	if sink.events[0].SubjectID != 7 || sink.events[0].Role != domain.RoleCliente {
		t.Fatalf("audit event missing caller identity: %+v", sink.events[0])
	}
}

func TestGuard_RoleAllowed(t *testing.T) {
	verifier := &stubVerifier{principal: &domain.Principal{SubjectID: 7, Role: domain.RoleGestor}}

	c, sink, err := runGuard(t, verifier, RequireRoles(domain.RoleAdmin, domain.RoleGestor), "Bearer tok")
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatalf("expected no audit events, got %+v", sink.events)
	}

	principal, ok := PrincipalFrom(c)
	if !ok {
		t.Fatal("principal not attached to context")
	}
	if principal.SubjectID != 7 || principal.Role != domain.RoleGestor {
		t.Fatalf("unexpected principal: %+v", principal)
	}
}

func TestGuard_AnyAuthenticated(t *testing.T) {
	for _, role := range domain.AllRoles {
		verifier := &stubVerifier{principal: &domain.Principal{SubjectID: 1, Role: role}}
		_, _, err := runGuard(t, verifier, RequireAuthenticated(), "Bearer tok")
		if err != nil {
			t.Fatalf("role %s: expected pass, got %v", role, err)
		}
	}
}

func TestGuard_AnonymousSkipsVerification(t *testing.T) {
	c, _, err := runGuard(t, panicVerifier{}, AllowAnonymous(), "")
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if _, ok := PrincipalFrom(c); ok {
		t.Fatal("anonymous request must carry no principal")
	}
}

func TestGuard_AnonymousIgnoresHeader(t *testing.T) {
	// A garbage header on an exempt endpoint must not be inspected at all.
	_, _, err := runGuard(t, panicVerifier{}, AllowAnonymous(), "Bearer garbage")
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
}

func TestGuard_VerifierPanicDeniesRequest(t *testing.T) {
	_, _, err := runGuard(t, panicVerifier{}, RequireAuthenticated(), "Bearer tok")

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", httpErr.Code)
	}
}

func TestGuard_MissingBeatsMalformed(t *testing.T) {
	// An absent header is reported as missing, never as malformed.
	_, _, err := runGuard(t, &stubVerifier{}, RequireRoles(domain.RoleAdmin), "")
	if !errors.Is(err, domain.ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}
