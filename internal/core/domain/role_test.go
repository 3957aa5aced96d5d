package domain

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles {
		parsed, err := ParseRole(string(role))
		if err != nil {
			t.Fatalf("role %s: %v", role, err)
		}
		if parsed != role {
			t.Fatalf("expected %s, got %s", role, parsed)
		}
	}

	for _, raw := range []string{"", "superuser", "Admin", "ADMIN", " cliente"} {
		if _, err := ParseRole(raw); !errors.Is(err, ErrUnknownRole) {
			t.Fatalf("raw %q: expected ErrUnknownRole, got %v", raw, err)
		}
	}
}

func TestRoleIn(t *testing.T) {
	staff := []Role{RoleAdmin, RoleGestor, RoleAgente}

	if !RoleGestor.In(staff) {
		t.Fatal("gestor should be in staff set")
	}
	if RoleCliente.In(staff) {
		t.Fatal("cliente should not be in staff set")
	}
	if RoleAdmin.In(nil) {
		t.Fatal("no role belongs to an empty set")
	}
}

func TestPolicyStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PolicyStatus
		want     bool
	}{
		{PolicyDraft, PolicyActive, true},
		{PolicyDraft, PolicyCancelled, true},
		{PolicyDraft, PolicyExpired, false},
		{PolicyActive, PolicyCancelled, true},
		{PolicyActive, PolicyExpired, true},
		{PolicyActive, PolicyDraft, false},
		{PolicyCancelled, PolicyActive, false},
		{PolicyExpired, PolicyActive, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}
