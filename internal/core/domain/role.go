package domain

// Role is one of the fixed set of access roles. The set is closed: roles are
// declared here at build time and never registered at runtime.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleGestor  Role = "gestor"
	RoleAgente  Role = "agente"
	RoleCliente Role = "cliente"
)

// AllRoles enumerates every role the system knows about.
var AllRoles = []Role{RoleAdmin, RoleGestor, RoleAgente, RoleCliente}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	return r.In(AllRoles)
}

// In reports whether r appears in set. Roles form a flat set: there is no
// hierarchy, so admin is not implicitly included when gestor is required.
func (r Role) In(set []Role) bool {
	for _, s := range set {
		if r == s {
			return true
		}
	}
	return false
}

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrUnknownRole
	}
	return r, nil
}
