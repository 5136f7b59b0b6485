package application

import "strings"

// Default identities used when the resolver is constructed without
// configuration, matching the seeded bootstrap admin.
const (
	DefaultAdminEmail    = "admin@school.edu"
	DefaultStudentDomain = "student.edu"
)

// RoleResolver derives a role from an email address on every check. Roles
// are never persisted, so a stored record cannot be edited into a role
// escalation.
type RoleResolver struct {
	adminEmail    string
	studentSuffix string
}

// NewRoleResolver constructs a resolver for the given administrator email
// and student email domain. Empty values fall back to the defaults.
func NewRoleResolver(adminEmail, studentDomain string) *RoleResolver {
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	domain := strings.ToLower(strings.TrimSpace(studentDomain))
	domain = strings.TrimPrefix(domain, "@")
	if domain == "" {
		domain = DefaultStudentDomain
	}
	return &RoleResolver{adminEmail: adminEmail, studentSuffix: "@" + domain}
}

// Resolve maps an email to its role. An empty email is the guest role.
func (r *RoleResolver) Resolve(email string) Role {
	if r == nil {
		return NewRoleResolver("", "").Resolve(email)
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	switch {
	case normalized == "":
		return RoleGuest
	case normalized == r.adminEmail:
		return RoleAdmin
	case strings.HasSuffix(normalized, r.studentSuffix):
		return RoleStudent
	}
	return RoleMember
}

// PrincipalFor builds the principal for an email, resolving its role.
func (r *RoleResolver) PrincipalFor(email string) Principal {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return Principal{Email: normalized, Role: r.Resolve(normalized)}
}
