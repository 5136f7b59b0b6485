package application

import "testing"

func TestRoleResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("applies the default identities", func(t *testing.T) {
		t.Parallel()

		resolver := NewRoleResolver("", "")
		cases := []struct {
			email string
			want  Role
		}{
			{"", RoleGuest},
			{"admin@school.edu", RoleAdmin},
			{"ADMIN@SCHOOL.EDU", RoleAdmin},
			{"jane@student.edu", RoleStudent},
			{"jane@alumni.student.edu", RoleMember},
			{"jane@example.com", RoleMember},
			{"admin@student.edu", RoleStudent},
		}
		for _, tc := range cases {
			if got := resolver.Resolve(tc.email); got != tc.want {
				t.Fatalf("Resolve(%q) = %s, want %s", tc.email, got, tc.want)
			}
		}
	})

	t.Run("honours configured identities", func(t *testing.T) {
		t.Parallel()

		resolver := NewRoleResolver("boss@corp.io", "@uni.ac")
		if got := resolver.Resolve("boss@corp.io"); got != RoleAdmin {
			t.Fatalf("expected admin, got %s", got)
		}
		if got := resolver.Resolve("kid@uni.ac"); got != RoleStudent {
			t.Fatalf("expected student, got %s", got)
		}
		if got := resolver.Resolve("admin@school.edu"); got != RoleMember {
			t.Fatalf("default admin must not stay privileged, got %s", got)
		}
	})

	t.Run("nil resolver falls back to defaults", func(t *testing.T) {
		t.Parallel()

		var resolver *RoleResolver
		if got := resolver.Resolve("admin@school.edu"); got != RoleAdmin {
			t.Fatalf("expected admin, got %s", got)
		}
	})
}

func TestRoleResolver_PrincipalFor(t *testing.T) {
	t.Parallel()

	resolver := NewRoleResolver("", "")

	principal := resolver.PrincipalFor(" Jane@Student.EDU ")
	if principal.Email != "jane@student.edu" {
		t.Fatalf("unexpected email: %q", principal.Email)
	}
	if principal.Role != RoleStudent {
		t.Fatalf("unexpected role: %s", principal.Role)
	}
	if !principal.SignedIn() {
		t.Fatal("expected principal to be signed in")
	}

	guest := resolver.PrincipalFor("")
	if guest.SignedIn() {
		t.Fatal("guest must not be signed in")
	}
	if guest.IsAdmin() {
		t.Fatal("guest must not be admin")
	}
}
