package domain

import "testing"

func TestRoleFromString(t *testing.T) {
	cases := []struct {
		raw     string
		want    Role
		isAdmin bool
	}{
		{"SUPER_ORG_ADMIN", RoleSuperOrgAdmin, true},
		{"ADMIN", RoleAdmin, true},
		{"SIMULATOR", RoleSimulator, false},
		{"END_USER", RoleEndUser, false},
		{"bogus", RoleEndUser, false},
		{"", RoleEndUser, false},
		{"admin", RoleEndUser, false}, // matching is case-sensitive
	}

	for _, tc := range cases {
		got := RoleFromString(tc.raw)
		if got != tc.want {
			t.Errorf("RoleFromString(%q) = %q, want %q", tc.raw, got, tc.want)
		}
		if got.IsAdmin() != tc.isAdmin {
			t.Errorf("RoleFromString(%q).IsAdmin() = %v, want %v", tc.raw, got.IsAdmin(), tc.isAdmin)
		}
	}
}

func TestNewSession_NormalizesRole(t *testing.T) {
	sess := NewSession("alice", "ADMIN")
	if sess.Role != RoleAdmin || !sess.IsAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}

	sess = NewSession("bob", "bogus")
	if sess.Role != RoleEndUser || sess.IsAdmin {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestSession_Active(t *testing.T) {
	var nilSess *Session
	if nilSess.Active() {
		t.Fatalf("nil session should not be active")
	}
	if (&Session{}).Active() {
		t.Fatalf("empty session should not be active")
	}
	if !NewSession("alice", "END_USER").Active() {
		t.Fatalf("populated session should be active")
	}
}
