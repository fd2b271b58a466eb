package domain

import "testing"

func TestRole_Capabilities(t *testing.T) {
	cases := []struct {
		role             Role
		manageUsers      bool
		tag              bool
		reply            bool
		scheduleMeetings bool
		browseAll        bool
		raiseQueries     bool
	}{
		{RoleAdmin, true, true, true, true, true, false},
		{RoleUser, false, true, true, true, true, false},
		{RoleCustomer, false, false, false, false, false, true},
	}

	for _, tc := range cases {
		if got := tc.role.CanManageUsers(); got != tc.manageUsers {
			t.Fatalf("%s.CanManageUsers() = %v", tc.role, got)
		}
		if got := tc.role.CanTag(); got != tc.tag {
			t.Fatalf("%s.CanTag() = %v", tc.role, got)
		}
		if got := tc.role.CanReply(); got != tc.reply {
			t.Fatalf("%s.CanReply() = %v", tc.role, got)
		}
		if got := tc.role.CanScheduleMeetings(); got != tc.scheduleMeetings {
			t.Fatalf("%s.CanScheduleMeetings() = %v", tc.role, got)
		}
		if got := tc.role.CanBrowseAllQueries(); got != tc.browseAll {
			t.Fatalf("%s.CanBrowseAllQueries() = %v", tc.role, got)
		}
		if got := tc.role.CanRaiseQueries(); got != tc.raiseQueries {
			t.Fatalf("%s.CanRaiseQueries() = %v", tc.role, got)
		}
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleUser, RoleCustomer} {
		if !r.Valid() {
			t.Fatalf("expected %s to be valid", r)
		}
	}
	if Role("root").Valid() {
		t.Fatalf("expected unknown role to be invalid")
	}
	if Role("").Valid() {
		t.Fatalf("expected empty role to be invalid")
	}
}
