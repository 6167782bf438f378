package models

import "testing"

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		expected bool
	}{
		{"admin role", RoleAdmin, true},
		{"analyst role", RoleAnalyst, true},
		{"viewer role", RoleViewer, true},
		{"invalid role", "invalid", false},
		{"empty role", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidRole(tt.role)
			if result != tt.expected {
				t.Errorf("IsValidRole(%s) = %v, want %v", tt.role, result, tt.expected)
			}
		})
	}
}

func TestUser_HasPermission(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	analyst := &User{Role: RoleAnalyst}
	viewer := &User{Role: RoleViewer}

	tests := []struct {
		name     string
		user     *User
		action   string
		expected bool
	}{
		{"admin can manage users", admin, "manage_users", true},
		{"admin can estimate", admin, "estimate", true},

		{"analyst can estimate", analyst, "estimate", true},
		{"analyst can write preferences", analyst, "write_preferences", true},
		{"analyst can view history", analyst, "view_history", true},
		{"analyst cannot manage users", analyst, "manage_users", false},

		{"viewer can estimate", viewer, "estimate", true},
		{"viewer can read preferences", viewer, "read_preferences", true},
		{"viewer cannot write preferences", viewer, "write_preferences", false},
		{"viewer cannot manage users", viewer, "manage_users", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.user.HasPermission(tt.action)
			if result != tt.expected {
				t.Errorf("User with role %s HasPermission(%s) = %v, want %v",
					tt.user.Role, tt.action, result, tt.expected)
			}
		})
	}
}
