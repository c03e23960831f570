// file: internals/features/users/admin/model/admin_model_test.go
package model

import (
	"testing"

	"gorm.io/datatypes"
)

func TestHasAnyPermission(t *testing.T) {
	admin := AdminModel{
		AdminPermissions: datatypes.NewJSONSlice([]string{"manage_routines", "manage_subjects"}),
	}

	tests := []struct {
		name     string
		required []string
		want     bool
	}{
		{"no requirement", nil, true},
		{"owned single", []string{"manage_routines"}, true},
		{"one of several owned", []string{"manage_admins", "manage_subjects"}, true},
		{"none owned", []string{"manage_admins", "manage_orders"}, false},
		{"empty slice", []string{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := admin.HasAnyPermission(tt.required); got != tt.want {
				t.Fatalf("HasAnyPermission(%v) = %v, want %v", tt.required, got, tt.want)
			}
		})
	}
}

func TestHasAnyPermissionEmptyOwned(t *testing.T) {
	admin := AdminModel{}
	if admin.HasAnyPermission([]string{"manage_routines"}) {
		t.Fatal("admin without permissions must be denied")
	}
	if !admin.HasAnyPermission(nil) {
		t.Fatal("nil requirement must pass")
	}
}
