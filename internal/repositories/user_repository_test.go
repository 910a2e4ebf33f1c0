package repositories

import (
	"testing"

	"github.com/salcho-dev/devlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRoleForEmail(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		masterEmail string
		want        models.UserRole
	}{
		{"master email gets admin", "owner@example.com", "owner@example.com", models.RoleAdmin},
		{"other email gets user", "reader@example.com", "owner@example.com", models.RoleUser},
		{"case sensitive", "Owner@example.com", "owner@example.com", models.RoleUser},
		{"empty master never grants admin", "", "", models.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, roleForEmail(tt.email, tt.masterEmail))
		})
	}
}
