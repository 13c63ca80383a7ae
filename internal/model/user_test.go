package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EricsonWillians/itafest-backend/internal/apperr"
)

func TestUserCreateValidate(t *testing.T) {
	valid := UserCreate{
		Email:    "maria@example.com",
		Password: "s3cret-enough",
		FullName: "Maria Silva",
	}

	tests := []struct {
		name    string
		mutate  func(*UserCreate)
		wantErr bool
	}{
		{"valid", func(in *UserCreate) {}, false},
		{"explicit role", func(in *UserCreate) { in.Role = RoleBusinessOwner }, false},
		{"missing email", func(in *UserCreate) { in.Email = "" }, true},
		{"malformed email", func(in *UserCreate) { in.Email = "not-an-email" }, true},
		{"missing password", func(in *UserCreate) { in.Password = "" }, true},
		{"missing name", func(in *UserCreate) { in.FullName = "" }, true},
		{"unknown role", func(in *UserCreate) { in.Role = "superuser" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserCreateToModel(t *testing.T) {
	in := UserCreate{
		Email:    "maria@example.com",
		Password: "s3cret-enough",
		FullName: "Maria Silva",
	}
	user := in.ToModel("$2a$10$fakehash")

	assert.Equal(t, RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, "$2a$10$fakehash", user.HashedPassword)
	// The plaintext never reaches the model.
	assert.NotContains(t, user.HashedPassword, in.Password)
}
