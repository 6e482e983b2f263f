//go:build unit

package auth_test

import (
	"testing"

	"lodging-service/internal/domain/auth"
	"lodging-service/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "正常系", email: "guest@example.com", password: "secret"},
		{name: "メール形式NG", email: "guest", password: "secret", errIs: user.ErrInvalidEmail},
		{name: "パスワード空NG", email: "guest@example.com", password: "", errIs: user.ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := auth.NewCredentials(tt.email, tt.password)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, creds.Email().Value())
			assert.Equal(t, tt.password, creds.Password().Value())
		})
	}
}
