//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"lodging-service/internal/infra"
	"lodging-service/internal/pkg/errs"
	"lodging-service/internal/pkg/jwt"
	"lodging-service/internal/pkg/password"
	"lodging-service/internal/usecase/commands"
	"lodging-service/internal/usecase/queries"
	commandsmock "lodging-service/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestSignIn(t *testing.T) {
	hashed, err := password.HashWithCost("secret-pass", bcrypt.MinCost)
	require.NoError(t, err)
	jwtService := jwt.NewService("test-secret", time.Hour)
	guest := &queries.AuthorizedUserView{ID: 4, Email: "guest@example.com"}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(m *commandsmock.MockUserReadStore)
		errIs    error
	}{
		{
			name:     "正常系",
			email:    "Guest@Example.com",
			password: "secret-pass",
			setup: func(m *commandsmock.MockUserReadStore) {
				m.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(guest, hashed, nil)
			},
		},
		{
			name:     "パスワード不一致",
			email:    "guest@example.com",
			password: "wrong-pass",
			setup: func(m *commandsmock.MockUserReadStore) {
				m.EXPECT().FindByEmail(gomock.Any(), "guest@example.com").Return(guest, hashed, nil)
			},
			errIs: commands.ErrInvalidCredentials,
		},
		{
			name:     "ユーザーなし",
			email:    "nobody@example.com",
			password: "secret-pass",
			setup: func(m *commandsmock.MockUserReadStore) {
				m.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound))
			},
			errIs: commands.ErrInvalidCredentials,
		},
		{
			name:     "メール形式不正",
			email:    "not-an-email",
			password: "secret-pass",
			setup:    func(*commandsmock.MockUserReadStore) {},
			errIs:    commands.ErrAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := commandsmock.NewMockUserReadStore(ctrl)
			tt.setup(store)

			result, err := commands.NewAuthCommands(store, jwtService).SignIn(context.Background(), tt.email, tt.password)

			if tt.errIs != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.errIs), "got %v", err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, guest, result.User)

			claims, err := jwtService.ValidateToken(result.Token)
			require.NoError(t, err)
			assert.Equal(t, guest.ID, claims.UserID)
		})
	}
}
