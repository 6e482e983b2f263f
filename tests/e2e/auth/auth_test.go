//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"lodging-service/internal/handler/dto/request"
	"lodging-service/internal/handler/dto/response"
	"lodging-service/tests/common/authtest"
	"lodging-service/tests/common/dbtest"
	"lodging-service/tests/common/httptest"
	"lodging-service/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signInURL  = "/auth/sign-in"
	bookingURL = "/booking"
)

type authSuite struct {
	e2e.SharedSuite
	userID int32
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.userID = dbtest.CreateTestUser(s.T(), s.DB, "guest@example.com")
}

func (s *authSuite) TestSignIn() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "正常なサインイン",
			email:          "guest@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "valid credentials return a token",
		},
		{
			name:           "大文字のメールアドレス",
			email:          "Guest@Example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusOK,
			description:    "email lookup is case-insensitive",
		},
		{
			name:           "存在しないユーザー",
			email:          "nobody@example.com",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusUnauthorized,
			description:    "unknown email is rejected",
		},
		{
			name:           "間違ったパスワード",
			email:          "guest@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "wrong password is rejected",
		},
		{
			name:           "空のメールアドレス",
			email:          "",
			password:       dbtest.DefaultPassword,
			expectedStatus: http.StatusBadRequest,
			description:    "empty email fails validation",
		},
		{
			name:           "空のパスワード",
			email:          "guest@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "empty password fails validation",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.SignInRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, signInURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				var res response.SignInResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.Token)
				require.Equal(t, s.userID, res.User.ID)
				require.Equal(t, "guest@example.com", res.User.Email)
			}
		})
	}
}

func (s *authSuite) TestProtectedRoutes() {
	s.Run("トークンなし", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("不正なトークン", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil, "not-a-jwt")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("期限切れのトークン", func() {
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), s.userID)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil, token)
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("サインインで得たトークン", func() {
		token := authtest.SignIn(s.T(), s.Router, "guest@example.com", dbtest.DefaultPassword)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, bookingURL, nil, token)
		// authenticated, but no booking yet
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
