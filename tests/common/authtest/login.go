//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"lodging-service/internal/handler/dto/request"
	"lodging-service/tests/common/dbtest"
	"lodging-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func SignIn(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/auth/sign-in",
		request.SignInRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token, "token missing from sign-in response")

	return body.Token
}

// CreateAndSignIn returns the new user's id and a token obtained through the sign-in endpoint.
func CreateAndSignIn(t *testing.T, db dbtest.DBLike, router *gin.Engine, email string) (int32, string) {
	t.Helper()
	userID := dbtest.CreateTestUser(t, db, email)
	return userID, SignIn(t, router, email, dbtest.DefaultPassword)
}
