package response

import "lodging-service/internal/usecase/commands"

type SignInResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    int32  `json:"id"`
	Email string `json:"email"`
}

func FromSignInResult(r *commands.SignInResult) *SignInResponse {
	return &SignInResponse{
		Token: r.Token,
		User: UserResponse{
			ID:    r.User.ID,
			Email: r.User.Email,
		},
	}
}
