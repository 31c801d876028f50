package domain

var (
	MessageSuccessCreateToken = "token created successfully"
	MessageFailedCreateToken  = "failed to create token"
)

type (
	CreateTokenRequest struct {
		Email string         `json:"email" validate:"required,email"`
		Extra map[string]any `json:"extra" validate:"omitempty"`
	}

	CreateTokenResponse struct {
		Token string `json:"token"`
	}
)
