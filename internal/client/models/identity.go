// Package models defines the board API payloads and the input checks
// applied before they are sent.
package models

// Identity is the authenticated principal as reported by GET /auth/me.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignInResponse is returned by POST /auth/signin.
type SignInResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignUpRequest is the body of POST /auth/signup. The password
// confirmation is checked locally and never sent.
type SignUpRequest struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"-"`
}
