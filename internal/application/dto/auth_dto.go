package dto

// LoginRequest credentials for any principal account (admin, partner, store).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token pair plus the sanitized account projection.
type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Admin        AdminResponse `json:"admin"`
}

// RefreshRequest presents the stored refresh token to mint a new pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPairResponse the rotated token pair.
type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest both passwords in plaintext; hashing happens in the
// session use case only.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// MessageResponse generic success envelope for void operations.
type MessageResponse struct {
	Message string `json:"message"`
}
