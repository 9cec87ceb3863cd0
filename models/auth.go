package models

// RegisterPayload is sent to POST /auth/register.
type RegisterPayload struct {
	NationalID string `json:"cpf"`
	FullName   string `json:"fullname"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	BirthDate  string `json:"birth_date"`
}

// LoginPayload is sent to POST /auth/login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body of a successful login.
type AuthResponse struct {
	Token string `json:"token"`
}

// RecoveryCodeRequest is sent to POST /auth/password-recovery.
type RecoveryCodeRequest struct {
	Email string `json:"email"`
}

// RecoveryCodeVerification is sent to POST /auth/validate-recovery-code.
type RecoveryCodeVerification struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// PasswordReset is sent to POST /auth/reset-password. Token is the value
// returned by a successful code verification.
type PasswordReset struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// BackendError is the error body produced by the API gateway services.
type BackendError struct {
	Message string `json:"message"`
}
