package auth

import "time"

// Session is an authenticated operator session issued by the identity provider.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// SignInInput carries a login attempt. ClientKey identifies the caller for
// rate limiting, usually its IP address.
type SignInInput struct {
	Email     string
	Password  string
	ClientKey string
}

// FailureKind classifies a rejected sign-in.
type FailureKind string

const (
	FailureUnknownAccount  FailureKind = "unknown_account"
	FailureBadCredential   FailureKind = "bad_credential"
	FailureMalformedEmail  FailureKind = "malformed_email"
	FailureRateLimited     FailureKind = "rate_limited"
	FailureDisabledAccount FailureKind = "disabled_account"
	FailureUnknown         FailureKind = "unknown"
)

// Message is the text shown to the operator for the failure kind.
func (k FailureKind) Message() string {
	switch k {
	case FailureUnknownAccount:
		return "No existe una cuenta con este correo electrónico."
	case FailureBadCredential:
		return "Contraseña incorrecta."
	case FailureMalformedEmail:
		return "Correo electrónico inválido."
	case FailureRateLimited:
		return "Demasiados intentos fallidos. Intenta más tarde."
	case FailureDisabledAccount:
		return "Esta cuenta ha sido deshabilitada."
	}
	return "Error al iniciar sesión. Verifica tus credenciales."
}
