package model

// Scope is the authenticated caller of a request.
type Scope struct {
	UserID  string
	Email   string
	IDToken string
}
