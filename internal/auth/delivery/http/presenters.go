package http

import (
	"ppe-inventory/internal/auth"
	"ppe-inventory/internal/model"
	"ppe-inventory/pkg/response"
)

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput(clientKey string) auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password, ClientKey: clientKey}
}

type sessionResp struct {
	UID          string            `json:"uid"`
	Email        string            `json:"email"`
	IDToken      string            `json:"idToken"`
	RefreshToken string            `json:"refreshToken,omitempty"`
	ExpiresAt    response.DateTime `json:"expiresAt"`
}

func newSessionResp(s auth.Session) sessionResp {
	return sessionResp{
		UID:          s.UID,
		Email:        s.Email,
		IDToken:      s.IDToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    response.DateTime(s.ExpiresAt),
	}
}

type meResp struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

func newMeResp(sc model.Scope) meResp {
	return meResp{UID: sc.UserID, Email: sc.Email}
}
