package dto

import (
	"okshouse/infras/jwt"
	adminModel "okshouse/internal/domains/admin/model"
)

type VerifyPhoneRequest struct {
	Phone string `json:"phone" validate:"required,max=20"`
}

type AdminInfo struct {
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
}

func (a *AdminInfo) FromModel(model adminModel.Admin) {
	a.AdminID = model.AdminID
	a.Name = model.Name
	a.Phone = model.Phone.String
}

// VerifyPhoneResponse carries the access token in the body. The
// refresh token travels in an HttpOnly cookie set by the handler and
// is excluded from the JSON payload.
type VerifyPhoneResponse struct {
	AccessToken  string    `json:"access_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int64     `json:"expires_in"`
	Admin        AdminInfo `json:"admin"`
	RefreshToken string    `json:"-"`
}

func (r *VerifyPhoneResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshResponse struct {
	AccessToken      string `json:"access_token"`
	TokenType        string `json:"token_type"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshRenewed   bool   `json:"refresh_renewed"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
	RefreshToken     string `json:"-"`
}

type MeResponse struct {
	Admin AdminInfo `json:"admin"`
}

type LoginKeyRequest struct {
	Password string `json:"password" validate:"required,max=100"`
}

type LoginKeyResponse struct {
	Authorized bool `json:"authorized"`
}
