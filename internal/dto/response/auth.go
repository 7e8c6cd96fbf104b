package response

import (
	"time"

	"github.com/cmacay555011-arch/smileCare-Dental-Clinic/internal/data/entity"
)

type AuthResponse struct {
	AccountID string      `json:"account_id"`
	Role      entity.Role `json:"role"`
	Token     string      `json:"token,omitempty"`
	ExpiresAt *time.Time  `json:"expires_at,omitempty"`
}

func SessionToAuthResponse(session *entity.Session) *AuthResponse {
	resp := &AuthResponse{
		AccountID: session.AccountID.String(),
		Role:      session.Role,
		Token:     session.Token.String(),
	}
	expires := session.ExpiresAt
	resp.ExpiresAt = &expires
	return resp
}
