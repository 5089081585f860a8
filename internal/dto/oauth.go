package dto

import (
	"github.com/vmos0/cloud-mail/internal/core/domain"
)

// OAuthLoginURI binds the provider path parameter of the login route.
type OAuthLoginURI struct {
	Provider string `uri:"provider" binding:"required,oauthprovider"`
}

// OAuthLoginRequest defines the expected JSON body for a provider login.
type OAuthLoginRequest struct {
	Code string `json:"code" binding:"required"`
}

// BindUserRequest defines the expected JSON body for binding an OAuth
// identity to a mailbox address.
type BindUserRequest struct {
	OAuthUserID int64  `json:"oauthUserId" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code"`
}

// OAuthUserInfo is the snapshot of an OAuth identity returned to the caller.
type OAuthUserInfo struct {
	OAuthID        int64  `json:"oauthId"`
	Provider       string `json:"provider"`
	ExternalUserID string `json:"oauthUserId"`
	UserID         int64  `json:"userId"`
	Username       string `json:"username"`
	DisplayName    string `json:"name"`
	AvatarURL      string `json:"avatar"`
	TrustLevel     int    `json:"trustLevel"`
	Active         bool   `json:"active"`
	Silenced       bool   `json:"silenced"`
}

// OAuthLoginResponse mirrors the login contract: a token when an account was
// resolved, otherwise the default email, its availability and suggestions the
// caller needs to finish registration.
type OAuthLoginResponse struct {
	UserInfo         *OAuthUserInfo `json:"userInfo"`
	Token            string         `json:"token"`
	DefaultEmail     string         `json:"defaultEmail,omitempty"`
	IsEmailAvailable bool           `json:"isEmailAvailable"`
	EmailSuggestions []string       `json:"emailSuggestions,omitempty"`
}

// ToOAuthUserInfo converts a domain identity to its response shape.
func ToOAuthUserInfo(identity *domain.OAuthIdentity) *OAuthUserInfo {
	if identity == nil {
		return nil
	}
	return &OAuthUserInfo{
		OAuthID:        identity.OAuthID,
		Provider:       identity.Provider.String(),
		ExternalUserID: identity.ExternalUserID,
		UserID:         identity.UserID,
		Username:       identity.Username,
		DisplayName:    identity.DisplayName,
		AvatarURL:      identity.AvatarURL,
		TrustLevel:     identity.TrustLevel,
		Active:         identity.Active,
		Silenced:       identity.Silenced,
	}
}

// ToOAuthLoginResponse converts a domain login result to the response DTO.
func ToOAuthLoginResponse(result *domain.LoginResult) OAuthLoginResponse {
	return OAuthLoginResponse{
		UserInfo:         ToOAuthUserInfo(result.Identity),
		Token:            result.Token,
		DefaultEmail:     result.DefaultEmail,
		IsEmailAvailable: result.EmailAvailable,
		EmailSuggestions: result.Suggestions,
	}
}
