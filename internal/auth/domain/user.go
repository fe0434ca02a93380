package domain

import "time"

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-"` // Never return password in JSON
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider"` // "email" or "google"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Google OAuth credential. Access tokens are short-lived; the refresh
	// token is the durable part, so GoogleConnected implies a refresh token.
	GoogleAccessToken  string     `json:"-"`
	GoogleRefreshToken string     `json:"-"`
	GoogleTokenExpiry  *time.Time `json:"-"`
	GoogleConnected    bool       `json:"google_connected"`
}

type RefreshToken struct {
	Token     string    `json:"token" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index"`
	ExpiresAt time.Time `json:"expires_at"`
}

// GoogleCredential is the per-user OAuth state handed to the Google gateways.
type GoogleCredential struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// Usable reports whether the credential can produce a valid access token:
// either the access token has not expired, or a refresh token is present.
func (c *GoogleCredential) Usable(now time.Time) bool {
	if c == nil {
		return false
	}
	if c.RefreshToken != "" {
		return true
	}
	return c.AccessToken != "" && c.Expiry.After(now)
}
