package model

import "time"

// SessionUser is the projection of a User embedded in a session. It never
// carries the password.
type SessionUser struct {
	ID     string     `json:"id"`
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`

	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Pincode string `json:"pincode,omitempty"`

	BusinessName         string `json:"businessName,omitempty"`
	OrganicCertification string `json:"organicCertification,omitempty"`
}

// Session is an authenticated identity with an expiry, distinct from the
// underlying User record. Expired sessions are treated as absent.
type Session struct {
	User      SessionUser `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Expired reports whether the session expiry lies in the past.
func (s Session) Expired() bool {
	return s.ExpiresAt.Before(time.Now())
}
