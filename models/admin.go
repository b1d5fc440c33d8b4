package models

import "time"

// AdminStats is the dashboard snapshot.
type AdminStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Blocked   int64 `json:"blocked"`
}

// AdminLoginInput is the payload of POST /api/admin/login.
type AdminLoginInput struct {
	Password string `json:"password" binding:"required"`
}

// AdminSession is returned after a successful login.
type AdminSession struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
