package token

import "time"

// Maker - interface for managing tokens
type Maker interface {
	CreateToken(employerID int64, email string, duration time.Duration) (string, error)
	VerifyToken(token string) (*Payload, error)
}
