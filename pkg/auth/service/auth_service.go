package service

import (
	"time"

	"github.com/kitsukisaiseikyo-byte/farm-manager/entities"
)

// Session is the result of a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type AuthService interface {
	Login(username, password string) (*Session, error)
	Authenticate(token string) (entities.User, error)
	EnsureDefaultUser(username, password string) error
}
