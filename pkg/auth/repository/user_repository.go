package repository

import "github.com/kitsukisaiseikyo-byte/farm-manager/entities"

type UserRepository interface {
	Create(u *entities.User) error
	Count() (int64, error)
	FindByUsername(username string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
}
