package repository

import "kisan/entities"

type UserRepository interface {
	Create(u *entities.User) error
	FindByPhone(phone string) (*entities.User, error)
	FindByID(id uint) (*entities.User, error)
	UpdateProfile(id uint, name, location, profilePic string) error
}
