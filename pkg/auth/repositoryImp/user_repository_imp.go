package repositoryImp

import (
	"gorm.io/gorm"

	"kisan/entities"
	"kisan/pkg/auth/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(u *entities.User) error { return r.db.Create(u).Error }

func (r *userRepo) FindByPhone(phone string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("phone = ?", phone).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByID(id uint) (*entities.User, error) {
	var u entities.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) UpdateProfile(id uint, name, location, profilePic string) error {
	return r.db.Model(&entities.User{}).Where("id = ?", id).Updates(map[string]any{
		"name": name, "location": location, "profile_pic": profilePic,
	}).Error
}
