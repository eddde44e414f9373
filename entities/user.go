package entities

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Phone        string `gorm:"uniqueIndex" json:"phone"`
	PasswordHash string `json:"-"`
	Location     string `json:"location"`
	ProfilePic   string `json:"profile_pic"`
	CreatedAt    time.Time
}
