package users

import "time"

type User struct {
	ID           string
	UserName     string
	Email        string
	Phone        string
	AvatarURL    string
	Salt         []byte
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
