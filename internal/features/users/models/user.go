package users_models

import (
	"time"

	users_enums "cofoundry/internal/features/users/enums"
	"cofoundry/internal/storage"

	"github.com/google/uuid"
)

type User struct {
	ID                   uuid.UUID              `json:"id"        gorm:"column:id;type:uuid;primaryKey"`
	Email                string                 `json:"email"     gorm:"column:email;uniqueIndex"`
	HashedPassword       *string                `json:"-"         gorm:"column:hashed_password"`
	PasswordCreationTime time.Time              `json:"-"         gorm:"column:password_creation_time"`
	Status               users_enums.UserStatus `json:"status"    gorm:"column:status"`
	CreatedAt            time.Time              `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsActiveUser() bool {
	return u.Status == users_enums.UserStatusActive
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}

func init() {
	storage.RegisterModels(&User{}, &Profile{}, &ProfileDetails{}, &SecretKey{})
}
