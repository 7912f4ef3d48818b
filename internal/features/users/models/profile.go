package users_models

import (
	"time"

	"github.com/google/uuid"
)

// Display data is intentionally split across two tables, mirroring the
// profiles / profile_details pair the rest of the system joins
// client-side. The id of both rows is the owning user's id.
type Profile struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;type:uuid;primaryKey"`
	Email     string    `json:"email"     gorm:"column:email;index"`
	AvatarURL *string   `json:"avatarUrl" gorm:"column:avatar_url"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ProfileDetails struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id;type:uuid;primaryKey"`
	FirstName *string   `json:"firstName" gorm:"column:first_name"`
	LastName  *string   `json:"lastName"  gorm:"column:last_name"`
}

func (ProfileDetails) TableName() string {
	return "profile_details"
}
