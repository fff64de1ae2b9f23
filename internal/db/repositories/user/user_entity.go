package user

import (
	"fmt"
	"time"
)

type User struct {
	// ID is the telegram user id, assigned by the platform.
	ID        int64     `gorm:"column:id;type:bigint;primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Username  string `gorm:"column:username;type:text" json:"username"`
	FirstName string `gorm:"column:first_name;type:text" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:text" json:"last_name"`

	Size int `gorm:"column:size;type:int;not null;default:0" json:"size"`
}

// set table name
func (User) TableName() string {
	return "users"
}

// DisplayName picks the friendliest non-empty name for messages.
func (u *User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return fmt.Sprintf("User %d", u.ID)
}
