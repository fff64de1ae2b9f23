package sizehistory

import (
	"time"
)

type SizeChange struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	UserID int64 `gorm:"column:user_id;type:bigint;not null;index:idx_size_changes_user_created,priority:1" json:"user_id"`
	ChatID int64 `gorm:"column:chat_id;type:bigint" json:"chat_id"`

	OldSize int `gorm:"column:old_size;type:int;not null" json:"old_size"`
	NewSize int `gorm:"column:new_size;type:int;not null" json:"new_size"`
	Delta   int `gorm:"column:delta;type:int;not null" json:"delta"`
}

// set table name
func (SizeChange) TableName() string {
	return "size_changes"
}
