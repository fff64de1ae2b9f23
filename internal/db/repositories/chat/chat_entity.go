package chat

import (
	"time"
)

type Chat struct {
	ID        int64     `gorm:"column:id;type:bigint;primaryKey" json:"id"`
	ChatType  string    `gorm:"column:chat_type;type:text" json:"chat_type"`
	Title     string    `gorm:"column:title;type:text" json:"title"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// set table name
func (Chat) TableName() string {
	return "chats"
}
