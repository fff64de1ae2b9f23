package chat

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sizebots/sizebot-go/internal/db"
)

//go:generate mockgen -source=chat_repository.go -destination=mocks/chat_repository_mock.go -package=mocks

type ChatRepository interface {
	// GetOrCreateChat inserts the chat on first sight and returns the
	// stored row afterwards. Existing chats are never updated.
	GetOrCreateChat(ctx context.Context, id int64, chatType, title string) (*Chat, error)
}

type ChatRepositoryImpl struct {
	db *db.DB
}

func NewChatRepository(database *db.DB) ChatRepository {
	return &ChatRepositoryImpl{db: database}
}

func (r *ChatRepositoryImpl) GetOrCreateChat(ctx context.Context, id int64, chatType, title string) (*Chat, error) {
	var existing Chat
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := &Chat{
		ID:       id,
		ChatType: chatType,
		Title:    title,
	}
	if err := r.db.DB.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}
