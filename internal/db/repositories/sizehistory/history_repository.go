package sizehistory

import (
	"context"
	"database/sql"

	"github.com/sizebots/sizebot-go/internal/db"
	chatrepo "github.com/sizebots/sizebot-go/internal/db/repositories/chat"
)

//go:generate mockgen -source=history_repository.go -destination=mocks/history_repository_mock.go -package=mocks

// HistoryEntry is one change annotated with the originating chat's title.
// ChatTitle is empty when the chat has no title or is unknown.
type HistoryEntry struct {
	OldSize   int
	NewSize   int
	Delta     int
	CreatedAt string
	ChatTitle string
}

type HistoryRepository interface {
	// LastChangeTimestamp returns the stored creation time of the user's
	// most recent change as the raw database string, or "" when the user
	// has no history yet.
	LastChangeTimestamp(ctx context.Context, userID int64) (string, error)

	RecentChanges(ctx context.Context, userID int64, limit int) ([]*HistoryEntry, error)
}

type HistoryRepositoryImpl struct {
	db *db.DB
}

func NewHistoryRepository(database *db.DB) HistoryRepository {
	return &HistoryRepositoryImpl{db: database}
}

func (r *HistoryRepositoryImpl) LastChangeTimestamp(ctx context.Context, userID int64) (string, error) {
	row := r.db.DB.WithContext(ctx).
		Table("size_changes").
		Select("MAX(created_at)").
		Where("user_id = ?", userID).
		Row()

	var ts sql.NullString
	if err := row.Scan(&ts); err != nil {
		return "", err
	}
	if !ts.Valid {
		return "", nil
	}
	return ts.String, nil
}

func (r *HistoryRepositoryImpl) RecentChanges(ctx context.Context, userID int64, limit int) ([]*HistoryEntry, error) {
	if limit <= 0 {
		limit = 5
	}

	var changes []*SizeChange
	if err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&changes).Error; err != nil {
		return nil, err
	}

	titles, err := r.chatTitles(ctx, changes)
	if err != nil {
		return nil, err
	}

	entries := make([]*HistoryEntry, 0, len(changes))
	for _, c := range changes {
		entries = append(entries, &HistoryEntry{
			OldSize:   c.OldSize,
			NewSize:   c.NewSize,
			Delta:     c.Delta,
			CreatedAt: c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			ChatTitle: titles[c.ChatID],
		})
	}
	return entries, nil
}

func (r *HistoryRepositoryImpl) chatTitles(ctx context.Context, changes []*SizeChange) (map[int64]string, error) {
	titles := make(map[int64]string)
	if len(changes) == 0 {
		return titles, nil
	}

	ids := make([]int64, 0, len(changes))
	for _, c := range changes {
		if _, seen := titles[c.ChatID]; !seen {
			titles[c.ChatID] = ""
			ids = append(ids, c.ChatID)
		}
	}

	var chats []*chatrepo.Chat
	if err := r.db.DB.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&chats).Error; err != nil {
		return nil, err
	}
	for _, c := range chats {
		titles[c.ID] = c.Title
	}
	return titles, nil
}
