package user

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sizebots/sizebot-go/internal/db"
	"github.com/sizebots/sizebot-go/internal/db/repositories/sizehistory"
)

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

// ErrNotFound is returned when an operation references a user that does not
// exist. It aliases gorm.ErrRecordNotFound so callers can errors.Is either.
var ErrNotFound = gorm.ErrRecordNotFound

// UserStats aggregates a user's standing over their change history.
// FirstChange/LastChange are nil when no history exists.
type UserStats struct {
	User         User
	TotalChanges int64
	FirstChange  *time.Time
	LastChange   *time.Time
}

type UserRepository interface {
	// GetOrCreateUser inserts the user with size 0 on first sight. For an
	// existing user it merges the profile fields (non-empty incoming values
	// overwrite, empty ones preserve what is stored) and returns the merged
	// record carrying the pre-update size.
	GetOrCreateUser(ctx context.Context, id int64, username, firstName, lastName string) (*User, error)

	// ApplyValueChange atomically sets the user's size and appends the
	// history record. Returns ErrNotFound when the user does not exist.
	ApplyValueChange(ctx context.Context, userID int64, newSize, actualDelta int, chatID int64) error

	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)
	GetTopUsers(ctx context.Context, limit int) ([]*User, error)

	// GetUserRank is 1 + the number of users with a strictly greater size,
	// so tied users share a rank.
	GetUserRank(ctx context.Context, userID int64) (int64, error)

	// ResetAll deletes every history record and every user in one
	// transaction. Chats are kept.
	ResetAll(ctx context.Context) error
}

type UserRepositoryImpl struct {
	db *db.DB
}

func NewUserRepository(database *db.DB) UserRepository {
	return &UserRepositoryImpl{db: database}
}

func (r *UserRepositoryImpl) GetOrCreateUser(ctx context.Context, id int64, username, firstName, lastName string) (*User, error) {
	var existing User
	err := r.db.DB.WithContext(ctx).Where("id = ?", id).First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created := &User{
				ID:        id,
				Username:  username,
				FirstName: firstName,
				LastName:  lastName,
				Size:      0,
			}
			if err := r.db.DB.WithContext(ctx).Create(created).Error; err != nil {
				return nil, err
			}
			return created, nil
		}
		return nil, err
	}

	updates := map[string]interface{}{"updated_at": time.Now().UTC()}
	if username != "" {
		existing.Username = username
		updates["username"] = username
	}
	if firstName != "" {
		existing.FirstName = firstName
		updates["first_name"] = firstName
	}
	if lastName != "" {
		existing.LastName = lastName
		updates["last_name"] = lastName
	}

	if err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error; err != nil {
		return nil, err
	}

	// existing.Size still holds the pre-update value
	return &existing, nil
}

func (r *UserRepositoryImpl) ApplyValueChange(ctx context.Context, userID int64, newSize, actualDelta int, chatID int64) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current User
		if err := tx.Where("id = ?", userID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Model(&User{}).
			Where("id = ?", userID).
			Updates(map[string]interface{}{
				"size":       newSize,
				"updated_at": time.Now().UTC(),
			}).Error; err != nil {
			return err
		}

		record := sizehistory.SizeChange{
			UserID:  userID,
			ChatID:  chatID,
			OldSize: current.Size,
			NewSize: newSize,
			Delta:   actualDelta,
		}
		return tx.Create(&record).Error
	})
}

func (r *UserRepositoryImpl) GetUserStats(ctx context.Context, userID int64) (*UserStats, error) {
	var u User
	if err := r.db.DB.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	stats := &UserStats{User: u}

	if err := r.db.DB.WithContext(ctx).
		Model(&sizehistory.SizeChange{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalChanges).Error; err != nil {
		return nil, err
	}
	if stats.TotalChanges == 0 {
		return stats, nil
	}

	var first, last sizehistory.SizeChange
	if err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		First(&first).Error; err != nil {
		return nil, err
	}
	if err := r.db.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&last).Error; err != nil {
		return nil, err
	}

	firstAt := first.CreatedAt
	lastAt := last.CreatedAt
	stats.FirstChange = &firstAt
	stats.LastChange = &lastAt
	return stats, nil
}

func (r *UserRepositoryImpl) GetTopUsers(ctx context.Context, limit int) ([]*User, error) {
	if limit <= 0 {
		limit = 10
	}

	var users []*User
	if err := r.db.DB.WithContext(ctx).
		Order("size DESC, id ASC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) GetUserRank(ctx context.Context, userID int64) (int64, error) {
	var u User
	if err := r.db.DB.WithContext(ctx).Where("id = ?", userID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	var higher int64
	if err := r.db.DB.WithContext(ctx).
		Model(&User{}).
		Where("size > ?", u.Size).
		Count(&higher).Error; err != nil {
		return 0, err
	}
	return higher + 1, nil
}

func (r *UserRepositoryImpl) ResetAll(ctx context.Context) error {
	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM size_changes`).Error; err != nil {
			return err
		}
		return tx.Exec(`DELETE FROM users`).Error
	})
}
