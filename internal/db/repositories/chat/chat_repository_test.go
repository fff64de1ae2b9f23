package chat

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sizebots/sizebot-go/internal/db"
)

func newTestDB(t *testing.T) *db.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), fmt.Sprintf("chat_repo_test_%d.db", time.Now().UnixNano()))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := gormDB.AutoMigrate(&Chat{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return &db.DB{DB: gormDB}
}

func TestGetOrCreateChat_CreatesOnFirstSight(t *testing.T) {
	repo := NewChatRepository(newTestDB(t))

	c, err := repo.GetOrCreateChat(context.Background(), -100200, "group", "The Chat")
	if err != nil {
		t.Fatalf("GetOrCreateChat: %v", err)
	}
	if c.ID != -100200 || c.ChatType != "group" || c.Title != "The Chat" {
		t.Fatalf("unexpected chat: %+v", c)
	}
}

func TestGetOrCreateChat_IdempotentAndImmutable(t *testing.T) {
	database := newTestDB(t)
	repo := NewChatRepository(database)
	ctx := context.Background()

	if _, err := repo.GetOrCreateChat(ctx, 1, "group", "Original Title"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// second sight with different fields must not update anything
	c, err := repo.GetOrCreateChat(ctx, 1, "supergroup", "Renamed")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if c.ChatType != "group" || c.Title != "Original Title" {
		t.Fatalf("existing chat mutated: %+v", c)
	}

	var count int64
	if err := database.DB.Model(&Chat{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 chat, got %d", count)
	}
}
