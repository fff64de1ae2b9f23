package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sizebots/sizebot-go/internal/db/repositories/user"
	"github.com/sizebots/sizebot-go/internal/services/game"
)

// StatsHandler reports the caller's current size plus aggregate history.
func (c *CommandControllerImpl) StatsHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		stats, err := c.users.GetUserStats(ctx, req.UserID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return "No stats yet. Try /grow first!", nil
			}
			return "", err
		}

		firstChange := "no data"
		lastChange := "no data"
		if stats.FirstChange != nil {
			firstChange = stats.FirstChange.UTC().Format("2006-01-02 15:04:05")
		}
		if stats.LastChange != nil {
			lastChange = stats.LastChange.UTC().Format("2006-01-02 15:04:05")
		}

		return fmt.Sprintf(
			"📊 Stats for %s:\n\n"+
				"🍒 Current size: %d (%s) %s\n\n"+
				"📈 Total changes: %d\n"+
				"📅 First change: %s\n"+
				"🕐 Last change: %s\n\n"+
				"Use /history to see recent changes",
			stats.User.DisplayName(),
			stats.User.Size, game.DescribeSize(stats.User.Size), game.EmojiForSize(stats.User.Size),
			stats.TotalChanges,
			firstChange,
			lastChange,
		), nil
	}
}

// HistoryHandler lists the caller's last few changes, newest first.
func (c *CommandControllerImpl) HistoryHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		entries, err := c.history.RecentChanges(ctx, req.UserID, 5)
		if err != nil {
			return "", err
		}
		if len(entries) == 0 {
			return "No history yet. Try /grow first!", nil
		}

		var b strings.Builder
		fmt.Fprintf(&b, "📜 Recent changes:\n\n")
		for i, e := range entries {
			title := e.ChatTitle
			if title == "" {
				title = "unknown chat"
			}
			fmt.Fprintf(&b, "%d. %s your size %s\n", i+1, game.EmojiForChange(e.Delta), game.DescribeChange(e.Delta))
			fmt.Fprintf(&b, "   Was: %d → Now: %d\n", e.OldSize, e.NewSize)
			fmt.Fprintf(&b, "   Chat: %s\n", title)
			fmt.Fprintf(&b, "   Date: %s\n\n", e.CreatedAt)
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}
