package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/sizebots/sizebot-go/internal/services/game"
)

// TopHandler shows the top 10 users by size.
func (c *CommandControllerImpl) TopHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		users, err := c.users.GetTopUsers(ctx, 10)
		if err != nil {
			return "", err
		}
		if len(users) == 0 {
			return "Nothing on the leaderboard yet. Try /grow!", nil
		}

		var b strings.Builder
		b.WriteString("🏆 Top 10 by size:\n\n")
		for i, u := range users {
			medal := fmt.Sprintf("%d.", i+1)
			switch i {
			case 0:
				medal = "🥇"
			case 1:
				medal = "🥈"
			case 2:
				medal = "🥉"
			}
			fmt.Fprintf(&b, "%s %s: %d (%s) %s\n",
				medal, u.DisplayName(), u.Size, game.DescribeSize(u.Size), game.EmojiForSize(u.Size))
		}
		return strings.TrimRight(b.String(), "\n"), nil
	}
}
