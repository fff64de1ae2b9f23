package commands

import (
	"context"

	"github.com/rs/zerolog"
)

// ResetAllHandler wipes every user and their history. Only users on the
// admin allow-list may run it; failures come back as a generic message so no
// internal detail reaches the chat.
func (c *CommandControllerImpl) ResetAllHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		if !c.cfg.IsAdmin(req.UserID) {
			zerolog.Ctx(ctx).Warn().Msg("reset_all denied")
			return "⛔ You are not allowed to use this command", nil
		}

		if err := c.users.ResetAll(ctx); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("reset_all failed")
			return "⚠️ Reset failed. Check the logs", nil
		}
		return "✅ All stats have been reset", nil
	}
}
