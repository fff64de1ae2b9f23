package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sizebots/sizebot-go/config"
	"github.com/sizebots/sizebot-go/internal/db/repositories/chat"
	"github.com/sizebots/sizebot-go/internal/db/repositories/sizehistory"
	"github.com/sizebots/sizebot-go/internal/db/repositories/user"
	"github.com/sizebots/sizebot-go/internal/services/cooldown"
	"github.com/sizebots/sizebot-go/internal/services/game"
)

const genericErrorReply = "😔 Something went wrong while handling the command. Please try again later."

// Request carries everything the core needs about an inbound command. The
// transport adapter fills it from the platform message.
type Request struct {
	UserID    int64
	Username  string
	FirstName string
	LastName  string
	ChatID    int64
	ChatType  string
	ChatTitle string
}

type Handler func(ctx context.Context, req Request) (string, error)

type CommandController interface {
	HandleCommand(ctx context.Context, command string, req Request) (string, error)
	AddCommand(command string, handler Handler)
}

type CommandControllerImpl struct {
	users   user.UserRepository
	chats   chat.ChatRepository
	history sizehistory.HistoryRepository
	game    *game.Game
	gate    *cooldown.Gate
	cfg     config.GameConfig
	logger  zerolog.Logger

	commands map[string]Handler
	now      func() time.Time
}

func NewCommandController(
	users user.UserRepository,
	chats chat.ChatRepository,
	history sizehistory.HistoryRepository,
	g *game.Game,
	gate *cooldown.Gate,
	cfg config.GameConfig,
	logger zerolog.Logger,
) *CommandControllerImpl {
	c := &CommandControllerImpl{
		users:    users,
		chats:    chats,
		history:  history,
		game:     g,
		gate:     gate,
		cfg:      cfg,
		logger:   logger,
		commands: make(map[string]Handler),
		now:      func() time.Time { return time.Now().UTC() },
	}

	c.AddCommand("start", c.StartHandler())
	c.AddCommand("grow", c.GrowHandler())
	c.AddCommand("stats", c.StatsHandler())
	c.AddCommand("top", c.TopHandler())
	c.AddCommand("history", c.HistoryHandler())
	c.AddCommand("help", c.HelpHandler())
	c.AddCommand("reset_all", c.ResetAllHandler())

	return c
}

func (c *CommandControllerImpl) AddCommand(command string, handler Handler) {
	c.commands[command] = handler
}

// HandleCommand dispatches to the registered handler. It always returns a
// user-facing reply; internal errors are logged and come back alongside a
// generic apology so nothing leaks to the chat.
func (c *CommandControllerImpl) HandleCommand(ctx context.Context, command string, req Request) (string, error) {
	handler, exists := c.commands[command]
	if !exists {
		return "❓ Unknown command. Use /help to see what I can do", nil
	}

	log := c.logger.With().
		Str("request_id", uuid.NewString()).
		Str("command", command).
		Int64("user_id", req.UserID).
		Int64("chat_id", req.ChatID).
		Logger()

	reply, err := handler(log.WithContext(ctx), req)
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		return genericErrorReply, err
	}
	return reply, nil
}

// StartHandler registers the user and chat and greets with the current size.
func (c *CommandControllerImpl) StartHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		u, err := c.users.GetOrCreateUser(ctx, req.UserID, req.Username, req.FirstName, req.LastName)
		if err != nil {
			return "", err
		}
		if _, err := c.chats.GetOrCreateChat(ctx, req.ChatID, req.ChatType, req.ChatTitle); err != nil {
			return "", err
		}

		return fmt.Sprintf(
			"Hi, %s!\nCurrent size: %d (%s)\nCommands: /grow /stats /top /history /help",
			u.DisplayName(), u.Size, game.DescribeSize(u.Size),
		), nil
	}
}

// GrowHandler is the game action: cooldown gate, random draw, clamped apply,
// atomic persist, rank report.
func (c *CommandControllerImpl) GrowHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		u, err := c.users.GetOrCreateUser(ctx, req.UserID, req.Username, req.FirstName, req.LastName)
		if err != nil {
			return "", err
		}
		if _, err := c.chats.GetOrCreateChat(ctx, req.ChatID, req.ChatType, req.ChatTitle); err != nil {
			return "", err
		}

		if c.cfg.EnforceCooldown {
			status, err := c.gate.Check(ctx, req.UserID, c.now())
			if err != nil {
				return "", err
			}
			if status.State == cooldown.Waiting {
				return fmt.Sprintf(
					"Too soon. Try again in %s (cooldown %d h)",
					cooldown.FormatRemaining(status.Remaining),
					c.cfg.CooldownSeconds/3600,
				), nil
			}
		}

		delta := c.game.ComputeDelta()
		newSize, actualDelta := c.game.ApplyDelta(u.Size, delta)

		if err := c.users.ApplyValueChange(ctx, req.UserID, newSize, actualDelta, req.ChatID); err != nil {
			return "", err
		}

		rankLine := "Not on the leaderboard yet"
		rank, err := c.users.GetUserRank(ctx, req.UserID)
		if err == nil {
			rankLine = fmt.Sprintf("Your leaderboard position: %d", rank)
		} else {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("could not compute rank")
		}

		return fmt.Sprintf(
			"%s, your size %s\nCurrent value: %d\n%s",
			u.DisplayName(), game.DescribeChange(actualDelta), newSize, rankLine,
		), nil
	}
}

// HelpHandler returns the static command reference.
func (c *CommandControllerImpl) HelpHandler() Handler {
	return func(ctx context.Context, req Request) (string, error) {
		return fmt.Sprintf(
			"Quick reference:\n"+
				"/grow — change your size (%d…+%d)\n"+
				"/stats — your current size\n"+
				"/top — leaderboard\n"+
				"/history — recent changes\n"+
				"/help — this message",
			c.cfg.MinChange, c.cfg.MaxChange,
		), nil
	}
}
