package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// LastChangeSource is the slice of the history store the gate needs.
type LastChangeSource interface {
	LastChangeTimestamp(ctx context.Context, userID int64) (string, error)
}

type State int

const (
	Ready State = iota
	Waiting
)

type Status struct {
	State     State
	Remaining time.Duration
}

// Stored timestamps come in more than one shape depending on the backend:
// a plain datetime (assumed UTC) or a format carrying its own offset.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05Z07:00",
}

// Gate decides whether a user may change their size again yet.
type Gate struct {
	history  LastChangeSource
	cooldown time.Duration
	logger   zerolog.Logger
}

func NewGate(history LastChangeSource, cooldownSeconds int, logger zerolog.Logger) *Gate {
	return &Gate{
		history:  history,
		cooldown: time.Duration(cooldownSeconds) * time.Second,
		logger:   logger,
	}
}

// Check reports Ready when the user never changed, when the cooldown has
// fully elapsed, or when the stored timestamp cannot be parsed (the gate is
// a convenience, not a security boundary, so it fails open). Storage errors
// propagate to the caller.
func (g *Gate) Check(ctx context.Context, userID int64, now time.Time) (Status, error) {
	raw, err := g.history.LastChangeTimestamp(ctx, userID)
	if err != nil {
		return Status{}, err
	}
	if raw == "" {
		return Status{State: Ready}, nil
	}

	last, err := ParseStoredTimestamp(raw)
	if err != nil {
		g.logger.Warn().
			Err(err).
			Int64("user_id", userID).
			Str("timestamp", raw).
			Msg("could not parse last change timestamp, allowing request")
		return Status{State: Ready}, nil
	}

	elapsed := now.UTC().Sub(last)
	if elapsed >= g.cooldown {
		return Status{State: Ready}, nil
	}
	return Status{State: Waiting, Remaining: g.cooldown - elapsed}, nil
}

// ParseStoredTimestamp interprets a stored timestamp string as a UTC instant.
func ParseStoredTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatRemaining renders a wait as "H:MM". Minutes are rounded up so the
// user is never told a shorter wait than the truth, with a full hour of
// rounded minutes carrying over.
func FormatRemaining(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	leftover := total % 3600
	minutes := 0
	if leftover > 0 {
		minutes = (leftover + 59) / 60
	}
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%d:%02d", hours, minutes)
}
