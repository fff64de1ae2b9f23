package game

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sizebots/sizebot-go/config"
)

// Game draws bounded random size changes and applies them with clamping.
type Game struct {
	cfg config.GameConfig

	mu  sync.Mutex
	rng *rand.Rand
}

func NewGame(cfg config.GameConfig) *Game {
	return NewGameWithSource(cfg, rand.NewSource(time.Now().UnixNano()))
}

// NewGameWithSource lets tests pin the randomness.
func NewGameWithSource(cfg config.GameConfig, src rand.Source) *Game {
	return &Game{
		cfg: cfg,
		rng: rand.New(src),
	}
}

// PositiveProbability is the chance a draw grows instead of shrinks,
// derived from the configured luck.
func (g *Game) PositiveProbability() float64 {
	p := 0.5 + float64(g.cfg.Luck)/200.0
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// ComputeDelta draws a non-zero change in [MinChange, MaxChange]. The sign
// is chosen first by a weighted coin flip, then the magnitude uniformly over
// the chosen branch, so luck biases direction without skewing magnitudes.
func (g *Game) ComputeDelta() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.rng.Float64() < g.PositiveProbability() {
		return 1 + g.rng.Intn(g.cfg.MaxChange)
	}
	return -1 - g.rng.Intn(-g.cfg.MinChange)
}

// ApplyDelta adds delta to current, clamping the result to
// [MinSize, MaxSize]. It returns the new value and the change actually
// applied; at a bound the actual change may be smaller than the draw, even 0.
func (g *Game) ApplyDelta(current, delta int) (newValue, actualDelta int) {
	newValue = current + delta

	switch {
	case newValue < g.cfg.MinSize:
		actualDelta = g.cfg.MinSize - current
		newValue = g.cfg.MinSize
	case newValue > g.cfg.MaxSize:
		actualDelta = g.cfg.MaxSize - current
		newValue = g.cfg.MaxSize
	default:
		actualDelta = delta
	}
	return newValue, actualDelta
}

// DescribeSize maps a size onto one of ten labels, smallest to largest.
func DescribeSize(size int) string {
	switch {
	case size <= -80:
		return "flat as a board"
	case size <= -60:
		return "tiny"
	case size <= -40:
		return "small"
	case size <= -20:
		return "modest"
	case size <= 0:
		return "average"
	case size <= 20:
		return "decent"
	case size <= 40:
		return "big"
	case size <= 60:
		return "very big"
	case size <= 80:
		return "huge"
	default:
		return "unbelievably huge"
	}
}

// DescribeChange phrases a change with an intensity matching its magnitude.
func DescribeChange(delta int) string {
	if delta > 0 {
		switch {
		case delta >= 8:
			return fmt.Sprintf("shot up by %d sizes! 🎉", delta)
		case delta >= 5:
			return fmt.Sprintf("grew by %d sizes! 😊", delta)
		case delta >= 2:
			return fmt.Sprintf("grew by %d sizes 🙂", delta)
		default:
			return fmt.Sprintf("grew by %d size 😌", delta)
		}
	}

	abs := -delta
	switch {
	case abs >= 8:
		return fmt.Sprintf("plummeted by %d sizes! 😱", abs)
	case abs >= 5:
		return fmt.Sprintf("shrank by %d sizes! 😢", abs)
	case abs >= 2:
		return fmt.Sprintf("shrank by %d sizes 😕", abs)
	default:
		return fmt.Sprintf("shrank by %d size 😔", abs)
	}
}

func EmojiForSize(size int) string {
	switch {
	case size <= -60:
		return "🫤"
	case size <= -20:
		return "😐"
	case size <= 20:
		return "😊"
	case size <= 60:
		return "😍"
	default:
		return "🤩"
	}
}

func EmojiForChange(delta int) string {
	if delta > 0 {
		switch {
		case delta >= 8:
			return "🎉"
		case delta >= 5:
			return "😊"
		case delta >= 2:
			return "🙂"
		default:
			return "😌"
		}
	}

	abs := -delta
	switch {
	case abs >= 8:
		return "😱"
	case abs >= 5:
		return "😢"
	case abs >= 2:
		return "😕"
	default:
		return "😔"
	}
}
