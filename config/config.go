package config

import (
	"strconv"
	"strings"

	"github.com/jinzhu/configor"
	"github.com/joho/godotenv"
)

type Config struct {
	AppConfig      AppConfig      `env:"APPCONFIG"`
	TelegramConfig TelegramConfig `env:"TELEGRAMCONFIG"`
	DBConfig       DBConfig       `env:"DBCONFIG"`
	GameConfig     GameConfig     `env:"GAMECONFIG"`
	LogConfig      LogConfig      `env:"LOGCONFIG"`
}

type AppConfig struct {
	APPName string `default:"sizebot"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type TelegramConfig struct {
	Token         string `required:"true" env:"TELEGRAM_TOKEN"`
	Debug         bool   `default:"false" env:"TELEGRAM_DEBUG"`
	UpdateTimeout int    `default:"60" env:"TELEGRAM_UPDATE_TIMEOUT"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"sizebot" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

type GameConfig struct {
	MinSize   int `default:"-1000000" env:"MIN_SIZE"`
	MaxSize   int `default:"1000000" env:"MAX_SIZE"`
	MinChange int `default:"-10" env:"MIN_CHANGE"`
	MaxChange int `default:"10" env:"MAX_CHANGE"`

	// Luck biases the sign of each draw: -100 always shrinks, 0 is a fair
	// coin, 100 always grows.
	Luck int `default:"0" env:"LUCK"`

	EnforceCooldown bool `default:"true" env:"ENFORCE_COOLDOWN"`
	CooldownSeconds int  `default:"43200" env:"COOLDOWN_SECONDS"`

	AdminIDsString string `env:"ADMIN_IDS"`
	AdminIDs       []int64
}

type LogConfig struct {
	Level  string `default:"info" env:"LOG_LEVEL"`
	Pretty bool   `default:"false" env:"LOG_PRETTY"`
}

func LoadConfigOrPanic() Config {
	// .env is optional, same as running from plain environment variables
	_ = godotenv.Load()

	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	config.GameConfig.Luck = clampLuck(config.GameConfig.Luck)
	config.GameConfig.AdminIDs = ParseAdminIDs(config.GameConfig.AdminIDsString)

	return config
}

// ParseAdminIDs parses a comma or semicolon separated list of telegram user
// ids. Blank and malformed entries are skipped.
func ParseAdminIDs(raw string) []int64 {
	raw = strings.ReplaceAll(raw, ";", ",")

	var ids []int64
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		id, err := strconv.ParseInt(piece, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// IsAdmin reports whether the given user may run destructive admin commands.
// This is an operational gate, not an auth layer.
func (g GameConfig) IsAdmin(userID int64) bool {
	for _, id := range g.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

func clampLuck(luck int) int {
	if luck < -100 {
		return -100
	}
	if luck > 100 {
		return 100
	}
	return luck
}
