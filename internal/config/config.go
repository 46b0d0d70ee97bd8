package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/fragrewards/internal/domain"
	"github.com/osse101/fragrewards/internal/engine"
	"github.com/osse101/fragrewards/internal/multiplier"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=text json"`
	LogDir      string
	ServiceName string
	Version     string
	Environment string
	APIKey      string `validate:"required"`

	StorageBackend string `validate:"oneof=file memory postgres"`
	DataDir        string `validate:"required_if=StorageBackend file"`
	CacheSize      int    `validate:"min=0"`
	CacheTTL       time.Duration

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int `validate:"min=1"`
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	CatalogPath        string
	DiscordWebhookURL  string `validate:"omitempty,url"`
	Timezone           string
	TickInterval       time.Duration `validate:"min=1ms"`
	CheckpointInterval time.Duration `validate:"min=1s"`
	EvictInterval      time.Duration `validate:"min=1s"`
	PlayerIdleTTL      time.Duration `validate:"min=1s"`
	WorkerCount        int           `validate:"min=1"`
	WorkerQueueSize    int           `validate:"min=1"`

	Tuning Tuning
}

// Tuning holds the reward values passed to every engine. Zero values fall
// back to the engine defaults.
type Tuning struct {
	StreakWindow      time.Duration `validate:"min=0"`
	StreakStep        float64       `validate:"min=0"`
	StreakCap         float64       `validate:"min=0"`
	ComboWindow       time.Duration `validate:"min=0"`
	ComboStep         float64       `validate:"min=0"`
	Difficulty        float64       `validate:"min=0"`
	EventMultiplier   float64       `validate:"min=0"`
	VIPMultiplier     float64       `validate:"min=0"`
	MissionCredits    int64         `validate:"min=0"`
	MissionXP         int64         `validate:"min=0"`
	DailyBonusCredits int64         `validate:"min=0"`
	DailyBonusXP      int64         `validate:"min=0"`
	QueueCapacity     int           `validate:"min=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		ServiceName: getEnv("SERVICE_NAME", "fragrewards"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", StorageFile),
		DataDir:        getEnv("DATA_DIR", DefaultDataDir),
		CacheSize:      getEnvAsInt("CACHE_SIZE", 512),
		CacheTTL:       getEnvAsDuration("CACHE_TTL", 10*time.Minute),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "fragrewards"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		CatalogPath:        getEnv("ACHIEVEMENTS_PATH", ConfigPathAchievements),
		DiscordWebhookURL:  getEnv("DISCORD_WEBHOOK_URL", ""),
		Timezone:           getEnv("TIMEZONE", DefaultTimezone),
		TickInterval:       getEnvAsDuration("TICK_INTERVAL", DefaultTickInterval),
		CheckpointInterval: getEnvAsDuration("CHECKPOINT_INTERVAL", DefaultCheckpointInterval),
		EvictInterval:      getEnvAsDuration("EVICT_INTERVAL", DefaultEvictInterval),
		PlayerIdleTTL:      getEnvAsDuration("PLAYER_IDLE_TTL", DefaultPlayerIdleTTL),
		WorkerCount:        getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		WorkerQueueSize:    getEnvAsInt("WORKER_QUEUE_SIZE", DefaultWorkerQueueSize),

		Tuning: Tuning{
			StreakWindow:      getEnvAsDuration("STREAK_WINDOW", 0),
			StreakStep:        getEnvAsFloat("STREAK_STEP", 0),
			StreakCap:         getEnvAsFloat("STREAK_CAP", 0),
			ComboWindow:       getEnvAsDuration("COMBO_WINDOW", 0),
			ComboStep:         getEnvAsFloat("COMBO_STEP", 0),
			Difficulty:        getEnvAsFloat("DIFFICULTY_MULTIPLIER", 0),
			EventMultiplier:   getEnvAsFloat("EVENT_MULTIPLIER", 0),
			VIPMultiplier:     getEnvAsFloat("VIP_MULTIPLIER", 0),
			MissionCredits:    getEnvAsInt64("MISSION_CREDITS", 0),
			MissionXP:         getEnvAsInt64("MISSION_XP", 0),
			DailyBonusCredits: getEnvAsInt64("DAILY_BONUS_CREDITS", 0),
			DailyBonusXP:      getEnvAsInt64("DAILY_BONUS_XP", 0),
			QueueCapacity:     getEnvAsInt("NOTIFICATION_QUEUE_CAPACITY", 0),
		},
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s", ErrMsgAPIKeyRequired)
	}

	return cfg, nil
}

// Validate checks the loaded values against their struct rules
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrInvalidInput, ErrMsgInvalidConfig, err)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves Timezone, the zone whose calendar date gates the daily bonus
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgInvalidTimezone, c.Timezone, err)
	}
	return loc, nil
}

// EngineConfig returns the engine tuning with unset values left at the
// engine defaults
func (c *Config) EngineConfig() engine.Config {
	t := c.Tuning
	cfg := engine.DefaultConfig()
	if t.StreakWindow > 0 {
		cfg.StreakWindow = t.StreakWindow
	}
	if t.StreakStep > 0 {
		cfg.StreakStep = t.StreakStep
	}
	if t.StreakCap > 0 {
		cfg.StreakCap = t.StreakCap
	}
	if t.ComboWindow > 0 {
		cfg.ComboWindow = t.ComboWindow
	}
	if t.ComboStep > 0 {
		cfg.ComboStep = t.ComboStep
	}
	if t.MissionCredits > 0 || t.MissionXP > 0 {
		cfg.Mission = domain.BaseReward{Credits: t.MissionCredits, XP: t.MissionXP}
	}
	if t.DailyBonusCredits > 0 || t.DailyBonusXP > 0 {
		cfg.DailyBonus = domain.BaseReward{Credits: t.DailyBonusCredits, XP: t.DailyBonusXP}
	}
	if t.QueueCapacity > 0 {
		cfg.QueueCapacity = t.QueueCapacity
	}
	cfg.Policy = multiplier.Policy{
		Difficulty: orNeutral(t.Difficulty),
		Event:      orNeutral(t.EventMultiplier),
		VIP:        orNeutral(t.VIPMultiplier),
	}.Normalized()
	return cfg
}

func orNeutral(v float64) float64 {
	if v <= 0 {
		return multiplier.Neutral
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if v, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
