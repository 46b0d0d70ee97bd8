package config

import "time"

// Configuration file paths
const (
	ConfigPathAchievements = "configs/achievements.json"
)

// Storage backends
const (
	StorageFile     = "file"
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultDataDir            = "data/players"
	DefaultLogDir             = "logs"
	DefaultDeadLetterFile     = "dead_letter.jsonl"
	DefaultTickInterval       = time.Second
	DefaultCheckpointInterval = 30 * time.Second
	DefaultEvictInterval      = time.Minute
	DefaultPlayerIdleTTL      = 30 * time.Minute
	DefaultWorkerCount        = 2
	DefaultWorkerQueueSize    = 16
	DefaultDBMaxConns         = 20
	DefaultDBMaxConnIdleTime  = 5 * time.Minute
	DefaultDBMaxConnLifetime  = 30 * time.Minute
	DefaultTimezone           = "UTC"
)

// Error messages
const (
	ErrMsgInvalidPort     = "invalid PORT value"
	ErrMsgAPIKeyRequired  = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgInvalidTimezone = "invalid TIMEZONE"
)
