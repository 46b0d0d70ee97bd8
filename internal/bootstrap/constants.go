package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0644
)

// Logger configuration
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting frag rewards service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// Catalog messages
const (
	LogMsgCatalogReady      = "Achievement catalog ready"
	ErrMsgFailedLoadCatalog = "failed to load achievement catalog"
)

// Storage messages
const (
	LogMsgStorageInitialized = "Storage initialized"
	ErrMsgUnknownBackend     = "unknown storage backend"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
)

// Event system messages
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgDiscordNotifierEnabled     = "Discord webhook notifier enabled"
	ErrMsgFailedCreateDeadLetterDir  = "failed to create dead-letter directory"
	ErrMsgFailedCreateDeadLetter     = "failed to open dead-letter file"
	ErrMsgFailedCreateDiscordSession = "failed to create discord session"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgStoppingJobs          = "Stopping background jobs..."
	LogMsgClosingPlayers        = "Checkpointing players..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgPlayerCloseFailed     = "Player checkpoint on shutdown failed"
	LogMsgDeadLetterCloseFailed = "Dead-letter file close failed"
)
