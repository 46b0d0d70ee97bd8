package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Queue configuration
const (
	// DefaultQueueCapacity bounds the notifications held between drains
	DefaultQueueCapacity = 1000
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644
)

// Metadata keys
const (
	MetadataPlayerID = "player_id"
)

// Log message constants
const (
	LogMsgQueueOverflow   = "Notification queue full, oldest event dead-lettered"
	LogMsgDrainFailed     = "Notification publish failed, keeping event queued"
	LogMsgEventDeadLetter = "event_dead_lettered"
	LogMsgPayloadMismatch = "Notification payload could not be decoded"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
