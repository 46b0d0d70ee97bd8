package persistence

import "time"

// SchemaVersion is the record schema written by Encode. Decode accepts any
// version and ignores fields it does not know.
const SchemaVersion = 1

// Storage defaults
const (
	RecordExtension  = ".json"
	DirPermissions   = 0o700
	DefaultCacheSize = 512
	DefaultCacheTTL  = 10 * time.Minute
	tempFilePattern  = ".record-*.tmp"

	// Corrupt records are kept as <key>.corrupt-<time>.json
	QuarantineInfix      = ".corrupt-"
	QuarantineTimeLayout = "20060102T150405.000000000Z"
)

// Log messages
const (
	LogMsgRecordMissing     = "No persisted record, using defaults"
	LogMsgRecordCorrupt     = "Persisted record is corrupt, using defaults"
	LogMsgRecordRestored    = "Persisted record restored"
	LogMsgRecordSaved       = "Record checkpointed"
	LogMsgRecordQuarantined = "Corrupt record moved aside"
)

// Error messages
const (
	ErrMsgInvalidKey       = "invalid record key"
	ErrMsgEncodeRecord     = "failed to encode record"
	ErrMsgWriteRecord      = "failed to write record"
	ErrMsgReadRecord       = "failed to read record"
	ErrMsgDeleteRecord     = "failed to delete record"
	ErrMsgQuarantineRecord = "failed to move corrupt record aside"
)
