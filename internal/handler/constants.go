package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgUnknownKillKind       = "Unknown kill kind"
	ErrMsgPlayerIDRequired      = "Player ID is required"
	ErrMsgInvalidPlayerID       = "Invalid player ID"
	ErrMsgPlayerUnavailable     = "Player data is temporarily unavailable"
)

// Success messages for API responses
const (
	MsgCheckpointSaved = "Checkpoint saved"
)

// Health responses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	MsgStorageUnavailable   = "storage unavailable"
)

// Log messages
const (
	LogMsgDecodeFailed    = "Failed to decode request"
	LogMsgRequestDecoded  = "Request decoded"
	LogMsgServiceError    = "Request failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
)

// URL parameters
const (
	ParamPlayerID      = "playerID"
	ParamAchievementID = "achievementID"
)
