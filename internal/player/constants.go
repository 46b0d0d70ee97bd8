package player

// Log messages
const (
	LogMsgPlayerLoaded       = "Player loaded"
	LogMsgPlayerUnloaded     = "Player unloaded"
	LogMsgCorruptRecordReset = "Starting player from defaults after corrupt record"
	LogMsgCheckpointFailed   = "Player checkpoint failed"
	LogMsgTickFailed         = "Player tick left notifications queued"
	LogMsgRegistryClosed     = "Player registry closed"
	LogMsgPlayersEvicted     = "Idle players evicted"
)

// Error messages
const (
	ErrMsgRestorePlayer    = "failed to restore player"
	ErrMsgCheckpointPlayer = "failed to checkpoint player"
	ErrMsgUnloadPlayer     = "failed to unload player"
)
