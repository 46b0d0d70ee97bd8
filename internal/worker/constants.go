package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgJobDropped      = "Worker queue full, job dropped"
)

// Log messages - player jobs
const (
	LogMsgTickCompleted       = "Player tick completed"
	LogMsgCheckpointCompleted = "Player checkpoint completed"
	LogMsgEvictCompleted      = "Idle player eviction completed"
)

// Job names
const (
	JobNameTick       = "tick"
	JobNameCheckpoint = "checkpoint"
	JobNameEvict      = "evict"
)
