package worker

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// LogMsgWorkerJobSkipped is logged when a queued job is dropped because the pool is cancelled
const LogMsgWorkerJobSkipped = "Worker job skipped"
