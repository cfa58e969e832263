package constants

// RunStatus is the canonical status for an extraction run.
type RunStatus string

// Stable values (log and store these exact strings).
const (
	RunStatusRunning   RunStatus = "RUNNING"    // in progress
	RunStatusTextOK    RunStatus = "TEXT_OK"    // stage 1 completed (text recovered)
	RunStatusExtractOK RunStatus = "EXTRACT_OK" // stage 2 completed (record built)
	RunStatusSaved     RunStatus = "SAVED"      // record persisted
	RunStatusFailed    RunStatus = "FAILED"     // infrastructure failure
)
