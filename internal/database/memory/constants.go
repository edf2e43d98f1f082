package memory

// Error Messages
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgLockWaitAbandoned         = "gave up waiting for row lock"
	ErrMsgUnknownStat               = "unknown stat"
)
