package postgres

// PostgreSQL Error Codes
const (
	PgErrorCodeForeignKeyViolation = "23503"
	PgErrorCodeCheckViolation      = "23514"
	PgErrorCodeLockNotAvailable    = "55P03"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToSetLockTimeout    = "failed to set lock timeout"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	ErrMsgLockTimeout               = "gave up waiting for row lock"
)

// Error Messages - Player Operations
const (
	ErrMsgFailedToInsertPlayer   = "failed to insert player"
	ErrMsgFailedToGetPlayer      = "failed to get player"
	ErrMsgFailedToLockPlayer     = "failed to lock player"
	ErrMsgFailedToApplyStatDelta = "failed to apply stat delta"
	ErrMsgFailedToSpendCurrency  = "failed to spend currency"
	ErrMsgUnknownStat            = "unknown stat"
)

// Error Messages - Inventory Operations
const (
	ErrMsgFailedToGetPlayerItems = "failed to get player items"
	ErrMsgFailedToLockItem       = "failed to lock player item"
	ErrMsgFailedToUpsertItem     = "failed to upsert player item"
	ErrMsgFailedToDecrementItem  = "failed to decrement player item"
)
