package config

// Storage drivers
const (
	DBDriverPostgres = "postgres"
	DBDriverMemory   = "memory"
)

// Error messages
const (
	ErrMsgParseConfig         = "failed to parse configuration"
	ErrMsgAPIKeyRequired      = "API_KEY environment variable must be set for security"
	ErrMsgInvalidPortFmt      = "invalid PORT value: %d"
	ErrMsgUnknownDriverFmt    = "unknown DB_DRIVER %q (expected postgres or memory)"
	ErrMsgLockTimeoutPositive = "DB_LOCK_TIMEOUT must be positive"
	ErrMsgMustBePositiveFmt   = "%s must be positive, got %d"
)
