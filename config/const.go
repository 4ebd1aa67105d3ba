package config

const (
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"

	EnvVarLogLevel = "LOG_LEVEL"
	EnvVarLogFile  = "LOG_FILE"

	DefaultLogLevel                     = "INFO"
	DefaultMaxFileSizeInMB              = 100
	DefaultMaxBackupsOfLogFiles         = 5
	DefaultMaxAgeToRetainLogFilesInDays = 7

	// MaxClaims is the fixed number of claim slots the circuit input carries.
	MaxClaims = 10

	// reference claim, see https://sepolia.etherscan.io/tx/0xcae128087515abfcff4731ccd815f2c19611f882842c030af1e1bdb6e485af97#eventlog
	ReferenceBlockNumber = 5203518
	ReferenceTxIdx       = 112
	ReferenceLogIdx      = 1

	DefaultClaimCacheSize = 1024
)
