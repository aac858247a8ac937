package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Log files
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

// Backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendHTTP     = "http"
	BackendLocal    = "local"
)

// Log messages for startup
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Brandish Spin"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgStoreReady          = "Spin store ready"
	LogMsgLedgerReady         = "Token ledger client ready"
	LogMsgOracleReady         = "Randomness oracle client ready"
	LogMsgDevPoolFunded       = "Funded in-memory custody pool for development"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Error messages for startup
const (
	ErrMsgFailedCreateLogsDir            = "failed to create logs directory"
	ErrMsgFailedOpenLogFile              = "failed to open log file"
	ErrMsgFailedConnectDB                = "failed to connect to database"
	ErrMsgFailedMigrate                  = "failed to apply migrations"
	ErrMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	ErrMsgFailedConnectRedis             = "failed to connect to redis"
	ErrMsgFailedCreateDiscordSender      = "failed to create discord webhook sender"
	ErrMsgFailedCreateOracle             = "failed to create local oracle"
	ErrMsgUnknownBackend                 = "unknown backend"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgSSESubscriberRegistered    = "SSE subscriber registered"
	LogMsgRedisBridgeRegistered      = "Redis event bridge registered"
	LogMsgDiscordNotifierRegistered  = "Discord notifier registered"
)

// DevPoolFunding is minted into the in-memory custody pool at startup
const DevPoolFunding int64 = 1_000_000

// Shutdown messages
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgComponentShutdownFailed    = " shutdown failed"
)

// Component names for shutdown logging
const (
	ComponentOracle     = "oracle"
	ComponentNotifier   = "discord notifier"
	ComponentPublisher  = "resilient publisher"
	ComponentRedis      = "redis client"
	ComponentWorkerPool = "worker pool"
)
