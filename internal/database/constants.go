package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = time.Hour
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString     = "failed to parse connection string"
	ErrMsgFailedToCreatePool          = "failed to create connection pool"
	ErrMsgFailedToPingDatabase        = "failed to ping database"
	ErrMsgFailedToBeginTransaction    = "failed to begin transaction"
	ErrMsgFailedToRollbackTransaction = "Failed to rollback transaction"
	ErrMsgFailedToMigrate             = "failed to apply migrations"
	ErrMsgFailedToRunMigrationCmd     = "failed to run migration command"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)

const gooseDialect = "postgres"
