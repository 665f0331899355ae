package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
	// DefaultMaxConnections bounds the pool; game operations are short-lived
	DefaultMaxConnections = 20
	// DefaultMaxConnLifetime recycles connections periodically
	DefaultMaxConnLifetime = 30 * time.Minute
	// DefaultMaxConnIdleTime reaps idle connections
	DefaultMaxConnIdleTime = 5 * time.Minute
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)
