package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingFoodgram    = "Starting Foodgram"
	LogMsgConfigurationLoaded = "Configuration loaded"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Service wiring
// =============================================================================

const (
	ErrMsgFailedCreateShopping     = "failed to create shopping service"
	ErrMsgFailedRegisterCollectors = "failed to register metrics collectors"
	LogMsgServicesInitialized      = "Services initialized"
	LogMsgCollectorsRegistered     = "Metrics collectors registered"
)

// =============================================================================
// Catalog Seed
// =============================================================================

const (
	LogMsgSeedingCatalog = "Seeding catalog from JSON files..."
	LogMsgCatalogSeeded  = "Catalog seeded"

	ErrMsgFailedReadSeed   = "failed to read seed file"
	ErrMsgFailedParseSeed  = "failed to parse seed file"
	ErrMsgInvalidSeedEntry = "invalid seed entry"
	ErrMsgFailedImportTags = "failed to import tags"
	ErrMsgFailedImportIngr = "failed to import ingredients"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgClosingDatabase      = "Closing database pool"

	// ShutdownTimeout bounds how long in-flight requests may take to finish
	ShutdownTimeout = 15 * time.Second
)
