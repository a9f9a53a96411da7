package bootstrap

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// Log file rotation
const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingService      = "Starting Multiplier Shop"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgCatalogLoaded        = "Item catalog loaded"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file"
)

// Error formats
const (
	ErrMsgCreateLogsDirFmt = "failed to create logs directory: %w"
	ErrMsgOpenLogFileFmt   = "failed to open log file: %w"
	ErrMsgLoadCatalogFmt   = "failed to load item catalog from %s: %w"
)
