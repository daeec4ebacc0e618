package bootstrap

// Log messages for application startup
const (
	LogMsgStartingItemforge          = "Starting itemforge"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMechanicsRegistered        = "Mechanic factories registered"
	LogMsgDefinitionsLoaded          = "Item definitions loaded"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgReactorRegistered          = "Durability reactor registered"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// Error message prefixes
const (
	ErrMsgFailedRegisterFactory  = "failed to register mechanic factory"
	ErrMsgFailedLoadDefinitions  = "failed to load item definitions"
	ErrMsgInvalidDefinitions     = "invalid item definitions"
	ErrMsgFailedApplyDefinitions = "failed to apply item definitions"
	ErrMsgUnexpectedFactoryType  = "unexpected durability factory type"
)
