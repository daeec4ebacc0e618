package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// Paths excluded from request logging
var quietPaths = []string{
	"/healthz",
	"/metrics",
}
