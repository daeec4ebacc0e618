package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal   = "http_requests_total"
	MetricNameHTTPRequestDuration = "http_request_duration_seconds"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Mechanic metric names
const (
	MetricNameMechanicsRegistered = "mechanics_registered_total"
	MetricNameMechanicsBound      = "mechanics_bound_total"
	MetricNameBindingErrors       = "mechanic_binding_errors_total"
	MetricNameDefinitionsRejected = "item_definitions_rejected_total"
	MetricNameItemsDepleted       = "items_depleted_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal   = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration = "HTTP request latency in seconds"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Mechanic metric help text
const (
	HelpTextMechanicsRegistered = "Total number of mechanic type registrations"
	HelpTextMechanicsBound      = "Total number of item-to-mechanic bindings recorded"
	HelpTextBindingErrors       = "Total number of binding failures during definition loading"
	HelpTextDefinitionsRejected = "Total number of item definitions rejected during loading"
	HelpTextItemsDepleted       = "Total number of item stacks removed after depletion"
)

// ============================================================================
// Metric Labels
// ============================================================================

const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelType     = "type"
	LabelMechanic = "mechanic"
	LabelReason   = "reason"
	LabelItem     = "item"
)

// Binding error reason label values
const (
	ReasonUnknownType   = "unknown_type"
	ReasonInvalidConfig = "invalid_config"
	ReasonDuplicate     = "duplicate_binding"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// Log messages
const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected type"
)
