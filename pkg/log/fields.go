package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Domain
	FieldMessageID = "message_id"
	FieldUsername  = "username"

	// Service
	FieldService = "service"
)
