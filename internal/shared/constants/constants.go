package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys set by the auth middleware
	ContextKeyUserID      = "user_id"
	ContextKeyUserEmail   = "user_email"
	ContextKeyDisplayName = "user_display_name"
	ContextKeyRequestID   = "request_id"

	// Storage backends
	StorageBackendRemote = "remote"
	StorageBackendLocal  = "local"

	// Default key prefix for local blobs: <prefix>_tickets_<owner>
	DefaultStorageKeyPrefix = "helpdesk"

	// Database table names
	TableTickets        = "tickets"
	TableTicketMessages = "ticket_messages"
	TableCustomers      = "customers"
	TableAgents         = "agents"
	TableSampleSeeds    = "sample_seeds"


	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
)
