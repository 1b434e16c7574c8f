package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldEntryID   = "entry_id"
	FieldEntryType = "entry_type"
	FieldAmount    = "amount"
	FieldCount     = "count"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldKey       = "key"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentAPI     = "api"
	ComponentStorage = "storage"
	ComponentBackend = "backend"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpCreate = "create"
	OpList   = "list"
	OpGet    = "get"
	OpDelete = "delete"
	OpSeed   = "seed"
)
