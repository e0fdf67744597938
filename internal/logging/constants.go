package logging

// Standardized field names for structured logging. Using the same keys
// everywhere keeps the upload pipeline's log output filterable.
const (
	FieldFile     = "file_path"
	FieldFileType = "file_type"
	FieldRow      = "row"
	FieldCategory = "category"
	FieldAmount   = "amount"
	FieldDate     = "date"
	FieldCount    = "count"
	FieldBatchID  = "batch_id"
	FieldUserID   = "user_id"
	FieldEndpoint = "endpoint"
	FieldReason   = "reason"
	FieldPolicy   = "policy"
)
