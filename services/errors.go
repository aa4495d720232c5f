package services

// ValidationError marks malformed or missing input. Field names the
// offending request field when known.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError marks a missing order or menu row.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// ConflictError marks an update that lost against a concurrent writer or
// would break referential integrity.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
