package services

// reasonLimit caps the store failure detail carried into a response body.
const reasonLimit = 200

// ValidationError reports a client mistake in an order payload: an empty item
// list or an out-of-stock print.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NotFoundError reports a reference to a document that does not exist.
type NotFoundError struct {
	Reason string
}

func (e *NotFoundError) Error() string { return e.Reason }

// PersistenceError reports a document store failure.
type PersistenceError struct {
	Reason string
}

func (e *PersistenceError) Error() string { return e.Reason }

func truncateReason(msg string) string {
	if len(msg) <= reasonLimit {
		return msg
	}
	return msg[:reasonLimit]
}
