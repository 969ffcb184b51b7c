package secretstore

// NotFoundError indicates that a reference did not resolve to a field.
//
// Missing groups, missing entries and missing fields are reported the same
// way; callers are not told which part of the reference failed.
type NotFoundError struct {
	// Ref is the reference as supplied by the caller.
	Ref string
}

// Error implements the error interface.
func (e NotFoundError) Error() string {
	return e.Ref + " could not be retrieved"
}

// ValidationError indicates that a reference string is malformed.
type ValidationError struct {
	// Ref is the offending reference.
	Ref string

	// Message describes what is wrong with it.
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Ref == "" {
		return e.Message
	}
	return e.Ref + " " + e.Message
}
