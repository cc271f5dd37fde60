package domain

// Outcome is a user-facing operation result: a flag plus a
// human-readable message, never an error code
type Outcome struct {
	OK      bool
	Message string
}
