package cli

// Exit codes for the template-init CLI. Declining a confirmation is a
// success: the user chose to run nothing.
const (
	// ExitSuccess indicates the run completed (or was declined) cleanly.
	ExitSuccess = 0

	// ExitFailure indicates a failed step, a missing precondition,
	// an unexpected error, or a user interrupt.
	ExitFailure = 1
)
