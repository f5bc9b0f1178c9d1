package analyzer

import "fmt"

// ValidationError halts the pipeline before any remote call is made.
// It is the only failure that aborts an analysis.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// RemoteCallError records the failure of one optional enrichment call.
// It is attached to the result as an error note; the rest of the
// pipeline proceeds with whatever succeeded.
type RemoteCallError struct {
	Op  string
	Err error
}

func (e *RemoteCallError) Error() string {
	return fmt.Sprintf("%s call failed: %v", e.Op, e.Err)
}

func (e *RemoteCallError) Unwrap() error { return e.Err }
