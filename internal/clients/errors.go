package clients

// ConfigurationError signals that an external model client could not be
// constructed: a missing credential or an exhausted model candidate
// list. It is fatal to that client only; callers degrade to
// fallback-only analysis instead of failing the service.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return e.Reason + ": " + e.Err.Error()
	}
	return e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
