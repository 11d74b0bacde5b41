package errorhandler

// ErrorContext provides context about a failed payload delivery. It
// contains all the information a handler needs to decide how to proceed.
type ErrorContext struct {
	// Endpoint is the destination the payload was being delivered to.
	Endpoint string

	// Payload is the encoded batch payload that failed to deliver.
	Payload []byte

	// Error is the error that occurred during delivery.
	Error error

	// Attempt is current attempt number, 1 indexed.
	Attempt int

	// Phase indicates where in the delivery pipeline the error occurred
	Phase ErrorPhase
}

func NewErrorContext(endpoint string, payload []byte, err error) ErrorContext {
	return ErrorContext{
		Endpoint: endpoint,
		Payload:  payload,
		Error:    err,
		Attempt:  1,
	}
}

func (ec ErrorContext) WithError(err error) ErrorContext {
	ec.Error = err
	return ec
}

func (ec ErrorContext) WithAttempt(attempt int) ErrorContext {
	ec.Attempt = attempt
	return ec
}

func (ec ErrorContext) WithPhase(phase ErrorPhase) ErrorContext {
	ec.Phase = phase
	return ec
}

func (ec ErrorContext) IncrementAttempt() ErrorContext {
	ec.Attempt++
	return ec
}
