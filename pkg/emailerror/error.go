package emailerror

// ErrorType classifies send failures for circuit breaker decisions.
type ErrorType string

const (
	// ErrorTypeRecipient marks failures caused by the recipient address
	// (unknown user, mailbox full). These must not trip the breaker: the
	// account is healthy, the address is not.
	ErrorTypeRecipient ErrorType = "recipient"

	// ErrorTypeProvider marks account or infrastructure failures (auth,
	// throttling, service down). These count toward the breaker threshold.
	ErrorTypeProvider ErrorType = "provider"

	// ErrorTypeUnknown is anything unclassified. Treated as a provider
	// error so an unhealthy account still gets throttled.
	ErrorTypeUnknown ErrorType = "unknown"
)

// ClassifiedError wraps a send error with breaker-relevant metadata.
type ClassifiedError struct {
	// Original is the underlying error.
	Original error

	// Type classifies the error as recipient, provider, or unknown.
	Type ErrorType

	// Provider is the sender account kind (smtp, gmail, ses).
	Provider string

	// HTTPStatus is the status code extracted from the message, 0 if none.
	HTTPStatus int

	// Retryable reports whether a later attempt could succeed.
	Retryable bool
}

func (e *ClassifiedError) Error() string {
	if e.Original == nil {
		return ""
	}
	return e.Original.Error()
}

// Unwrap returns the underlying error for errors.Is/As compatibility.
func (e *ClassifiedError) Unwrap() error {
	return e.Original
}

// IsRecipientError reports whether the failure is recipient-specific.
func (e *ClassifiedError) IsRecipientError() bool {
	return e.Type == ErrorTypeRecipient
}

// ShouldTriggerCircuitBreaker reports whether this failure counts toward
// the account's breaker threshold. Unknown errors count.
func (e *ClassifiedError) ShouldTriggerCircuitBreaker() bool {
	return e.Type == ErrorTypeProvider || e.Type == ErrorTypeUnknown
}
