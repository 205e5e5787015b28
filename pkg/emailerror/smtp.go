package emailerror

// SMTP error classification.
//
// Recipient errors (permanent 55x replies) leave the account healthy and
// must not trip the breaker. Temporary 4xx replies and connection-level
// failures point at the account or its relay and do.

var smtpRecipientPatterns = []string{
	"550 ",
	"550:",
	"551 ",
	"551:",
	"552 ",
	"552:",
	"553 ",
	"553:",
	"5.1.1", // mailbox does not exist
	"5.1.2",
	"5.1.3",
	"5.2.1", // mailbox disabled
	"5.2.2", // mailbox full
	"mailbox unavailable",
	"mailbox not found",
	"user unknown",
	"no such user",
	"recipient rejected",
	"does not exist",
	"mailbox full",
	"over quota",
}

var smtpProviderPatterns = []string{
	"421 ",
	"421:",
	"450 ",
	"450:",
	"451 ",
	"451:",
	"452 ",
	"452:",
	"4.7.1",
	"connection refused",
	"connection reset",
	"connection timeout",
	"timed out",
	"timeout",
	"tls handshake",
	"tls error",
	"ssl error",
	"authentication failed",
	"auth failed",
	"login failed",
	"service unavailable",
	"try again later",
	"temporary failure",
	"greylisted",
	"greylist",
}

func (c *Classifier) classifySMTPError(err error, errStr string, httpStatus int) *ClassifiedError {
	result := &ClassifiedError{
		Original:   err,
		Provider:   "smtp",
		HTTPStatus: httpStatus,
		Retryable:  true,
	}

	if containsAny(errStr, smtpRecipientPatterns) {
		result.Type = ErrorTypeRecipient
		result.Retryable = false
		return result
	}

	if containsAny(errStr, smtpProviderPatterns) {
		result.Type = ErrorTypeProvider
		result.Retryable = true
		return result
	}

	if httpStatus > 0 {
		result.Type = classifyByHTTPStatus(httpStatus)
		result.Retryable = httpStatus >= 500 || httpStatus == 429
		return result
	}

	result.Type = ErrorTypeUnknown
	return result
}
