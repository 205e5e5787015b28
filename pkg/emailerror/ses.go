package emailerror

// Amazon SES error classification.
//
// MessageRejected and invalid-recipient responses are recipient errors.
// Throttling, quota and credential failures affect every send from the
// account and count toward the breaker.

var sesRecipientPatterns = []string{
	"messagerejected",
	"invalid recipient",
	"mailbox unavailable",
	"mailbox not found",
	"user unknown",
	"address rejected",
	"no recipients",
	"recipient rejected",
}

var sesProviderPatterns = []string{
	"throttling",
	"throttlingexception",
	"limitexceeded",
	"quota exceeded",
	"daily message quota",
	"serviceunavailable",
	"service unavailable",
	"accessdenied",
	"accessdeniedexception",
	"invalidclienttokenid",
	"signaturedoesnotmatch",
	"expiredtoken",
	"expired token",
	"account is paused",
	"sending paused",
	"email address is not verified",
}

func (c *Classifier) classifySESError(err error, errStr string, httpStatus int) *ClassifiedError {
	result := &ClassifiedError{
		Original:   err,
		Provider:   "ses",
		HTTPStatus: httpStatus,
		Retryable:  true,
	}

	// Sender verification failures are account setup problems even though
	// SES words them like recipient rejections.
	if containsAny(errStr, []string{"not verified"}) && containsAny(errStr, []string{"sender", "from address", "source"}) {
		result.Type = ErrorTypeProvider
		result.Retryable = false
		return result
	}

	if containsAny(errStr, sesRecipientPatterns) {
		result.Type = ErrorTypeRecipient
		result.Retryable = false
		return result
	}

	if containsAny(errStr, sesProviderPatterns) {
		result.Type = ErrorTypeProvider
		result.Retryable = containsAny(errStr, []string{"throttl", "quota"})
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
