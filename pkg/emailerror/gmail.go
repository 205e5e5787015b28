package emailerror

// Gmail API error classification.
//
// The Gmail API reports failures as googleapi errors of the form
// "googleapi: Error 429: User-rate limit exceeded". Rate limits, quota
// exhaustion and OAuth failures are account problems; invalid destination
// addresses are recipient problems.

var gmailRecipientPatterns = []string{
	"invalid to header",
	"invalid recipient",
	"recipientaddressrequired",
	"address not found",
	"recipient address rejected",
	"domainpolicy", // destination domain rejects the message
}

var gmailProviderPatterns = []string{
	"userratelimitexceeded",
	"ratelimitexceeded",
	"dailylimitexceeded",
	"quotaexceeded",
	"quota exceeded",
	"backenderror",
	"internal error",
	"autherror",
	"invalid_grant",   // revoked or expired refresh token
	"invalid credentials",
	"unauthorized",
	"insufficient permission",
	"access not configured",
	"account disabled",
	"mail service not enabled",
}

func (c *Classifier) classifyGmailError(err error, errStr string, httpStatus int) *ClassifiedError {
	result := &ClassifiedError{
		Original:   err,
		Provider:   "gmail",
		HTTPStatus: httpStatus,
		Retryable:  true,
	}

	if containsAny(errStr, gmailRecipientPatterns) {
		result.Type = ErrorTypeRecipient
		result.Retryable = false
		return result
	}

	if containsAny(errStr, gmailProviderPatterns) {
		result.Type = ErrorTypeProvider
		// OAuth failures need operator intervention; throttling heals itself.
		result.Retryable = containsAny(errStr, []string{"rate", "quota", "backend", "internal"})
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
