package emailerror

import (
	"regexp"
	"strconv"
	"strings"
)

// Classifier classifies send errors by provider kind.
type Classifier struct{}

// NewClassifier creates a new error classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify analyzes an error and returns it wrapped with type information.
// Provider is the sender account kind: "smtp", "gmail" or "ses".
func (c *Classifier) Classify(err error, provider string) *ClassifiedError {
	if err == nil {
		return nil
	}

	errStr := err.Error()
	httpStatus := extractHTTPStatus(errStr)

	switch provider {
	case "smtp":
		return c.classifySMTPError(err, errStr, httpStatus)
	case "gmail":
		return c.classifyGmailError(err, errStr, httpStatus)
	case "ses":
		return c.classifySESError(err, errStr, httpStatus)
	default:
		return c.classifyUnknownProvider(err, errStr, httpStatus)
	}
}

// HTTP status extraction patterns.
var (
	// "status code: 429", "status_code: 500", "status code 503"
	httpStatusRegex = regexp.MustCompile(`(?i)status[_\s]code[:\s]*(\d{3})`)

	// "HTTP 429", "http/1.1 500"
	httpPrefixRegex = regexp.MustCompile(`(?i)http[/\d.]*\s*(\d{3})`)

	// "googleapi: Error 429:"
	googleapiRegex = regexp.MustCompile(`(?i)error\s+(\d{3})[:\s]`)

	// "(429)", "[500]"
	bracketStatusRegex = regexp.MustCompile(`[\[(](\d{3})[\])]`)
)

// extractHTTPStatus attempts to pull an HTTP status code out of an error
// message. Returns 0 when no pattern matches.
func extractHTTPStatus(errStr string) int {
	for _, re := range []*regexp.Regexp{httpStatusRegex, httpPrefixRegex, googleapiRegex, bracketStatusRegex} {
		if matches := re.FindStringSubmatch(errStr); len(matches) >= 2 {
			if status, err := strconv.Atoi(matches[1]); err == nil {
				return status
			}
		}
	}
	return 0
}

// classifyByHTTPStatus maps a bare status code onto an error type.
func classifyByHTTPStatus(status int) ErrorType {
	switch {
	case status == 429:
		return ErrorTypeProvider
	case status >= 500:
		return ErrorTypeProvider
	// Auth errors are account problems (bad credentials, revoked token).
	case status == 401, status == 403:
		return ErrorTypeProvider
	// Remaining 4xx could be either side of the exchange.
	case status >= 400 && status < 500:
		return ErrorTypeUnknown
	default:
		return ErrorTypeUnknown
	}
}

// containsAny checks the error string for any pattern, case-insensitive.
func containsAny(errStr string, patterns []string) bool {
	errLower := strings.ToLower(errStr)
	for _, pattern := range patterns {
		if strings.Contains(errLower, strings.ToLower(pattern)) {
			return true
		}
	}
	return false
}

func (c *Classifier) classifyUnknownProvider(err error, errStr string, httpStatus int) *ClassifiedError {
	result := &ClassifiedError{
		Original:   err,
		Provider:   "unknown",
		HTTPStatus: httpStatus,
		Retryable:  true,
	}

	if httpStatus > 0 {
		result.Type = classifyByHTTPStatus(httpStatus)
		result.Retryable = httpStatus >= 500 || httpStatus == 429
		return result
	}

	result.Type = ErrorTypeUnknown
	return result
}
