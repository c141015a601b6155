package apierrors

// ClassifyHTTPStatus wraps err with the retry category implied by an HTTP
// status code:
//   - 4xx client errors (except 408 and 429) are irrecoverable
//   - 5xx server errors are recoverable
//   - anything unexpected is treated as recoverable
func ClassifyHTTPStatus(statusCode int, err error) *ClassifiedError {
	return &ClassifiedError{
		Category:   categoryFor(statusCode),
		StatusCode: statusCode,
		Underlying: err,
	}
}

// ClassifyNetwork wraps a network-level failure. Network errors are always
// recoverable since they may be transient.
func ClassifyNetwork(err error) *ClassifiedError {
	return &ClassifiedError{Category: Recoverable, Underlying: err}
}

func categoryFor(statusCode int) Category {
	switch {
	case statusCode >= 400 && statusCode < 500:
		switch statusCode {
		case 408, 429: // timeout / throttled, retry
			return Recoverable
		default:
			return Irrecoverable
		}
	case statusCode >= 500 && statusCode < 600:
		return Recoverable
	default:
		return Recoverable
	}
}
