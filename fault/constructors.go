package fault

// Named constructors for internal business errors. Each produces an error
// tagged with a stable code; Normalize converts it into a PublicError and
// emits the single log line for the occurrence.

// ConfigurationError reports an invalid client configuration.
func ConfigurationError(message string) error {
	return &taggedError{code: CodeConfiguration, message: message}
}

// CustomerInfoError reports a failure fetching customer information.
func CustomerInfoError(cause error) error {
	return &taggedError{code: CodeCustomerInfo, cause: cause}
}

// NetworkError reports a failed network request.
func NetworkError(cause error) error {
	return &taggedError{code: CodeNetwork, cause: cause}
}

// OfflineConnectionError reports that the connection appears to be offline.
func OfflineConnectionError() error {
	return &taggedError{code: CodeOfflineConnection}
}

// PurchaseNotAllowedError reports that purchases are not allowed for the
// device or user.
func PurchaseNotAllowedError() error {
	return &taggedError{code: CodePurchaseNotAllowed}
}

// InvalidAPIKeyError reports a missing or malformed API key.
func InvalidAPIKeyError() error {
	return &taggedError{code: CodeInvalidAPIKey}
}

// InvalidSubscriberAttributesError reports rejected subscriber attributes.
func InvalidSubscriberAttributesError(cause error) error {
	return &taggedError{code: CodeInvalidSubscriberAttributes, cause: cause}
}

// APIEndpointBlockedError reports a request blocked before reaching the
// backend.
func APIEndpointBlockedError() error {
	return &taggedError{code: CodeAPIEndpointBlocked}
}

// UnknownError wraps an unclassified failure.
func UnknownError(cause error) error {
	return &taggedError{code: CodeUnknown, cause: cause}
}
