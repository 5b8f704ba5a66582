// Package fault normalizes heterogeneous internal errors into one stable
// public error surface with deduplicated human-readable logging.
//
// Business failures are raised through the named constructors
// (ConfigurationError, NetworkError, ...), which produce internal errors
// tagged with a stable Code. A Normalizer converts any error, whatever its
// origin, into exactly one PublicError and emits exactly one log line per
// conversion. Normalization is idempotent: a value that is already a
// PublicError passes through unchanged with no second log emission.
//
//	if err := client.Fetch(ctx); err != nil {
//	    return fault.Normalize(fault.NetworkError(err))
//	}
//
// Callers that only handle plain errors at the outer boundary can recover
// the public error and its code without loss:
//
//	if pub, ok := fault.AsPublic(err); ok {
//	    switch pub.Code() {
//	    case fault.CodeOfflineConnection:
//	        ...
//	    }
//	}
package fault

// Code identifies a specific public error condition.
// Codes are string-based for debuggability and natural JSON serialization.
type Code string

const (
	// CodeConfiguration indicates the client was configured incorrectly.
	CodeConfiguration Code = "CONFIGURATION_ERROR"

	// CodeCustomerInfo indicates a problem fetching customer information.
	CodeCustomerInfo Code = "CUSTOMER_INFO_ERROR"

	// CodeNetwork indicates a network request failed.
	CodeNetwork Code = "NETWORK_ERROR"

	// CodeOfflineConnection indicates the device has no usable connection.
	CodeOfflineConnection Code = "OFFLINE_CONNECTION_ERROR"

	// CodePurchaseNotAllowed indicates the device or user may not make purchases.
	CodePurchaseNotAllowed Code = "PURCHASE_NOT_ALLOWED"

	// CodeInvalidAPIKey indicates the API key is missing or malformed.
	CodeInvalidAPIKey Code = "INVALID_API_KEY"

	// CodeInvalidSubscriberAttributes indicates one or more subscriber
	// attributes were rejected.
	CodeInvalidSubscriberAttributes Code = "INVALID_SUBSCRIBER_ATTRIBUTES"

	// CodeAPIEndpointBlocked indicates the request was blocked before
	// reaching the backend.
	CodeAPIEndpointBlocked Code = "API_ENDPOINT_BLOCKED"

	// CodeUnknownBackend indicates the backend returned an error this
	// client version does not recognize.
	CodeUnknownBackend Code = "UNKNOWN_BACKEND_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown Code = "UNKNOWN"
)

// descriptions holds the fixed human-readable description for each code.
// These strings are part of the public surface: log lines and matching
// rely on them being stable.
var descriptions = map[Code]string{
	CodeConfiguration:               "There is an issue with your configuration.",
	CodeCustomerInfo:                "There was a problem fetching customer info.",
	CodeNetwork:                     "Error performing request.",
	CodeOfflineConnection:           "Error performing request because the internet connection appears to be offline.",
	CodePurchaseNotAllowed:          "The device or user is not allowed to make the purchase.",
	CodeInvalidAPIKey:               "The API key is not valid.",
	CodeInvalidSubscriberAttributes: "One or more of the attributes sent could not be saved.",
	CodeAPIEndpointBlocked:          "The request to the API endpoint was blocked.",
	CodeUnknownBackend:              "There was an unknown backend error.",
	CodeUnknown:                     "An unknown error occurred.",
}

// Description returns the fixed description for the code.
// Unknown codes share the CodeUnknown description.
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return descriptions[CodeUnknown]
}

// Valid returns true if the code is part of the public enumeration.
func (c Code) Valid() bool {
	_, ok := descriptions[c]
	return ok
}
