// Package errors provides structured error types for better observability
// and programmatic error handling across the generator.
//
// Every failure in a generation run is fatal, so the codes exist to tell the
// operator what to fix rather than to drive retries:
//
//   - MALFORMED_IDENTIFIER: an id string is not namespace:path
//   - INVALID_CHANCE: an item chance outside [0, 1]
//   - INVALID_ITEM: an item count below one
//   - DUPLICATE_RECORD_ID: two records would be written to the same file
//   - CONFIG_MISSING / CONFIG_MALFORMED: the input configuration is absent or unusable
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeMalformedIdentifier,
//	    "identifier must be namespace:path",
//	    map[string]any{
//	        "input": raw,
//	    },
//	)
package errors
