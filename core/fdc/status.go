// ABOUTME: Status validator classifies HTTP status codes from the backend
// ABOUTME: Single-shot gate, no retry or backoff

package fdc

import (
	"net/http"

	coreerrors "fooddata-api-client/core/errors"
)

// checkStatus classifies an HTTP status code into the client's error
// taxonomy. 200 passes, 400 means an invalid request parameter, 404 means
// the resource was not found, anything else is an unclassified backend
// error. Used as a gate before response bodies are parsed.
func checkStatus(statusCode int, resource, id string) error {
	switch statusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return &coreerrors.ValidationError{
			Field:   "request",
			Message: "the request used an invalid parameter",
		}
	case http.StatusNotFound:
		return &coreerrors.NotFoundError{
			Resource: resource,
			ID:       id,
		}
	default:
		return &coreerrors.ExternalAPIError{
			StatusCode: statusCode,
			Message:    "unclassified backend error",
			API:        apiName,
		}
	}
}
