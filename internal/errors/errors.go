package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user record is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrJobNotFound is returned when a job listing is not found.
	ErrJobNotFound = errors.New("job not found")
	// ErrProjectNotFound is returned when a project listing is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrProposalNotFound is returned when a proposal is not found.
	ErrProposalNotFound = errors.New("proposal not found")
	// ErrNotOwner is returned when the caller does not own the record it mutates or inspects.
	ErrNotOwner = errors.New("not authorized for this resource")
	// ErrRoleNotAllowed is returned when the caller's user type cannot perform the operation.
	ErrRoleNotAllowed = errors.New("user type not allowed for this operation")
	// ErrAlreadyApplied is returned on a duplicate application to the same job.
	ErrAlreadyApplied = errors.New("already applied to this job")
	// ErrAlreadyProposed is returned on a duplicate proposal for the same project.
	ErrAlreadyProposed = errors.New("already submitted a proposal for this project")
	// ErrInvalidStatus is returned when a status update carries an unknown value.
	ErrInvalidStatus = errors.New("invalid submission status")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrJobNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case ErrProjectNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROJECT_NOT_FOUND")
	case ErrApplicationNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "APPLICATION_NOT_FOUND")
	case ErrProposalNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROPOSAL_NOT_FOUND")
	case ErrNotOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_OWNER")
	case ErrRoleNotAllowed:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ROLE_NOT_ALLOWED")
	case ErrAlreadyApplied:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_APPLIED")
	case ErrAlreadyProposed:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_PROPOSED")
	case ErrInvalidStatus:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
