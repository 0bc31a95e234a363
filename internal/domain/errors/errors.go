package errors

import (
	"net/http"

	"foodbridge/internal/errors"
)

// AppError is an error that knows how it should be rendered at the HTTP boundary.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is the stock AppError implementation.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	return e.message
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage returns a copy with a different user-facing message but the same code.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Is matches copies made by WithDetails/WithMessage against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode && t.httpCode == e.httpCode
}

var (
	// Authentication
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Unauthorized",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email is already registered",
		"",
	)

	// Users and organisations
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrRoleSelfChange = NewBaseError(
		http.StatusBadRequest,
		"ROLE_SELF_CHANGE",
		"You cannot change your own role",
		"",
	)

	ErrAlreadyOnboarded = NewBaseError(
		http.StatusConflict,
		"ALREADY_ONBOARDED",
		"User is already linked to an organization",
		"",
	)

	ErrSupplierNotFound = NewBaseError(
		http.StatusNotFound,
		"SUPPLIER_NOT_FOUND",
		"Supplier not found",
		"",
	)

	ErrSupplierNameTaken = NewBaseError(
		http.StatusConflict,
		"SUPPLIER_NAME_TAKEN",
		"Supplier name is already in use",
		"",
	)

	ErrNonprofitNotFound = NewBaseError(
		http.StatusNotFound,
		"NONPROFIT_NOT_FOUND",
		"Nonprofit not found",
		"",
	)

	// Product lifecycle
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrProductAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"PRODUCT_ALREADY_CLAIMED",
		"Product has already been claimed",
		"",
	)

	ErrProductNotClaimed = NewBaseError(
		http.StatusConflict,
		"PRODUCT_NOT_CLAIMED",
		"Product is not claimed",
		"",
	)

	ErrNonprofitNotApproved = NewBaseError(
		http.StatusForbidden,
		"NONPROFIT_NOT_APPROVED",
		"Nonprofit is not approved to claim products",
		"",
	)

	ErrPickupDatePassed = NewBaseError(
		http.StatusBadRequest,
		"PICKUP_DATE_PASSED",
		"Cannot unclaim a product after its pickup date",
		"",
	)

	ErrInvalidPickupPass = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PICKUP_PASS",
		"Pickup pass is not valid for this product",
		"",
	)

	// Documents
	ErrDocumentNotFound = NewBaseError(
		http.StatusNotFound,
		"DOCUMENT_NOT_FOUND",
		"Nonprofit document not found",
		"",
	)

	ErrInvalidFileType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILE_TYPE",
		"Invalid file type. Only PDF, PNG and JPEG are allowed",
		"",
	)

	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"File exceeds the maximum allowed size",
		"",
	)

	// Discussion
	ErrInvalidGroupType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_GROUP_TYPE",
		"Invalid group type",
		"",
	)

	ErrThreadNotFound = NewBaseError(
		http.StatusNotFound,
		"THREAD_NOT_FOUND",
		"Thread not found",
		"",
	)

	ErrCommentNotFound = NewBaseError(
		http.StatusNotFound,
		"COMMENT_NOT_FOUND",
		"Comment not found",
		"",
	)

	ErrAnnouncementNotFound = NewBaseError(
		http.StatusNotFound,
		"ANNOUNCEMENT_NOT_FOUND",
		"Announcement not found",
		"",
	)

	// Devices
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	// General
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Forbidden",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflict",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// FetchError is the 500 returned by read-only aggregation endpoints.
// The message is always "Failed to fetch <resource>".
func FetchError(resource string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"FETCH_FAILED",
		"Failed to fetch "+resource,
		"",
	)
}

// DatabaseExecuteError wraps an unexpected persistence failure.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
