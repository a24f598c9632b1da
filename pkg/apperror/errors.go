package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Fatal errors indicate a broken accounting invariant: the enclosing
// operation must abort and the caller must not retry blindly.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Fatal      bool   `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Bad input (rejected immediately, no retry) ----

// ErrInvalidKey reports a malformed extended public key.
func ErrInvalidKey(err error) *AppError {
	return Wrap("WAL_001", "Invalid extended public key", http.StatusBadRequest, err)
}

// ErrInvalidFilter reports an unusable UTXO filter, e.g. an empty address set.
func ErrInvalidFilter(message string) *AppError {
	return New("UTX_001", message, http.StatusBadRequest)
}

// Validation returns a generic bad-request validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Invariant violations (fatal, never retried) ----

// ErrMissingUTXOs reports that markSpent touched fewer rows than inputs
// supplied. The UTXO set is missing entries and processing must halt.
func ErrMissingUTXOs(want, got int) *AppError {
	e := New("LGR_001", fmt.Sprintf("expected to spend %d UTXOs, updated %d", want, got), http.StatusInternalServerError)
	e.Fatal = true
	return e
}

// ErrPartialRelease reports that releasing transaction proposals affected an
// unexpected number of UTXO rows.
func ErrPartialRelease(want, got int) *AppError {
	e := New("LGR_002", fmt.Sprintf("expected to release %d proposals, released %d", want, got), http.StatusInternalServerError)
	e.Fatal = true
	return e
}

// ---- Wallet lifecycle ----

func ErrWalletNotFound() *AppError {
	return New("WAL_002", "Wallet not found", http.StatusNotFound)
}

func ErrWalletAlreadyLoaded() *AppError {
	return New("WAL_003", "Wallet already loaded", http.StatusConflict)
}

func ErrWalletNotReady() *AppError {
	return New("WAL_004", "Wallet is still loading", http.StatusConflict)
}

// ---- System & infrastructure (transient, retryable) ----

// ErrDatabaseError wraps a relational store failure. Safe to retry: inserts
// are conflict-tolerant and updates additive.
func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_002 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_002", "Internal server error", http.StatusInternalServerError, err)
}
