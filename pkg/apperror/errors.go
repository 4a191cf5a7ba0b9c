package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how the caller should react to it.
type Kind int

const (
	KindUnknown Kind = iota
	// KindFormat marks bad numeric input. Recovered locally, surfaced as a
	// validation message, never sent to the network.
	KindFormat
	// KindNetwork marks transport failures, timeouts and non-2xx statuses.
	// Surfaced to the user, not retried automatically.
	KindNetwork
	// KindDecode marks a malformed response body. Session state does not
	// advance on decode failures.
	KindDecode
	// KindSigner marks wallet-side failures: user rejection, timeout,
	// wallet unreachable. Auth state stays at its prior step.
	KindSigner
	// KindPrecondition marks operations rejected before any side effect,
	// e.g. a fill exceeding the offer's remaining amount.
	KindPrecondition
	// KindSuperseded marks a result dropped because a newer flow replaced
	// the one that produced it.
	KindSuperseded
)

// AppError is a structured error that carries its kind and, for the mock
// exchange handlers, an HTTP status mapping.
type AppError struct {
	Kind       Kind   `json:"-"`
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
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
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// ---- Numeric input (FMT) ----

func ErrInvalidNumber(input string) *AppError {
	return New(KindFormat, "FMT_001", fmt.Sprintf("not a valid decimal number: %q", input), http.StatusBadRequest)
}

func ErrNegativeAmount() *AppError {
	return New(KindFormat, "FMT_002", "amount must not be negative", http.StatusBadRequest)
}

func ErrScaleOverflow() *AppError {
	return New(KindFormat, "FMT_003", "scaled amount does not fit in 64 bits", http.StatusBadRequest)
}

// ---- Network transport (NET) ----

func ErrRequestFailed(err error) *AppError {
	return Wrap(KindNetwork, "NET_001", "request failed", http.StatusBadGateway, err)
}

func ErrUnexpectedStatus(status int) *AppError {
	return New(KindNetwork, "NET_002", fmt.Sprintf("unexpected status %d", status), http.StatusBadGateway)
}

func ErrTimeout(err error) *AppError {
	return Wrap(KindNetwork, "NET_003", "request timed out", http.StatusGatewayTimeout, err)
}

// ---- Response decoding (DEC) ----

func ErrDecode(err error) *AppError {
	return Wrap(KindDecode, "DEC_001", "malformed response body", http.StatusBadGateway, err)
}

// ---- Wallet signer (SIG) ----

func ErrSigner(err error) *AppError {
	return Wrap(KindSigner, "SIG_001", "wallet signer error", http.StatusBadGateway, err)
}

func ErrSignerDisconnected() *AppError {
	return New(KindSigner, "SIG_002", "wallet is not connected", http.StatusConflict)
}

// ---- Preconditions (PRE) ----

func ErrFillExceedsRemaining() *AppError {
	return New(KindPrecondition, "PRE_001", "fill amount exceeds offer remaining amount", http.StatusBadRequest)
}

// ErrFillExceedsAvailable rejects a fill whose fee-inclusive total would
// not fit inside the offer's remaining amount. available is the largest
// fill the taker can still request.
func ErrFillExceedsAvailable(available string) *AppError {
	return New(KindPrecondition, "PRE_001", fmt.Sprintf("fill plus taker fee exceeds offer remaining amount, at most %s available", available), http.StatusBadRequest)
}

func ErrInvalidAddress(address string) *AppError {
	return New(KindPrecondition, "PRE_002", fmt.Sprintf("not a valid 20-byte hex address: %q", address), http.StatusBadRequest)
}

func ErrNotSignedIn() *AppError {
	return New(KindPrecondition, "PRE_003", "session is not signed in", http.StatusUnauthorized)
}

func ErrNonIntegralTokenAmount() *AppError {
	return New(KindPrecondition, "PRE_004", "amount is not integral at the token's decimals", http.StatusBadRequest)
}

func Precondition(message string) *AppError {
	return New(KindPrecondition, "PRE_000", message, http.StatusBadRequest)
}

// ---- Flow control ----

// ErrSuperseded reports that a newer connect replaced the flow that was
// carrying this operation. The superseded result must not be applied.
func ErrSuperseded() *AppError {
	return New(KindSuperseded, "FLOW_001", "auth flow superseded by a newer connect", http.StatusConflict)
}

// ---- Mock exchange (server side) ----

func ErrInvalidToken() *AppError {
	return New(KindPrecondition, "AUTH_001", "invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidSignature() *AppError {
	return New(KindPrecondition, "AUTH_002", "signature does not match address", http.StatusUnauthorized)
}

func ErrNonceUnknown() *AppError {
	return New(KindPrecondition, "AUTH_003", "nonce unknown or expired", http.StatusUnauthorized)
}

func ErrNotFound(entity string) *AppError {
	return New(KindPrecondition, "API_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func Validation(message string) *AppError {
	return New(KindFormat, "API_002", message, http.StatusBadRequest)
}

// InternalError wraps an internal error for the mock exchange handlers.
func InternalError(err error) *AppError {
	return Wrap(KindUnknown, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
