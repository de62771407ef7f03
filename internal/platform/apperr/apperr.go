package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ===== Error model =====
type Code string

const (
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeConflict           Code = "CONFLICT"
	CodeWrongUser          Code = "WRONG_USER"
	CodeApproveByWrongUser Code = "APPROVE_BY_WRONG_USER"
	CodeUnavailableItem    Code = "UNAVAILABLE_ITEM"
	CodeNoItemBookings     Code = "NO_ITEM_BOOKINGS"
	CodeBadGateway         Code = "BAD_GATEWAY"
	CodeInternal           Code = "INTERNAL"
)

type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func ErrInvalid(msg string) *APIError  { return &APIError{Code: CodeInvalidArgument, Message: msg} }
func ErrNotFound(msg string) *APIError { return &APIError{Code: CodeNotFound, Message: msg} }
func ErrConflict(msg string) *APIError { return &APIError{Code: CodeConflict, Message: msg} }
func ErrInternal(msg string) *APIError { return &APIError{Code: CodeInternal, Message: msg} }

func ErrWrongUser(msg string) *APIError {
	return &APIError{Code: CodeWrongUser, Message: msg}
}

func ErrApproveByWrongUser(msg string) *APIError {
	return &APIError{Code: CodeApproveByWrongUser, Message: msg}
}

func ErrUnavailableItem(msg string) *APIError {
	return &APIError{Code: CodeUnavailableItem, Message: msg}
}

func ErrNoItemBookings(msg string) *APIError {
	return &APIError{Code: CodeNoItemBookings, Message: msg}
}

func ErrBadGateway(msg string) *APIError {
	return &APIError{Code: CodeBadGateway, Message: msg}
}

func ToHTTPStatus(err error) int {
	var api *APIError
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument, CodeUnavailableItem, CodeNoItemBookings, CodeApproveByWrongUser:
			return http.StatusBadRequest
		case CodeWrongUser:
			return http.StatusForbidden
		case CodeNotFound:
			return http.StatusNotFound
		case CodeConflict:
			return http.StatusConflict
		case CodeBadGateway:
			return http.StatusBadGateway
		default:
			return http.StatusInternalServerError
		}
	}
	return http.StatusInternalServerError
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var api *APIError
	return errors.As(err, &api) && api.Code == code
}

// Body は全エンドポイント共通のエラーレスポンス
type Body struct {
	Error       Code   `json:"error"`
	Description string `json:"description"`
}

const unexpectedDescription = "unexpected error"

func BodyOf(err error) Body {
	var api *APIError
	if errors.As(err, &api) {
		if api.Code == CodeInternal && api.Message == "" {
			return Body{Error: CodeInternal, Description: unexpectedDescription}
		}
		return Body{Error: api.Code, Description: api.Message}
	}
	return Body{Error: CodeInternal, Description: unexpectedDescription}
}
