package bankdesk

import (
	"errors"
	"fmt"
)

var (
	ErrInternalServer = errors.New("internal server error")
)

type ErrBadRequest struct {
	Fields map[string]string `json:"fields"`
}

func (e ErrBadRequest) Error() string {
	return fmt.Sprintf("missing/invalid params: %v", e.Fields)
}

type ErrNotFound struct {
	AccNo int64 `json:"acc_no,omitempty"`
}

func (e ErrNotFound) Error() string {
	return "record not found"
}

type ErrConflict struct {
	Msg string `json:"msg"`
}

func (e ErrConflict) Error() string {
	if e.Msg == "" {
		return "conflict"
	}
	return e.Msg
}

type ErrInsufficientFunds struct {
	AccNo int64 `json:"acc_no"`
}

func (e ErrInsufficientFunds) Error() string {
	return "insufficient balance"
}

type ErrUnauthorized struct{}

func (e ErrUnauthorized) Error() string {
	return "wrong locker key"
}

// ErrInvalidState is returned when a request is decided twice or is
// otherwise not PENDING.
type ErrInvalidState struct {
	Status RequestStatus `json:"status"`
}

func (e ErrInvalidState) Error() string {
	return fmt.Sprintf("request already %s", e.Status)
}
