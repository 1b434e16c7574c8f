package api

import (
	"errors"

	"gastos/internal/core"
)

// Error codes carried in the envelope. The first six mirror the validation
// and lookup failures of the original contract; storage_failure covers the
// one thing a durable backend can do that browser storage could not, which
// is fail a write.
const (
	CodeInvalidAmount      = "invalid_amount"
	CodeAmountNotPositive  = "amount_not_positive"
	CodeInvalidType        = "invalid_type"
	CodeMissingDescription = "missing_description"
	CodeInvalidCardBrand   = "invalid_card_brand"
	CodeNotFound           = "not_found"
	CodeStorageFailure     = "storage_failure"
)

// Error is the failure half of the envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Response is the uniform envelope every operation returns: either
// {ok:true, data} or {ok:false, error}. No operation panics or propagates
// a failure any other way.
type Response[T any] struct {
	OK    bool   `json:"ok"`
	Data  *T     `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

func ok[T any](data T) Response[T] {
	return Response[T]{OK: true, Data: &data}
}

func fail[T any](e *Error) Response[T] {
	return Response[T]{OK: false, Error: e}
}

// errorFor maps a domain error onto the envelope error with the user-facing
// message the API has always emitted.
func errorFor(err error) *Error {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return &Error{Code: CodeInvalidAmount, Message: "Campo 'amount' inválido"}
	case errors.Is(err, core.ErrAmountNotPositive):
		return &Error{Code: CodeAmountNotPositive, Message: "Campo 'amount' deve ser > 0"}
	case errors.Is(err, core.ErrInvalidType):
		return &Error{Code: CodeInvalidType, Message: "Campo 'type' inválido"}
	case errors.Is(err, core.ErrMissingDescription):
		return &Error{Code: CodeMissingDescription, Message: "Campo 'description' é obrigatório"}
	case errors.Is(err, core.ErrInvalidCardBrand):
		return &Error{Code: CodeInvalidCardBrand, Message: "Campo 'cardBrand' inválido"}
	case errors.Is(err, core.ErrNotFound):
		return &Error{Code: CodeNotFound, Message: "Registro não encontrado"}
	default:
		return &Error{Code: CodeStorageFailure, Message: "Falha ao gravar os registros", Details: err.Error()}
	}
}
