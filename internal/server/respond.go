package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/conclusiv/conclusiv/pkg/errors"
	"github.com/conclusiv/conclusiv/pkg/store"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the JSON shape of all error responses.
type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// writeError maps domain errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	// Store sentinels arrive uncoded.
	switch {
	case stderrors.Is(err, store.ErrShareNotFound):
		code = errors.ErrCodeShareNotFound
	case stderrors.Is(err, store.ErrNotFound):
		code = errors.ErrCodeNotFound
	}

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeShareNotFound,
		errors.ErrCodeFileNotFound, errors.ErrCodeIconNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidNarrative,
		errors.ErrCodeInvalidTemplate, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeRateLimited:
		status = http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		status = http.StatusGatewayTimeout
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		// Don't leak internals to clients.
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Error: msg, Code: code})
}
