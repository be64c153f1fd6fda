package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/mr-romero/slidegrid/pkg/errors"
)

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine error codes onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeSlideNotFound, errors.ErrCodeBlockNotFound,
		errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeCellOccupied:
		status = http.StatusConflict
	case errors.ErrCodeSessionExpired:
		status = http.StatusGone
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidKind,
		errors.ErrCodeInvalidPolicy, errors.ErrCodeInvalidDocument,
		errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}

	var body errorBody
	body.Error.Code = string(code)
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}

// decode parses a JSON request body into v.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}
