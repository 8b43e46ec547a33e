package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/neolayer/store-backend/internal/apperror"
)

const maxBodyBytes = 1 << 20

const msgInvalidBody = "Invalid request body"

// decodeJSON reads a single JSON object from the request body into v.
// An empty body leaves v untouched. Any other top-level value, or bytes
// after the object, is rejected.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperror.Validation(msgInvalidBody)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return apperror.Validation(msgInvalidBody)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return apperror.Validation(msgInvalidBody)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return apperror.Validation(msgInvalidBody)
	}
	return nil
}
