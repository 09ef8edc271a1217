package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// responseCapture records the status code and, when keepBody is set, the
// body written by the wrapped handler.
type responseCapture struct {
	http.ResponseWriter
	body       bytes.Buffer
	statusCode int
	written    int
	keepBody   bool
}

func newResponseCapture(w http.ResponseWriter, keepBody bool) *responseCapture {
	return &responseCapture{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader not called
		keepBody:       keepBody,
	}
}

func (rc *responseCapture) WriteHeader(code int) {
	rc.statusCode = code
	rc.ResponseWriter.WriteHeader(code)
}

func (rc *responseCapture) Write(b []byte) (int, error) {
	if rc.keepBody {
		rc.body.Write(b)
	}
	n, err := rc.ResponseWriter.Write(b)
	rc.written += n
	return n, err
}

func (rc *responseCapture) Unwrap() http.ResponseWriter {
	return rc.ResponseWriter
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // Best effort response writing
	json.NewEncoder(w).Encode(errorBody{Error: code, Message: message})
}
