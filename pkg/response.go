package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
	HTML string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
	HTML: "text/html; charset=utf-8",
}

// Envelope is the response shape shared with the TrainDiary API:
// {success, data, message, errors}.
type Envelope struct {
	Success bool            `json:"success"`
	Data    any             `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
	Errors  []EnvelopeError `json:"errors,omitempty"`
}

type EnvelopeError struct {
	Message string `json:"message"`
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, message []byte) {
	WriteResponseBytes(w, contentType, message, http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.JSON, message, http.StatusOK)
}

// WriteData wraps data into a successful envelope.
func WriteData(w http.ResponseWriter, statusCode int, data any) {
	writeEnvelope(w, statusCode, Envelope{Success: true, Data: data})
}

// WriteError writes a failed envelope carrying message.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, Envelope{
		Success: false,
		Message: message,
		Errors:  []EnvelopeError{{Message: message}},
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, env Envelope) {
	respBytes, err := json.Marshal(env)
	if err != nil {
		log.Errorf("marshal response envelope: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respBytes, statusCode)
}
