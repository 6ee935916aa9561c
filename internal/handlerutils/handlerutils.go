package handlerutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/fekuna/omnipos-warehouse-service/internal/servererrors"
)

// APIHandler is an http handler that hands its error to the central error middleware.
type APIHandler func(w http.ResponseWriter, r *http.Request) error

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

func WriteErrorJSON(w http.ResponseWriter, statusCode int, message string, errs map[string]string) {
	_ = WriteJSON(w, statusCode, errorBody{Message: message, Errors: errs})
}

// DecodeJSON reads a single JSON object into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return servererrors.BadRequest("request body is empty")
		}
		return servererrors.New(http.StatusBadRequest, servererrors.ErrMalformedBody.Error(), map[string]string{"body": err.Error()})
	}
	return nil
}

// QueryInt parses an integer query parameter, returning fallback when absent or malformed.
func QueryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// Page is a paginated list response.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
