package utils

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the uniform failure shape with a single error message.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]any{"success": false, "errors": []string{msg}})
}

// FieldErrors writes the uniform failure shape with a field -> message map.
func FieldErrors(w http.ResponseWriter, status int, errs map[string]string) {
	JSON(w, status, map[string]any{"success": false, "errors": errs})
}
