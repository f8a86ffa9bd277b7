package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRespondJSON(t *testing.T) {
	t.Run("writes status, header and body", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusCreated, map[string]string{"status": "ok"})

		if w.Code != http.StatusCreated {
			t.Errorf("Expected 201, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected application/json, got '%s'", ct)
		}

		var body map[string]string
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&body)
		if body["status"] != "ok" {
			t.Errorf("Expected status 'ok', got '%s'", body["status"])
		}
	})

	t.Run("nil data writes no body", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondJSON(w, http.StatusNoContent, nil)

		if w.Body.Len() != 0 {
			t.Errorf("Expected empty body, got '%s'", w.Body.String())
		}
	})
}

func TestRespondError(t *testing.T) {
	t.Run("omits empty details", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondError(w, http.StatusNotFound, "no spread record", nil)

		var body map[string]any
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&body)
		if body["error"] != "no spread record" {
			t.Errorf("Expected error message, got %v", body["error"])
		}
		if _, ok := body["details"]; ok {
			t.Errorf("Expected no details, got %v", body["details"])
		}
	})

	t.Run("includes field details", func(t *testing.T) {
		w := httptest.NewRecorder()

		RespondError(w, http.StatusBadRequest, "validation failed", map[string]string{"from": "required"})

		var body ErrorResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&body)
		details, ok := body.Details.(map[string]any)
		if !ok || details["from"] != "required" {
			t.Errorf("Expected field details, got %v", body.Details)
		}
	})
}
