package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gostorefront_api/internal/storefront/business/models"
)

// Session headers stand in for real authentication, which is out of scope.
// The location must be explicit on every stock-dependent request.

var ErrMissingLocation = errors.New("missing X-Location-Id header")

func sessionFromRequest(r *http.Request) (models.Session, error) {
	locationID := r.Header.Get("X-Location-Id")
	if locationID == "" {
		return models.Session{}, ErrMissingLocation
	}

	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		userID = "guest"
	}
	return models.Session{UserID: userID, LocationID: locationID}, nil
}

func respondJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
