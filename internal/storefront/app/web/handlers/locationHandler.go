package handlers

import (
	"encoding/json"
	"net/http"

	"gostorefront_api/internal/storefront/business/services/admin"
	"gostorefront_api/internal/storefront/storage"
)

type LocationHandler struct {
	locations *storage.LocationRepository
	admin     *admin.LocationService
}

func NewLocationHandler(locations *storage.LocationRepository, adminService *admin.LocationService) *LocationHandler {
	return &LocationHandler{locations: locations, admin: adminService}
}

type locationRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

func (h *LocationHandler) ManageLocationsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, h.locations.GetLocations())
	case http.MethodPost:
		var request locationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		location, err := h.admin.CreateLocation(admin.LocationInput(request))
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		respondJSON(w, location)
	case http.MethodPut:
		var request locationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		location, err := h.admin.UpdateLocation(r.URL.Query().Get("id"), admin.LocationInput(request))
		if err != nil {
			respondError(w, http.StatusNotFound, err)
			return
		}
		respondJSON(w, location)
	case http.MethodDelete:
		if err := h.admin.DeleteLocation(r.URL.Query().Get("id")); err != nil {
			respondError(w, http.StatusNotFound, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
