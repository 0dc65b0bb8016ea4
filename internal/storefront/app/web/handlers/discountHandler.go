package handlers

import (
	"encoding/json"
	"net/http"

	"gostorefront_api/internal/storefront/business/models"
	"gostorefront_api/internal/storefront/business/services/admin"
	"gostorefront_api/internal/storefront/storage"
)

type DiscountHandler struct {
	rules *storage.DiscountRuleRepository
	admin *admin.DiscountRuleService
}

func NewDiscountHandler(rules *storage.DiscountRuleRepository, adminService *admin.DiscountRuleService) *DiscountHandler {
	return &DiscountHandler{rules: rules, admin: adminService}
}

type discountRuleRequest struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Type        models.DiscountType       `json:"type"`
	Value       float64                   `json:"value"`
	Conditions  models.DiscountConditions `json:"conditions"`
	Active      bool                      `json:"active"`
}

func (r discountRuleRequest) toInput() admin.DiscountRuleInput {
	return admin.DiscountRuleInput{
		Name:        r.Name,
		Description: r.Description,
		Type:        r.Type,
		Value:       r.Value,
		Conditions:  r.Conditions,
		Active:      r.Active,
	}
}

func (h *DiscountHandler) ManageRulesHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		respondJSON(w, h.rules.GetRules())
	case http.MethodPost:
		var request discountRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		rule, err := h.admin.CreateRule(request.toInput())
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		respondJSON(w, rule)
	case http.MethodPut:
		var request discountRuleRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			http.Error(w, "Failed to decode request body", http.StatusBadRequest)
			return
		}
		rule, err := h.admin.UpdateRule(r.URL.Query().Get("id"), request.toInput())
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		respondJSON(w, rule)
	case http.MethodDelete:
		if err := h.admin.DeleteRule(r.URL.Query().Get("id")); err != nil {
			respondError(w, http.StatusNotFound, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *DiscountHandler) ToggleRuleHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.ToggleActive(r.URL.Query().Get("id")); err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
