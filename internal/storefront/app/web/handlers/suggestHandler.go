package handlers

import (
	"net/http"
	"sync"

	"gostorefront_api/internal/storefront/business/services/catalog"
)

// SuggestHandler keeps one suggestion session per user, so when lookup
// responses complete out of order only the newest query's result is ever
// published back.
type SuggestHandler struct {
	suggester catalog.Suggester

	mu       sync.Mutex
	sessions map[string]*catalog.SuggestionSession
}

func NewSuggestHandler(suggester catalog.Suggester) *SuggestHandler {
	return &SuggestHandler{
		suggester: suggester,
		sessions:  make(map[string]*catalog.SuggestionSession),
	}
}

func (h *SuggestHandler) sessionFor(userID string) *catalog.SuggestionSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[userID]
	if !ok {
		session = catalog.NewSuggestionSession(h.suggester)
		h.sessions[userID] = session
	}
	return session
}

// GetSuggestionsHandler resolves suggestions for an in-progress query. The
// lookup runs under a fresh request id in the caller's session; a stale
// completion leaves the published list untouched.
func (h *SuggestHandler) GetSuggestionsHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		userID = "guest"
	}
	session := h.sessionFor(userID)

	if err := <-session.Lookup(r.Context(), r.URL.Query().Get("q")); err != nil {
		respondError(w, http.StatusServiceUnavailable, err)
		return
	}
	respondJSON(w, session.Current())
}
