package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfgdata/masterdata/internal/core"
	"github.com/mfgdata/masterdata/internal/logging"
	"github.com/mfgdata/masterdata/internal/store"
)

// handleListItems returns live items, optionally filtered.
//
//	GET /api/items?q=bolt&type=sell&tenant=2
func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.ItemFilter{
		Search:   q.Get("q"),
		Type:     core.ItemType(q.Get("type")),
		TenantID: q.Get("tenant"),
	}

	items, err := s.catalog.ListItems(r.Context(), filter)
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []core.Item{}
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	it, err := s.catalog.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, it)
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var it core.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		respondError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	if it.ID == "" || it.InternalItemName == "" || it.TenantID == "" {
		respondError(w, r, errors.New("id, internal_item_name and tenant_id are required"), http.StatusBadRequest)
		return
	}

	if err := s.catalog.CreateItem(r.Context(), it); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	logging.FromContext(r.Context()).Info("item created", "id", it.ID, "tenant", it.TenantID)
	respondJSON(w, http.StatusCreated, it)
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var it core.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		respondError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	it.ID = chi.URLParam(r, "id")

	if err := s.catalog.UpdateItem(r.Context(), it); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, it)
}

func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.catalog.DeleteItem(r.Context(), id); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	logging.FromContext(r.Context()).Info("item deleted", "id", id)
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
