package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfgdata/masterdata/internal/core"
	"github.com/mfgdata/masterdata/internal/logging"
)

func (s *Server) handleListBoMs(w http.ResponseWriter, r *http.Request) {
	boms, err := s.catalog.ListBoMs(r.Context())
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	if boms == nil {
		boms = []core.BoMEntry{}
	}
	respondJSON(w, http.StatusOK, boms)
}

func (s *Server) handleGetBoM(w http.ResponseWriter, r *http.Request) {
	b, err := s.catalog.GetBoM(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

// handleCreateBoM creates one BoM entry. Single-entry creates go through
// the same referential rules as bulk imports: the entry is validated
// against a fresh catalog snapshot and rejected with the rule's message if
// it fails.
func (s *Server) handleCreateBoM(w http.ResponseWriter, r *http.Request) {
	var b core.BoMEntry
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respondError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}

	snap, err := s.catalog.Snapshot(r.Context())
	if err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	ix := core.NewIndex(snap.Items, snap.BoMs)

	row := core.RawRow{b.ID, b.ItemID, b.ComponentID, formatQuantity(b.Quantity)}
	if v := core.ValidateBomRow(row, ix); !v.IsValid {
		respondError(w, r, errors.New(v.Reason), http.StatusUnprocessableEntity)
		return
	}

	if err := s.catalog.CreateBoM(r.Context(), b); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	logging.FromContext(r.Context()).Info("bom created", "id", b.ID, "item_id", b.ItemID, "component_id", b.ComponentID)
	respondJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateBoM(w http.ResponseWriter, r *http.Request) {
	var b core.BoMEntry
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		respondError(w, r, errors.New("invalid request body"), http.StatusBadRequest)
		return
	}
	b.ID = chi.URLParam(r, "id")

	if err := s.catalog.UpdateBoM(r.Context(), b); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBoM(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.catalog.DeleteBoM(r.Context(), id); err != nil {
		respondError(w, r, err, http.StatusInternalServerError)
		return
	}
	logging.FromContext(r.Context()).Info("bom deleted", "id", id)
	respondJSON(w, http.StatusOK, map[string]string{"deleted": id})
}
